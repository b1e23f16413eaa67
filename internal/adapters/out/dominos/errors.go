package dominos

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRemoteRejection = errors.New("rejected by the ordering service")
	ErrTransport       = errors.New("ordering service unreachable")
)

// RemoteRejectionError reports a reply that arrived but did not accept the
// request: a non-2xx status, a body with Status -1, or a body that could not be
// decoded.
type RemoteRejectionError struct {
	Operation  string
	StatusCode int
	// Codes are the StatusItems codes of a Status -1 reply.
	Codes []string
	Cause error
}

func (e *RemoteRejectionError) Error() string {
	switch {
	case len(e.Codes) > 0:
		return fmt.Sprintf("%s: %s: %s", e.Operation, ErrRemoteRejection, strings.Join(e.Codes, ", "))
	case e.Cause != nil:
		return fmt.Sprintf("%s: unreadable reply from the ordering service: %v", e.Operation, e.Cause)
	default:
		return fmt.Sprintf("%s: %s with HTTP %d", e.Operation, ErrRemoteRejection, e.StatusCode)
	}
}

func (e *RemoteRejectionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRemoteRejection}
	}
	return []error{ErrRemoteRejection, e.Cause}
}

// TransportError reports a request that never produced a reply: dial failure,
// timeout, or a connection dropped mid-body.
type TransportError struct {
	Operation string
	Cause     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation, ErrTransport, e.Cause)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Cause}
}
