package menu

import (
	"errors"
	"fmt"
)

// Product codes sent as a line item's "Code".
const (
	SmallCode  = "10SCREEN"
	MediumCode = "12SCREEN"
	LargeCode  = "14SCREEN"
)

var ErrUnknownSize = errors.New("unknown pizza size")

// UnknownSizeError is returned when a size letter is not one of s, m or l.
type UnknownSizeError struct {
	Size string
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("%s: %q (choose s, m or l)", ErrUnknownSize, e.Size)
}

func (e *UnknownSizeError) Unwrap() error {
	return ErrUnknownSize
}

func sizeCodes() map[string]string {
	return map[string]string{
		"s": SmallCode,
		"m": MediumCode,
		"l": LargeCode,
	}
}

// SizeCode maps a size letter to its product code. The lookup is exact: callers
// normalise user input before asking.
func SizeCode(size string) (string, error) {
	code, ok := sizeCodes()[size]
	if !ok {
		return "", &UnknownSizeError{Size: size}
	}
	return code, nil
}
