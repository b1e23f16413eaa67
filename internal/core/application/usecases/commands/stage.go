package commands

import (
	"errors"
	"fmt"
)

var ErrStageOutOfOrder = errors.New("workflow stage reached out of order")

// Stage is a step of the ordering session. Stages run strictly in order:
//
//	StoreSelection -> PreValidation -> ProductSelection -> PostValidation
//	    -> Pricing -> CustomerInfoAndConfirmation
type Stage int

const (
	// NotStarted is the state of a session before its first stage.
	NotStarted Stage = iota
	StoreSelection
	PreValidation
	ProductSelection
	PostValidation
	Pricing
	CustomerInfoAndConfirmation
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		NotStarted:                  "not_started",
		StoreSelection:              "store_selection",
		PreValidation:               "pre_validation",
		ProductSelection:            "product_selection",
		PostValidation:              "post_validation",
		Pricing:                     "pricing",
		CustomerInfoAndConfirmation: "customer_info_and_confirmation",
	}
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Advance returns next when it directly follows s.
func (s Stage) Advance(next Stage) (Stage, error) {
	if next != s+1 || next > CustomerInfoAndConfirmation {
		return s, fmt.Errorf("%w: %s after %s", ErrStageOutOfOrder, next, s)
	}
	return next, nil
}

// StageError records which stage ended the session. Its message is the cause's
// message alone, so it can be shown to the user as is.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
