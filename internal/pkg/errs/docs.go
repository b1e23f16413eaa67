// Package errs provides the typed errors shared by the pizza order domain.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange)
//   - a struct carrying the parameter name and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel, so errors.Is works across wrapping layers
//
// Domain packages build on these instead of ad-hoc fmt.Errorf strings so that
// callers can classify a failure without parsing its message.
package errs
