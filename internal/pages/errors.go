package pages

import (
	"errors"
	"fmt"
)

// ErrAssertion is wrapped by every failed verification
var ErrAssertion = errors.New("assertion failed")

// AssertionError describes what a verification expected on which element
type AssertionError struct {
	Selector string
	Want     string
	Got      string
	// Err is the poll failure, usually wrapping wait.ErrTimeout.
	Err error
}

func (e *AssertionError) Error() string {
	msg := fmt.Sprintf("%s on %s: want %s, got %q", ErrAssertion, e.Selector, e.Want, e.Got)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both ErrAssertion and the underlying poll error
func (e *AssertionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAssertion}
	}
	return []error{ErrAssertion, e.Err}
}
