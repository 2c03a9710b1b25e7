package polar

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a rejected parameter. It matches ErrInvalidArgument
// with errors.Is.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArgument(arg, reason string) error {
	return &ArgumentError{
		Arg:    arg,
		Reason: reason,
	}
}
