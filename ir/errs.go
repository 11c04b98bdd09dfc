package ir

import "errors"

var (
	// ErrConversion indicates a value of an unsupported kind was passed
	// where a Node was expected.
	ErrConversion = errors.New("conversion error")

	// ErrPrecond indicates an internal operation was invoked on a node
	// violating its documented precondition, such as a common-factor
	// search over a terminal.
	ErrPrecond = errors.New("precondition violated")
)
