package validators

import "errors"

var (
	ErrEmptyRule   = errors.New("empty rule expression")
	ErrInvalidRule = errors.New("invalid rule expression")

	// errUnsupportedValue marks a value a rule cannot evaluate, such as
	// oneof on a number or min on a boolean.
	errUnsupportedValue = errors.New("value type not supported by rule")
)
