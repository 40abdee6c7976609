// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "errors"

var (
	// ErrDataInvalid is the sentinel matched by every [*DataInvalidError]
	// through [errors.Is].
	ErrDataInvalid = errors.New("the request data does not pass the validation rules")

	// ErrNilFactory is returned by [New] when no validator factory is given.
	ErrNilFactory = errors.New("validator factory is required")

	// ErrNilDeclaration is returned by [New] when no declaration is given.
	ErrNilDeclaration = errors.New("validation declaration is required")
)

// DataInvalidError is returned by [Gate.Process] when the validator rejects
// the request input. It carries the per-field failure messages; its Error
// text is a fixed summary that never includes them.
type DataInvalidError struct {
	messages Messages
}

// NewDataInvalidError wraps the failure messages of a rejected validation.
func NewDataInvalidError(messages Messages) *DataInvalidError {
	return &DataInvalidError{messages: messages}
}

func (e *DataInvalidError) Error() string {
	return ErrDataInvalid.Error()
}

// Messages returns the failure messages exactly as the validator reported them.
func (e *DataInvalidError) Messages() Messages {
	return e.messages
}

// Is reports whether target is [ErrDataInvalid].
func (e *DataInvalidError) Is(target error) bool {
	return target == ErrDataInvalid
}
