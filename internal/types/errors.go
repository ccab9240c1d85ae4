package types

import "errors"

var (
	// ErrInvalidInput marks unusable caller input, e.g. an empty transcript.
	ErrInvalidInput = errors.New("invalid input")

	// ErrModelFailure marks a failed external model call.
	ErrModelFailure = errors.New("external model failure")

	// ErrModelTimeout marks an external model call that exceeded its deadline.
	ErrModelTimeout = errors.New("external model timeout")
)
