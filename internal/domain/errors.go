package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Panel errors
	ErrMsgSlotOutOfRange = "slot out of range"

	// Head errors
	ErrMsgUnknownPlayer = "unknown player"

	// Configuration errors
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgInvalidTemplate = "invalid item template"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrSlotOutOfRange = errors.New(ErrMsgSlotOutOfRange)

	ErrUnknownPlayer = errors.New(ErrMsgUnknownPlayer)

	ErrInvalidConfig   = errors.New(ErrMsgInvalidConfig)
	ErrInvalidTemplate = errors.New(ErrMsgInvalidTemplate)
)
