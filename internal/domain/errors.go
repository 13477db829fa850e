package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ticket loading errors
	ErrMsgLoadFailed        = "failed to load tickets"
	ErrMsgMalformedGame     = "malformed game"
	ErrMsgDuplicateTicketID = "duplicate ticket id"
	ErrMsgNoTicketsDefined  = "no tickets defined"

	// Selection errors
	ErrMsgNumberOutOfRange = "number out of range"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Ticket loading errors
	ErrLoadFailed        = errors.New(ErrMsgLoadFailed)
	ErrMalformedGame     = errors.New(ErrMsgMalformedGame)
	ErrDuplicateTicketID = errors.New(ErrMsgDuplicateTicketID)
	ErrNoTicketsDefined  = errors.New(ErrMsgNoTicketsDefined)

	// Selection errors
	ErrNumberOutOfRange = errors.New(ErrMsgNumberOutOfRange)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
