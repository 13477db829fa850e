package handler

// Client-facing error strings. Kept deliberately vague so internals
// never leak; handlers and tests share these constants.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Session operation error messages
	ErrMsgToggleFailed = "Failed to toggle number"
)
