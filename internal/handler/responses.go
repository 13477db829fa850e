package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"senacheck/internal/domain"
)

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response through a pooled buffer. Session
// views are re-encoded on every action, so this path is hot. Encoding
// happens before the header goes out, so a marshal failure still
// yields a clean 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages for domain errors. Internal detail stays in the
// logs; the client gets something it can act on.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgNumberOutOfRangeError = "Pick a number between 1 and 60"
	ErrMsgNoTicketsLoadedError  = "No tickets are loaded"
)

// errorStatusMap pairs each domain error with its HTTP translation,
// checked in order.
var errorStatusMap = []struct {
	target  error
	status  int
	message string
}{
	{domain.ErrNumberOutOfRange, http.StatusBadRequest, ErrMsgNumberOutOfRangeError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrNoTicketsDefined, http.StatusServiceUnavailable, ErrMsgNoTicketsLoadedError},
}

// mapServiceErrorToUserMessage converts a service error into an HTTP
// status and a message safe to show the user.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.message
		}
	}

	// Unrecognized errors surface verbatim when short enough to be a
	// deliberate message rather than an internal dump.
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return http.StatusInternalServerError, msg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
