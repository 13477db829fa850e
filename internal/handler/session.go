package handler

import (
	"errors"
	"net/http"

	"senacheck/internal/domain"
	"senacheck/internal/logger"
	"senacheck/internal/session"
)

// ToggleNumberRequest represents the request to toggle one drawn number
type ToggleNumberRequest struct {
	Number int `json:"number" validate:"min=1,max=60"`
}

// SetFilterRequest represents the request to switch the hits-only filter.
// Enabled is a pointer so a missing field is rejected instead of silently
// reading as false.
type SetFilterRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// SessionHandler handles checking-session HTTP requests
type SessionHandler struct {
	sessionSvc session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc session.Service) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
	}
}

// GetSession handles the session snapshot endpoint
// @Summary Get the current session
// @Description Returns the selected numbers, per-game hit results, prize tallies and filter state
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionView "Current session snapshot"
// @Router /session [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodGet {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	view := h.sessionSvc.View(r.Context())

	respondJSON(w, http.StatusOK, view)
}

// ToggleNumber handles the toggle endpoint
// @Summary Toggle a drawn number
// @Description Adds the number to the selection, or removes it when already selected. Adding to a full selection is ignored.
// @Tags session
// @Accept json
// @Produce json
// @Param request body ToggleNumberRequest true "Number to toggle"
// @Success 200 {object} domain.SessionView "Session after the toggle"
// @Failure 400 {object} ErrorResponse "Invalid request or number out of range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /selection/toggle [post]
func (h *SessionHandler) ToggleNumber(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req ToggleNumberRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Toggle number"); err != nil {
		return
	}

	view, err := h.sessionSvc.Toggle(r.Context(), req.Number)
	if err != nil {
		log.Error(ErrMsgToggleFailed, "error", err, "number", req.Number)

		if errors.Is(err, domain.ErrNumberOutOfRange) {
			respondError(w, http.StatusBadRequest, ErrMsgNumberOutOfRangeError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// ClearSelection handles the clear endpoint
// @Summary Clear the selection
// @Description Removes every selected number. The hits-only filter keeps its state.
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionView "Session after the clear"
// @Router /selection/clear [post]
func (h *SessionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	view := h.sessionSvc.Clear(r.Context())

	respondJSON(w, http.StatusOK, view)
}

// SetFilter handles the hits-only filter endpoint
// @Summary Switch the hits-only filter
// @Description Shows only games with at least one hit when enabled. Prize tallies are unaffected.
// @Tags session
// @Accept json
// @Produce json
// @Param request body SetFilterRequest true "Filter state"
// @Success 200 {object} domain.SessionView "Session after the switch"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /filter [post]
func (h *SessionHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req SetFilterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set filter"); err != nil {
		return
	}

	view := h.sessionSvc.SetFilter(r.Context(), *req.Enabled)

	respondJSON(w, http.StatusOK, view)
}
