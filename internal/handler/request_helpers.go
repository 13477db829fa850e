package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"senacheck/internal/logger"
)

// ValidationErrorResponse reports which fields failed validation and why
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and runs the
// struct's validation tags. On failure the HTTP response has already
// been written; the handler should just return. actionName labels the
// log lines ("Toggle number", "Set filter").
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}
	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	err := GetValidator().ValidateStruct(req)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
	}
	return err
}
