package handler

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ResultResponse carries the outcome of a mutation
type ResultResponse struct {
	Message     string              `json:"message"`
	Reason      domain.Reason       `json:"reason,omitempty"`
	Suggestions map[string][]string `json:"suggestions,omitempty"`
	Warning     string              `json:"warning,omitempty"`
	Data        interface{}         `json:"data,omitempty"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so the best we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, msg)
}

// statusForResult maps a mutation outcome to an HTTP status. okStatus is
// used for applied results.
func statusForResult(res domain.Result, okStatus int) int {
	if res.OK() {
		return okStatus
	}
	switch res.Reason {
	case domain.ReasonDuplicate, domain.ReasonReferenced:
		return http.StatusConflict
	case domain.ReasonNotFound:
		return http.StatusNotFound
	case domain.ReasonUnknownItem:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// respondResult writes the outcome of a catalog mutation. err is the error
// returned next to res: an autosave failure keeps the applied status and
// adds a warning, anything else goes through respondServiceError.
func respondResult(w http.ResponseWriter, r *http.Request, opName string, res domain.Result, err error, okStatus int, resp ResultResponse) {
	if err != nil && !errors.Is(err, catalog.ErrAutosaveFailed) {
		respondServiceError(w, r, opName, err)
		return
	}

	resp.Message = res.Message
	resp.Reason = res.Reason
	if err != nil {
		logger.FromContext(r.Context()).Error(opName, "error", err)
		resp.Warning = WarnMsgAutosaveFailed
	}
	if !res.OK() {
		resp.Data = nil
	}
	respondJSON(w, statusForResult(res, okStatus), resp)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgItemNotFoundError = "Item not found"
	ErrMsgStorageError      = "Could not access the database file"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Construction errors describe the offending field and are safe to show
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrInvalidValue):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, catalog.ErrAutosaveFailed):
		return http.StatusInternalServerError, WarnMsgAutosaveFailed
	}

	// File errors carry paths, so only a fixed message goes to the client
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return http.StatusInternalServerError, ErrMsgStorageError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
