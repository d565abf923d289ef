package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

func TestStatusForResult(t *testing.T) {
	tests := []struct {
		res  domain.Result
		want int
	}{
		{domain.Ok("done"), http.StatusCreated},
		{domain.Rejected(domain.ReasonDuplicate, ""), http.StatusConflict},
		{domain.Rejected(domain.ReasonReferenced, ""), http.StatusConflict},
		{domain.Rejected(domain.ReasonNotFound, ""), http.StatusNotFound},
		{domain.Rejected(domain.ReasonUnknownItem, ""), http.StatusUnprocessableEntity},
		{domain.Rejected(domain.ReasonInvalid, ""), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(string(tt.res.Reason), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForResult(tt.res, http.StatusCreated))
		})
	}
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	validationErr := domain.InvalidValue("sell_value", "must not be negative")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"validation error shows its message", validationErr, http.StatusBadRequest, validationErr.Error()},
		{"wrapped validation error", fmt.Errorf("add: %w", validationErr), http.StatusBadRequest, validationErr.Error()},
		{"item not found", fmt.Errorf("%w: gold", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"invalid input", fmt.Errorf("unknown sort key: %w", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"bare kind", domain.ErrInvalidType, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"autosave", fmt.Errorf("%w: disk full", catalog.ErrAutosaveFailed), http.StatusInternalServerError, WarnMsgAutosaveFailed},
		{"file error hides the path", fmt.Errorf("reload: %w", &fs.PathError{Op: "open", Path: "/srv/db.json", Err: fs.ErrNotExist}),
			http.StatusInternalServerError, ErrMsgStorageError},
		{"anything else", errors.New("open /etc/secret: permission denied"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusTeapot, SuccessResponse{Message: "hi"})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"hi"}`, w.Body.String())
}

func TestRespondResult_RejectedDropsData(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/items", nil)

	respondResult(w, r, "Add", domain.Rejected(domain.ReasonDuplicate, "Item already exists"), nil,
		http.StatusCreated, ResultResponse{Data: "ignored"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Item already exists","reason":"duplicate"}`, w.Body.String())
}
