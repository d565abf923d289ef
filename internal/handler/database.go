package handler

import (
	"net/http"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// RenameRequest is the body of PUT /database/name
type RenameRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// HandleDatabaseInfo returns the database name, location and counts
// @Summary Database info
// @Tags database
// @Produce json
// @Success 200 {object} catalog.Info
// @Router /database [get]
func HandleDatabaseInfo(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Info(r.Context()))
	}
}

// HandleExportDatabase returns the whole database in its file format
// @Summary Export database
// @Tags database
// @Produce json
// @Success 200 {object} crafting.Snapshot
// @Router /database/export [get]
func HandleExportDatabase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Snapshot(r.Context()))
	}
}

// HandleRenameDatabase sets the database name. A blank name resets it to the default.
// @Summary Rename database
// @Tags database
// @Accept json
// @Produce json
// @Param request body RenameRequest true "New name"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /database/name [put]
func HandleRenameDatabase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RenameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename database"); err != nil {
			return
		}

		info, err := svc.Rename(r.Context(), req.Name)
		respondResult(w, r, ErrMsgRenameFailed, domain.Ok(MsgDatabaseRenamed), err, http.StatusOK, ResultResponse{Data: info})
	}
}

// HandleSaveDatabase writes the database to its file
// @Summary Save database
// @Tags database
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /database/save [post]
func HandleSaveDatabase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Save(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgSaveFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDatabaseSaved})
	}
}

// HandleReloadDatabase discards unsaved changes and reads the file again
// @Summary Reload database
// @Tags database
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /database/reload [post]
func HandleReloadDatabase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reload(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgReloadFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgDatabaseReloaded, Data: svc.Info(r.Context())})
	}
}
