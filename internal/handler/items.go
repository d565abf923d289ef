package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/logger"
)

// AddItemRequest is the body of POST /items
type AddItemRequest struct {
	ID        string `json:"id" validate:"required,itemid,max=100"`
	Name      string `json:"name" validate:"max=200"`
	SellValue *int   `json:"sell_value" validate:"required"`
}

// EditItemRequest is the body of PATCH /items/{id}. Omitted fields are kept.
type EditItemRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=200"`
	SellValue *int    `json:"sell_value"`
}

// itemIDParam returns the unescaped {id} path segment
func itemIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return "", false
	}
	return id, true
}

// HandleListItems returns every item sorted by name. With a q parameter it
// ranks items against the query instead.
// @Summary List or search items
// @Description Without q, lists every item. With q, matches ids and display names exactly, by prefix, by substring and by edit distance.
// @Tags items
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /items [get]
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("q") {
			query, ok := GetQueryParam(r, w, "q")
			if !ok {
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Data: svc.SearchItems(r.Context(), query)})
			return
		}

		items := svc.ListItems(r.Context())
		records := make([]domain.ItemRecord, 0, len(items))
		for _, item := range items {
			records = append(records, item.Record())
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: records})
	}
}

// HandleGetItem returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}
		item, err := svc.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: item.Record()})
	}
}

// HandleItemRecipes returns the recipes that consume or produce an item
// @Summary Recipes using an item
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id}/recipes [get]
func HandleItemRecipes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}
		if _, err := svc.GetItem(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.RecipesUsing(r.Context(), id)})
	}
}

// HandleAddItem stores a new item
// @Summary Add item
// @Tags items
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item"
// @Success 201 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ResultResponse "Duplicate id"
// @Router /items [post]
func HandleAddItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "item", req.ID, "sell_value", *req.SellValue)

		item, err := domain.NewItem(req.ID, req.Name, *req.SellValue)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddItemFailed, err)
			return
		}

		res, err := svc.AddItem(r.Context(), item)
		respondResult(w, r, ErrMsgAddItemFailed, res, err, http.StatusCreated, ResultResponse{Data: item.Record()})
	}
}

// HandleEditItem changes an item's name or sell value
// @Summary Edit item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param request body EditItemRequest true "Fields to change"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ResultResponse
// @Router /items/{id} [patch]
func HandleEditItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}
		var req EditItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Edit item"); err != nil {
			return
		}
		if req.Name == nil && req.SellValue == nil {
			respondError(w, http.StatusBadRequest, ErrMsgNothingToEdit)
			return
		}

		res, err := svc.EditItem(r.Context(), id, crafting.ItemEdit{Name: req.Name, SellValue: req.SellValue})
		resp := ResultResponse{}
		if res.OK() {
			if item, getErr := svc.GetItem(r.Context(), id); getErr == nil {
				resp.Data = item.Record()
			}
		}
		respondResult(w, r, ErrMsgEditItemFailed, res, err, http.StatusOK, resp)
	}
}

// HandleRemoveItem deletes an item
// @Summary Remove item
// @Description Rejected with 409 while recipes reference the item, unless cascade=true
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Param cascade query bool false "Also remove referencing recipes"
// @Success 200 {object} ResultResponse
// @Failure 404 {object} ResultResponse
// @Failure 409 {object} ResultResponse
// @Router /items/{id} [delete]
func HandleRemoveItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemIDParam(w, r)
		if !ok {
			return
		}
		cascade, err := strconv.ParseBool(GetOptionalQueryParam(r, "cascade", "false"))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "cascade"))
			return
		}

		res, err := svc.RemoveItem(r.Context(), id, cascade)
		respondResult(w, r, ErrMsgRemoveItemFailed, res, err, http.StatusOK, ResultResponse{})
	}
}
