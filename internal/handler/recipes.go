package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// EditRecipeRequest is the body of PUT /recipes
type EditRecipeRequest struct {
	Old domain.RecipeRecord `json:"old"`
	New domain.RecipeRecord `json:"new"`
}

// recipeFromRequest builds a recipe, writing a 400 on failure
func recipeFromRequest(w http.ResponseWriter, r *http.Request, opName string, rec domain.RecipeRecord) (*domain.Recipe, bool) {
	recipe, err := domain.RecipeFromRecord(rec)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return nil, false
	}
	return recipe, true
}

// withSuggestions adds close item ids for every unknown reference when the
// result was rejected for that reason
func withSuggestions(r *http.Request, svc catalog.Service, res domain.Result, recipes ...*domain.Recipe) ResultResponse {
	var resp ResultResponse
	if res.Reason != domain.ReasonUnknownItem {
		return resp
	}
	for _, recipe := range recipes {
		for id, ids := range svc.Suggestions(r.Context(), recipe) {
			if resp.Suggestions == nil {
				resp.Suggestions = make(map[string][]string)
			}
			resp.Suggestions[id] = ids
		}
	}
	return resp
}

// HandleListRecipes returns every recipe with its profit, sorted
// @Summary List recipes
// @Description Recipes whose profit cannot be computed sort last
// @Tags recipes
// @Produce json
// @Param sort query string false "profit, time, type, inputs or outputs" default(profit)
// @Param dir query string false "asc or desc" default(desc)
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipes [get]
func HandleListRecipes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := crafting.ParseSortKey(GetOptionalQueryParam(r, "sort", ""))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "sort"))
			return
		}
		dir, err := crafting.ParseSortDirection(GetOptionalQueryParam(r, "dir", ""))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "dir"))
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.ListRecipes(r.Context(), key, dir)})
	}
}

// HandleAddRecipe stores a new recipe
// @Summary Add recipe
// @Description Every referenced item must exist. Unknown ids are answered with close matches.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body domain.RecipeRecord true "Recipe"
// @Success 201 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ResultResponse "Duplicate recipe"
// @Failure 422 {object} ResultResponse "Unknown item"
// @Router /recipes [post]
func HandleAddRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RecipeRecord
		if err := DecodeAndValidateRequest(r, w, &req, "Add recipe"); err != nil {
			return
		}
		recipe, ok := recipeFromRequest(w, r, ErrMsgAddRecipeFailed, req)
		if !ok {
			return
		}

		res, err := svc.AddRecipe(r.Context(), recipe)
		resp := withSuggestions(r, svc, res, recipe)
		if res.OK() {
			resp.Data = svc.Profit(r.Context(), recipe)
		}
		respondResult(w, r, ErrMsgAddRecipeFailed, res, err, http.StatusCreated, resp)
	}
}

// HandleEditRecipe replaces a stored recipe, keeping its position
// @Summary Edit recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body EditRecipeRequest true "Recipe to replace and its replacement"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ResultResponse
// @Failure 409 {object} ResultResponse
// @Failure 422 {object} ResultResponse
// @Router /recipes [put]
func HandleEditRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EditRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Edit recipe"); err != nil {
			return
		}
		old, ok := recipeFromRequest(w, r, ErrMsgEditRecipeFailed, req.Old)
		if !ok {
			return
		}
		replacement, ok := recipeFromRequest(w, r, ErrMsgEditRecipeFailed, req.New)
		if !ok {
			return
		}

		res, err := svc.EditRecipe(r.Context(), old, replacement)
		resp := withSuggestions(r, svc, res, replacement)
		if res.OK() {
			resp.Data = svc.Profit(r.Context(), replacement)
		}
		respondResult(w, r, ErrMsgEditRecipeFailed, res, err, http.StatusOK, resp)
	}
}

// HandleRemoveRecipe deletes a stored recipe
// @Summary Remove recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body domain.RecipeRecord true "Recipe"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ResultResponse
// @Router /recipes [delete]
func HandleRemoveRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RecipeRecord
		if err := DecodeAndValidateRequest(r, w, &req, "Remove recipe"); err != nil {
			return
		}
		recipe, ok := recipeFromRequest(w, r, ErrMsgRemoveRecipeFailed, req)
		if !ok {
			return
		}

		res, err := svc.RemoveRecipe(r.Context(), recipe)
		respondResult(w, r, ErrMsgRemoveRecipeFailed, res, err, http.StatusOK, ResultResponse{})
	}
}

// HandleRecipeProfit evaluates a recipe against current sell values. The
// recipe does not have to be stored.
// @Summary Recipe profit
// @Description profit is null when a referenced item is unknown
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body domain.RecipeRecord true "Recipe"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipes/profit [post]
func HandleRecipeProfit(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RecipeRecord
		if err := DecodeAndValidateRequest(r, w, &req, "Recipe profit"); err != nil {
			return
		}
		recipe, ok := recipeFromRequest(w, r, ErrMsgInvalidRequestSummary, req)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.Profit(r.Context(), recipe)})
	}
}
