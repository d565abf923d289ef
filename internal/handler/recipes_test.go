package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
)

type recipeListResponse struct {
	Data []catalog.RecipeView `json:"data"`
}

func TestHandleListRecipes(t *testing.T) {
	svc, _ := newTestService(t, catalog.Config{})
	router := newTestRouter(svc)

	// profit 15*1 - 2*3 = 9
	rec := doRequest(t, router, http.MethodPost, "/recipes", `{"inputs":{"coal":3},"outputs":{"copper":1},"type":"smelt","time":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	t.Run("default sort is profit descending", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/recipes", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp recipeListResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Data, 2)
		require.NotNil(t, resp.Data[0].Profit)
		assert.Equal(t, 9, *resp.Data[0].Profit)
		assert.Equal(t, "SMELT", *resp.Data[0].Recipe.Type, "type is upper-cased")
	})

	t.Run("time ascending", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/recipes?sort=time&dir=asc", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp recipeListResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, map[string]int{"iron": 4}, resp.Data[0].Recipe.Inputs)
	})

	t.Run("unknown sort key", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/recipes?sort=colour", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid sort query parameter")
	})

	t.Run("unknown direction", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/recipes?dir=sideways", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid dir query parameter")
	})
}

func TestHandleAddRecipe(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"success", `{"inputs":{"coal":3},"outputs":{"copper":1}}`, http.StatusCreated, `"profit":9`},
		{"duplicate", ironRecipeJSON, http.StatusConflict, `"reason":"duplicate"`},
		{"unknown output", `{"inputs":{"iron":1},"outputs":{"irn_ingot":1}}`, http.StatusUnprocessableEntity, `"reason":"unknown_item"`},
		{"zero quantity", `{"inputs":{"iron":0},"outputs":{"iron_ingot":1}}`, http.StatusBadRequest, "must be positive"},
		{"fractional quantity", `{"inputs":{"iron":1.5},"outputs":{"iron_ingot":1}}`, http.StatusBadRequest, "must be an int"},
		{"missing outputs", `{"inputs":{"iron":1}}`, http.StatusBadRequest, "outputs must be a mapping"},
		{"negative time", `{"inputs":{"iron":1},"outputs":{"coal":1},"time":-1}`, http.StatusBadRequest, "time must be a non-negative number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, catalog.Config{})
			rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/recipes", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleAddRecipe_SuggestsKnownIDs(t *testing.T) {
	svc, _ := newTestService(t, catalog.Config{})
	rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/recipes", `{"inputs":{"iron":1},"outputs":{"irn_ingot":1}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ResultResponse
	decodeBody(t, rec, &resp)
	require.Contains(t, resp.Suggestions, "irn_ingot")
	assert.Contains(t, resp.Suggestions["irn_ingot"], "iron_ingot")
	assert.Nil(t, resp.Data)
	assert.Equal(t, 1, svc.Info(t.Context()).RecipeCount)
}

func TestHandleEditRecipe(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		svc, _ := newTestService(t, catalog.Config{})
		body := `{"old":` + ironRecipeJSON + `,"new":{"inputs":{"iron":2},"outputs":{"iron_ingot":2}}}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/recipes", body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"profit":20`)

		views := svc.RecipesUsing(t.Context(), "iron")
		require.Len(t, views, 1)
		assert.Equal(t, map[string]int{"iron": 2}, views[0].Recipe.Inputs)
	})

	t.Run("missing old recipe", func(t *testing.T) {
		svc, _ := newTestService(t, catalog.Config{})
		body := `{"old":{"inputs":{"coal":1},"outputs":{"iron":1}},"new":` + ironRecipeJSON + `}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/recipes", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("replacement with unknown item", func(t *testing.T) {
		svc, _ := newTestService(t, catalog.Config{})
		body := `{"old":` + ironRecipeJSON + `,"new":{"inputs":{"iron":4},"outputs":{"gold":1}}}`
		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/recipes", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"suggestions"`)
	})

	t.Run("missing old body", func(t *testing.T) {
		svc, _ := newTestService(t, catalog.Config{})
		rec := doRequest(t, newTestRouter(svc), http.MethodPut, "/recipes", `{"new":`+ironRecipeJSON+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRemoveRecipe(t *testing.T) {
	svc, _ := newTestService(t, catalog.Config{})
	router := newTestRouter(svc)

	rec := doRequest(t, router, http.MethodDelete, "/recipes", ironRecipeJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 0, svc.Info(t.Context()).RecipeCount)

	rec = doRequest(t, router, http.MethodDelete, "/recipes", ironRecipeJSON)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"not_found"`)
}

func TestHandleRecipeProfit(t *testing.T) {
	svc, _ := newTestService(t, catalog.Config{})
	router := newTestRouter(svc)

	t.Run("computable", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/recipes/profit", `{"inputs":{"coal":1},"outputs":{"copper":2}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data catalog.RecipeView `json:"data"`
		}
		decodeBody(t, rec, &resp)
		require.NotNil(t, resp.Data.Profit)
		assert.Equal(t, 28, *resp.Data.Profit)
		assert.Contains(t, resp.Data.Description, "Profit: 28")
	})

	t.Run("unknown item gives null profit", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/recipes/profit", `{"inputs":{"coal":1},"outputs":{"gold":1}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"profit":null`)
		assert.Contains(t, rec.Body.String(), "Profit: N/A")
	})

	t.Run("not stored", func(t *testing.T) {
		assert.Equal(t, 1, svc.Info(t.Context()).RecipeCount)
	})
}
