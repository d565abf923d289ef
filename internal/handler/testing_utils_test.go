package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
)

// newTestService returns a file-backed service holding iron=10,
// iron_ingot=20, copper=15, coal=2 and the recipe 4 iron -> 2 iron_ingot.
func newTestService(t *testing.T, cfg catalog.Config) (catalog.Service, string) {
	t.Helper()

	db, err := crafting.New(crafting.WithName("TestDB"))
	require.NoError(t, err)
	for _, spec := range []struct {
		id, name string
		value    int
	}{
		{"iron", "Iron", 10},
		{"iron_ingot", "Iron Ingot", 20},
		{"copper", "Copper", 15},
		{"coal", "Coal", 2},
	} {
		item, err := domain.NewItem(spec.id, spec.name, spec.value)
		require.NoError(t, err)
		require.True(t, db.AddItem(item).OK())
	}
	recipe, err := domain.NewRecipe(map[string]int{"iron": 4}, map[string]int{"iron_ingot": 2})
	require.NoError(t, err)
	require.True(t, db.AddRecipe(recipe).OK())

	path := filepath.Join(t.TempDir(), "test_db.json")
	return catalog.NewService(db, catalog.NewFileStore(path, nil), cfg), path
}

// newTestRouter mounts every catalog handler the way the server does
func newTestRouter(svc catalog.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/items", HandleListItems(svc))
	r.Post("/items", HandleAddItem(svc))
	r.Get("/items/{id}", HandleGetItem(svc))
	r.Patch("/items/{id}", HandleEditItem(svc))
	r.Delete("/items/{id}", HandleRemoveItem(svc))
	r.Get("/items/{id}/recipes", HandleItemRecipes(svc))

	r.Get("/recipes", HandleListRecipes(svc))
	r.Post("/recipes", HandleAddRecipe(svc))
	r.Put("/recipes", HandleEditRecipe(svc))
	r.Delete("/recipes", HandleRemoveRecipe(svc))
	r.Post("/recipes/profit", HandleRecipeProfit(svc))

	r.Get("/database", HandleDatabaseInfo(svc))
	r.Get("/database/export", HandleExportDatabase(svc))
	r.Put("/database/name", HandleRenameDatabase(svc))
	r.Post("/database/save", HandleSaveDatabase(svc))
	r.Post("/database/reload", HandleReloadDatabase(svc))
	return r
}

// doRequest serves one request. body may be nil, a string or a value to
// encode as JSON.
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// ironRecipeJSON is the fixture recipe in its request form
const ironRecipeJSON = `{"inputs":{"iron":4},"outputs":{"iron_ingot":2}}`
