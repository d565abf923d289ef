package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDatabase = `{
    "name": "TestDB",
    "items": {
        "iron": {"id": "iron", "name": "Iron", "sell_value": 10},
        "iron_ingot": {"id": "iron_ingot", "name": "Iron Ingot", "sell_value": 20}
    },
    "recipes": [
        {"inputs": {"iron": 4}, "outputs": {"iron_ingot": 2}, "type": "CRAFT", "time": 5.0},
        {"inputs": {"iron": 1}, "outputs": {"iron_ingot": 1}}
    ]
}`

func TestSchemaValidator_ValidateDatabase(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid database", data: validDatabase},
		{name: "empty database", data: `{"name": "x", "items": {}, "recipes": []}`},
		{name: "missing recipes", data: `{"name": "x", "items": {}}`, errorMsg: "required"},
		{name: "negative sell value", data: `{"name": "x", "items": {"a": {"id": "a", "name": "A", "sell_value": -1}}, "recipes": []}`, errorMsg: "/items/a/sell_value"},
		{name: "fractional quantity", data: `{"name": "x", "items": {}, "recipes": [{"inputs": {"a": 1.5}, "outputs": {}}]}`, errorMsg: "/recipes/0/inputs/a"},
		{name: "zero quantity", data: `{"name": "x", "items": {}, "recipes": [{"inputs": {"a": 0}, "outputs": {}}]}`, errorMsg: "exclusiveMinimum"},
		{name: "inputs not an object", data: `{"name": "x", "items": {}, "recipes": [{"inputs": [], "outputs": {}}]}`, errorMsg: "/recipes/0/inputs"},
		{name: "negative time", data: `{"name": "x", "items": {}, "recipes": [{"inputs": {}, "outputs": {}, "time": -2}]}`, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "x", "items": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDatabase([]byte(tt.data))
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateDatabaseFile(t *testing.T) {
	validator := NewSchemaValidator()
	dir := t.TempDir()

	path := filepath.Join(dir, "db.json")
	require.NoError(t, os.WriteFile(path, []byte(validDatabase), 0644))
	assert.NoError(t, validator.ValidateDatabaseFile(path))

	err := validator.ValidateDatabaseFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_ExternalSchemaFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := filepath.Join(tmpDir, "item.schema.json")
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"sell_value": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaContent), 0644))

	assert.NoError(t, validator.ValidateBytes([]byte(`{"name": "Iron", "sell_value": 3}`), schemaPath))

	err := validator.ValidateBytes([]byte(`{"sell_value": 3}`), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	err = validator.ValidateBytes([]byte(`{"name": "Iron", "sell_value": "three"}`), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sell_value")
}

func TestSchemaValidator_MissingSchemaFile(t *testing.T) {
	validator := NewSchemaValidator()

	err := validator.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.ValidateDatabase([]byte(validDatabase)))
	assert.Len(t, v.schemas, 1)

	require.NoError(t, v.ValidateDatabase([]byte(validDatabase)))
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ExampleDatabase(t *testing.T) {
	assert.NoError(t, NewSchemaValidator().ValidateDatabaseFile(filepath.Join("..", "..", "configs", "example_database.json")))
}
