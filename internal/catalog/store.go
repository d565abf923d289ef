package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/validation"
)

// Store persists a whole database
type Store interface {
	Load(ctx context.Context) (*crafting.Database, error)
	Save(ctx context.Context, db *crafting.Database) error
	// Location names where the database lives, for logs and responses
	Location() string
	// Ping reports whether the store is reachable
	Ping(ctx context.Context) error
}

type fileStore struct {
	path      string
	validator validation.SchemaValidator
}

// NewFileStore stores the database as a JSON file at path. When validator is
// non-nil the file is schema-checked before it is decoded.
func NewFileStore(path string, validator validation.SchemaValidator) Store {
	return &fileStore{path: path, validator: validator}
}

func (s *fileStore) Location() string {
	return s.path
}

func (s *fileStore) Load(_ context.Context) (*crafting.Database, error) {
	if s.validator != nil {
		if err := s.validator.ValidateDatabaseFile(s.path); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgSchemaCheck, err)
		}
	}
	return crafting.Load(s.path)
}

func (s *fileStore) Save(_ context.Context, db *crafting.Database) error {
	return db.Save(s.path)
}

// Ping checks that the directory holding the file exists. The file itself
// may be missing until the first save.
func (s *fileStore) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgStoreUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %s is not a directory", ErrMsgStoreUnavailable, dir)
	}
	return nil
}
