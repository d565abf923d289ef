package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONIndent is the indentation used for files written by SaveJSON.
const JSONIndent = "    "

// DefaultFileMode is applied to files SaveJSON creates. Existing files keep
// their permissions.
const DefaultFileMode os.FileMode = 0o644

// LoadJSON reads a JSON file and unmarshals it into the target interface.
// Errors wrap the underlying cause, so errors.Is(err, fs.ErrNotExist) and
// errors.As(err, **json.SyntaxError) still work.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// SaveJSON marshals the data with a four-space indent and writes it to path.
// The file is written to a temporary sibling first and renamed into place so
// a failed write never truncates an existing file.
func SaveJSON(path string, data interface{}) error {
	bytes, err := json.MarshalIndent(data, "", JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	bytes = append(bytes, '\n')

	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(bytes); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
