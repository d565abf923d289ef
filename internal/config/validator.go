package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 16

// RequiredEnvVars must be set before the server starts
var RequiredEnvVars = []string{
	EnvEnvSchemaVersion,
	EnvAPIKey,
	EnvDatabaseFile,
}

// envWarning inspects one variable and returns a warning, or "" when fine
type envWarning struct {
	name  string
	check func(value string) string
}

var envWarnings = []envWarning{
	{EnvAPIKey, func(v string) string {
		switch {
		case v == ExampleAPIKey:
			return "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
		case len(v) < MinAPIKeyLength:
			return fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength)
		}
		return ""
	}},
	{EnvDatabaseFile, func(v string) string {
		if ext := filepath.Ext(v); !strings.EqualFold(ext, ".json") {
			return fmt.Sprintf("DATABASE_FILE has extension %q - database files are JSON and usually end in .json", ext)
		}
		return ""
	}},
}

// ValidateEnv reports every missing required variable and a schema version
// mismatch in one joined error
func ValidateEnv() error {
	var errs []error

	switch version := os.Getenv(EnvEnvSchemaVersion); version {
	case ExpectedEnvSchemaVersion:
	case "":
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion))
	default:
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, version))
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if name != EnvEnvSchemaVersion && os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and then the non-fatal checks
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if msg := w.check(os.Getenv(w.name)); msg != "" {
			warnings = append(warnings, msg)
		}
	}
	return warnings, nil
}
