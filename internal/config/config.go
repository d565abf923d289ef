package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrAPIKeyMissing is returned by RequireAPIKey when no key is configured
var ErrAPIKeyMissing = errors.New("API_KEY environment variable must be set for security")

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string // session log files are written here when set
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication

	// TrustedProxies are the peer addresses whose X-Forwarded-For is believed
	TrustedProxies []string

	// Database file handling
	DatabaseFile string
	DatabaseName string // used when DatabaseFile does not exist yet
	Autosave     bool   // save after every successful mutation
	StrictLoad   bool   // schema-check the file before loading

	// Profit cache
	ProfitCacheSize int
	ProfitCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		APIKey:          getEnv(EnvAPIKey, ""),
		DatabaseFile:    getEnv(EnvDatabaseFile, DefaultDatabaseFile),
		DatabaseName:    getEnv(EnvDatabaseName, DefaultDatabaseName),
		Autosave:        getEnvAsBool(EnvAutosave, false),
		StrictLoad:      getEnvAsBool(EnvStrictLoad, false),
		ProfitCacheSize: getEnvAsInt(EnvProfitCacheSize, DefaultProfitCacheSize),
		ProfitCacheTTL:  getEnvAsDuration(EnvProfitCacheTTL, DefaultProfitCacheTTL),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),
		LogDir:          getEnv(EnvLogDir, ""),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DatabaseFile == "" {
		return nil, fmt.Errorf("%s must not be empty", EnvDatabaseFile)
	}
	if cfg.ProfitCacheSize <= 0 {
		return nil, fmt.Errorf("invalid %s value: %d", EnvProfitCacheSize, cfg.ProfitCacheSize)
	}

	return cfg, nil
}

// RequireAPIKey fails unless an API key is configured. The HTTP server
// refuses to start without one; the CLI does not need it.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	return nil
}

// IsDevelopment reports whether the environment is a dev one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
