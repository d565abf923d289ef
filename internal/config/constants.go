package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvAPIKey           = "API_KEY"
	EnvDatabaseFile     = "DATABASE_FILE"
	EnvDatabaseName     = "DATABASE_NAME"
	EnvAutosave         = "AUTOSAVE"
	EnvStrictLoad       = "STRICT_LOAD"
	EnvProfitCacheSize  = "PROFIT_CACHE_SIZE"
	EnvProfitCacheTTL   = "PROFIT_CACHE_TTL"
	EnvEnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvLogDir           = "LOG_DIR"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "craftdb"
	DefaultVersion         = "dev"
	DefaultDatabaseName    = "Unnamed Database"
	DefaultDatabaseFile    = DefaultDatabaseName + ".json"
	DefaultProfitCacheSize = 256
	DefaultProfitCacheTTL  = 5 * time.Minute
)

// Example values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
