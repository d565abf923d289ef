package catalog

import (
	"errors"
	"time"
)

// Operation names, used as log messages and metric labels
const (
	OpAddItem      = "add_item"
	OpEditItem     = "edit_item"
	OpRemoveItem   = "remove_item"
	OpAddRecipe    = "add_recipe"
	OpEditRecipe   = "edit_recipe"
	OpRemoveRecipe = "remove_recipe"
	OpRename       = "rename"
)

// Cache defaults, used when Config leaves them unset
const (
	DefaultProfitCacheSize = 256
	DefaultProfitCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgOperationApplied  = "Catalog operation applied"
	LogMsgOperationRejected = "Catalog operation rejected"
	LogMsgAutosaveFailed    = "Autosave failed"
	LogMsgSaved             = "Database saved"
	LogMsgReloaded          = "Database reloaded"
	LogMsgCreatedEmpty      = "Database file not found, starting empty"
	LogMsgOpened            = "Database opened"
)

// Error messages
const (
	ErrMsgAutosaveFailed   = "autosave failed"
	ErrMsgSaveFailed       = "failed to save database"
	ErrMsgReloadFailed     = "failed to reload database"
	ErrMsgOpenFailed       = "failed to open database"
	ErrMsgSchemaCheck      = "database file failed schema check"
	ErrMsgStoreUnavailable = "database store unavailable"
	ErrMsgNilRecipe        = "recipe must not be nil"
	ErrMsgNilItem          = "item must not be nil"
)

// ErrAutosaveFailed wraps the store error when a mutation was applied in
// memory but could not be written back.
var ErrAutosaveFailed = errors.New(ErrMsgAutosaveFailed)
