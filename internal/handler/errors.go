package handler

// Client-facing error messages. None of them carry internal error details.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgEmptyBody             = "Request body is required"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Item error messages
	ErrMsgGetItemFailed    = "Failed to get item"
	ErrMsgAddItemFailed    = "Failed to add item"
	ErrMsgEditItemFailed   = "Failed to edit item"
	ErrMsgRemoveItemFailed = "Failed to remove item"
	ErrMsgNothingToEdit    = "At least one of name or sell_value must be given"

	// Recipe error messages
	ErrMsgAddRecipeFailed    = "Failed to add recipe"
	ErrMsgEditRecipeFailed   = "Failed to edit recipe"
	ErrMsgRemoveRecipeFailed = "Failed to remove recipe"

	// Database error messages
	ErrMsgRenameFailed = "Failed to rename database"
	ErrMsgSaveFailed   = "Failed to save database"
	ErrMsgReloadFailed = "Failed to reload database"

	// Returned alongside a change that was applied but not written to disk
	WarnMsgAutosaveFailed = "Change applied but autosave failed"
)

// Success messages for API responses
const (
	MsgDatabaseSaved    = "Database saved"
	MsgDatabaseReloaded = "Database reloaded"
	MsgDatabaseRenamed  = "Database renamed"
)
