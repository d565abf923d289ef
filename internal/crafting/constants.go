package crafting

// DefaultName is the name given to a database created without one.
const DefaultName = "Unnamed Database"

// FileExtension is appended to the database name to form the default filename.
const FileExtension = ".json"

// ==================== Result Messages ====================

// Item operation messages
const (
	MsgItemAdded          = "Item successfully added"
	MsgItemEdited         = "Item successfully edited"
	MsgItemRemoved        = "Item successfully removed"
	MsgItemExists         = "Item already exists"
	MsgFmtItemNotFound    = "Item '%s' not found"
	MsgFmtItemRemovedWith = "Item successfully removed (%d recipe(s) removed)"
	MsgFmtItemReferenced  = "Item '%s' is used by %d recipe(s); remove with cascade to delete them as well"
	MsgFmtNegativeValue   = "Sell value for '%s' must not be negative, got %d"
)

// Recipe operation messages
const (
	MsgRecipeAdded         = "Recipe successfully added"
	MsgRecipeEdited        = "Recipe successfully edited"
	MsgRecipeRemoved       = "Recipe successfully removed"
	MsgRecipeExists        = "Recipe already exists"
	MsgRecipeNotFound      = "Recipe not found"
	MsgFmtUnknownInput     = "Unknown input item '%s'. Add it before adding the recipe."
	MsgFmtUnknownOutput    = "Unknown output item '%s'. Add it before adding the recipe."
	MsgProfitNotComputable = "N/A"
)

// ==================== Error Messages ====================

// Construction error messages
const (
	ErrMsgNilItem        = "items must contain Item objects, got nil"
	ErrFmtKeyMismatch    = "dictionary key '%s' does not match Item.id '%s'"
	ErrFmtNilRecipe      = "recipes must contain Recipe objects, got nil at index %d"
	ErrMsgItemsMissing   = "items must be a mapping of item_id -> item"
	ErrMsgRecipesMissing = "recipes must be a list of recipes"
	ErrFmtItemRecord     = "item '%s': %w"
	ErrFmtRecipeRecord   = "recipe at index %d: %w"
)
