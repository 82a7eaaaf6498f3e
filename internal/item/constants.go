package item

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for detailed errors
const (
	ErrFmtItemFieldInvalid   = "%w: item at index %d (%q): field %s failed %q"
	ErrFmtDuplicateName      = "%w: %q"
	ErrFmtBuildItemFailed    = "failed to build item %q: %w"
	ErrFmtBuildAbilityFailed = "failed to build ability %q for item %q: %w"
	ErrFmtCooldownRange      = "%w: %d seconds, must be between 0 and %d"
	ErrFmtKeyMismatch        = "%w: item %q is tagged under %s, registry reads %s"
)

// ==================== Log Messages ====================

const (
	LogMsgMetadataUnavailable = "Item meta is unavailable when creating item, identity tag skipped"
	LogMsgItemBuilt           = "Custom item built"
	LogMsgItemUsed            = "Custom item used"
	LogMsgItemOnCooldown      = "Custom item on cooldown"
	LogMsgItemEffectFailed    = "Custom item effect failed"
	LogMsgItemRegistered      = "Custom item registered"
	LogMsgItemUntagged        = "Registered item has no identity tag and will never match a stack"
	LogMsgItemsLoaded         = "Custom items loaded"
)
