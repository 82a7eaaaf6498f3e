package cooldown

import "time"

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// NoCooldown disables gating entirely: strict comparison against zero never holds
	NoCooldown time.Duration = 0
)

// =============================================================================
// Lock Constants
// =============================================================================

const (
	// LockStripes is the number of mutexes an Enforce call may pick from
	LockStripes = 64

	// HashSeparator is the separator used when combining actor ID and action for lock hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 masks the MSB so lock keys are always positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgRaceConditionDetected is logged when a concurrent use stamped the cooldown first
	LogMsgRaceConditionDetected = "Race condition detected - concurrent use on cooldown"

	// LogMsgCooldownEnforced is logged when an action ran and its cooldown was stamped
	LogMsgCooldownEnforced = "Cooldown enforced successfully"

	// LogMsgActionFailed is logged when the gated action fails and no cooldown is stamped
	LogMsgActionFailed = "Action failed - cooldown not consumed"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
