package domain

import (
	"math"
	"time"
)

// Persistent data constants
const (
	// PluginNamespace owns every key this module writes into item data
	PluginNamespace = "customitemeffects"

	// IdentityKeyName tags a stack as a custom item; the value is the item's display name
	IdentityKeyName = "customitem"
)

// Time conversion
const (
	MillisPerSecond = 1000

	// MaxCooldownSeconds is the longest cooldown that still fits in a time.Duration
	MaxCooldownSeconds = math.MaxInt64 / int64(time.Second)
)

// Ability names as they appear in item definition files
const (
	AbilityStrike = "strike"
	AbilityHeal   = "heal"
	AbilityIgnite = "ignite"
	AbilitySmite  = "smite"
)

// Game timing
const (
	// TicksPerSecond is the host simulation rate
	TicksPerSecond = 20
)
