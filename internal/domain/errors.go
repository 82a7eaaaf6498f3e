package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item definition errors
	ErrMsgInvalidCooldown = "cooldown out of range"
	ErrMsgUnknownMaterial = "unknown material"
	ErrMsgEmptyName       = "display name is empty"
	ErrMsgDuplicateItem   = "custom item already registered"
	ErrMsgItemNotFound    = "custom item not found"

	// Key errors
	ErrMsgInvalidKey = "invalid namespaced key"

	// Ability errors
	ErrMsgActorRequired      = "actor is required"
	ErrMsgUnknownAbility     = "unknown ability"
	ErrMsgAbilityRequired    = "ability is required"
	ErrMsgTargetRequired     = "ability requires a target"
	ErrMsgUnsupportedTarget  = "target does not support this ability"
	ErrMsgInvalidAbilityArgs = "invalid ability parameters"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidCooldown = errors.New(ErrMsgInvalidCooldown)
	ErrUnknownMaterial = errors.New(ErrMsgUnknownMaterial)
	ErrEmptyName       = errors.New(ErrMsgEmptyName)
	ErrDuplicateItem   = errors.New(ErrMsgDuplicateItem)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)

	ErrInvalidKey = errors.New(ErrMsgInvalidKey)

	ErrActorRequired      = errors.New(ErrMsgActorRequired)
	ErrUnknownAbility     = errors.New(ErrMsgUnknownAbility)
	ErrAbilityRequired    = errors.New(ErrMsgAbilityRequired)
	ErrTargetRequired     = errors.New(ErrMsgTargetRequired)
	ErrUnsupportedTarget  = errors.New(ErrMsgUnsupportedTarget)
	ErrInvalidAbilityArgs = errors.New(ErrMsgInvalidAbilityArgs)
)
