package domain

import "github.com/google/uuid"

// Actor is a player entity supplied by the host game.
// UniqueID must be stable for the lifetime of the process.
type Actor interface {
	UniqueID() uuid.UUID
	Name() string
}

// Damageable is an actor that can take damage from an item effect
type Damageable interface {
	Actor
	Damage(amount float64)
}

// Healable is an actor whose health can be restored by an item effect
type Healable interface {
	Actor
	Heal(amount float64)
}

// Ignitable is an actor that can be set on fire for a number of game ticks
type Ignitable interface {
	Actor
	SetFireTicks(ticks int)
}

// Messenger receives chat feedback from item effects
type Messenger interface {
	SendMessage(message string)
}
