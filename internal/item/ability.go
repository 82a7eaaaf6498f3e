package item

import (
	"context"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// Ability is the effect a custom item performs when used.
// target may be nil for abilities that only affect the actor.
// Returning an error leaves the actor's cooldown untouched.
type Ability interface {
	OnUse(ctx context.Context, actor, target domain.Actor) error
}

// AbilityFunc adapts a plain function to Ability
type AbilityFunc func(ctx context.Context, actor, target domain.Actor) error

// OnUse calls f
func (f AbilityFunc) OnUse(ctx context.Context, actor, target domain.Actor) error {
	return f(ctx, actor, target)
}

// AbilityFactory builds an ability from its configured name and parameters
type AbilityFactory func(name string, params map[string]float64) (Ability, error)
