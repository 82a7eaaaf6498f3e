// Package ability holds the effects custom items can perform.
package ability

import (
	"context"
	"fmt"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/item"
	"github.com/osse101/CustomItemEffects_Go/internal/logger"
)

// Strike damages the target
type Strike struct {
	Damage float64
}

func (s Strike) OnUse(ctx context.Context, _, target domain.Actor) error {
	victim, err := damageable(target)
	if err != nil {
		return err
	}
	victim.Damage(s.Damage)
	logger.FromContext(ctx).Debug("Strike applied", "target", target.Name(), "damage", s.Damage)
	return nil
}

// Heal restores the user's own health
type Heal struct {
	Amount float64
}

func (h Heal) OnUse(ctx context.Context, actor, _ domain.Actor) error {
	healable, ok := actor.(domain.Healable)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedTarget, actor.Name())
	}
	healable.Heal(h.Amount)
	notify(actor, MsgHealed)
	logger.FromContext(ctx).Debug("Heal applied", "actor", actor.Name(), "amount", h.Amount)
	return nil
}

// Ignite sets the target on fire
type Ignite struct {
	Seconds float64
}

func (i Ignite) OnUse(ctx context.Context, actor, target domain.Actor) error {
	burning, err := ignitable(target)
	if err != nil {
		return err
	}
	burning.SetFireTicks(fireTicks(i.Seconds))
	notify(actor, fmt.Sprintf(MsgTargetIgnite, target.Name()))
	logger.FromContext(ctx).Debug("Ignite applied", "target", target.Name(), "seconds", i.Seconds)
	return nil
}

// Smite damages and ignites the target, telling both sides
type Smite struct {
	Damage  float64
	Seconds float64
}

func (s Smite) OnUse(ctx context.Context, actor, target domain.Actor) error {
	victim, err := damageable(target)
	if err != nil {
		return err
	}
	burning, err := ignitable(target)
	if err != nil {
		return err
	}

	victim.Damage(s.Damage)
	burning.SetFireTicks(fireTicks(s.Seconds))

	notify(actor, fmt.Sprintf(MsgSmiteCaster, target.Name()))
	notify(target, fmt.Sprintf(MsgSmiteVictim, actor.Name()))
	logger.FromContext(ctx).Debug("Smite applied", "target", target.Name(), "damage", s.Damage, "seconds", s.Seconds)
	return nil
}

var (
	_ item.Ability = Strike{}
	_ item.Ability = Heal{}
	_ item.Ability = Ignite{}
	_ item.Ability = Smite{}
)

func damageable(target domain.Actor) (domain.Damageable, error) {
	if target == nil {
		return nil, domain.ErrTargetRequired
	}
	d, ok := target.(domain.Damageable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedTarget, target.Name())
	}
	return d, nil
}

func ignitable(target domain.Actor) (domain.Ignitable, error) {
	if target == nil {
		return nil, domain.ErrTargetRequired
	}
	i, ok := target.(domain.Ignitable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedTarget, target.Name())
	}
	return i, nil
}

func notify(a domain.Actor, message string) {
	if m, ok := a.(domain.Messenger); ok {
		m.SendMessage(message)
	}
}

func fireTicks(seconds float64) int {
	return int(seconds * domain.TicksPerSecond)
}
