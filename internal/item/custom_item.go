// Package item builds custom items: a display artifact stamped with an
// identity tag, and a per-actor cooldown gating the item's ability.
package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/osse101/CustomItemEffects_Go/internal/chatcolor"
	"github.com/osse101/CustomItemEffects_Go/internal/cooldown"
	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/itemstack"
	"github.com/osse101/CustomItemEffects_Go/internal/logger"
	"github.com/osse101/CustomItemEffects_Go/internal/metrics"
)

// Definition is the raw input for a custom item. DisplayName and Lore may
// contain ampersand color codes.
type Definition struct {
	DisplayName     string
	Material        domain.Material
	CooldownSeconds int
	Lore            []string
}

// CustomItem is an immutable item definition plus the mutable cooldown state
// of every actor that has used it.
type CustomItem struct {
	displayName string
	material    domain.Material
	lore        []string
	cooldownMs  int64
	identityKey domain.NamespacedKey

	ability  Ability
	tracker  *cooldown.Tracker
	artifact *itemstack.Stack
	log      *slog.Logger
}

type options struct {
	now         func() time.Time
	store       cooldown.Store
	cooldownCfg cooldown.Config
	devMode     bool
	identityKey domain.NamespacedKey
	log         *slog.Logger
}

// Option customizes a CustomItem
type Option func(*options)

// WithClock sets the time source for cooldowns
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStore sets the cooldown store, overriding the one chosen by WithCooldownConfig
func WithStore(store cooldown.Store) Option {
	return func(o *options) { o.store = store }
}

// WithCooldownConfig applies store bounds and dev mode. Dev mode is on when
// either this config or WithDevMode enables it, in any option order.
func WithCooldownConfig(cfg cooldown.Config) Option {
	return func(o *options) { o.cooldownCfg = cfg }
}

// WithDevMode bypasses cooldown gating; uses are still recorded
func WithDevMode(enabled bool) Option {
	return func(o *options) { o.devMode = enabled }
}

// WithIdentityKey replaces the attribute key used for the identity tag
func WithIdentityKey(key domain.NamespacedKey) Option {
	return func(o *options) { o.identityKey = key }
}

// WithLogger sets the logger used for construction diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New validates def, translates its display name, and builds the artifact.
// Cooldowns outside [0, domain.MaxCooldownSeconds] are rejected rather than clamped.
func New(def Definition, ability Ability, opts ...Option) (*CustomItem, error) {
	if ability == nil {
		return nil, domain.ErrAbilityRequired
	}
	if strings.TrimSpace(def.DisplayName) == "" {
		return nil, domain.ErrEmptyName
	}
	if !def.Material.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMaterial, def.Material)
	}
	if def.CooldownSeconds < 0 || int64(def.CooldownSeconds) > domain.MaxCooldownSeconds {
		return nil, fmt.Errorf(ErrFmtCooldownRange, domain.ErrInvalidCooldown, def.CooldownSeconds, domain.MaxCooldownSeconds)
	}

	o := options{
		now:         time.Now,
		identityKey: domain.IdentityKey,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &CustomItem{
		displayName: chatcolor.Translate(def.DisplayName),
		material:    def.Material,
		lore:        append([]string(nil), def.Lore...),
		cooldownMs:  int64(def.CooldownSeconds) * domain.MillisPerSecond,
		identityKey: o.identityKey,
		ability:     ability,
		log:         o.log,
	}

	store := o.store
	if store == nil {
		store = o.cooldownCfg.NewStore(c.Cooldown())
	}
	c.tracker = cooldown.NewTracker(c.PlainName(), c.Cooldown(),
		cooldown.WithStore(store),
		cooldown.WithClock(o.now),
		cooldown.WithDevMode(o.devMode || o.cooldownCfg.DevMode),
	)

	c.artifact = c.buildArtifact()
	return c, nil
}

// MustNew is New for package-level item singletons; it panics on error
func MustNew(def Definition, ability Ability, opts ...Option) *CustomItem {
	c, err := New(def, ability, opts...)
	if err != nil {
		panic(fmt.Sprintf("item.MustNew(%q): %v", def.DisplayName, err))
	}
	return c
}

// buildArtifact creates the single stack returned by Artifact. When the
// material cannot carry metadata the bare stack is returned untagged.
func (c *CustomItem) buildArtifact() *itemstack.Stack {
	stack := itemstack.New(c.material)

	meta, err := stack.ItemMeta()
	if err != nil {
		c.log.Warn(LogMsgMetadataUnavailable, "item", c.PlainName(), "material", c.material, "error", err)
		metrics.MetadataUnavailable.WithLabelValues(string(c.material)).Inc()
		return stack
	}

	meta.SetDisplayName(c.displayName)

	lore := make([]string, len(c.lore))
	for i, line := range c.lore {
		lore[i] = chatcolor.Translate(line)
	}
	meta.SetLore(lore)

	meta.PersistentData().Set(c.identityKey, c.displayName)

	if err := stack.SetItemMeta(meta); err != nil {
		c.log.Warn(LogMsgMetadataUnavailable, "item", c.PlainName(), "material", c.material, "error", err)
		metrics.MetadataUnavailable.WithLabelValues(string(c.material)).Inc()
		return stack
	}

	c.log.Debug(LogMsgItemBuilt, "item", c.PlainName(), "material", c.material, "cooldown_ms", c.cooldownMs)
	return stack
}

// DisplayName returns the translated display name, which is also the identity tag value
func (c *CustomItem) DisplayName() string {
	return c.displayName
}

// PlainName returns the display name without formatting codes
func (c *CustomItem) PlainName() string {
	return chatcolor.Strip(c.displayName)
}

// Material returns the item's material
func (c *CustomItem) Material() domain.Material {
	return c.material
}

// Lore returns the raw, untranslated lore lines
func (c *CustomItem) Lore() []string {
	return append([]string(nil), c.lore...)
}

// CooldownMillis returns the cooldown length in milliseconds
func (c *CustomItem) CooldownMillis() int64 {
	return c.cooldownMs
}

// Cooldown returns the cooldown length
func (c *CustomItem) Cooldown() time.Duration {
	return time.Duration(c.cooldownMs) * time.Millisecond
}

// IdentityKey returns the attribute key the identity tag is stored under
func (c *CustomItem) IdentityKey() domain.NamespacedKey {
	return c.identityKey
}

// Tagged reports whether the artifact carries the identity tag
func (c *CustomItem) Tagged() bool {
	_, ok := c.artifact.PersistentString(c.identityKey)
	return ok
}

// Artifact returns the stack built at construction. Every call returns the
// same pointer; callers must Clone it before handing it to an inventory.
func (c *CustomItem) Artifact() *itemstack.Stack {
	return c.artifact
}

// Matches reports whether stack carries this item's identity tag
func (c *CustomItem) Matches(stack *itemstack.Stack) bool {
	tag, ok := stack.PersistentString(c.identityKey)
	return ok && tag == c.displayName
}

// IsOnCooldown reports whether actor used the item less than the cooldown ago
func (c *CustomItem) IsOnCooldown(actor domain.Actor) bool {
	return c.tracker.IsOnCooldown(actor.UniqueID())
}

// RemainingCooldown returns how long until actor may use the item again
func (c *CustomItem) RemainingCooldown(actor domain.Actor) time.Duration {
	_, remaining := c.tracker.CheckCooldown(actor.UniqueID())
	return remaining
}

// ApplyCooldown records now as actor's last use
func (c *CustomItem) ApplyCooldown(actor domain.Actor) {
	c.tracker.ApplyCooldown(actor.UniqueID())
}

// ResetCooldown forgets actor's last use
func (c *CustomItem) ResetCooldown(actor domain.Actor) {
	c.tracker.ResetCooldown(actor.UniqueID())
}

// LastUsed returns when actor last used the item
func (c *CustomItem) LastUsed(actor domain.Actor) (time.Time, bool) {
	return c.tracker.GetLastUsed(actor.UniqueID())
}

// TrackedActors returns how many actors have a recorded use
func (c *CustomItem) TrackedActors() int {
	return c.tracker.Tracked()
}

// OnUse checks actor's cooldown, runs the ability, and starts the cooldown
// only if the ability succeeded. A gated use returns cooldown.ErrOnCooldown.
func (c *CustomItem) OnUse(ctx context.Context, actor, target domain.Actor) error {
	if actor == nil {
		return domain.ErrActorRequired
	}
	log := logger.FromContext(ctx)
	name := c.PlainName()

	err := c.tracker.EnforceCooldown(ctx, actor.UniqueID(), func() error {
		return c.ability.OnUse(ctx, actor, target)
	})

	switch {
	case err == nil:
		metrics.ItemUses.WithLabelValues(name).Inc()
		log.Info(LogMsgItemUsed, "item", name, "actor", actor.Name(), "target", targetName(target))
	case errors.Is(err, cooldown.ErrOnCooldown{}):
		log.Debug(LogMsgItemOnCooldown, "item", name, "actor", actor.Name(), "remaining", c.RemainingCooldown(actor))
	default:
		metrics.ItemEffectFailures.WithLabelValues(name).Inc()
		log.Warn(LogMsgItemEffectFailed, "item", name, "actor", actor.Name(), "error", err)
	}
	return err
}

func targetName(target domain.Actor) string {
	if target == nil {
		return ""
	}
	return target.Name()
}
