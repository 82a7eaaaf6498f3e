package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CustomItemEffects_Go/internal/logger"
	"github.com/osse101/CustomItemEffects_Go/internal/metrics"
)

// Tracker implements Service for a single item definition.
// All timestamps are epoch milliseconds taken from the injected clock.
type Tracker struct {
	action     string
	durationMs int64
	store      Store
	now        func() time.Time
	devMode    bool
	locks      [LockStripes]sync.Mutex
}

// Option customizes a Tracker
type Option func(*Tracker)

// WithStore replaces the default unbounded store
func WithStore(store Store) Option {
	return func(t *Tracker) {
		if store != nil {
			t.store = store
		}
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithDevMode bypasses gating while still stamping uses
func WithDevMode(enabled bool) Option {
	return func(t *Tracker) {
		t.devMode = enabled
	}
}

// NewTracker creates a tracker for action with the given cooldown.
// Sub-millisecond precision in duration is dropped.
func NewTracker(action string, duration time.Duration, opts ...Option) *Tracker {
	t := &Tracker{
		action:     action,
		durationMs: duration.Milliseconds(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.store == nil {
		t.store = NewMemoryStore()
	}
	return t
}

var _ Service = (*Tracker)(nil)

// Action returns the name used in errors and metrics
func (t *Tracker) Action() string {
	return t.action
}

// DurationMillis returns the cooldown length in milliseconds
func (t *Tracker) DurationMillis() int64 {
	return t.durationMs
}

// Tracked returns how many actors the store currently remembers
func (t *Tracker) Tracked() int {
	return t.store.Len()
}

// IsOnCooldown is CheckCooldown without the remaining time
func (t *Tracker) IsOnCooldown(actorID uuid.UUID) bool {
	onCooldown, _ := t.CheckCooldown(actorID)
	return onCooldown
}

// CheckCooldown checks if the actor is on cooldown (unlocked read)
func (t *Tracker) CheckCooldown(actorID uuid.UUID) (bool, time.Duration) {
	// Dev mode bypasses all cooldowns
	if t.devMode {
		return false, 0
	}

	lastUsed, ok := t.store.LastUsed(actorID)
	if !ok {
		// Never used - not on cooldown
		return false, 0
	}

	return t.checkCooldownInternal(t.now().UnixMilli(), lastUsed)
}

// EnforceCooldown runs fn only when the actor is off cooldown and stamps the
// cooldown when fn returns nil. fn must not call EnforceCooldown on the same
// tracker for the same actor.
func (t *Tracker) EnforceCooldown(ctx context.Context, actorID uuid.UUID, fn func() error) error {
	log := logger.FromContext(ctx)

	// PHASE 1: Cheap unlocked check - fast rejection
	if onCooldown, remaining := t.CheckCooldown(actorID); onCooldown {
		metrics.CooldownRejections.WithLabelValues(t.action).Inc()
		return ErrOnCooldown{Action: t.action, Remaining: remaining}
	}

	// PHASE 2: Recheck under the actor's stripe lock
	mu := &t.locks[lockIndex(actorID, t.action)]
	mu.Lock()
	defer mu.Unlock()

	if t.devMode {
		log.Debug(LogMsgDevModeBypass, "action", t.action, "actorID", actorID)
	} else if onCooldown, remaining := t.CheckCooldown(actorID); onCooldown {
		log.Debug(LogMsgRaceConditionDetected,
			"action", t.action, "actorID", actorID, "remaining", remaining)
		metrics.CooldownRejections.WithLabelValues(t.action).Inc()
		return ErrOnCooldown{Action: t.action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		// Action failed - don't update cooldown
		log.Debug(LogMsgActionFailed, "action", t.action, "actorID", actorID, "error", err)
		return err
	}

	t.ApplyCooldown(actorID)

	log.Debug(LogMsgCooldownEnforced, "action", t.action, "actorID", actorID)
	return nil
}

// ApplyCooldown records the current time as the actor's last use
func (t *Tracker) ApplyCooldown(actorID uuid.UUID) {
	t.store.Record(actorID, t.now().UnixMilli())
}

// ResetCooldown manually resets a cooldown
func (t *Tracker) ResetCooldown(actorID uuid.UUID) {
	t.store.Remove(actorID)
}

// GetLastUsed returns when the actor last used the ability
func (t *Tracker) GetLastUsed(actorID uuid.UUID) (time.Time, bool) {
	lastUsed, ok := t.store.LastUsed(actorID)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(lastUsed), true
}

// checkCooldownInternal is the whole rule: on cooldown iff now-lastUsed < duration
func (t *Tracker) checkCooldownInternal(nowMs, lastUsedMs int64) (bool, time.Duration) {
	elapsed := nowMs - lastUsedMs
	if elapsed < t.durationMs {
		return true, time.Duration(t.durationMs-elapsed) * time.Millisecond
	}
	return false, 0
}

// hashUserAction creates a consistent int64 hash from actorID + action
func hashUserAction(actorID, action string) int64 {
	h := sha256.Sum256([]byte(actorID + HashSeparator + action))
	// Use first 8 bytes as int64, masking MSB to ensure positive value
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

func lockIndex(actorID uuid.UUID, action string) int {
	return int(hashUserAction(actorID.String(), action) % LockStripes)
}
