package cooldown

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Service tracks when each actor last used one item's ability
type Service interface {
	// CheckCooldown reports whether the actor is gated and for how long
	CheckCooldown(actorID uuid.UUID) (bool, time.Duration)

	// EnforceCooldown atomically checks the cooldown, runs fn, and stamps the
	// cooldown only when fn succeeds
	EnforceCooldown(ctx context.Context, actorID uuid.UUID, fn func() error) error

	// ApplyCooldown stamps the current time for the actor
	ApplyCooldown(actorID uuid.UUID)

	// ResetCooldown forgets the actor's last use (admin/testing)
	ResetCooldown(actorID uuid.UUID)

	// GetLastUsed returns when the actor last used the ability (for UI display)
	GetLastUsed(actorID uuid.UUID) (time.Time, bool)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	total := int(math.Ceil(e.Remaining.Seconds()))
	minutes := total / SecondsPerMinute
	seconds := total % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}
