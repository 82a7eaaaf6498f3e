package cooldown_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CustomItemEffects_Go/internal/cooldown"
)

// TestErrOnCooldown_Error tests the error message formatting
func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		name string
		err  cooldown.ErrOnCooldown
		want string
	}{
		{
			name: "minutes and seconds",
			err:  cooldown.ErrOnCooldown{Action: "Fireblade", Remaining: 2*time.Minute + 30*time.Second},
			want: fmt.Sprintf(cooldown.ErrFmtCooldownWithMinutes, "Fireblade", 2, 30),
		},
		{
			name: "seconds only",
			err:  cooldown.ErrOnCooldown{Action: "Frostbrand", Remaining: 45 * time.Second},
			want: fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "Frostbrand", 45),
		},
		{
			name: "partial second rounds up",
			err:  cooldown.ErrOnCooldown{Action: "heal", Remaining: 200 * time.Millisecond},
			want: fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "heal", 1),
		},
		{
			name: "rounding carries into minutes",
			err:  cooldown.ErrOnCooldown{Action: "smite", Remaining: 59*time.Second + 500*time.Millisecond},
			want: fmt.Sprintf(cooldown.ErrFmtCooldownWithMinutes, "smite", 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

// TestErrOnCooldown_Is tests the errors.Is() compatibility
func TestErrOnCooldown_Is(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "test", Remaining: time.Minute}

	// Should match another ErrOnCooldown
	assert.True(t, errors.Is(err, cooldown.ErrOnCooldown{}))

	// Should match through wrapping
	assert.True(t, errors.Is(fmt.Errorf("dispatch: %w", err), cooldown.ErrOnCooldown{}))

	// Should not match other errors
	assert.False(t, errors.Is(err, errors.New("other error")))
}

func TestErrOnCooldown_ZeroRemaining(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "magic", Remaining: 0}
	assert.Equal(t, fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "magic", 0), err.Error())
}
