package cooldown

import "time"

// Config holds cooldown tracking configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// MaxTracked caps the number of actors remembered per item.
	// Zero keeps every actor for the life of the process.
	MaxTracked int
}

// NewStore returns the store this configuration asks for. ttl is the item's
// cooldown; bounded stores drop entries once they can no longer gate a use.
func (c Config) NewStore(ttl time.Duration) Store {
	if c.MaxTracked > 0 {
		return NewLRUStore(c.MaxTracked, ttl)
	}
	return NewMemoryStore()
}
