package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/CustomItemEffects_Go/internal/cooldown"
	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// ItemsConfigPath points at the JSON item definitions
	ItemsConfigPath string

	// CooldownDevMode disables cooldown gating (uses are still recorded)
	CooldownDevMode bool

	// CooldownMaxTracked bounds actors remembered per item; 0 is unbounded
	CooldownMaxTracked int

	// IdentityKey is the attribute items are tagged under ("namespace:key")
	IdentityKey domain.NamespacedKey

	// APIKey guards the admin routes; when empty they refuse every request
	APIKey string

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:       getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:     getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", DefaultVersion),
		ItemsConfigPath: getEnv("ITEMS_CONFIG_PATH", ConfigPathItems),
		CooldownDevMode: getEnvAsBool("COOLDOWN_DEV_MODE", false),
		APIKey:          os.Getenv("API_KEY"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxTracked, err := strconv.Atoi(getEnv("COOLDOWN_MAX_TRACKED", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOLDOWN_MAX_TRACKED value: %w", err)
	}
	if maxTracked < 0 {
		return nil, fmt.Errorf("invalid COOLDOWN_MAX_TRACKED value: must not be negative, got %d", maxTracked)
	}
	cfg.CooldownMaxTracked = maxTracked

	key, err := parseIdentityKey(getEnv("IDENTITY_KEY", domain.IdentityKey.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid IDENTITY_KEY value: %w", err)
	}
	cfg.IdentityKey = key

	return cfg, nil
}

// parseIdentityKey reads a "namespace:key" pair
func parseIdentityKey(raw string) (domain.NamespacedKey, error) {
	namespace, key, ok := strings.Cut(raw, ":")
	if !ok {
		return domain.NamespacedKey{}, fmt.Errorf("%w: %q, expected namespace:key", domain.ErrInvalidKey, raw)
	}
	return domain.NewNamespacedKey(namespace, key)
}

// TagKey returns the configured identity key, or the default when unset
func (c *Config) TagKey() domain.NamespacedKey {
	if c.IdentityKey == (domain.NamespacedKey{}) {
		return domain.IdentityKey
	}
	return c.IdentityKey
}

// CooldownConfig returns the settings shared by every item's cooldown tracker
func (c *Config) CooldownConfig() cooldown.Config {
	return cooldown.Config{
		DevMode:    c.CooldownDevMode,
		MaxTracked: c.CooldownMaxTracked,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves a boolean environment variable or returns the default
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves a duration environment variable or returns the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
