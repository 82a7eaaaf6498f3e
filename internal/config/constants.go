package config

import "time"

const (
	// Configuration file paths
	ConfigPathItems = "configs/items/items.json"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "custom-item-effects"
	DefaultVersion         = "dev"
	DefaultShutdownTimeout = 10 * time.Second
)

// Environment names checked by the validator
const (
	EnvironmentProduction = "prod"
)
