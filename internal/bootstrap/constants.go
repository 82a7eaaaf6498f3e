package bootstrap

// Log messages for startup and shutdown
const (
	LogMsgLoadingItems         = "Loading custom items from JSON config..."
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgLoadItemsFailed = "failed to load custom items from %s: %w"
)
