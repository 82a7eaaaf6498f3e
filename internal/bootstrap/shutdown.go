package bootstrap

import (
	"context"

	"github.com/osse101/CustomItemEffects_Go/internal/logger"
)

// Stopper is anything that drains in-flight work on shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, logging rather than returning errors
func GracefulShutdown(ctx context.Context, server Stopper) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDownServer)

	if err := server.Stop(ctx); err != nil {
		log.Error(LogMsgServerForcedShutdown, "error", err)
	}

	log.Info(LogMsgServerStopped)
}
