// Package bootstrap wires configuration into the running components.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/CustomItemEffects_Go/internal/ability"
	"github.com/osse101/CustomItemEffects_Go/internal/config"
	"github.com/osse101/CustomItemEffects_Go/internal/item"
	"github.com/osse101/CustomItemEffects_Go/internal/logger"
)

// LoadItems loads, validates and builds the configured items into a new registry.
// Every item shares the cooldown settings and identity key from cfg.
func LoadItems(ctx context.Context, cfg *config.Config, opts ...item.Option) (*item.Registry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLoadingItems, "path", cfg.ItemsConfigPath, "identity_key", cfg.TagKey())

	registry := item.NewRegistry(log, item.WithTagKey(cfg.TagKey()))
	opts = append([]item.Option{
		item.WithCooldownConfig(cfg.CooldownConfig()),
		item.WithIdentityKey(cfg.TagKey()),
		item.WithLogger(log),
	}, opts...)

	if err := item.LoadItems(ctx, cfg.ItemsConfigPath, ability.Build, registry, opts...); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadItemsFailed, cfg.ItemsConfigPath, err)
	}
	return registry, nil
}
