package item_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/item"
)

const validItemsJSON = `{
  "version": "1.0",
  "items": [
    {
      "display_name": "&6Fireblade",
      "material": "diamond sword",
      "cooldown_seconds": 5,
      "lore": ["&7Burns what it touches"],
      "ability": {"name": "ignite", "params": {"seconds": 4}}
    },
    {
      "display_name": "&aMender",
      "material": "GOLDEN_APPLE",
      "cooldown_seconds": 30,
      "ability": {"name": "heal", "params": {"amount": 6}}
    }
  ]
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func stubFactory(name string, _ map[string]float64) (item.Ability, error) {
	if name == "unknown" {
		return nil, domain.ErrUnknownAbility
	}
	return noop(), nil
}

func TestLoader_Load(t *testing.T) {
	loader := item.NewLoader()

	cfg, err := loader.Load(writeConfig(t, validItemsJSON))
	require.NoError(t, err)
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "&6Fireblade", cfg.Items[0].DisplayName)
	assert.Equal(t, 4.0, cfg.Items[0].Ability.Params["seconds"])
	assert.NoError(t, loader.Validate(cfg))
}

func TestLoader_LoadErrors(t *testing.T) {
	loader := item.NewLoader()

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = loader.Load(writeConfig(t, `{"version": "1.0", "items": [{"display_name": "X"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	_, err = loader.Load(writeConfig(t, `{"version": "1.0", "items": [{"display_name": "X", "material": "STICK", "cooldown_seconds": -1, "ability": {"name": "strike"}}]}`))
	assert.Error(t, err, "negative cooldown is rejected by the schema")

	_, err = loader.Load(writeConfig(t, `{"version": "1.0", "items": [{"display_name": "X", "material": "STICK", "cooldown_seconds": 9223372037, "ability": {"name": "strike"}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed", "cooldown past the duration range is rejected by the schema")
}

func TestLoader_Validate(t *testing.T) {
	loader := item.NewLoader()
	def := func(name, material string) item.Def {
		return item.Def{DisplayName: name, Material: material, Ability: item.AbilityDef{Name: "strike"}}
	}

	tests := []struct {
		name    string
		config  *item.Config
		wantErr error
	}{
		{name: "nil", config: nil, wantErr: item.ErrInvalidConfig},
		{name: "empty", config: &item.Config{}, wantErr: item.ErrInvalidConfig},
		{
			name:    "unknown material",
			config:  &item.Config{Items: []item.Def{def("X", "SWORD")}},
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "missing ability name",
			config:  &item.Config{Items: []item.Def{{DisplayName: "X", Material: "STICK"}}},
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "negative cooldown",
			config:  &item.Config{Items: []item.Def{{DisplayName: "X", Material: "STICK", CooldownSeconds: -1, Ability: item.AbilityDef{Name: "strike"}}}},
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:    "cooldown past duration range",
			config:  &item.Config{Items: []item.Def{{DisplayName: "X", Material: "STICK", CooldownSeconds: int(domain.MaxCooldownSeconds) + 1, Ability: item.AbilityDef{Name: "strike"}}}},
			wantErr: item.ErrInvalidConfig,
		},
		{
			name:   "max cooldown",
			config: &item.Config{Items: []item.Def{{DisplayName: "X", Material: "STICK", CooldownSeconds: int(domain.MaxCooldownSeconds), Ability: item.AbilityDef{Name: "strike"}}}},
		},
		{
			name:    "duplicate after translation",
			config:  &item.Config{Items: []item.Def{def("&aX", "STICK"), def("§aX", "BLAZE_ROD")}},
			wantErr: item.ErrDuplicateDisplayName,
		},
		{
			name:   "valid",
			config: &item.Config{Items: []item.Def{def("&aX", "STICK"), def("&bX", "STICK")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_ValidateReportsField(t *testing.T) {
	err := item.NewLoader().Validate(&item.Config{Items: []item.Def{
		{DisplayName: "Wand", Material: "NOT_A_THING", Ability: item.AbilityDef{Name: "strike"}},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Material")
	assert.Contains(t, err.Error(), `"material"`)
}

func TestLoader_Build(t *testing.T) {
	loader := item.NewLoader()
	cfg, err := loader.Load(writeConfig(t, validItemsJSON))
	require.NoError(t, err)

	items, err := loader.Build(cfg, stubFactory)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "§6Fireblade", items[0].DisplayName())
	assert.Equal(t, domain.MaterialDiamondSword, items[0].Material())
	assert.Equal(t, int64(5000), items[0].CooldownMillis())
	assert.Equal(t, domain.MaterialGoldenApple, items[1].Material())

	cfg.Items[0].Ability.Name = "unknown"
	_, err = loader.Build(cfg, stubFactory)
	assert.ErrorIs(t, err, domain.ErrUnknownAbility)
}

func TestLoadItems(t *testing.T) {
	reg := item.NewRegistry(nil)
	require.NoError(t, item.LoadItems(context.Background(), writeConfig(t, validItemsJSON), stubFactory, reg))
	assert.Equal(t, 2, reg.Len())

	_, ok := reg.Get("§aMender")
	assert.True(t, ok)

	err := item.LoadItems(context.Background(), writeConfig(t, validItemsJSON), stubFactory, reg)
	assert.True(t, errors.Is(err, domain.ErrDuplicateItem))
}
