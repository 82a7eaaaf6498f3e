package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomItemEffects_Go/internal/cooldown"
	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/item"
	"github.com/osse101/CustomItemEffects_Go/internal/itemstack"
	"github.com/osse101/CustomItemEffects_Go/internal/testing/fakes"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := item.NewRegistry(nil)
	fb := fireblade(t, noop())

	require.NoError(t, reg.Register(fb))
	assert.Equal(t, 1, reg.Len())

	got, ok := reg.Get("§6Fireblade")
	require.True(t, ok)
	assert.Same(t, fb, got)

	_, ok = reg.Get("&6Fireblade")
	assert.False(t, ok, "lookups use the translated name")
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := item.NewRegistry(nil)
	require.NoError(t, reg.Register(fireblade(t, noop())))

	err := reg.Register(fireblade(t, noop()))
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Match(t *testing.T) {
	reg := item.NewRegistry(nil)
	fb := fireblade(t, noop())
	require.NoError(t, reg.Register(fb))

	// A copy handed to a player still carries the tag
	got, ok := reg.Match(fb.Artifact().Clone())
	require.True(t, ok)
	assert.Same(t, fb, got)

	// Same material and name but no tag: not a custom item
	plain := itemstack.New(domain.MaterialDiamondSword)
	meta, err := plain.ItemMeta()
	require.NoError(t, err)
	meta.SetDisplayName("§6Fireblade")
	require.NoError(t, plain.SetItemMeta(meta))
	_, ok = reg.Match(plain)
	assert.False(t, ok)

	_, ok = reg.Match(nil)
	assert.False(t, ok)
}

func TestRegistry_Dispatch(t *testing.T) {
	ctx := context.Background()
	clock := fakes.NewClock()
	ability := new(item.MockAbility)
	fb := fireblade(t, ability, item.WithClock(clock.Now))
	reg := item.NewRegistry(nil)
	require.NoError(t, reg.Register(fb))

	player := fakes.NewPlayer("Steve")
	ability.On("OnUse", mock.Anything, player, nil).Return(nil).Once()

	require.NoError(t, reg.Dispatch(ctx, fb.Artifact(), player, nil))
	assert.ErrorIs(t, reg.Dispatch(ctx, fb.Artifact(), player, nil), cooldown.ErrOnCooldown{})

	err := reg.Dispatch(ctx, itemstack.New(domain.MaterialStick), player, nil)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	ability.AssertExpectations(t)
}

func TestRegistry_ItemsSortedAndUnregister(t *testing.T) {
	reg := item.NewRegistry(nil)
	for _, name := range []string{"&cZephyr", "&aAnvil", "Mallet"} {
		ci, err := item.New(item.Definition{DisplayName: name, Material: domain.MaterialStick}, noop())
		require.NoError(t, err)
		require.NoError(t, reg.Register(ci))
	}

	var names []string
	for _, ci := range reg.Items() {
		names = append(names, ci.PlainName())
	}
	assert.Equal(t, []string{"Anvil", "Mallet", "Zephyr"}, names)

	assert.True(t, reg.Unregister("§aAnvil"))
	assert.False(t, reg.Unregister("§aAnvil"))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_RegistersUntaggedItem(t *testing.T) {
	reg := item.NewRegistry(nil)
	ghost, err := item.New(item.Definition{DisplayName: "Ghost", Material: domain.MaterialAir}, noop())
	require.NoError(t, err)

	require.NoError(t, reg.Register(ghost))
	_, ok := reg.Match(ghost.Artifact())
	assert.False(t, ok)
}

func TestRegistry_RejectsItemTaggedUnderOtherKey(t *testing.T) {
	key, err := domain.NewNamespacedKey("otherplugin", "marker")
	require.NoError(t, err)
	fb := fireblade(t, noop(), item.WithIdentityKey(key))

	reg := item.NewRegistry(nil)
	err = reg.Register(fb)
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
	assert.Zero(t, reg.Len())
}

func TestRegistry_WithTagKey(t *testing.T) {
	key, err := domain.NewNamespacedKey("otherplugin", "marker")
	require.NoError(t, err)

	reg := item.NewRegistry(nil, item.WithTagKey(key))
	assert.Equal(t, key, reg.TagKey())

	fb := fireblade(t, noop(), item.WithIdentityKey(key))
	require.NoError(t, reg.Register(fb))

	got, ok := reg.Match(fb.Artifact().Clone())
	require.True(t, ok)
	assert.Same(t, fb, got)

	assert.ErrorIs(t, reg.Register(fireblade(t, noop())), domain.ErrInvalidKey, "default-keyed item does not fit this registry")
}

func TestRegistry_Lookup(t *testing.T) {
	reg := item.NewRegistry(nil)
	fb := fireblade(t, noop())
	require.NoError(t, reg.Register(fb))

	for _, name := range []string{"§6Fireblade", "Fireblade", "fireblade"} {
		got, ok := reg.Lookup(name)
		require.True(t, ok, name)
		assert.Same(t, fb, got)
	}
	_, ok := reg.Lookup("Frostblade")
	assert.False(t, ok)
}

func TestRegistry_CheckHealth(t *testing.T) {
	reg := item.NewRegistry(nil)
	assert.ErrorIs(t, reg.CheckHealth(context.Background()), domain.ErrItemNotFound)

	require.NoError(t, reg.Register(fireblade(t, noop())))
	assert.NoError(t, reg.CheckHealth(context.Background()))
}
