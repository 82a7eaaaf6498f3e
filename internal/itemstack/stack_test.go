package itemstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

func TestStack_ItemMetaUnavailable(t *testing.T) {
	for _, m := range []domain.Material{domain.MaterialAir, domain.MaterialWater, domain.Material("BOGUS")} {
		t.Run(string(m), func(t *testing.T) {
			s := New(m)
			meta, err := s.ItemMeta()
			assert.Nil(t, meta)
			assert.ErrorIs(t, err, ErrMetadataUnavailable)
			assert.ErrorIs(t, s.SetItemMeta(&Meta{}), ErrMetadataUnavailable)
		})
	}
}

func TestStack_MetaIsDetached(t *testing.T) {
	s := New(domain.MaterialDiamondSword)
	assert.False(t, s.HasItemMeta())

	meta, err := s.ItemMeta()
	require.NoError(t, err)
	meta.SetDisplayName("§6Fireblade")
	meta.SetLore([]string{"§7A blazing sword"})
	meta.PersistentData().Set(domain.IdentityKey, "§6Fireblade")

	// Not stored until SetItemMeta
	again, err := s.ItemMeta()
	require.NoError(t, err)
	assert.False(t, again.HasDisplayName())

	require.NoError(t, s.SetItemMeta(meta))
	assert.True(t, s.HasItemMeta())

	// Mutating the caller's copy after storing does not leak into the stack
	meta.SetDisplayName("changed")
	meta.PersistentData().Set(domain.IdentityKey, "changed")

	stored, err := s.ItemMeta()
	require.NoError(t, err)
	assert.Equal(t, "§6Fireblade", stored.DisplayName())
	assert.Equal(t, []string{"§7A blazing sword"}, stored.Lore())

	tag, ok := s.PersistentString(domain.IdentityKey)
	assert.True(t, ok)
	assert.Equal(t, "§6Fireblade", tag)
}

func TestStack_Clone(t *testing.T) {
	s := New(domain.MaterialBlazeRod)
	s.SetAmount(3)
	meta, err := s.ItemMeta()
	require.NoError(t, err)
	meta.PersistentData().Set(domain.IdentityKey, "rod")
	require.NoError(t, s.SetItemMeta(meta))

	c := s.Clone()
	assert.NotSame(t, s, c)
	assert.Equal(t, 3, c.Amount())
	assert.Equal(t, domain.MaterialBlazeRod, c.Material())

	cm, err := c.ItemMeta()
	require.NoError(t, err)
	cm.PersistentData().Remove(domain.IdentityKey)
	require.NoError(t, c.SetItemMeta(cm))

	_, ok := c.PersistentString(domain.IdentityKey)
	assert.False(t, ok)
	_, ok = s.PersistentString(domain.IdentityKey)
	assert.True(t, ok)
}

func TestStack_PersistentStringNil(t *testing.T) {
	var s *Stack
	_, ok := s.PersistentString(domain.IdentityKey)
	assert.False(t, ok)

	_, ok = New(domain.MaterialStick).PersistentString(domain.IdentityKey)
	assert.False(t, ok)
}

func TestMeta_Lore(t *testing.T) {
	m := newMeta()
	assert.Nil(t, m.Lore())
	assert.False(t, m.HasLore())

	lines := []string{"one", "two"}
	m.SetLore(lines)
	lines[0] = "mutated"
	assert.Equal(t, []string{"one", "two"}, m.Lore())

	m.SetLore(nil)
	assert.False(t, m.HasLore())
}

func TestDataContainer(t *testing.T) {
	c := newDataContainer()
	assert.True(t, c.IsEmpty())

	other := domain.NamespacedKey{Namespace: "another", Key: "tag"}
	c.Set(domain.IdentityKey, "a")
	c.Set(other, "b")

	assert.True(t, c.Has(other))
	assert.Equal(t, []domain.NamespacedKey{other, domain.IdentityKey}, c.Keys())

	c.Remove(other)
	assert.False(t, c.Has(other))
	v, ok := c.Get(domain.IdentityKey)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}
