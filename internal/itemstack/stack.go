// Package itemstack models the host's item stack value: a material, an amount,
// and optional display metadata with a persistent attribute container.
package itemstack

import (
	"errors"
	"fmt"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// ErrMetadataUnavailable is returned when a material cannot carry item metadata
var ErrMetadataUnavailable = errors.New("item metadata unavailable")

// DefaultAmount is the size of a freshly created stack
const DefaultAmount = 1

// Stack is a single item stack
type Stack struct {
	material domain.Material
	amount   int
	meta     *Meta
}

// New creates a stack of one item of the given material
func New(material domain.Material) *Stack {
	return &Stack{material: material, amount: DefaultAmount}
}

// Material returns the stack's material
func (s *Stack) Material() domain.Material {
	return s.material
}

// Amount returns the number of items in the stack
func (s *Stack) Amount() int {
	return s.amount
}

// SetAmount changes the number of items in the stack
func (s *Stack) SetAmount(amount int) {
	s.amount = amount
}

// HasItemMeta reports whether metadata was ever stored on the stack
func (s *Stack) HasItemMeta() bool {
	return s.meta != nil
}

// ItemMeta returns a copy of the stack's metadata, or a fresh empty meta when
// none was stored. Materials that cannot hold metadata return ErrMetadataUnavailable.
func (s *Stack) ItemMeta() (*Meta, error) {
	if !s.material.IsItem() {
		return nil, fmt.Errorf("%w: %s", ErrMetadataUnavailable, s.material)
	}
	if s.meta == nil {
		return newMeta(), nil
	}
	return s.meta.Clone(), nil
}

// SetItemMeta stores a copy of meta on the stack. A nil meta clears it.
func (s *Stack) SetItemMeta(meta *Meta) error {
	if !s.material.IsItem() {
		return fmt.Errorf("%w: %s", ErrMetadataUnavailable, s.material)
	}
	if meta == nil {
		s.meta = nil
		return nil
	}
	s.meta = meta.Clone()
	return nil
}

// PersistentString reads a single attribute without copying the whole meta
func (s *Stack) PersistentString(key domain.NamespacedKey) (string, bool) {
	if s == nil || s.meta == nil {
		return "", false
	}
	return s.meta.data.Get(key)
}

// Clone returns an independent copy, the way the host duplicates a stack when
// it is placed into an inventory
func (s *Stack) Clone() *Stack {
	out := &Stack{material: s.material, amount: s.amount}
	if s.meta != nil {
		out.meta = s.meta.Clone()
	}
	return out
}
