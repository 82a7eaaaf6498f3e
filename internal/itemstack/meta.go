package itemstack

// Meta is a detached copy of an item's display data.
// Changes only reach a stack through Stack.SetItemMeta.
type Meta struct {
	displayName string
	lore        []string
	data        *DataContainer
}

func newMeta() *Meta {
	return &Meta{data: newDataContainer()}
}

// DisplayName returns the formatted display name, empty when unset
func (m *Meta) DisplayName() string {
	return m.displayName
}

// HasDisplayName reports whether a display name was set
func (m *Meta) HasDisplayName() bool {
	return m.displayName != ""
}

// SetDisplayName sets the already-formatted display name
func (m *Meta) SetDisplayName(name string) {
	m.displayName = name
}

// Lore returns a copy of the lore lines
func (m *Meta) Lore() []string {
	if m.lore == nil {
		return nil
	}
	out := make([]string, len(m.lore))
	copy(out, m.lore)
	return out
}

// HasLore reports whether any lore lines are set
func (m *Meta) HasLore() bool {
	return len(m.lore) > 0
}

// SetLore replaces the lore lines, keeping their order
func (m *Meta) SetLore(lines []string) {
	if lines == nil {
		m.lore = nil
		return
	}
	m.lore = make([]string, len(lines))
	copy(m.lore, lines)
}

// PersistentData returns the meta's attribute container
func (m *Meta) PersistentData() *DataContainer {
	return m.data
}

// Clone returns a deep copy
func (m *Meta) Clone() *Meta {
	return &Meta{
		displayName: m.displayName,
		lore:        m.Lore(),
		data:        m.data.clone(),
	}
}
