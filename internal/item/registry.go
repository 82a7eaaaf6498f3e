package item

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/itemstack"
	"github.com/osse101/CustomItemEffects_Go/internal/logger"
	"github.com/osse101/CustomItemEffects_Go/internal/metrics"
)

// Registry recognizes custom items among arbitrary stacks by their identity
// tag and routes uses to the matching item.
type Registry struct {
	mu    sync.RWMutex
	key   domain.NamespacedKey
	items map[string]*CustomItem
	log   *slog.Logger
}

// RegistryOption customizes a Registry
type RegistryOption func(*Registry)

// WithTagKey sets the attribute key stacks are matched under
func WithTagKey(key domain.NamespacedKey) RegistryOption {
	return func(r *Registry) { r.key = key }
}

// NewRegistry creates an empty registry reading tags under domain.IdentityKey
// unless WithTagKey says otherwise
func NewRegistry(log *slog.Logger, opts ...RegistryOption) *Registry {
	if log == nil {
		log = slog.Default()
	}
	r := &Registry{
		key:   domain.IdentityKey,
		items: make(map[string]*CustomItem),
		log:   log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TagKey returns the attribute key stacks are matched under
func (r *Registry) TagKey() domain.NamespacedKey {
	return r.key
}

// Register adds item keyed by its translated display name. Items tagged
// under a different key than the registry reads are rejected, since Match
// could never find them.
func (r *Registry) Register(item *CustomItem) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", domain.ErrItemNotFound)
	}
	if item.IdentityKey() != r.key {
		return fmt.Errorf(ErrFmtKeyMismatch, domain.ErrInvalidKey, item.PlainName(), item.IdentityKey(), r.key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := item.DisplayName()
	if _, exists := r.items[name]; exists {
		return fmt.Errorf(ErrFmtDuplicateName, domain.ErrDuplicateItem, item.PlainName())
	}
	r.items[name] = item
	metrics.ItemsRegistered.Set(float64(len(r.items)))

	if !item.Tagged() {
		r.log.Warn(LogMsgItemUntagged, "item", item.PlainName(), "material", item.Material())
	}
	r.log.Info(LogMsgItemRegistered, "item", item.PlainName(), "material", item.Material(),
		"cooldown_ms", item.CooldownMillis())
	return nil
}

// Unregister removes the item with the given translated display name
func (r *Registry) Unregister(displayName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[displayName]; !ok {
		return false
	}
	delete(r.items, displayName)
	metrics.ItemsRegistered.Set(float64(len(r.items)))
	return true
}

// Get looks an item up by its translated display name
func (r *Registry) Get(displayName string) (*CustomItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[displayName]
	return item, ok
}

// Match returns the custom item whose identity tag stack carries
func (r *Registry) Match(stack *itemstack.Stack) (*CustomItem, bool) {
	tag, ok := stack.PersistentString(r.key)
	if !ok {
		return nil, false
	}
	return r.Get(tag)
}

// Dispatch uses the custom item held as stack. Stacks that are not custom
// items return domain.ErrItemNotFound.
func (r *Registry) Dispatch(ctx context.Context, stack *itemstack.Stack, actor, target domain.Actor) error {
	item, ok := r.Match(stack)
	if !ok {
		metrics.UnrecognizedDispatches.Inc()
		logger.FromContext(ctx).Debug("Dispatch ignored, stack is not a custom item")
		return domain.ErrItemNotFound
	}
	return item.OnUse(ctx, actor, target)
}

// Items returns every registered item ordered by plain name
func (r *Registry) Items() []*CustomItem {
	r.mu.RLock()
	out := make([]*CustomItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].PlainName() < out[j].PlainName()
	})
	return out
}

// Len returns the number of registered items
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Lookup finds an item by translated display name, falling back to a
// case-insensitive match on the plain name.
func (r *Registry) Lookup(name string) (*CustomItem, bool) {
	if item, ok := r.Get(name); ok {
		return item, true
	}
	for _, item := range r.Items() {
		if strings.EqualFold(item.PlainName(), name) {
			return item, true
		}
	}
	return nil, false
}

// CheckHealth reports an error until at least one item is registered
func (r *Registry) CheckHealth(_ context.Context) error {
	if r.Len() == 0 {
		return fmt.Errorf("%w: registry is empty", domain.ErrItemNotFound)
	}
	return nil
}
