package domain

import (
	"fmt"
	"strings"
)

// NamespacedKey identifies an attribute in an item's persistent data.
// Both parts are stored lower-case, matching the host's key rules.
type NamespacedKey struct {
	Namespace string
	Key       string
}

// NewNamespacedKey lower-cases namespace and key and rejects empty parts
func NewNamespacedKey(namespace, key string) (NamespacedKey, error) {
	ns := strings.ToLower(strings.TrimSpace(namespace))
	k := strings.ToLower(strings.TrimSpace(key))
	if ns == "" || k == "" {
		return NamespacedKey{}, fmt.Errorf("%w: %q:%q", ErrInvalidKey, namespace, key)
	}
	return NamespacedKey{Namespace: ns, Key: k}, nil
}

// String renders the key as "namespace:key"
func (k NamespacedKey) String() string {
	return k.Namespace + ":" + k.Key
}

// IdentityKey is the attribute that marks an item stack as one of our custom items.
var IdentityKey = NamespacedKey{Namespace: PluginNamespace, Key: IdentityKeyName}
