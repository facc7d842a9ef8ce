// Package normalization maps loosely authored enum strings onto typed values.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization. Keys are
// compared after trimming and lower-casing, so "Local", " local " and
// "LOCAL" all resolve to the same value. Several keys may map to one value
// to support aliases.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
	keys         []string
}

// NewNormalizer creates a normalizer from a map of accepted spellings.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		nk := clean(k)
		normalized[nk] = v
		keys = append(keys, nk)
	}
	sort.Strings(keys)

	return &Normalizer[T]{
		values:       normalized,
		defaultValue: defaultValue,
		keys:         keys,
	}
}

// Normalize returns the matching value, or the default when raw is unknown.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.Lookup(raw); ok {
		return v
	}
	return n.defaultValue
}

// Lookup returns the matching value and whether raw was recognised.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

// NormalizeWithError is Lookup with an error listing the accepted spellings.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.keys)
}

// Default returns the fallback value.
func (n *Normalizer[T]) Default() T {
	return n.defaultValue
}

// ValidKeys returns all accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
