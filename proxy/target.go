package proxy

import "fmt"

// Target is a simple in-memory key/value container mediated by a Binding.
//
// It is intentionally loose (map[string]any) so callers can store any value.
// Direct access stays available; interception only happens through a Binding.
type Target struct {
	items map[string]any
}

// NewTarget creates an empty target.
func NewTarget() *Target {
	return &Target{items: map[string]any{}}
}

// From creates a target seeded with a copy of items, so later changes to the
// caller's map do not leak into the target.
func From(items map[string]any) *Target {
	t := &Target{items: make(map[string]any, len(items))}
	for k, v := range items {
		t.items[k] = v
	}
	return t
}

// Provide stores a value under a key and returns the target for chaining.
func (t *Target) Provide(key string, val any) *Target {
	t.items[key] = val
	return t
}

// Set stores a value under a key.
func (t *Target) Set(key string, val any) { t.items[key] = val }

// Get returns the value if present.
func (t *Target) Get(key string) (any, bool) {
	v, ok := t.items[key]
	return v, ok
}

// Has reports whether the key is present.
func (t *Target) Has(key string) bool {
	_, ok := t.items[key]
	return ok
}

// Len returns the number of stored keys.
func (t *Target) Len() int { return len(t.items) }

// MustGet returns the value or panics with a helpful message.
// Useful in examples/tests where missing keys should fail fast.
func (t *Target) MustGet(key string) any {
	v, ok := t.items[key]
	if !ok {
		panic(fmt.Errorf("proxy: target missing key %q", key))
	}
	return v
}

// Snapshot returns a copy of the stored items so callers can inspect state
// without holding a reference into the live map.
func (t *Target) Snapshot() map[string]any {
	cp := make(map[string]any, len(t.items))
	for k, v := range t.items {
		cp[k] = v
	}
	return cp
}
