package proxy

import "errors"

// ErrNilTarget is returned when Wrap is given a nil target.
var ErrNilTarget = errors.New("proxy: nil target")

// GetFunc intercepts reads. It receives the target and the requested key and
// returns the value to surface plus an optional diagnostic note.
//
// The interceptor decides the fallback value when the key is absent; it
// signals "missing" by checking the target directly, never via errors.
type GetFunc func(t *Target, key string) (value any, note string)

// SetFunc intercepts writes. It receives the target, the key and the proposed
// value, applies the write to the target if it chooses to, and reports whether
// it did plus an optional diagnostic note.
type SetFunc func(t *Target, key string, value any) (applied bool, note string)

// Policy is a pair of optional interception callbacks. A nil slot means the
// corresponding access goes straight to the target.
type Policy struct {
	OnGet GetFunc
	OnSet SetFunc
}

// Outcome describes the result of a mediated write.
//
// A rejected write is not an error: the call returns normally with
// Applied == false and the policy's note explaining the rejection.
type Outcome struct {
	Applied bool
	Note    string
}

// Binding associates one target with one interception policy. Every read or
// write directed at the binding passes through the policy.
type Binding struct {
	target *Target
	policy Policy
}

// Wrap creates a binding mediating access to target through policy.
func Wrap(target *Target, policy Policy) (*Binding, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	return &Binding{target: target, policy: policy}, nil
}

// MustWrap is Wrap that panics on error.
func MustWrap(target *Target, policy Policy) *Binding {
	b, err := Wrap(target, policy)
	if err != nil {
		panic(err)
	}
	return b
}

// Target returns the wrapped target.
func (b *Binding) Target() *Target { return b.target }

// Get reads key through the policy.
//
// With an OnGet interceptor, its value and note are surfaced as-is. Without
// one, the raw target value is returned (nil when absent) with no note.
func (b *Binding) Get(key string) (any, string) {
	if b.policy.OnGet != nil {
		return b.policy.OnGet(b.target, key)
	}
	v, _ := b.target.Get(key)
	return v, ""
}

// Set writes key through the policy.
//
// With an OnSet interceptor, the policy decides whether the target is
// mutated. Without one, the write is applied unconditionally.
func (b *Binding) Set(key string, value any) Outcome {
	if b.policy.OnSet != nil {
		applied, note := b.policy.OnSet(b.target, key, value)
		return Outcome{Applied: applied, Note: note}
	}
	b.target.Set(key, value)
	return Outcome{Applied: true}
}
