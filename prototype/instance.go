package prototype

// Instance holds only its own distinguishing data plus a non-owning reference
// to its shared Behavior.
//
// Own data is intentionally loose (map[string]any) so instances can carry any
// value without restricting user code. An own-data entry whose value is a
// Method shadows the shared table for that name.
type Instance struct {
	behavior *Behavior
	own      map[string]any
}

// NewInstance creates an instance delegating to behavior.
//
// The own map is copied so two instances created from the same literal stay
// independent.
func NewInstance(behavior *Behavior, own map[string]any) (*Instance, error) {
	if behavior == nil {
		return nil, ErrNilBehavior
	}
	i := &Instance{behavior: behavior, own: make(map[string]any, len(own))}
	for k, v := range own {
		i.own[k] = v
	}
	return i, nil
}

// MustNewInstance is NewInstance that panics on error.
//
// Useful in examples and tests where a nil behavior cannot happen.
func MustNewInstance(behavior *Behavior, own map[string]any) *Instance {
	i, err := NewInstance(behavior, own)
	if err != nil {
		panic(err)
	}
	return i
}

// Behavior returns the shared table the instance delegates to.
func (i *Instance) Behavior() *Behavior { return i.behavior }

// Get returns an own-data value.
func (i *Instance) Get(key string) (any, bool) {
	if i == nil || i.own == nil {
		return nil, false
	}
	v, ok := i.own[key]
	return v, ok
}

// Set stores an own-data value and returns the instance for chaining.
//
// Setting a Method value shadows the shared table for that name on this
// instance only.
func (i *Instance) Set(key string, val any) *Instance {
	i.own[key] = val
	return i
}

// Has reports whether key exists in the instance's own data (the shared chain
// is not consulted; use Behavior().Has for that).
func (i *Instance) Has(key string) bool {
	_, ok := i.Get(key)
	return ok
}

// Invoke looks up name on the instance's own data first, then walks the
// delegation chain, and calls the resolved method with args.
//
// It returns:
//   - ErrNilInstance when called on a nil instance
//   - NotCallableError when own data holds a non-Method value under name
//   - MemberNotFoundError when the chain is exhausted
func (i *Instance) Invoke(name string, args ...any) (any, error) {
	if i == nil {
		return nil, ErrNilInstance
	}
	if raw, ok := i.own[name]; ok {
		m, ok := raw.(Method)
		if !ok {
			return nil, NotCallableError{Member: name}
		}
		return m(i, args...)
	}
	if m, ok := i.behavior.Resolve(name); ok {
		return m(i, args...)
	}
	return nil, MemberNotFoundError{Member: name, Behavior: i.behavior.Name()}
}

// MustInvoke is Invoke that panics on error.
func (i *Instance) MustInvoke(name string, args ...any) any {
	v, err := i.Invoke(name, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns a shallow copy of the instance.
//
// The shared Behavior reference is kept; own data is copied into a new map so
// further mutation of the clone does not affect the original.
func (i *Instance) Clone() *Instance {
	if i == nil {
		return nil
	}
	cp := &Instance{behavior: i.behavior, own: make(map[string]any, len(i.own))}
	for k, v := range i.own {
		cp.own[k] = v
	}
	return cp
}
