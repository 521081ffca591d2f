package prototype

import (
	"errors"
	"strconv"
)

var (
	// ErrNilBehavior is returned when an instance is created against a nil
	// behavior table.
	ErrNilBehavior = errors.New("prototype: nil behavior table")

	// ErrNilInstance is returned when Invoke is called on a nil instance.
	ErrNilInstance = errors.New("prototype: nil instance")
)

// MemberNotFoundError is returned when neither an instance's own data nor any
// behavior table in its delegation chain defines the requested member.
type MemberNotFoundError struct {
	// Member is the name that was looked up.
	Member string

	// Behavior is the name of the first table consulted (the instance's own
	// species), for diagnostics.
	Behavior string
}

// Error implements the error interface.
func (e MemberNotFoundError) Error() string {
	// Example: prototype: member "fetch" not found on "Dog" or its ancestors
	return "prototype: member " + strconv.Quote(e.Member) +
		" not found on " + strconv.Quote(e.Behavior) + " or its ancestors"
}

// NotCallableError is returned when a member resolves to an own-data value
// that is not a Method.
type NotCallableError struct {
	// Member is the name that was looked up.
	Member string
}

// Error implements the error interface.
func (e NotCallableError) Error() string {
	// Example: prototype: member "name" is not callable
	return "prototype: member " + strconv.Quote(e.Member) + " is not callable"
}

// Method is a behavior implementation. It receives the instance the call was
// directed at, so a method defined once on a shared table can still read the
// caller's own data.
type Method func(self *Instance, args ...any) (any, error)

// Behavior is a named method table with an optional parent, shared by
// reference across instances.
//
// Mutating the table after creation (see Add) is visible to all existing and
// future instances that delegate to it. A Behavior is created once per species
// and never destroyed within the process lifetime; instances reference it but
// do not own it.
type Behavior struct {
	name    string
	methods map[string]Method
	parent  *Behavior
}

// NewBehavior creates a root behavior table.
//
// The methods map is copied so later changes to the caller's map do not leak
// into the table; use Add to mutate the table itself.
func NewBehavior(name string, methods map[string]Method) *Behavior {
	b := &Behavior{name: name, methods: make(map[string]Method, len(methods))}
	for k, m := range methods {
		b.methods[k] = m
	}
	return b
}

// Derive creates a child behavior table delegating to b.
//
// Lookups that miss the child fall through to b, then to b's parent, until the
// chain is exhausted.
func (b *Behavior) Derive(name string, methods map[string]Method) *Behavior {
	child := NewBehavior(name, methods)
	child.parent = b
	return child
}

// Add registers (or replaces) a method on the table and returns the table for
// chaining.
//
// The change is immediately visible to every instance delegating to b,
// directly or through a derived table.
func (b *Behavior) Add(name string, fn Method) *Behavior {
	b.methods[name] = fn
	return b
}

// Name returns the table's species name.
func (b *Behavior) Name() string { return b.name }

// Parent returns the table this one delegates to, or nil for a root.
func (b *Behavior) Parent() *Behavior { return b.parent }

// Resolve walks the delegation chain iteratively and returns the first method
// registered under name.
func (b *Behavior) Resolve(name string) (Method, bool) {
	for t := b; t != nil; t = t.parent {
		if m, ok := t.methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// Has reports whether name resolves anywhere on the chain.
func (b *Behavior) Has(name string) bool {
	_, ok := b.Resolve(name)
	return ok
}
