package singleton

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// ViolationError is returned when code attempts to construct a second
// independent handle outside the accessor.
type ViolationError struct{}

// Error implements the error interface.
func (ViolationError) Error() string {
	return "singleton: handle already constructed, use GetInstance"
}

// SlotNotFoundError is returned by Call when the handle has no slot under the
// requested name.
type SlotNotFoundError struct{ Slot string }

// Error implements the error interface.
func (e SlotNotFoundError) Error() string {
	// Example: singleton: no slot "reset" on handle
	return "singleton: no slot " + strconv.Quote(e.Slot) + " on handle"
}

// Op is a slot implementation: it mutates or reads the shared counter and
// returns the resulting value.
type Op func() int

// Slot names installed on the handle.
const (
	SlotIncrement = "increment"
	SlotDecrement = "decrement"
	SlotValue     = "value"
)

// Handle is the single externally-visible reference to the counter state.
//
// Its shape is a slot table mapping names to operations over an encapsulated
// counter cell. The table is frozen before the handle is published: SetSlot
// becomes a no-op, but the operations themselves keep mutating the shared
// counter.
type Handle struct {
	frozen bool
	slots  map[string]Op
	cell   *atomic.Int64
}

// Process-wide state cell. Created on first access, lives for the process
// duration, exposed only through GetInstance and New.
var (
	mu       sync.Mutex
	instance *Handle
)

// GetInstance returns the process-wide handle, constructing and freezing it on
// first call. Subsequent calls return the same handle.
func GetInstance() *Handle {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = newHandle()
	}
	return instance
}

// New constructs the process-wide handle directly.
//
// The first call is equivalent to GetInstance. Once the handle exists, every
// further call fails with ViolationError: there is exactly one counter per
// process.
func New() (*Handle, error) {
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return nil, ViolationError{}
	}
	instance = newHandle()
	return instance, nil
}

func newHandle() *Handle {
	cell := &atomic.Int64{}
	h := &Handle{slots: make(map[string]Op, 3), cell: cell}

	h.SetSlot(SlotIncrement, func() int { return int(cell.Add(1)) })
	h.SetSlot(SlotDecrement, func() int { return int(cell.Add(-1)) })
	h.SetSlot(SlotValue, func() int { return int(cell.Load()) })

	h.freeze()
	return h
}

// freeze seals the slot table. Done once, before the handle is published.
func (h *Handle) freeze() { h.frozen = true }

// Frozen reports whether the handle's slot table is sealed.
func (h *Handle) Frozen() bool { return h != nil && h.frozen }

// SetSlot installs an operation under name.
//
// On a frozen handle this is a no-op and returns false; the original
// operation remains callable and observable afterward.
func (h *Handle) SetSlot(name string, op Op) bool {
	if h == nil || h.frozen {
		return false
	}
	h.slots[name] = op
	return true
}

// Call dispatches a slot by name.
func (h *Handle) Call(name string) (int, error) {
	op, ok := h.slots[name]
	if !ok {
		return 0, SlotNotFoundError{Slot: name}
	}
	return op(), nil
}

// Increment bumps the shared counter and returns the new value.
func (h *Handle) Increment() int { return h.slots[SlotIncrement]() }

// Decrement lowers the shared counter and returns the new value.
func (h *Handle) Decrement() int { return h.slots[SlotDecrement]() }

// Value returns the current counter value without mutating it.
func (h *Handle) Value() int { return h.slots[SlotValue]() }
