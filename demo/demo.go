package demo

import (
	"fmt"
	"strconv"

	"github.com/sghaida/patterns/prototype"
	"github.com/sghaida/patterns/proxy"
	"github.com/sghaida/patterns/singleton"
)

// UnknownDemoError is returned when a requested demo name is not registered.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: demo: unknown demo "decorator"
	return "demo: unknown demo " + strconv.Quote(e.Name)
}

// Demo is one runnable pattern demonstration.
type Demo struct {
	Name    string
	Summary string

	// Run executes the demonstration and returns its console lines.
	Run func(*Script) ([]string, error)
}

// Registry returns the demos in presentation order.
func Registry() []Demo {
	return []Demo{
		{
			Name:    "prototype",
			Summary: "shared-behavior delegation through explicit method tables",
			Run:     runPrototype,
		},
		{
			Name:    "singleton",
			Summary: "one frozen handle over a process-wide counter",
			Run:     runSingleton,
		},
		{
			Name:    "proxy",
			Summary: "reads and writes mediated by an interception policy",
			Run:     runProxy,
		},
	}
}

// ByName returns the registered demo with the given name.
func ByName(name string) (Demo, bool) {
	for _, d := range Registry() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func runPrototype(s *Script) ([]string, error) {
	dog := prototype.NewBehavior("Dog", map[string]prototype.Method{
		"speak": func(self *prototype.Instance, _ ...any) (any, error) {
			name, _ := self.Get("name")
			return fmt.Sprintf("%s says Woof!", name), nil
		},
	})

	lines := []string{`species "Dog" defines: speak`}

	instances := make([]*prototype.Instance, 0, len(s.Prototype.Names))
	for _, name := range s.Prototype.Names {
		inst, err := prototype.NewInstance(dog, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)

		out, err := inst.Invoke("speak")
		if err != nil {
			return nil, err
		}
		lines = append(lines, out.(string))
	}

	// The core property: the table mutation reaches instances created earlier.
	trick := s.Prototype.NewTrick
	dog.Add(trick, func(self *prototype.Instance, _ ...any) (any, error) {
		name, _ := self.Get("name")
		return fmt.Sprintf("%s masters %q", name, trick), nil
	})
	lines = append(lines, fmt.Sprintf("added %q to \"Dog\" after the instances existed", trick))

	for _, inst := range instances {
		out, err := inst.Invoke(trick)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out.(string))
	}

	// Multi-level delegation: SuperDog extends Dog.
	superDog := dog.Derive("SuperDog", map[string]prototype.Method{
		"fly": func(self *prototype.Instance, _ ...any) (any, error) {
			name, _ := self.Get("name")
			return fmt.Sprintf("%s takes off!", name), nil
		},
	})
	lines = append(lines, `species "SuperDog" extends "Dog"`)

	krypto, err := prototype.NewInstance(superDog, map[string]any{"name": "Krypto"})
	if err != nil {
		return nil, err
	}
	for _, member := range []string{"fly", "speak"} {
		out, err := krypto.Invoke(member)
		if err != nil {
			return nil, err
		}
		lines = append(lines, out.(string))
	}

	// Exhausting the chain is the documented failure mode, shown on purpose.
	if _, err := krypto.Invoke("teleport"); err != nil {
		lines = append(lines, "lookup \"teleport\": "+err.Error())
	}

	return lines, nil
}

// runSingleton reports counter movement as deltas so its output is stable no
// matter how often the process-wide handle was used before.
func runSingleton(s *Script) ([]string, error) {
	h := singleton.GetInstance()

	lines := []string{
		fmt.Sprintf("handle constructed once, frozen: %v", h.Frozen()),
	}

	if _, err := singleton.New(); err != nil {
		lines = append(lines, "second construction attempt: "+err.Error())
	}

	start := h.Value()
	for i := 0; i < s.Singleton.Increments; i++ {
		h.Increment()
	}
	for i := 0; i < s.Singleton.Decrements; i++ {
		h.Decrement()
	}
	lines = append(lines, fmt.Sprintf(
		"applied %d increments and %d decrements: net change %+d",
		s.Singleton.Increments, s.Singleton.Decrements, h.Value()-start,
	))

	overridden := h.SetSlot(singleton.SlotIncrement, func() int { return -999 })
	lines = append(lines, fmt.Sprintf("override attempt on %q accepted: %v", singleton.SlotIncrement, overridden))

	before := h.Value()
	lines = append(lines, fmt.Sprintf("increment still behaves: %+d", h.Increment()-before))

	return lines, nil
}

func runProxy(s *Script) ([]string, error) {
	target := proxy.NewTarget().
		Provide("name", s.Proxy.Name).
		Provide("age", s.Proxy.Age)

	lines := []string{
		fmt.Sprintf("target starts as name=%v age=%v", target.MustGet("name"), target.MustGet("age")),
	}

	traced, err := proxy.Wrap(target, proxy.Tracing())
	if err != nil {
		return nil, err
	}
	if _, note := traced.Get("age"); note != "" {
		lines = append(lines, "tracing read: "+note)
	}
	if _, note := traced.Get("height"); note != "" {
		lines = append(lines, "tracing read: "+note)
	}

	guarded, err := proxy.Wrap(target, proxy.Validating(
		proxy.Numeric("age"),
		proxy.MinLength("name", s.Proxy.MinNameLen),
	))
	if err != nil {
		return nil, err
	}

	writes := []struct {
		key   string
		value any
	}{
		{"age", strconv.Itoa(s.Proxy.Age - 9)}, // string, rejected
		{"age", s.Proxy.Age - 9},               // numeric, applied
		{"name", "J"},                          // too short, rejected
		{"name", "Thanos"},                     // applied
	}
	for _, w := range writes {
		out := guarded.Set(w.key, w.value)
		verdict := "applied"
		if !out.Applied {
			verdict = "rejected"
		}
		lines = append(lines, fmt.Sprintf("write %s=%#v: %s: %s", w.key, w.value, verdict, out.Note))
	}

	lines = append(lines, fmt.Sprintf("target ends as name=%v age=%v", target.MustGet("name"), target.MustGet("age")))
	return lines, nil
}
