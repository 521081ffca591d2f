package demo

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// InvalidScriptError is returned when a loaded script fails validation.
type InvalidScriptError struct {
	// Field is the YAML path of the offending value.
	Field string

	// Reason describes the constraint that was violated.
	Reason string
}

// Error implements the error interface.
func (e InvalidScriptError) Error() string {
	// Example: demo: invalid script field "prototype.names": must not be empty
	return "demo: invalid script field " + strconv.Quote(e.Field) + ": " + e.Reason
}

// Script carries the parameters the demos run with.
type Script struct {
	Prototype PrototypeScript `yaml:"prototype"`
	Singleton SingletonScript `yaml:"singleton"`
	Proxy     ProxyScript     `yaml:"proxy"`
}

// PrototypeScript parameterizes the shared-behavior demo.
type PrototypeScript struct {
	// Names are the instances created from the shared table.
	Names []string `yaml:"names"`

	// NewTrick is the method added to the table after the instances exist.
	NewTrick string `yaml:"new_trick"`
}

// SingletonScript parameterizes the counter demo.
type SingletonScript struct {
	Increments int `yaml:"increments"`
	Decrements int `yaml:"decrements"`
}

// ProxyScript parameterizes the mediated-access demo.
type ProxyScript struct {
	// Name and Age seed the wrapped target.
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`

	// MinNameLen is the name-length validation bound.
	MinNameLen int `yaml:"min_name_len"`
}

// DefaultScript returns the compiled-in parameters used when no script file is
// given.
func DefaultScript() *Script {
	return &Script{
		Prototype: PrototypeScript{
			Names:    []string{"Rex", "Fido"},
			NewTrick: "fetch",
		},
		Singleton: SingletonScript{Increments: 3, Decrements: 1},
		Proxy:     ProxyScript{Name: "John Doe", Age: 42, MinNameLen: 2},
	}
}

// LoadScript reads and validates a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the script's constraints.
func (s *Script) Validate() error {
	if len(s.Prototype.Names) == 0 {
		return InvalidScriptError{Field: "prototype.names", Reason: "must not be empty"}
	}
	for _, n := range s.Prototype.Names {
		if n == "" {
			return InvalidScriptError{Field: "prototype.names", Reason: "names must not be blank"}
		}
	}
	if s.Prototype.NewTrick == "" {
		return InvalidScriptError{Field: "prototype.new_trick", Reason: "must not be empty"}
	}
	if s.Singleton.Increments < 0 {
		return InvalidScriptError{Field: "singleton.increments", Reason: "must not be negative"}
	}
	if s.Singleton.Decrements < 0 {
		return InvalidScriptError{Field: "singleton.decrements", Reason: "must not be negative"}
	}
	if s.Proxy.Name == "" {
		return InvalidScriptError{Field: "proxy.name", Reason: "must not be empty"}
	}
	if s.Proxy.Age < 0 {
		return InvalidScriptError{Field: "proxy.age", Reason: "must not be negative"}
	}
	if s.Proxy.MinNameLen < 1 {
		return InvalidScriptError{Field: "proxy.min_name_len", Reason: "must be at least 1"}
	}
	return nil
}
