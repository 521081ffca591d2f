package proxy

import "fmt"

// Rule validates a proposed write to one key. Writes to other keys pass it by.
type Rule struct {
	// Key is the target key the rule guards.
	Key string

	// Check returns whether the proposed value is acceptable and, when it is
	// not, a note explaining the rejection.
	Check func(value any) (ok bool, note string)
}

// Numeric builds a rule accepting only numeric values for key.
func Numeric(key string) Rule {
	return Rule{
		Key: key,
		Check: func(value any) (bool, string) {
			switch value.(type) {
			case int, int8, int16, int32, int64,
				uint, uint8, uint16, uint32, uint64,
				float32, float64:
				return true, ""
			default:
				return false, fmt.Sprintf("only numeric values are allowed for %q, got %T", key, value)
			}
		},
	}
}

// MinLength builds a rule requiring a string value of at least n characters
// for key.
func MinLength(key string, n int) Rule {
	return Rule{
		Key: key,
		Check: func(value any) (bool, string) {
			s, ok := value.(string)
			if !ok {
				return false, fmt.Sprintf("%q must be a string, got %T", key, value)
			}
			if len(s) < n {
				return false, fmt.Sprintf("%q must be at least %d characters long", key, n)
			}
			return true, ""
		},
	}
}

// Validating builds a write-validation policy from rules.
//
// A write whose key matches a failing rule is rejected: the target is left
// untouched and the rule's note is surfaced. A passing write is applied with a
// note describing the change. Reads are not intercepted.
func Validating(rules ...Rule) Policy {
	return Policy{
		OnSet: func(t *Target, key string, value any) (bool, string) {
			for _, r := range rules {
				if r.Key != key {
					continue
				}
				if ok, note := r.Check(value); !ok {
					return false, note
				}
			}
			prev, had := t.Get(key)
			t.Set(key, value)
			if had {
				return true, fmt.Sprintf("changed %q from %v to %v", key, prev, value)
			}
			return true, fmt.Sprintf("set %q to %v", key, value)
		},
	}
}

// Tracing builds a policy that passes reads and writes through while
// describing each access in its note, in the spirit of the classic
// "The value of age is 42" logging proxy.
func Tracing() Policy {
	return Policy{
		OnGet: func(t *Target, key string) (any, string) {
			v, ok := t.Get(key)
			if !ok {
				return nil, fmt.Sprintf("the key %q does not exist", key)
			}
			return v, fmt.Sprintf("the value of %q is %v", key, v)
		},
		OnSet: func(t *Target, key string, value any) (bool, string) {
			prev, had := t.Get(key)
			t.Set(key, value)
			if had {
				return true, fmt.Sprintf("changed %q from %v to %v", key, prev, value)
			}
			return true, fmt.Sprintf("set %q to %v", key, value)
		},
	}
}
