package utils

import "fmt"

// EnumValidator returns a string validator that accepts only the listed
// values. Used by schema fields whose value set lives in the constants
// package rather than in an ent enum.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
