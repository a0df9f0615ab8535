package utils

import (
	"fmt"
	"slices"
)

// EnumValidator returns an ent string validator that accepts only the given values.
func EnumValidator(allowed ...string) func(string) error {
	return func(s string) error {
		if slices.Contains(allowed, s) {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
