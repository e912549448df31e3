package expense

import (
	"errors"
	"fmt"
)

// Validate returns an error with all the invariant violations found in c, or nil.
func Validate(c Collection) error {
	var errs []error
	seen := make(map[int]bool, len(c))
	for _, e := range c {
		if e.ID <= 0 {
			errs = append(errs, fmt.Errorf("expense %d: %w", e.ID, ErrInvalidID))
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("expense %d: %w", e.ID, ErrDuplicateID))
		}
		seen[e.ID] = true
		if !e.Amount.IsPositive() {
			errs = append(errs, fmt.Errorf("expense %d: %w", e.ID, ErrNonPositiveAmount))
		}
	}
	return errors.Join(errs...)
}
