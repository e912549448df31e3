package expense

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// equalAmounts lets cmp compare Amounts by value.
var equalAmounts = cmp.Comparer(func(a, b Amount) bool { return a.Equal(b) })

// newTestTracker returns a Tracker on an empty store in a temp dir, with a frozen clock.
func newTestTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "expenses.json"))
	return NewTracker(store).WithClock(func() time.Time { return now })
}

// on is a helper for tests to create a UTC instant at noon.
func on(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// ptr returns a pointer to s.
func ptr(s string) *string { return &s }
