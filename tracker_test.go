package expense

import (
	"errors"
	"os"
	"testing"
	"time"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestAddAssignsIncreasingIDs(t *testing.T) {
	tr := newTestTracker(t, now)
	for want := 1; want <= 5; want++ {
		e, err := tr.Add("item", "1")
		if err != nil {
			t.Fatalf("Add() unexpected error: %v", err)
		}
		if e.ID != want {
			t.Errorf("Add() id = %d, want %d", e.ID, want)
		}
	}
}

func TestAddTrimsDescriptionAndDates(t *testing.T) {
	tr := newTestTracker(t, now)
	e, err := tr.Add("  Lunch \n", "20")
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if e.Description != "Lunch" {
		t.Errorf("Add() description = %q, want %q", e.Description, "Lunch")
	}
	if !e.Date.Equal(now) {
		t.Errorf("Add() date = %v, want %v", e.Date, now)
	}
}

func TestAddValidation(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		amount      string
		want        error
	}{
		{"not a number", "Lunch", "abc", ErrInvalidAmount},
		{"zero", "Lunch", "0", ErrInvalidAmount},
		{"negative", "Lunch", "-3", ErrInvalidAmount},
		{"empty description", "   ", "3", ErrEmptyDescription},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestTracker(t, now)
			_, err := tr.Add(tc.description, tc.amount)
			if !errors.Is(err, tc.want) {
				t.Errorf("Add(%q, %q) error = %v, want %v", tc.description, tc.amount, err, tc.want)
			}
			if _, err := os.Stat(tr.Store().Path()); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("Add() with invalid input wrote the store")
			}
		})
	}
}

func TestNextIDAfterDelete(t *testing.T) {
	tr := newTestTracker(t, now)
	for i := 0; i < 3; i++ {
		if _, err := tr.Add("item", "1"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := tr.Delete(3); err != nil {
		t.Fatalf("Delete(3) unexpected error: %v", err)
	}
	if _, err := tr.Delete(2); err != nil {
		t.Fatalf("Delete(2) unexpected error: %v", err)
	}
	// the highest ids are gone, the next one follows the highest remaining.
	e, err := tr.Add("item", "1")
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != 2 {
		t.Errorf("Add() after deleting 2 and 3 = %d, want 2", e.ID)
	}
	// an id below the highest is not reused.
	if _, err := tr.Delete(1); err != nil {
		t.Fatal(err)
	}
	e, err = tr.Add("item", "1")
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != 3 {
		t.Errorf("Add() after deleting 1 = %d, want 3", e.ID)
	}
}

func TestDeleteKeepsOrder(t *testing.T) {
	tr := newTestTracker(t, now)
	for _, d := range []string{"a", "b", "c", "d"} {
		if _, err := tr.Add(d, "1"); err != nil {
			t.Fatal(err)
		}
	}
	deleted, err := tr.Delete(2)
	if err != nil {
		t.Fatal(err)
	}
	if deleted.Description != "b" {
		t.Errorf("Delete(2) returned %q, want %q", deleted.Description, "b")
	}
	c, err := tr.List()
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range c {
		got = append(got, e.Description)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "c" || got[2] != "d" {
		t.Errorf("List() after Delete(2) = %v, want [a c d]", got)
	}
	if c[1].ID != 3 {
		t.Errorf("Delete(2) renumbered expenses: %v", c)
	}
}

func TestDeleteNotFound(t *testing.T) {
	tr := newTestTracker(t, now)
	if _, err := tr.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(1) on empty store error = %v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	tr := newTestTracker(t, now)
	if _, err := tr.Add("Lunch", "20"); err != nil {
		t.Fatal(err)
	}

	e, err := tr.Update(1, ptr(" Dinner "), nil)
	if err != nil {
		t.Fatalf("Update(description) unexpected error: %v", err)
	}
	if e.Description != "Dinner" || !e.Amount.Equal(A(20)) {
		t.Errorf("Update(description) = %+v, want Dinner for 20", e)
	}

	e, err = tr.Update(1, nil, ptr("7.5"))
	if err != nil {
		t.Fatalf("Update(amount) unexpected error: %v", err)
	}
	if e.Description != "Dinner" || !e.Amount.Equal(A(7.5)) {
		t.Errorf("Update(amount) = %+v, want Dinner for 7.5", e)
	}
	if e.ID != 1 || !e.Date.Equal(now) {
		t.Errorf("Update() changed id or date: %+v", e)
	}
}

func TestUpdateValidation(t *testing.T) {
	testCases := []struct {
		name        string
		id          int
		description *string
		amount      *string
		want        error
	}{
		{"nothing to update", 1, nil, nil, ErrMissingArguments},
		{"nothing to update on unknown id", 42, nil, nil, ErrMissingArguments},
		{"invalid amount", 1, ptr("x"), ptr("-1"), ErrInvalidAmount},
		{"empty description", 1, ptr(" "), ptr("3"), ErrEmptyDescription},
		{"unknown id", 42, nil, ptr("3"), ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newTestTracker(t, now)
			if _, err := tr.Add("Lunch", "20"); err != nil {
				t.Fatal(err)
			}
			before, err := os.ReadFile(tr.Store().Path())
			if err != nil {
				t.Fatal(err)
			}

			_, err = tr.Update(tc.id, tc.description, tc.amount)
			if !errors.Is(err, tc.want) {
				t.Errorf("Update() error = %v, want %v", err, tc.want)
			}

			after, err := os.ReadFile(tr.Store().Path())
			if err != nil {
				t.Fatal(err)
			}
			if string(before) != string(after) {
				t.Errorf("failed Update() modified the store:\n%s\nwant:\n%s", after, before)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tr := newTestTracker(t, now)
	dates := []time.Time{
		on(2026, time.March, 1),
		on(2026, time.March, 10),
		on(2026, time.January, 10),
		on(2025, time.March, 10),
	}
	for i, d := range dates {
		at := d
		if _, err := tr.WithClock(func() time.Time { return at }).Add("item", []string{"10", "2.5", "4", "100"}[i]); err != nil {
			t.Fatal(err)
		}
	}

	testCases := []struct {
		name   string
		month  time.Month
		year   int
		count  int
		total  Amount
		period string
	}{
		{"everything", 0, 0, 4, A(116.5), ""},
		{"march this year", time.March, 0, 2, A(12.5), "March"},
		{"march last year", time.March, 2025, 1, A(100), "March 2025"},
		{"explicit current year", time.January, 2026, 1, A(4), "January"},
		{"whole year", 0, 2026, 3, A(16.5), "2026"},
		{"empty month", time.July, 0, 0, A(0), "July"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tr.Summary(tc.month, tc.year)
			if err != nil {
				t.Fatalf("Summary() unexpected error: %v", err)
			}
			if s.Count != tc.count || !s.Total.Equal(tc.total) || s.Period() != tc.period {
				t.Errorf("Summary(%d, %d) = %d expenses for %s in %q, want %d for %s in %q",
					tc.month, tc.year, s.Count, s.Total, s.Period(), tc.count, tc.total, tc.period)
			}
		})
	}
}

func TestSummaryInvalidMonth(t *testing.T) {
	tr := newTestTracker(t, now)
	if _, err := tr.Summary(13, 0); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("Summary(13) error = %v, want ErrInvalidMonth", err)
	}
}

func TestReport(t *testing.T) {
	tr := newTestTracker(t, now)
	if _, err := tr.Add("Lunch", "20"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Add("Coffee", "5"); err != nil {
		t.Fatal(err)
	}
	r, err := tr.Report(0)
	if err != nil {
		t.Fatalf("Report() unexpected error: %v", err)
	}
	if r.Year != 2026 || r.Count != 2 || !r.Total.Equal(A(25)) {
		t.Errorf("Report() = %d expenses for %s in %d, want 2 for 25 in 2026", r.Count, r.Total, r.Year)
	}
	if m := r.Months[time.March-1]; m.Count != 2 {
		t.Errorf("Report() March = %+v, want 2 expenses", m)
	}
}

// TestScenario replays a typical session.
func TestScenario(t *testing.T) {
	tr := newTestTracker(t, now)

	lunch, err := tr.Add("Lunch", "20")
	if err != nil || lunch.ID != 1 {
		t.Fatalf("Add(Lunch) = %v, %v, want id 1", lunch.ID, err)
	}
	c, err := tr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 1 || !c[0].Amount.Equal(A(20)) {
		t.Fatalf("store = %v, want one expense of 20", c)
	}

	coffee, err := tr.Add("Coffee", "5")
	if err != nil || coffee.ID != 2 {
		t.Fatalf("Add(Coffee) = %v, %v, want id 2", coffee.ID, err)
	}

	s, err := tr.Summary(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Total.In("USD").String(); got != "$25.00" {
		t.Errorf("Summary() total = %s, want $25.00", got)
	}

	if _, err := tr.Delete(1); err != nil {
		t.Fatal(err)
	}
	c, err = tr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 1 || c[0].ID != 2 {
		t.Fatalf("store after Delete(1) = %v, want only id 2", c)
	}

	if _, err := tr.Update(2, nil, ptr("7.5")); err != nil {
		t.Fatal(err)
	}
	s, err = tr.Summary(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Total.In("USD").String(); got != "$7.50" {
		t.Errorf("Summary() total = %s, want $7.50", got)
	}
}
