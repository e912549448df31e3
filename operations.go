package expense

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/expense/date"
)

// NextID returns the id for a new expense: one more than the highest id in
// use, or 1 for an empty collection. Deleted ids are therefore never reused
// unless they were the highest.
func NextID(c Collection) int {
	highest := 0
	for _, e := range c {
		highest = max(highest, e.ID)
	}
	return highest + 1
}

// FindByID returns the index of the expense with the given id.
func FindByID(c Collection, id int) (int, error) {
	i := slices.IndexFunc(c, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("expense with ID %d %w", id, ErrNotFound)
	}
	return i, nil
}

// Total returns the exact sum of all amounts in c.
func Total(c Collection) Amount {
	var total Amount
	for _, e := range c {
		total = total.Add(e.Amount)
	}
	return total
}

// FilterByMonth returns the expenses dated in the given month of year, as seen in loc.
// A nil loc means time.Local.
func FilterByMonth(c Collection, month time.Month, year int, loc *time.Location) Collection {
	return filterByRange(c, date.NewRange(date.New(year, month, 1), date.Monthly), loc)
}

// FilterByYear returns the expenses dated in year, as seen in loc.
func FilterByYear(c Collection, year int, loc *time.Location) Collection {
	return filterByRange(c, date.NewRange(date.New(year, time.January, 1), date.Yearly), loc)
}

func filterByRange(c Collection, r date.Range, loc *time.Location) Collection {
	if loc == nil {
		loc = time.Local
	}
	selected := Collection{}
	for _, e := range c {
		if r.Contains(date.Of(e.Date.In(loc))) {
			selected = append(selected, e)
		}
	}
	return selected
}

// MonthTotal is the aggregate of the expenses of one month.
type MonthTotal struct {
	Month time.Month
	Count int
	Total Amount
}

// MonthlyTotals returns the twelve monthly aggregates of year, January first.
func MonthlyTotals(c Collection, year int, loc *time.Location) []MonthTotal {
	totals := make([]MonthTotal, 0, 12)
	for m := time.January; m <= time.December; m++ {
		selected := FilterByMonth(c, m, year, loc)
		totals = append(totals, MonthTotal{Month: m, Count: len(selected), Total: Total(selected)})
	}
	return totals
}
