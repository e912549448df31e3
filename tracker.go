package expense

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Tracker applies the user operations to a Store.
//
// Every operation validates its input before loading the collection, so a
// failing operation never modifies the file.
type Tracker struct {
	store *Store
	now   func() time.Time
}

// NewTracker returns a Tracker over store, using the system clock.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// WithClock returns a copy of t that reads the current time from now.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	return &Tracker{store: t.store, now: now}
}

// Store returns the underlying store.
func (t *Tracker) Store() *Store { return t.store }

// ParseID parses an expense id.
func ParseID(str string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidID, str)
	}
	return id, nil
}

// ParseMonth parses a month number, between 1 and 12.
func ParseMonth(str string) (time.Month, error) {
	m, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidMonth, str)
	}
	return time.Month(m), nil
}

// ParseYear parses a four digits year.
func ParseYear(str string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || y < 1 || y > 9999 {
		return 0, fmt.Errorf("%w %q", ErrInvalidYear, str)
	}
	return y, nil
}

// ParseDescription trims str and rejects it if nothing is left.
func ParseDescription(str string) (string, error) {
	d := strings.TrimSpace(str)
	if d == "" {
		return "", ErrEmptyDescription
	}
	return d, nil
}

// Add records a new expense dated now and returns it.
func (t *Tracker) Add(description, amount string) (Expense, error) {
	a, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, err
	}
	d, err := ParseDescription(description)
	if err != nil {
		return Expense{}, err
	}

	c, err := t.store.Load()
	if err != nil {
		return Expense{}, err
	}
	e := Expense{
		ID:          NextID(c),
		Amount:      a,
		Description: d,
		Date:        t.now(),
	}
	c = append(c, e)
	if err := t.store.Save(c); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// List returns all the expenses in insertion order.
func (t *Tracker) List() (Collection, error) {
	return t.store.Load()
}

// Summary is the total of the expenses in a period.
type Summary struct {
	Month time.Month // 0 when not restricted to a month.
	Year  int        // 0 when not restricted to a year.
	Count int
	Total Amount
	// Recorded is the number of expenses in the store, whatever the period.
	Recorded int

	currentYear bool
}

// Period names the summarized period: "" for all expenses, "March" for a month
// of the current year, "March 2024" for another year, "2024" for a whole year.
func (s Summary) Period() string {
	switch {
	case s.Month != 0 && s.currentYear:
		return s.Month.String()
	case s.Month != 0:
		return fmt.Sprintf("%s %d", s.Month, s.Year)
	case s.Year != 0:
		return strconv.Itoa(s.Year)
	default:
		return ""
	}
}

// Summary totals the expenses.
//
// With month and year both 0 it covers all expenses. With a month, it covers
// that month of year, or of the current year if year is 0. With only a year
// it covers that whole year.
func (t *Tracker) Summary(month time.Month, year int) (Summary, error) {
	if month < 0 || month > time.December {
		return Summary{}, fmt.Errorf("%w, got %d", ErrInvalidMonth, month)
	}
	if year < 0 || year > 9999 {
		return Summary{}, fmt.Errorf("%w %d", ErrInvalidYear, year)
	}

	c, err := t.store.Load()
	if err != nil {
		return Summary{}, err
	}

	now := t.now()
	s := Summary{Month: month, Year: year, Recorded: len(c)}
	switch {
	case month != 0:
		if s.Year == 0 {
			s.Year = now.Year()
		}
		c = FilterByMonth(c, month, s.Year, now.Location())
	case year != 0:
		c = FilterByYear(c, year, now.Location())
	}
	s.currentYear = s.Year == now.Year()
	s.Count = len(c)
	s.Total = Total(c)
	return s, nil
}

// Report is the per month breakdown of a year.
type Report struct {
	Year   int
	Months []MonthTotal
	Count  int
	Total  Amount
}

// Report returns the monthly totals of year, or of the current year if year is 0.
func (t *Tracker) Report(year int) (Report, error) {
	if year < 0 || year > 9999 {
		return Report{}, fmt.Errorf("%w %d", ErrInvalidYear, year)
	}
	c, err := t.store.Load()
	if err != nil {
		return Report{}, err
	}
	now := t.now()
	if year == 0 {
		year = now.Year()
	}
	r := Report{Year: year, Months: MonthlyTotals(c, year, now.Location())}
	for _, m := range r.Months {
		r.Count += m.Count
		r.Total = r.Total.Add(m.Total)
	}
	return r, nil
}

// Update changes the description, the amount or both of the expense id.
// A nil argument is left unchanged, but at least one must be given.
func (t *Tracker) Update(id int, description, amount *string) (Expense, error) {
	if description == nil && amount == nil {
		return Expense{}, ErrMissingArguments
	}
	var (
		d   string
		a   Amount
		err error
	)
	if description != nil {
		if d, err = ParseDescription(*description); err != nil {
			return Expense{}, err
		}
	}
	if amount != nil {
		if a, err = ParseAmount(*amount); err != nil {
			return Expense{}, err
		}
	}

	c, err := t.store.Load()
	if err != nil {
		return Expense{}, err
	}
	i, err := FindByID(c, id)
	if err != nil {
		return Expense{}, err
	}
	if description != nil {
		c[i].Description = d
	}
	if amount != nil {
		c[i].Amount = a
	}
	if err := t.store.Save(c); err != nil {
		return Expense{}, err
	}
	return c[i], nil
}

// Delete removes the expense id and returns it. Other expenses keep their id and order.
func (t *Tracker) Delete(id int) (Expense, error) {
	c, err := t.store.Load()
	if err != nil {
		return Expense{}, err
	}
	i, err := FindByID(c, id)
	if err != nil {
		return Expense{}, err
	}
	deleted := c[i]
	c = slices.Delete(c, i, i+1)
	if err := t.store.Save(c); err != nil {
		return Expense{}, err
	}
	return deleted, nil
}
