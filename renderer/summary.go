package renderer

import (
	"github.com/etnz/expense"
)

// Summary renders s as a single line, e.g. "Total expenses for March: $12.50".
func Summary(s expense.Summary, currency string) string {
	period := s.Period()
	if s.Count == 0 {
		if period == "" || s.Recorded == 0 {
			return NoExpenses
		}
		return NoExpenses + " for " + period
	}
	label := "Total expenses"
	if period != "" {
		label += " for " + period
	}
	return label + ": " + s.Total.In(currency).String()
}
