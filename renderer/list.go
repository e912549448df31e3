package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
)

// NoExpenses is printed instead of an empty table or summary.
const NoExpenses = "No expenses found"

// List writes c as a fixed width table, one expense per line in collection
// order. Dates are shown as days in loc.
func List(w io.Writer, c expense.Collection, loc *time.Location) {
	if len(c) == 0 {
		fmt.Fprintln(w, NoExpenses)
		return
	}
	fmt.Fprintln(w, "ID  Date       Description              Amount")
	fmt.Fprintln(w, "--  ---------- ----------------------- --------")
	for _, e := range c {
		day := date.Of(e.Date.In(loc))
		fmt.Fprintf(w, "%-2d  %-10s %-23s %8s\n", e.ID, day, e.Description, e.Amount.Fixed())
	}
}
