package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
	year  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the total of expenses" }
func (*summaryCmd) Usage() string {
	return `expense summary [-month <1-12>] [-year <yyyy>]

  Displays the total of all expenses, or of a month of the current year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to summarize (1-12), in the current year unless -year is set")
	f.StringVar(&c.year, "year", "", "Year to summarize")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		month time.Month
		year  int
		err   error
	)
	if c.month != "" {
		if month, err = expense.ParseMonth(c.month); err != nil {
			return failure(err)
		}
	}
	if c.year != "" {
		if year, err = expense.ParseYear(c.year); err != nil {
			return failure(err)
		}
	}

	s, err := newTracker().Summary(month, year)
	if err != nil {
		return failure(err)
	}
	fmt.Fprintln(stdout, renderer.Summary(s, Currency()))
	return subcommands.ExitSuccess
}
