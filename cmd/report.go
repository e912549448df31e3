package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	year     string
	markdown bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the monthly totals of a year" }
func (*reportCmd) Usage() string {
	return `expense report [-year <yyyy>] [-md]

  Displays a table with the total of each month of the year.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "year", "", "Year of the report, defaults to the current year")
	f.BoolVar(&c.markdown, "md", false, "Print raw markdown instead of rendering it")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var year int
	if c.year != "" {
		var err error
		if year, err = expense.ParseYear(c.year); err != nil {
			return failure(err)
		}
	}

	r, err := newTracker().Report(year)
	if err != nil {
		return failure(err)
	}
	md := renderer.ReportMarkdown(r, Currency())
	if c.markdown {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
