package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addCmd struct {
	description string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `expense add -description <text> -amount <number>

  Records a new expense, dated now, and prints its ID.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "Expense description")
	f.StringVar(&c.amount, "amount", "", "Expense amount, a number greater than 0")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newTracker().Add(c.description, c.amount)
	if err != nil {
		return failure(err)
	}
	fmt.Fprintf(stdout, "Expense added successfully (ID: %d)\n", e.ID)
	return subcommands.ExitSuccess
}
