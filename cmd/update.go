package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id          string
	description string
	amount      string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the description or the amount of an expense" }
func (*updateCmd) Usage() string {
	return `expense update -id <id> [-description <text>] [-amount <number>]

  Changes the description, the amount, or both, of an existing expense.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the expense to update")
	f.StringVar(&c.description, "description", "", "New description")
	f.StringVar(&c.amount, "amount", "", "New amount, a number greater than 0")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := expense.ParseID(c.id)
	if err != nil {
		return failure(err)
	}

	// only the flags explicitly set are updated.
	var description, amount *string
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "description":
			description = &c.description
		case "amount":
			amount = &c.amount
		}
	})

	if _, err := newTracker().Update(id, description, amount); err != nil {
		return failure(err)
	}
	fmt.Fprintf(stdout, "Expense updated successfully (ID: %d)\n", id)
	return subcommands.ExitSuccess
}
