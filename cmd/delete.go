package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense" }
func (*deleteCmd) Usage() string {
	return `expense delete -id <id>

  Deletes an expense. Other expenses keep their ID.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the expense to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := expense.ParseID(c.id)
	if err != nil {
		return failure(err)
	}
	if _, err := newTracker().Delete(id); err != nil {
		return failure(err)
	}
	fmt.Fprintln(stdout, "Expense deleted successfully")
	return subcommands.ExitSuccess
}
