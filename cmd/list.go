package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses" }
func (*listCmd) Usage() string {
	return `expense list

  Lists all expenses in the order they were added.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	expenses, err := newTracker().List()
	if err != nil {
		return failure(err)
	}
	renderer.List(stdout, expenses, time.Local)
	return subcommands.ExitSuccess
}
