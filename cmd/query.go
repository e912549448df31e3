package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the expenses" }
func (*queryCmd) Usage() string {
	return `expense query <jsonpath>

  Evaluates a JSONPath expression against the stored expenses and prints the
  result as JSON.

Usage Examples:
# Descriptions of the expenses above 10.
$ expense query '$[?(@.amount > 10)].description'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	result, err := newTracker().Query(f.Arg(0))
	if err != nil {
		return failure(err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return failure(fmt.Errorf("error encoding result: %w", err))
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
