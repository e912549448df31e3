// Package cmd implements the CLI application to keep track of expenses.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

var (
	expenseCommands = []subcommands.Command{&addCmd{}, &listCmd{}, &summaryCmd{}, &updateCmd{}, &deleteCmd{}}
	reportCommands  = []subcommands.Command{&reportCmd{}, &queryCmd{}, &topicCmd{}}
)

// Commands returns all the subcommands of the application.
func Commands() []subcommands.Command { return slices.Concat(expenseCommands, reportCommands) }

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range expenseCommands {
		c.Register(cmd, "expenses")
	}
	for _, cmd := range reportCommands {
		c.Register(cmd, "reports")
	}
}

// IsCommand reports whether name is a registered subcommand or a builtin one.
func IsCommand(name string) bool {
	if slices.Contains([]string{"help", "flags", "commands"}, name) {
		return true
	}
	return slices.ContainsFunc(Commands(), func(c subcommands.Command) bool { return c.Name() == name })
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	EnvFile     = "EXPENSE_FILE"
	EnvCurrency = "EXPENSE_CURRENCY"
	EnvVerbose  = "EXPENSE_VERBOSE"

	DefaultFile = "expenses.json"
)

var (
	expenseFile = flag.String("file", "", "Path to the expenses file (JSON). Defaults to $"+EnvFile+" or "+DefaultFile)
	currency    = flag.String("currency", "", "Currency code used to display totals. Defaults to $"+EnvCurrency+" or "+expense.DefaultCurrency)
	Verbose     = flag.Bool("v", false, "Log debug messages to stderr. Defaults to $"+EnvVerbose)
)

// stdout and stderr are swapped by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Init loads the optional .env file, checks the configuration and sets up logging.
// It must be called after the flags are parsed.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env: %w", err)
	}

	level := slog.LevelWarn
	if IsVerbose() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if err := expense.CheckCurrency(Currency()); err != nil {
		return err
	}
	slog.Debug("configuration", "file", StorePath(), "currency", Currency())
	return nil
}

// StorePath returns the path of the expenses file.
func StorePath() string {
	return setting(*expenseFile, EnvFile, DefaultFile)
}

// Currency returns the currency code used to display amounts.
func Currency() string {
	return setting(*currency, EnvCurrency, expense.DefaultCurrency)
}

// IsVerbose reports whether debug logs are enabled.
func IsVerbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// setting returns the flag value if set, or the environment variable env, or def.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// newTracker opens the application's tracker.
func newTracker() *expense.Tracker {
	return expense.NewTracker(expense.NewStore(StorePath()))
}

// failure reports err to the user and returns the matching exit status.
func failure(err error) subcommands.ExitStatus {
	var readErr *expense.StorageReadError
	var writeErr *expense.StorageWriteError
	if errors.As(err, &readErr) || errors.As(err, &writeErr) {
		slog.Debug("storage failure", "error", err)
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
