package cmd

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix prefixes the name of the programs run as extensions.
const ExtensionPrefix = "expense-"

// RunExtension attempts to find and execute an external expense-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("extension not found in PATH", "extension", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass the resolved configuration as environment variables.
	cmd.Env = append(os.Environ(),
		EnvFile+"="+StorePath(),
		EnvCurrency+"="+Currency(),
		EnvVerbose+"="+strconv.FormatBool(IsVerbose()),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		failure(err)
		return true, 1
	}
	return true, 0
}
