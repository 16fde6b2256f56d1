package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"
)

// RunExtension attempts to find and execute an external shop-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Global flags are passed to the extension as SHOP_* environment variables, so
// that an extension written in Go can read them back with LoadConfig.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "shop-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("command", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	// Found external command, execute it
	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ() // Start with existing environment variables
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+ledgerFile)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+currencyEnv(currency))
	cmd.Env = append(cmd.Env, EnvLogFormat+"="+logFormat)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		// If it's not an ExitError or we can't get the status, report a generic error
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)

		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0 // External command executed successfully with exit code 0
}

// currencyEnv is the environment value for cur, see LoadConfig.
func currencyEnv(cur string) string {
	if cur == "" {
		return "none"
	}
	return cur
}
