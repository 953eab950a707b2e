package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/wealth/config"
	"github.com/rs/zerolog/log"
)

// Environment variables passing the global flags to extensions. The config ones are read by
// config.Load, so an extension built on it sees the same settings as pft.
const (
	EnvLedgerFile = config.EnvPrefix + "_LEDGER_FILE"
	EnvCurrency   = config.EnvPrefix + "_CURRENCY"
	EnvConfig     = config.EnvPrefix + "_CONFIG"
	EnvVerbose    = config.EnvPrefix + "_VERBOSE"
)

// RunExtension attempts to find and execute an external pft-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pft-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("command", externalCmdName).Msg("no extension in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	for name, value := range map[string]string{EnvLedgerFile: *ledgerFile, EnvCurrency: *currency, EnvConfig: *configFile} {
		if value != "" {
			cmd.Env = append(cmd.Env, name+"="+value)
		}
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
