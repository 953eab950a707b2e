package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pft fmt [-o <file>]

  Validates and formats the ledger file. This command reads all balances,
  reports every malformed line, drops repeated balances, sorts them by date
  then institution, and writes them back with dates as dd/mm/yyyy and amounts
  with the currency decimals.
  By default, it formats the ledger in-place. Use -o to write elsewhere, "-" for stdout.

Usage Examples:
# Writes to the default ledger file.
$ pft fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file, \"-\" for stdout. Formats the ledger in-place by default.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	output := p.outputFile
	if output == "-" {
		if err := wealth.EncodeLedger(stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if output == "" {
		output = cfg.LedgerFile
	}
	if err := encodeLedger(output, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Ledger file %q has been formatted.\n", output)
	return subcommands.ExitSuccess
}

// encodeLedger writes the ledger in its canonical form to filename.
func encodeLedger(filename string, ledger *wealth.Ledger) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	if err := wealth.EncodeLedger(f, ledger); err != nil {
		f.Close()
		return fmt.Errorf("error writing ledger file %q: %w", filename, err)
	}
	return f.Close()
}
