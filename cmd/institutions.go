package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type institutionsCmd struct {
	date string
}

func (*institutionsCmd) Name() string     { return "institutions" }
func (*institutionsCmd) Synopsis() string { return "display the balances by institution" }
func (*institutionsCmd) Usage() string {
	return `pft institutions [-d <date>]

  Displays a table with one row per ledger date and one column per institution.
  With -d, displays the balances recorded on that date only.
`
}

func (c *institutionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the balances. Must be a ledger date.")
}

func (c *institutionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on date.Date
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cfg, l, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.date == "" {
		printMarkdown(renderer.PivotMarkdown(l.Pivot(), cfg.Currency))
		return subcommands.ExitSuccess
	}

	balances, err := l.BalancesOn(on)
	if errors.Is(err, wealth.ErrUnknownDate) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalancesMarkdown(on, balances, cfg.Currency))
	return subcommands.ExitSuccess
}
