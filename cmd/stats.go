package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct {
	chart string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display the statistics of the wealth series" }
func (*statsCmd) Usage() string {
	return `pft stats [-chart absolute|relative]

  Displays the wealth on each date of the ledger with its growth, its moving
  averages over 6, 12 and 24 observations, the daily gain and the total change.

  With -chart, only the columns of a chart are displayed:
    absolute  growth and its moving averages
    relative  relative growth and rolling relative evolutions
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.chart, "chart", "", "Display only the columns of a chart: absolute or relative")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, p, err := computeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.chart == "" {
		printMarkdown(renderer.StatsMarkdown(p, cfg.Currency))
		return subcommands.ExitSuccess
	}

	chart, err := p.Chart(c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.ChartMarkdown(chart, cfg.Currency))
	return subcommands.ExitSuccess
}
