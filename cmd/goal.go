package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type goalCmd struct {
	start  string
	target float64
	chart  string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "track a yearly goal of wealth increase" }
func (*goalCmd) Usage() string {
	return `pft goal -start <date> -target <amount> [-chart fractions|targets|reach]

  Compares, month by month, the wealth to a linear target going from the wealth
  on the start date to that wealth plus the target amount twelve months later.

  The start date must be within the ledger dates. Dates are yyyy-mm-dd or dd/mm/yyyy.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "Start date of the goal")
	f.Float64Var(&c.target, "target", 0, "Targeted wealth increase in a year")
	f.StringVar(&c.chart, "chart", "", "Display only the columns of a chart: fractions, targets or reach")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, p, err := computeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	g, err := wealth.TrackGoal(p, start, c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.chart == "" {
		printMarkdown(renderer.GoalMarkdown(g, cfg.Currency))
		return subcommands.ExitSuccess
	}
	chart, err := g.Chart(c.chart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.ChartMarkdown(chart, cfg.Currency))
	return subcommands.ExitSuccess
}
