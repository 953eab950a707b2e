package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/wealth"
	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type planCmd struct {
	start    string
	target   float64
	salary   float64
	expenses float64
	rate     string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "estimate the savings potential of a year" }
func (*planCmd) Usage() string {
	return `pft plan -start <date> -target <amount> -salary <amount> -expenses <amount> [-rate <percent>]

  Estimates how much the wealth can grow in a year from the savings and from
  the interests on the wealth at the start date, and compares it to the target.

  The rate is a yearly rate in percent (13.25 is 13.25%). It defaults to the
  SELIC rate on the start date.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", date.Today().String(), "Start date of the plan, the wealth on that date earns the interests")
	f.Float64Var(&c.target, "target", 0, "Targeted wealth increase in a year")
	f.Float64Var(&c.salary, "salary", 0, "Net monthly salary")
	f.Float64Var(&c.expenses, "expenses", 0, "Monthly expenses")
	f.StringVar(&c.rate, "rate", "", "Yearly interest rate in percent. Defaults to the SELIC rate on the start date.")
}

func (c *planCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
		return subcommands.ExitUsageError
	}
	in := wealth.PlanInput{Salary: c.salary, Expenses: c.expenses, Goal: c.target}
	if c.rate != "" {
		r, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(c.rate), "%"), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -rate: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.Rate = wealth.Percent(r)
	}

	cfg, p, err := computeStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, in.StartWealth, err = p.Anchor(start); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.rate == "" {
		schedule, err := rates(cfg).Fetch(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\nUse -rate to set the rate.\n", err)
			return subcommands.ExitFailure
		}
		if in.Rate, err = schedule.Rate(start); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\nUse -rate to set the rate.\n", err)
			return subcommands.ExitUsageError
		}
		zerolog.Ctx(ctx).Info().Str("date", start.String()).Str("rate", in.Rate.String()).Msg("using the SELIC rate")
	}

	if err := in.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderPlan(wealth.NewPlan(in), cfg.Currency))
	return subcommands.ExitSuccess
}
