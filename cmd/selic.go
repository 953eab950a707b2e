package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/date"
	"github.com/etnz/wealth/renderer"
	"github.com/google/subcommands"
)

type selicCmd struct {
	date string
}

func (*selicCmd) Name() string     { return "selic" }
func (*selicCmd) Synopsis() string { return "display the SELIC rate history" }
func (*selicCmd) Usage() string {
	return `pft selic [-d <date>]

  Displays the periods of the SELIC rate, the latest first, or the rate in
  effect on a date with -d. Responses are cached on disk for a day.
`
}

func (c *selicCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the rate")
}

func (c *selicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on date.Date
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	schedule, err := rates(cfg).Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.date == "" {
		printMarkdown(renderer.ScheduleMarkdown(schedule))
		return subcommands.ExitSuccess
	}
	rate, err := schedule.Rate(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(stdout, "SELIC on %s: %s\n", on, rate)
	return subcommands.ExitSuccess
}
