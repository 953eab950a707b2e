// Package cmd implements the pft command line application to follow the user's wealth.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wealth"
	"github.com/etnz/wealth/config"
	"github.com/etnz/wealth/selic"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&statsCmd{}, "reports")
	c.Register(&goalCmd{}, "reports")
	c.Register(&institutionsCmd{}, "reports")
	c.Register(&planCmd{}, "reports")
	c.Register(&selicCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")

	c.Register(&serveCmd{}, "services")
	c.Register(&assistCmd{}, "services")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the config file. Defaults to pft.yaml in the current directory or in $HOME/.config/pft")
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (CSV). Overrides the config file, default "+config.DefaultLedgerFile)
	currency   = flag.String("currency", "", "Currency of the ledger. Overrides the config file, default "+config.DefaultCurrency)
	raw        = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal")
	// Verbose turns debug logs on.
	Verbose = flag.Bool("v", false, "Print debug logs")
)

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// loadConfig loads the config file and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// decodeLedger loads the config and reads the ledger file it names.
func decodeLedger() (*config.Config, *wealth.Ledger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(cfg.LedgerFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()

	l, err := wealth.DecodeLedger(f, cfg.Currency)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot decode ledger %q: %w", cfg.LedgerFile, err)
	}
	return cfg, l, nil
}

// computeStats loads the ledger and computes the statistics of its wealth series.
func computeStats() (*config.Config, *wealth.StatsPanel, error) {
	cfg, l, err := decodeLedger()
	if err != nil {
		return nil, nil, err
	}
	p, err := wealth.ComputeStats(l.Wealth())
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

// rates returns the SELIC source configured in cfg.
func rates(cfg *config.Config) selic.Fetcher {
	return selic.NewCached(&selic.Client{HTTP: selic.Daily(""), URL: cfg.SelicURL})
}

// printMarkdown prints md rendered for the terminal, or as is with -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
