package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealth/server"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "start the HTTP API" }
func (*serveCmd) Usage() string {
	return `pft serve [-addr <host:port>]

  Starts the JSON HTTP API. Panel endpoints take the CSV ledger as request body.
  See 'pft topic api'. The server stops gracefully on SIGINT or SIGTERM.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Address to listen on. Overrides the config file.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	api := server.NewWebAPI(*zerolog.Ctx(ctx), server.Config{
		Addr:      cfg.Addr,
		Currency:  cfg.Currency,
		CacheSize: cfg.CacheSize,
		Rates:     rates(cfg),
	})
	if err := api.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
