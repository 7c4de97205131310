package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokerledger/cmd"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// RunCmd starts the Discord admin console
type RunCmd struct{}

func (c *RunCmd) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	return cmd.Run(ctx)
}

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Run     RunCmd           `cmd:"" default:"1" help:"Run the Discord admin console"`
	Migrate cmd.MigrateCmd   `cmd:"" help:"Manage the database schema"`
	Report  cmd.ReportCmd    `cmd:"" help:"Print the settlement and statistics of a game"`
}

func main() {
	// A local .env is optional; the environment always wins
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerledger"),
		kong.Description("Poker night bookkeeping: roster, games, rounds, buy-ins and settlement"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
