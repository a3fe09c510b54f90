package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "ffwrapped",
		Usage:   "Best possible fantasy football lineups, week by week",
		Version: version,
		Commands: []*cli.Command{
			serveCommand(),
			syncCommand(),
			lineupCommand(),
		},
	}
}

// loadEnv reads .env for the commands that talk to ESPN.
func loadEnv(c *cli.Context) error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}
	return nil
}
