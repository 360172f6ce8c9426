// Command focdemo runs a scripted tour of the snippet ledger: it submits
// snippets, tips them, casts votes, requests and fulfills a hint, and
// prints the resulting balances, stats, and event log.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "focdemo",
		Usage: "scripted demo of the community snippet ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a TOML config file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			&Demo,
			&Roles,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Roles prints the role identities the demo would run with.
var Roles = cli.Command{
	Action: roles,
	Name:   "roles",
	Usage:  "print the effective role identities",
}

func roles(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	fmt.Printf("curator:   %s\n", cfg.Curator)
	fmt.Printf("treasury:  %s\n", cfg.Treasury)
	fmt.Printf("fulfiller: %s\n", cfg.Fulfiller)
	return nil
}
