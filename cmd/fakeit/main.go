// Package main provides the fakeit command line tool for generating fake
// data fixtures.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	defaults, err := loadDefaults()
	if err != nil {
		logger.Error("failed to load environment defaults", "error", err)
		os.Exit(1)
	}

	cmd := &cli.Command{
		Name:    "fakeit",
		Usage:   "Generate human-plausible fake data fixtures",
		Version: version,
		Commands: []*cli.Command{
			generateCommand(defaults),
			kindsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
