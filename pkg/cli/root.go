/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datecompare/pkg/logging"
)

const (
	name           = "datecompare"
	versionDefault = "dev"

	exitError    = 1
	exitCanceled = 2
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/datecompare/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with the process arguments and exits on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(exitCanceled)
		}
		os.Exit(exitError)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Compare dates and validate models against date comparison rules",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("debug") {
				level = slog.LevelDebug
			}
			if cmd.Bool("log-json") {
				slog.SetDefault(logging.NewStructuredLogger(os.Stderr, name, version, level))
			} else {
				logging.SetDefaultCLILogger(level)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			compareCmd(),
			validateCmd(),
			conditionsCmd(),
			operatorsCmd(),
		},
	}
}
