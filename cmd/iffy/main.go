// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the iffy command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/iffy"
	"github.com/matt-FFFFFF/iffy/cmd/iffy/run"
	"github.com/matt-FFFFFF/iffy/cmd/iffy/show"
	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
	"github.com/matt-FFFFFF/iffy/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:        "iffy",
		Usage:       "run a two step conditional command chain script",
		UsageText:   "iffy [--script-path DIR] <script_file>",
		ArgsUsage:   "<script_file>",
		Description: run.Description,
		Flags:       run.Flags(),
		Action:      run.Action,
		Commands: []*cli.Command{
			show.NewCommand(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Version:   fmt.Sprintf("%s (commit: %s)", iffy.Version, iffy.Commit),
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.FromEnv())
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	// Exit codes carried by cli.Exit are handled by the cli framework.
	err := newRootCmd().Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
