// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the default iffy action: executing a script.
package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/matt-FFFFFF/iffy/cmd/iffy/cliconfig"
	"github.com/matt-FFFFFF/iffy/internal/chain"
	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
	"github.com/matt-FFFFFF/iffy/internal/executor"
	"github.com/matt-FFFFFF/iffy/internal/progress"
	"github.com/matt-FFFFFF/iffy/internal/scriptsource"
	"github.com/urfave/cli/v3"
)

// Description is shown in the help of the root command.
const Description = `Run a conditional command chain script.

Each line of the script holds up to two directives:

    <command1>=<param1>;<command2>=<param2>

Every command name resolves to <script dir><command>.sh, which is run with the
parameter as its only argument. The second command runs only if the first one
exited with status 0. Lines without a first directive are skipped.

The script directory is taken from $SCRIPT_PATH, or ./scripts/ when it is unset.

The script file may also be a go-getter source, for example
git::https://github.com/org/repo//chain.txt?ref=v1.
See https://github.com/hashicorp/go-getter.

A script file named like a subcommand ("show" or "help") is taken for the
subcommand, so give it with a directory, for example: iffy ./show

A termination signal is passed on to the running command and ends the run once
that command has finished; iffy then exits with 128 plus the signal number.
A second identical signal kills the running command.
`

const signalExitBase = 128

// Flags returns the flags of the run action.
func Flags() []cli.Flag {
	return []cli.Flag{
		cliconfig.NewScriptPathFlag(),
	}
}

// Action runs the script named by the only positional argument.
// Individual command failures do not change the exit code.
func Action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return cliconfig.UsageError(cmd)
	}

	src := cmd.Args().First()
	cfg := cliconfig.Config(cmd)

	logger := ctxlog.Logger(ctx).With("script", src, "scriptDir", cfg.ScriptDir)
	ctx = ctxlog.New(ctx, logger)

	rc, err := scriptsource.Open(ctx, src)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error opening file %s: %s", src, err.Error()), 1)
	}

	defer rc.Close() //nolint:errcheck

	root := cmd.Root()
	reporter := progress.NewTextReporter(root.Writer, root.ErrWriter)

	exe := executor.New(cfg, reporter)
	exe.Stdout = root.Writer
	exe.Stderr = root.ErrWriter

	summary, err := chain.New(exe, reporter).Run(ctx, rc)

	logger.Info("run finished",
		"lines", summary.Lines,
		"malformed", summary.Malformed,
		"launched", summary.Launched,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"gatedOff", summary.GatedOff,
	)

	if controlErr := summary.ControlErrorOrNil(); controlErr != nil {
		logger.Warn("some commands could not be run", "error", controlErr.Error())
	}

	switch {
	case errors.Is(err, chain.ErrInterrupted):
		return cli.Exit(err.Error(), signalExitCode(summary.Interrupt))
	case errors.Is(err, chain.ErrCancelled):
		return cli.Exit("run cancelled", 1)
	case err != nil:
		return cli.Exit(fmt.Sprintf("Error reading file %s: %s", src, err.Error()), 1)
	}

	return nil
}

// signalExitCode is the status a shell reports for a process ended by sig.
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return signalExitBase + int(s)
	}

	return 1
}
