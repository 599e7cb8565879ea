// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show implements "iffy show", which prints what a script would run.
package show

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/iffy/cmd/iffy/cliconfig"
	"github.com/matt-FFFFFF/iffy/internal/chain"
	"github.com/matt-FFFFFF/iffy/internal/scriptsource"
	"github.com/urfave/cli/v3"
)

const (
	outputFlag    = "output"
	outputText    = "text"
	outputYAML    = "yaml"
	defaultOutput = outputText
)

var (
	// ErrUnknownOutput is returned for an --output value other than text or yaml.
	ErrUnknownOutput = errors.New("unknown output format")
	// ErrWritePlan is returned when the plan cannot be written.
	ErrWritePlan = errors.New("failed to write plan")
)

// NewCommand returns the show command, which parses a script and prints the resolved
// commands without running any of them.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the commands a script would run, without running them",
		ArgsUsage: "<script_file>",
		Flags: []cli.Flag{
			cliconfig.NewScriptPathFlag(),
			&cli.StringFlag{
				Name:    outputFlag,
				Aliases: []string{"o"},
				Usage:   "Output format, text or yaml",
				Value:   defaultOutput,
				Validator: func(s string) error {
					if s != outputText && s != outputYAML {
						return fmt.Errorf("%w: %s", ErrUnknownOutput, s)
					}

					return nil
				},
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return cliconfig.UsageError(cmd)
	}

	src := cmd.Args().First()
	cfg := cliconfig.Config(cmd)

	rc, err := scriptsource.Open(ctx, src)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error opening file %s: %s", src, err.Error()), 1)
	}

	defer rc.Close() //nolint:errcheck

	plan, err := chain.BuildPlan(ctx, cfg.ScriptDir, rc)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error reading file %s: %s", src, err.Error()), 1)
	}

	w := cmd.Root().Writer

	switch cmd.String(outputFlag) {
	case outputYAML:
		b, err := yaml.Marshal(plan)
		if err != nil {
			return cli.Exit(errors.Join(ErrWritePlan, err).Error(), 1)
		}

		if _, err := w.Write(b); err != nil {
			return cli.Exit(errors.Join(ErrWritePlan, err).Error(), 1)
		}
	default:
		if err := plan.WriteText(w); err != nil {
			return cli.Exit(errors.Join(ErrWritePlan, err).Error(), 1)
		}
	}

	return nil
}
