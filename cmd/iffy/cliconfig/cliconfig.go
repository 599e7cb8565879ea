// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cliconfig holds the flags shared by the iffy commands.
package cliconfig

import (
	"fmt"
	"os"

	"github.com/matt-FFFFFF/iffy/internal/config"
	"github.com/urfave/cli/v3"
)

// ScriptPathFlag is the name of the flag overriding SCRIPT_PATH.
const ScriptPathFlag = "script-path"

// NewScriptPathFlag returns a fresh --script-path flag.
func NewScriptPathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    ScriptPathFlag,
		Aliases: []string{"d"},
		Usage: fmt.Sprintf("Directory command names are resolved against. Overrides $%s (default %q). "+
			"It is used as a prefix, so include the trailing separator.",
			config.ScriptPathEnvVar, config.DefaultScriptDir),
		TakesFile: true,
		OnlyOnce:  true,
		Local:     true,
	}
}

// Config resolves the run configuration from the environment and the command flags.
func Config(cmd *cli.Command) config.Config {
	cfg := config.FromEnv(os.LookupEnv)

	if cmd.IsSet(ScriptPathFlag) {
		cfg = cfg.WithScriptDir(cmd.String(ScriptPathFlag))
	}

	return cfg
}

// UsageError is returned when the positional arguments are wrong.
func UsageError(cmd *cli.Command) error {
	return cli.Exit(fmt.Sprintf("Usage: %s <script_file>", cmd.FullName()), 1)
}
