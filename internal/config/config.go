// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the process-wide settings for a run.
package config

const (
	// ScriptPathEnvVar overrides the directory that command names are resolved against.
	ScriptPathEnvVar = "SCRIPT_PATH"
	// DefaultScriptDir is used when ScriptPathEnvVar is not set.
	DefaultScriptDir = "./scripts/"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is resolved once at startup and is not modified afterwards.
type Config struct {
	// ScriptDir is prepended verbatim to command names, so it should end in a path separator.
	ScriptDir string
}

// FromEnv builds a Config using lookup.
// A variable that is set to the empty string still overrides the default.
func FromEnv(lookup LookupFunc) Config {
	if dir, ok := lookup(ScriptPathEnvVar); ok {
		return Config{ScriptDir: dir}
	}

	return Default()
}

// Default returns the built in configuration.
func Default() Config {
	return Config{ScriptDir: DefaultScriptDir}
}

// WithScriptDir returns a copy of c using dir.
func (c Config) WithScriptDir(dir string) Config {
	c.ScriptDir = dir
	return c
}
