// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

// ScriptExtension is appended to every command name.
const ScriptExtension = ".sh"

// ResolvedCommand is the executable a directive maps to.
type ResolvedCommand struct {
	Path string `yaml:"path"`
}

// Resolve concatenates baseDir, command and ScriptExtension.
// No separator is inserted and the file is not checked for existence.
func Resolve(baseDir, command string) ResolvedCommand {
	return ResolvedCommand{Path: baseDir + command + ScriptExtension}
}
