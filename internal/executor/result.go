// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import "os"

// Result is produced once per launch attempt.
type Result struct {
	Path               string    // Resolved executable path
	Parameter          string    // Argument the executable was given
	ExitCode           int       // Exit status; 127 when the executable could not be executed
	TerminatedNormally bool      // False when the child was killed by a signal or never ran
	Signal             string    // Terminating signal, if any
	LaunchErr          error     // Why the executable could not be executed
	Interrupt          os.Signal // First signal passed on to the child while it ran
	Err                error     // Process creation, wait, cancellation or signal failure
}

// Success reports whether the child terminated normally with exit code 0.
func (r Result) Success() bool {
	return r.TerminatedNormally && r.ExitCode == 0
}

// LaunchFailed reports whether the exit code was synthesised from an exec failure.
func (r Result) LaunchFailed() bool {
	return r.LaunchErr != nil
}

// Interrupted reports whether a signal reached the child while it ran.
func (r Result) Interrupted() bool {
	return r.Interrupt != nil
}
