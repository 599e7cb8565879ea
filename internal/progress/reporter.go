// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
)

var _ Reporter = (*TextReporter)(nil)

// TextReporter writes one line per event.
// Failures to launch or control a process go to Err, everything else to Out.
type TextReporter struct {
	Out io.Writer
	Err io.Writer
}

// NewTextReporter creates a TextReporter writing to out and errOut.
func NewTextReporter(out, errOut io.Writer) *TextReporter {
	return &TextReporter{Out: out, Err: errOut}
}

// Report implements Reporter.
// Write errors are ignored; the diagnostic stream is best effort.
func (r *TextReporter) Report(e Event) {
	switch e.Type {
	case EventStarted:
		fmt.Fprintf(r.Out, "Executing command: %s with parameter: %s\n", e.Path, e.Parameter) //nolint:errcheck
	case EventExited:
		fmt.Fprintf(r.Out, "Command exited with status: %d\n", e.ExitCode) //nolint:errcheck
	case EventAbnormalExit:
		fmt.Fprintln(r.Out, "Command did not exit normally.") //nolint:errcheck
	case EventLaunchFailed:
		fmt.Fprintf(r.Err, "Could not execute %s: %v\n", e.Path, e.Err) //nolint:errcheck
	case EventControlFailed:
		fmt.Fprintf(r.Err, "Command failed to run: %v\n", e.Err) //nolint:errcheck
	case EventSecondRunning:
		fmt.Fprintln(r.Out, "First command succeeded, executing second command.") //nolint:errcheck
	case EventSecondSkipped:
		fmt.Fprintln(r.Out, "First command failed, skipping second command.") //nolint:errcheck
	}
}
