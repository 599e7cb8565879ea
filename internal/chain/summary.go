// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/iffy/internal/directive"
	"github.com/matt-FFFFFF/iffy/internal/executor"
)

// LineResult describes what happened to one script line.
type LineResult struct {
	Number int
	Line   directive.Line
	First  *executor.Result // nil when nothing was launched for the first directive
	Second *executor.Result // nil when the second directive was absent or gated off
	Action ShouldRunAction  // Gating decision for the second directive
}

// Summary counts what a run did. Per-command failures are counted, not returned as errors.
type Summary struct {
	Lines         int // Lines read
	Malformed     int // Non-blank lines without a first directive
	Launched      int // Directives handed to the executor
	Succeeded     int
	Failed        int
	GatedOff      int // Second directives skipped because the first failed
	ControlErrors *multierror.Error
	Interrupt     os.Signal // Signal that reached a running command and ended the run
}

func (s *Summary) record(n int, res *executor.Result) {
	s.Launched++

	if res.Success() {
		s.Succeeded++
	} else {
		s.Failed++
	}

	if res.Interrupted() && s.Interrupt == nil {
		s.Interrupt = res.Interrupt
	}

	if res.Err != nil && !isCancellation(res.Err) {
		s.ControlErrors = multierror.Append(s.ControlErrors, fmt.Errorf("line %d: %s: %w", n, res.Path, res.Err))
	}
}

// ControlErrorOrNil returns the aggregated process control failures, or nil if there were none.
func (s *Summary) ControlErrorOrNil() error {
	return s.ControlErrors.ErrorOrNil()
}

func isCancellation(err error) bool {
	return errors.Is(err, executor.ErrCancelled) ||
		errors.Is(err, executor.ErrSignalReceived) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
