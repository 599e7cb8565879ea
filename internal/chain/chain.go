// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
	"github.com/matt-FFFFFF/iffy/internal/directive"
	"github.com/matt-FFFFFF/iffy/internal/executor"
	"github.com/matt-FFFFFF/iffy/internal/progress"
)

var (
	// ErrReadScript is returned when the script source fails mid-read.
	ErrReadScript = errors.New("failed to read script")
	// ErrCancelled is returned when the context is cancelled between lines.
	ErrCancelled = errors.New("run cancelled")
	// ErrInterrupted is returned when a signal reached a running command.
	ErrInterrupted = errors.New("run interrupted by signal")
)

// Executor runs a single directive to completion.
type Executor interface {
	Execute(ctx context.Context, d directive.Directive) executor.Result
}

var _ Executor = (*executor.Executor)(nil)

// Runner processes scripts line by line.
type Runner struct {
	Executor Executor
	Reporter progress.Reporter
}

// New creates a Runner. A nil reporter drops gating events.
func New(exec Executor, reporter progress.Reporter) *Runner {
	if reporter == nil {
		reporter = progress.NullReporter{}
	}

	return &Runner{
		Executor: exec,
		Reporter: reporter,
	}
}

// Run reads src to the end, running each line before reading the next.
// The returned error is only set when reading failed, ctx was cancelled or a signal
// reached a running command; the summary is valid in every case.
func (r *Runner) Run(ctx context.Context, src io.Reader) (*Summary, error) {
	logger := ctxlog.Logger(ctx)
	summary := &Summary{}

	err := forEachLine(ctx, src, func(n int, text string) error {
		summary.Lines++
		lr := r.RunLine(ctx, n, text, summary)
		logger.Debug("line processed", "line", n, "directives", lr.Line.Len(), "second", lr.Action.String())

		if summary.Interrupt != nil {
			return fmt.Errorf("%w: %s at line %d", ErrInterrupted, summary.Interrupt, n)
		}

		return nil
	})

	return summary, err
}

// forEachLine calls fn for every line of src, including its line ending, until fn fails.
// ctx is checked before each line is read.
func forEachLine(ctx context.Context, src io.Reader, fn func(n int, text string) error) error {
	reader := bufio.NewReader(src)

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrCancelled, err)
		}

		text, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return errors.Join(ErrReadScript, readErr)
		}

		// A final line without a trailing newline is still a line.
		if text != "" {
			if err := fn(n, text); err != nil {
				return err
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// RunLine parses and runs one line, updating summary if it is not nil.
func (r *Runner) RunLine(ctx context.Context, n int, text string, summary *Summary) LineResult {
	if summary == nil {
		summary = &Summary{}
	}

	lr := LineResult{
		Number: n,
		Line:   directive.ParseLine(text),
	}

	if lr.Line.First == nil {
		lr.Action = ShouldRunActionAbsent

		if strings.TrimRight(text, "\r\n") != "" {
			summary.Malformed++
			ctxlog.Debug(ctx, "skipping line without a first directive", "line", n)
		}

		return lr
	}

	first := r.Executor.Execute(ctx, *lr.Line.First)
	lr.First = &first
	summary.record(n, &first)

	lr.Action = ShouldRunSecond(lr.First)

	if lr.Line.Second == nil || first.Interrupted() {
		return lr
	}

	if lr.Action != ShouldRunActionRun {
		summary.GatedOff++
		r.Reporter.Report(progress.Event{Type: progress.EventSecondSkipped, Path: first.Path, ExitCode: first.ExitCode})

		return lr
	}

	r.Reporter.Report(progress.Event{Type: progress.EventSecondRunning, Path: first.Path})

	second := r.Executor.Execute(ctx, *lr.Line.Second)
	lr.Second = &second
	summary.record(n, &second)

	return lr
}
