// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-FFFFFF/iffy/internal/config"
	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
	"github.com/matt-FFFFFF/iffy/internal/directive"
	"github.com/matt-FFFFFF/iffy/internal/progress"
	"github.com/matt-FFFFFF/iffy/internal/signalbroker"
)

const (
	// ExecFailureExitCode is reported when the resolved script could not be executed.
	ExecFailureExitCode = 127
	// FailureExitCode is reported when the child did not terminate normally or never started.
	FailureExitCode = 1
	// FallbackShell runs scripts the kernel refuses to execute because they have no interpreter line.
	FallbackShell = "/bin/sh"
)

var (
	// ErrCouldNotStartProcess is returned when the operating system could not create the child.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrWaitFailed is returned when the child could not be waited on.
	ErrWaitFailed = errors.New("could not wait for process")
	// ErrCancelled is returned when the run was cancelled while the child was running.
	ErrCancelled = errors.New("run cancelled")
	// ErrSignalReceived is returned when a signal was passed on to the child while it ran.
	ErrSignalReceived = errors.New("signal received")
)

// execErrors are the errors a shell maps to exit status 127.
var execErrors = []error{
	exec.ErrNotFound,
	exec.ErrDot,
	fs.ErrNotExist,
	fs.ErrPermission,
	syscall.ENOEXEC,
	syscall.ENOTDIR,
	syscall.ELOOP,
	syscall.ENAMETOOLONG,
	syscall.E2BIG,
}

// Executor runs directives as child processes.
type Executor struct {
	BaseDir  string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Reporter progress.Reporter
	// Signals are passed on to the running child. When nil, Execute subscribes to
	// signalbroker.DefaultSignals for the lifetime of each child.
	Signals chan os.Signal
}

// New creates an Executor resolving against cfg.ScriptDir.
// Children inherit the standard streams of the current process.
func New(cfg config.Config, reporter progress.Reporter) *Executor {
	if reporter == nil {
		reporter = progress.NullReporter{}
	}

	return &Executor{
		BaseDir:  cfg.ScriptDir,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Reporter: reporter,
	}
}

// Execute runs d and waits for it to finish.
// It never returns without reaping a child it has started.
func (e *Executor) Execute(ctx context.Context, d directive.Directive) Result {
	resolved := Resolve(e.BaseDir, d.Command)
	logger := ctxlog.Logger(ctx).With("path", resolved.Path, "parameter", d.Parameter)

	res := Result{
		Path:      resolved.Path,
		Parameter: d.Parameter,
	}

	sigCh := e.Signals
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signal.Stop(sigCh)
	}

	e.report(progress.Event{Type: progress.EventStarted, Path: res.Path, Parameter: res.Parameter})

	logger.Debug("starting process")

	cmd, err := e.start(ctx, logger, resolved.Path, d.Parameter)
	if err != nil {
		if isExecError(err) {
			logger.Debug("executable could not be executed", "error", err)

			res.ExitCode = ExecFailureExitCode
			res.TerminatedNormally = true
			res.LaunchErr = err

			e.report(progress.Event{Type: progress.EventLaunchFailed, Path: res.Path, Err: err})
			e.report(progress.Event{Type: progress.EventExited, Path: res.Path, ExitCode: res.ExitCode})

			return res
		}

		logger.Warn("process could not be started", "error", err)

		return e.controlFailure(res, errors.Join(ErrCouldNotStartProcess, err))
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	done := make(chan struct{})
	forwarded := forwardSignals(logger, cmd.Process, sigCh, done)

	waitErr := cmd.Wait()

	close(done)

	if sig := <-forwarded; sig != nil {
		res.Interrupt = sig
		res.Err = fmt.Errorf("%w: %s", ErrSignalReceived, sig)
	}

	state := cmd.ProcessState

	if state == nil {
		logger.Warn("process could not be waited on", "error", waitErr)
		return e.controlFailure(res, errors.Join(res.Err, ErrWaitFailed, waitErr))
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		logger.Warn("error copying process output", "error", waitErr)
	}

	if ctx.Err() != nil {
		res.Err = errors.Join(res.Err, ErrCancelled, ctx.Err())
	}

	if state.Exited() {
		res.ExitCode = state.ExitCode()
		res.TerminatedNormally = true

		logger.Debug("process finished", "exitCode", res.ExitCode)
		e.report(progress.Event{Type: progress.EventExited, Path: res.Path, ExitCode: res.ExitCode})

		return res
	}

	res.ExitCode = FailureExitCode
	res.Signal = signalName(state)

	logger.Debug("process terminated abnormally", "signal", res.Signal)
	e.report(progress.Event{Type: progress.EventAbnormalExit, Path: res.Path, Signal: res.Signal})

	return res
}

// start launches path with param as its only argument. A file the kernel rejects with
// ENOEXEC is run again through FallbackShell, the way execvp does it.
func (e *Executor) start(ctx context.Context, logger *slog.Logger, path, param string) (*exec.Cmd, error) {
	// A path without a separator is looked up on PATH, everything else is used as is.
	cmd := e.command(ctx, path, param)

	err := cmd.Start()
	if !errors.Is(err, syscall.ENOEXEC) {
		return cmd, err //nolint:wrapcheck
	}

	logger.Debug("no interpreter line, running through the shell", "shell", FallbackShell)

	cmd = e.command(ctx, FallbackShell, cmd.Path, param)

	return cmd, cmd.Start() //nolint:wrapcheck
}

func (e *Executor) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	return cmd
}

// forwardSignals passes every signal from sigCh on to ps until done is closed.
// The returned channel then yields the first signal passed on, or nil.
func forwardSignals(logger *slog.Logger, ps *os.Process, sigCh <-chan os.Signal, done <-chan struct{}) <-chan os.Signal {
	first := make(chan os.Signal, 1)

	go func() {
		defer close(first)

		var got os.Signal

		for {
			select {
			case <-done:
				if got != nil {
					first <- got
				}

				return
			case sig := <-sigCh:
				logger.Info("passing signal on to child", "signal", sig.String())

				if err := ps.Signal(sig); err != nil {
					logger.Info("failed to signal child", "signal", sig.String(), "error", err)
				}

				if got == nil {
					got = sig
				}
			}
		}
	}()

	return first
}

func (e *Executor) controlFailure(res Result, err error) Result {
	res.ExitCode = FailureExitCode
	res.TerminatedNormally = false
	res.Err = err

	e.report(progress.Event{Type: progress.EventControlFailed, Path: res.Path, Err: err})

	return res
}

func (e *Executor) report(ev progress.Event) {
	if e.Reporter == nil {
		return
	}

	ev.Timestamp = time.Now()
	e.Reporter.Report(ev)
}

func isExecError(err error) bool {
	for _, target := range execErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func signalName(state *os.ProcessState) string {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ws.Signal().String()
	}

	return state.String()
}
