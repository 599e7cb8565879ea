// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker subscribes to the OS signals that should end a run.
//
// Every subscriber gets its own channel. The executor passes the first signal of a kind
// on to the running child and the run stops once the child is gone. Watch cancels the
// run context, killing the child, when the same signal arrives a second time.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
)

// DefaultSignals end a run when received twice.
var DefaultSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

// New subscribes a buffered channel to sigs, or to DefaultSignals when sigs is empty.
// Pass the channel to Watch, which unsubscribes it.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	if len(sigs) == 0 {
		sigs = DefaultSignals
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	ctxlog.Debug(ctx, "subscribed to signals", "signals", sigs)

	return sigCh
}
