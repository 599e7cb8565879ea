// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
)

// Watch reads sigCh until ctx is done.
// The second signal of a given type stops the subscription and calls cancel.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			signal.Stop(sigCh)
			return
		case sig := <-sigCh:
			if _, ok := seen[sig]; ok {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, cancelling run", "signal", sig.String())
				signal.Stop(sigCh)
				cancel()

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, passing it on to the child", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
