// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger is a pretty console handler writing to stderr, so that
// log records never mix with the diagnostic lines iffy prints on stdout.
// The level is read once from the IFFY_LOG_LEVEL environment variable.
package ctxlog
