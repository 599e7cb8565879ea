// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, custom, Logger(New(context.Background(), custom)))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)), "nil logger should fall back to DefaultLogger")
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		ctx           context.Context
		expectDefault bool
	}{
		{
			name:          "context without logger",
			ctx:           context.Background(),
			expectDefault: true,
		},
		{
			name:          "context with nil logger value",
			ctx:           context.WithValue(context.Background(), loggerKey{}, (*slog.Logger)(nil)),
			expectDefault: true,
		},
		{
			name:          "context with wrong type value",
			ctx:           context.WithValue(context.Background(), loggerKey{}, "not a logger"),
			expectDefault: true,
		},
		{
			name:          "context with logger",
			ctx:           New(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
			expectDefault: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.ctx)
			require.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
				return
			}

			assert.NotSame(t, DefaultLogger, logger)
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	ctx := New(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		level   string
	}{
		{name: "debug", logFunc: Debug, level: "DEBUG"},
		{name: "info", logFunc: Info, level: "INFO"},
		{name: "warn", logFunc: Warn, level: "WARN"},
		{name: "error", logFunc: Error, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "message for "+tt.name, "key", "value")

			out := buf.String()
			assert.Contains(t, out, "level="+tt.level)
			assert.Contains(t, out, "message for "+tt.name)
			assert.Contains(t, out, "key=value")
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "DEBUG", want: slog.LevelDebug},
		{value: "info", want: slog.LevelInfo},
		{value: "WARN", want: slog.LevelWarn},
		{value: " ERROR ", want: slog.LevelError},
		{value: "nonsense", want: slog.LevelWarn},
		{value: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Setenv(LogLevelEnvVar, tt.value)
			assert.Equal(t, tt.want, logLevelFromEnv())
		})
	}
}

func TestLevelVarControlsDefaultLoggers(t *testing.T) {
	original := LevelVar.Level()
	defer LevelVar.Set(original)

	LevelVar.Set(slog.LevelError)
	assert.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, JSONLogger.Enabled(context.Background(), slog.LevelInfo))

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromEnv_Format(t *testing.T) {
	tests := []struct {
		value string
		want  *slog.Logger
	}{
		{value: "", want: DefaultLogger},
		{value: "pretty", want: DefaultLogger},
		{value: "json", want: JSONLogger},
		{value: " JSON ", want: JSONLogger},
	}

	for _, tt := range tests {
		t.Run("format "+tt.value, func(t *testing.T) {
			t.Setenv(LogFormatEnvVar, tt.value)
			assert.Same(t, tt.want, FromEnv())
		})
	}
}
