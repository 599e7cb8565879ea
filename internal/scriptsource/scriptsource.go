// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scriptsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/iffy/internal/ctxlog"
)

var (
	// ErrOpenScript is returned when a local script cannot be opened.
	ErrOpenScript = errors.New("failed to open script")
	// ErrScriptIsDir is returned when the script path names a directory.
	ErrScriptIsDir = errors.New("script path is a directory")
	// ErrGetScript is returned when a remote script cannot be fetched.
	ErrGetScript = errors.New("failed to get script")
)

// IsRemote reports whether src has to be fetched with go-getter rather than opened
// as a local file. The getters are asked in the order go-getter itself asks them.
func IsRemote(src string) bool {
	local, err := isLocalPath(src, workingDir())
	return err == nil && !local
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return wd
}

// Open returns a reader for the script at src. The caller must close it.
func Open(ctx context.Context, src string) (io.ReadCloser, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty path", ErrOpenScript)
	}

	pwd := workingDir()

	local, err := isLocalPath(src, pwd)
	if err != nil {
		return nil, err
	}

	if !local {
		ctxlog.Debug(ctx, "fetching remote script", "source", src)
		return fetch(ctx, src, pwd)
	}

	fs := FsFactory()

	info, err := fs.Stat(src)
	if err != nil {
		return nil, errors.Join(ErrOpenScript, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrScriptIsDir, src)
	}

	f, err := fs.Open(src)
	if err != nil {
		return nil, errors.Join(ErrOpenScript, err)
	}

	ctxlog.Debug(ctx, "opened local script", "path", src, "bytes", info.Size())

	return f, nil
}
