// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scriptsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
)

const fetchDirPattern = "iffy-getter-*"

// detectGetter returns the first getter that claims src, in go-getter's own order.
// It returns nil if no getter claims it, which happens for an unknown forced getter.
func detectGetter(src, pwd string) (getter.Getter, error) {
	for _, g := range getter.Getters {
		req := &getter.Request{Src: src, Pwd: pwd}

		ok, err := getter.Detect(req, g)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrGetScript, src, err)
		}

		if ok {
			return g, nil
		}
	}

	return nil, nil //nolint:nilnil
}

// isLocalPath reports whether src is a plain path the file getter would copy.
// file:// URLs and file:: sources are fetched like any other source.
func isLocalPath(src, pwd string) (bool, error) {
	g, err := detectGetter(src, pwd)
	if err != nil {
		return false, err
	}

	if _, ok := g.(*getter.FileGetter); !ok {
		return false, nil
	}

	u, err := url.Parse(src)
	if err != nil {
		return true, nil //nolint:nilerr
	}

	// A single letter scheme is a Windows drive.
	return len(u.Scheme) <= 1 && u.Opaque == "", nil
}

// fetchedScript is a downloaded script. Closing it removes the download.
type fetchedScript struct {
	*os.File
	dir string
}

func (f *fetchedScript) Close() error {
	return errors.Join(f.File.Close(), os.RemoveAll(f.dir))
}

// fetch downloads src into a temporary directory and opens the script.
// A source with a "//" sub-path is fetched as a directory (a repository or archive)
// and the sub-path names the script inside it; anything else is fetched as a single file.
func fetch(ctx context.Context, src, pwd string) (io.ReadCloser, error) {
	dir, err := os.MkdirTemp("", fetchDirPattern)
	if err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	rc, err := fetchInto(ctx, dir, src, pwd)
	if err != nil {
		os.RemoveAll(dir) //nolint:errcheck
		return nil, err
	}

	return rc, nil
}

func fetchInto(ctx context.Context, dir, src, pwd string) (io.ReadCloser, error) {
	source, subPath := getter.SourceDirSubdir(src)

	req := &getter.Request{
		Src:     source,
		Dst:     filepath.Join(dir, "script"),
		Pwd:     pwd,
		GetMode: getter.ModeFile,
	}

	if subPath != "" {
		req.Dst = filepath.Join(dir, "source")
		req.GetMode = getter.ModeDir
	}

	client := &getter.Client{
		DisableSymlinks: true,
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrGetScript, src, err)
	}

	path := res.Dst

	if subPath != "" {
		if path, err = getter.SubdirGlob(res.Dst, subPath); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrGetScript, src, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrScriptIsDir, src)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	return &fetchedScript{File: f, dir: dir}, nil
}
