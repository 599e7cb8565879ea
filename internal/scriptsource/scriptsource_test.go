// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scriptsource

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)

	return fs
}

func TestOpen_Local(t *testing.T) {
	stubFs(t, map[string]string{
		"/work/chain.txt": "build=myapp;test=myapp\n",
	})

	rc, err := Open(context.Background(), "/work/chain.txt")
	require.NoError(t, err)

	defer rc.Close() //nolint:errcheck

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "build=myapp;test=myapp\n", string(b))
}

func TestOpen_Errors(t *testing.T) {
	fs := stubFs(t, map[string]string{})
	require.NoError(t, fs.MkdirAll("/work/dir", 0o755))

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "empty path", src: "", wantErr: ErrOpenScript},
		{name: "missing file", src: "/work/missing.txt", wantErr: ErrOpenScript},
		{name: "directory", src: "/work/dir", wantErr: ErrScriptIsDir},
		{name: "unknown forced getter", src: "nope::https://example.com/chain.txt", wantErr: ErrGetScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := Open(context.Background(), tt.src)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, rc)
		})
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{src: "chain.txt", want: false},
		{src: "./scripts/chain.txt", want: false},
		{src: "/abs/chain.txt", want: false},
		{src: "https://example.com/repo//chain.txt", want: true},
		{src: "git::github.com/org/repo//chain.txt", want: true},
		{src: "github.com/org/repo//chain.txt", want: true},
		{src: "s3::https://s3.amazonaws.com/bucket//chain.txt", want: true},
		{src: "file:///abs/chain.txt", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRemote(tt.src))
		})
	}
}

func TestOpen_RemoteFileStreamsAndCleansUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chain.txt" {
			http.NotFound(w, r)
			return
		}

		_, _ = io.WriteString(w, "deploy=prod\n")
	}))
	defer srv.Close()

	rc, err := Open(context.Background(), srv.URL+"/chain.txt")
	require.NoError(t, err)

	fetched, ok := rc.(*fetchedScript)
	require.True(t, ok, "remote scripts are read from the download")
	assert.DirExists(t, fetched.dir)

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "deploy=prod\n", string(b))

	require.NoError(t, rc.Close())
	assert.NoDirExists(t, fetched.dir)
}

func TestOpen_RemoteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	rc, err := Open(context.Background(), srv.URL+"/missing.txt")
	require.ErrorIs(t, err, ErrGetScript)
	assert.Nil(t, rc)
}

func TestOpen_FileURLWithSubPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "chain.txt"), []byte("build=myapp\n"), 0o644))

	rc, err := Open(context.Background(), "file://"+filepath.ToSlash(dir)+"//scripts/chain.txt")
	require.NoError(t, err)

	defer rc.Close() //nolint:errcheck

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "build=myapp\n", string(b))
}
