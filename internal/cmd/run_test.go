// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/memarchive/internal/cmd"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	exitCode int
	stdout   string
	stderr   string
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	exitCode := cmd.Run(context.Background(), args, cmd.IO{
		Stdin:  &bytes.Buffer{},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return result{
		exitCode: exitCode,
		stdout:   stdout.String(),
		stderr:   stderr.String(),
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) []string {
	t.Helper()

	paths := make([]string, 0, len(files))

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		paths = append(paths, path)
	}

	return paths
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "test.zip")

	inputs := writeFiles(t, dir, map[string]string{
		"first.txt":  "first content\n",
		"second.txt": "second content\n",
	})

	res := run(t, append([]string{
		"-action=create",
		"-method=zstd",
		"-comment=test archive",
		archivePath,
	}, inputs...)...)
	require.Equal(t, 0, res.exitCode, res.stderr)

	res = run(t, archivePath)
	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Contains(t, res.stdout, "zstd     first.txt")
	assert.Contains(t, res.stdout, "zstd     second.txt")
	assert.Contains(t, res.stdout, "comment: test archive")

	third := writeFiles(t, dir, map[string]string{"third.txt": "third\n"})

	res = run(t, append([]string{
		"-action=append",
		"-method=store",
		archivePath,
	}, third...)...)
	require.Equal(t, 0, res.exitCode, res.stderr)

	res = run(t, "-action=cat", archivePath, "third.txt", "first.txt")
	require.Equal(t, 0, res.exitCode, res.stderr)
	assert.Equal(t, "third\nfirst content\n", res.stdout)

	reader, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reader.Close() })

	assert.Equal(t, "test archive", reader.Comment)
	assert.Len(t, reader.File, 3)
}

func TestRun_Export(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "test.zip")

	inputs := writeFiles(t, dir, map[string]string{"init": "#!/bin/sh\n"})

	res := run(t, append([]string{"-action=create", archivePath}, inputs...)...)
	require.Equal(t, 0, res.exitCode, res.stderr)

	res = run(t, "-action=export", archivePath)
	require.Equal(t, 0, res.exitCode, res.stderr)

	reader := cpio.NewReader(bytes.NewBufferString(res.stdout))

	hdr, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "init", hdr.Name)

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(body))

	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	notArchive := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(notArchive, []byte("no container here"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no archive",
			args: []string{},
		},
		{
			name: "missing archive file",
			args: []string{filepath.Join(dir, "missing.zip")},
		},
		{
			name: "not an archive",
			args: []string{notArchive},
		},
		{
			name: "missing input file",
			args: []string{
				"-action=create",
				filepath.Join(dir, "out.zip"),
				filepath.Join(dir, "missing.txt"),
			},
		},
		{
			name: "input is directory",
			args: []string{"-action=create", filepath.Join(dir, "out.zip"), dir},
		},
		{
			name: "duplicate entry names",
			args: []string{
				"-action=create",
				filepath.Join(dir, "out.zip"),
				notArchive,
				notArchive,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			assert.Equal(t, -1, res.exitCode)
			assert.NotEmpty(t, res.stderr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	res := run(t, "-help")
	assert.Equal(t, 0, res.exitCode)
	assert.Contains(t, res.stderr, "Usage of 'memarchive'")
}
