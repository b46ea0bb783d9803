// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/memarchive/internal/archive"
	"golang.org/x/sync/errgroup"
)

// loadEntries reads the given files concurrently into archive entries named
// by the files' base names. The order of the returned entries matches the
// order of paths.
func loadEntries(
	ctx context.Context,
	paths []string,
	method archive.Method,
	jobs int,
) ([]archive.Entry, error) {
	entries := make([]archive.Entry, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for idx, path := range paths {
		idx, path := idx, path

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			entry, err := loadEntry(path, method)
			if err != nil {
				return err
			}

			entries[idx] = entry

			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return entries, nil
}

func loadEntry(path string, method archive.Method) (archive.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return archive.Entry{}, fmt.Errorf("stat: %w", err)
	}

	if !info.Mode().IsRegular() {
		return archive.Entry{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return archive.Entry{}, fmt.Errorf("read: %w", err)
	}

	slog.Debug("Loaded file",
		slog.String("path", path),
		slog.Int("size", len(data)))

	return archive.Entry{
		Name:     filepath.Base(path),
		Data:     data,
		Method:   method,
		Modified: info.ModTime(),
	}, nil
}
