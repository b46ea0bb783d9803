// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/memarchive/internal/archive"
	"github.com/aibor/memarchive/internal/initramfs"
	"github.com/aibor/memarchive/internal/memstream"
)

const archiveFileMode = 0o644

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func openArchive(flags *flags) (*archive.Archive, error) {
	if flags.action == ActionCreate {
		container, err := archive.Create()
		if err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}

		return container, nil
	}

	data, err := os.ReadFile(flags.archivePath)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	open := archive.Open
	if flags.action == ActionAppend {
		open = archive.OpenForUpdate
	}

	container, err := open(data)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	return container, nil
}

func modify(ctx context.Context, flags *flags, container *archive.Archive) error {
	entries, err := loadEntries(ctx, flags.files, flags.method, flags.jobs)
	if err != nil {
		return fmt.Errorf("load files: %w", err)
	}

	if flags.comment != "" {
		err = container.SetComment(flags.comment)
		if err != nil {
			return fmt.Errorf("set comment: %w", err)
		}
	}

	err = container.Add(entries...)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	data := container.Bytes()

	err = os.WriteFile(flags.archivePath, data, archiveFileMode)
	if err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	slog.Debug("Wrote archive",
		slog.String("path", flags.archivePath),
		slog.Int("entries", len(entries)),
		slog.Int("size", len(data)))

	return nil
}

func list(container *archive.Archive, output io.Writer) error {
	infos, err := container.Entries()
	if err != nil {
		return fmt.Errorf("entries: %w", err)
	}

	for _, info := range infos {
		fmt.Fprintf(output, "%10d %10d %-8s %s\n",
			info.Size, info.CompressedSize, info.Method, info.Name)
	}

	if comment := container.Comment(); comment != "" {
		fmt.Fprintf(output, "comment: %s\n", comment)
	}

	return nil
}

func cat(container *archive.Archive, names []string, output io.Writer) error {
	if len(names) == 0 {
		infos, err := container.Entries()
		if err != nil {
			return fmt.Errorf("entries: %w", err)
		}

		for _, info := range infos {
			names = append(names, info.Name)
		}
	}

	for _, name := range names {
		data, err := container.ReadFile(name)
		if err != nil {
			return fmt.Errorf("cat %s: %w", name, err)
		}

		_, err = output.Write(data)
		if err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return nil
}

func export(container *archive.Archive, output io.Writer) error {
	fsys, err := container.FS()
	if err != nil {
		return fmt.Errorf("archive fs: %w", err)
	}

	writer := initramfs.NewCPIOWriter(output)

	err = initramfs.WriteFS(fsys, writer)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return writer.Close()
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	container, err := openArchive(flags)
	if err != nil {
		return err
	}
	defer container.Close()

	slog.Debug("Opened archive",
		slog.String("path", flags.archivePath),
		slog.String("action", flags.action.String()))

	switch flags.action {
	case ActionCreate, ActionAppend:
		return modify(ctx, flags, container)
	case ActionCat:
		return cat(container, flags.files, cfg.Stdout)
	case ActionExport:
		return export(container, cfg.Stdout)
	default:
		return list(container, cfg.Stdout)
	}
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	slog.Error(err.Error())

	var (
		streamErr *memstream.Error
		openErr   *memstream.OpenError
	)

	if errors.As(err, &streamErr) || errors.As(err, &openErr) {
		return int(memstream.Errno(err))
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags := newFlags(cfg.Stderr)

	err := flags.ParseArgs(args)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
