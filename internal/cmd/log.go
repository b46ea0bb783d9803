// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
)

// setupLogging sets the default logger. Only warnings and errors are logged
// unless debug is set, which also adds the source location and tags every
// record with the command name.
func setupLogging(writer io.Writer, debug bool) {
	options := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}

	var attrs []slog.Attr

	if debug {
		options.Level = slog.LevelDebug
		options.AddSource = true
		attrs = append(attrs, slog.String("cmd", name))
	}

	handler := slog.NewTextHandler(writer, options).WithAttrs(attrs)

	slog.SetDefault(slog.New(handler))
}
