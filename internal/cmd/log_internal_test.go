// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { setupLogging(io.Discard, false) })

	var out bytes.Buffer

	setupLogging(&out, false)
	slog.Debug("hidden")
	slog.Warn("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "msg=shown")
	assert.NotContains(t, out.String(), "source=")

	out.Reset()

	setupLogging(&out, true)
	slog.Debug("details")

	assert.Contains(t, out.String(), "msg=details")
	assert.Contains(t, out.String(), "cmd=memarchive")
	assert.Contains(t, out.String(), "source=")
}
