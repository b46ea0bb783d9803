// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package memstream provides an in-memory substitute for a random access
// file. A [Buffer] owns the bytes, a [Stream] opened on it with [Open] behaves
// like a file descriptor opened with the matching fopen mode: reads stop at
// the end of data, writes past the end leave zero filled gaps and writes
// extending past the end from within the data discard the stale tail.
//
// Neither type is safe for concurrent use. Callers sharing a [Buffer] between
// goroutines must serialize access themselves.
package memstream
