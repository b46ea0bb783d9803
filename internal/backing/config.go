// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backing

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/memarchive/internal/memstream"
	"github.com/aibor/memarchive/internal/trailer"
)

// Config is the I/O handle of an in-memory container.
//
// Stream and Buffer refer to the same [memstream.Buffer]. Closing Stream
// does not affect Buffer, so [Config.Snapshot] keeps working after the
// archive engine is done with the stream.
//
// A Config is not safe for concurrent use.
type Config struct {
	Stream  *memstream.Stream
	Trailer *trailer.Record
	Buffer  *memstream.Buffer
}

// Snapshot returns a copy of the current container bytes.
func (c *Config) Snapshot() []byte {
	return c.Buffer.Bytes()
}

// Builder creates [Config]s. The zero value is ready to use and locates
// trailer records with [trailer.Locate].
type Builder struct {
	// Locate finds the trailer record in the stream. If nil,
	// [trailer.Locate] is used.
	Locate trailer.Locator
}

// Configure creates a [Config] for the given data and mode using a zero
// [Builder].
func Configure(data []byte, mode Mode) (*Config, error) {
	return Builder{}.Configure(data, mode)
}

// Configure creates a [Config] for the given data and mode.
//
// In [ModeRead] the data is opened read-only and must contain a trailer
// record. The stream position is left where the locator leaves it.
//
// In [ModeCreate] the data is ignored. The container starts with an empty
// trailer record and then continues like [ModeUpdate].
//
// In [ModeUpdate] the data is opened for reading and writing and must contain
// a trailer record. The stream is positioned at the start.
//
// On error, no [Config] is returned and the stream is closed.
func (b Builder) Configure(data []byte, mode Mode) (*Config, error) {
	streamMode, err := mode.streamMode()
	if err != nil {
		return nil, err
	}

	buf := memstream.NewBuffer(data)

	stream, err := memstream.Open(buf, streamMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamOpen, err)
	}

	slog.Debug("Opened backing stream",
		slog.String("mode", mode.String()),
		slog.Int64("size", stream.Size()))

	record, err := b.setup(stream, mode)
	if err != nil {
		_ = stream.Close()
		return nil, err
	}

	cfg := &Config{
		Stream:  stream,
		Trailer: record,
		Buffer:  buf,
	}

	return cfg, nil
}

func (b Builder) setup(stream *memstream.Stream, mode Mode) (*trailer.Record, error) {
	if mode == ModeCreate {
		err := writeEmptyTrailer(stream)
		if err != nil {
			return nil, err
		}
	}

	record, err := b.locate(stream)
	if err != nil {
		return nil, err
	}

	slog.Debug("Located trailer record",
		slog.Int64("offset", record.Offset),
		slog.Int("entries", int(record.TotalEntries)))

	if mode == ModeRead {
		return record, nil
	}

	_, err = stream.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	return record, nil
}

func (b Builder) locate(stream *memstream.Stream) (*trailer.Record, error) {
	locate := b.Locate
	if locate == nil {
		locate = trailer.Locate
	}

	record, err := locate(stream)
	if err != nil {
		if errors.Is(err, trailer.ErrNotFound) {
			return nil, ErrTrailerNotFound
		}

		return nil, fmt.Errorf("%w: %w", ErrTrailerNotFound, err)
	}

	if record == nil {
		return nil, ErrTrailerNotFound
	}

	return record, nil
}

func writeEmptyTrailer(w io.Writer) error {
	b, err := trailer.Empty().MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrailerWrite, err)
	}

	_, err = w.Write(b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTrailerWrite, err)
	}

	return nil
}
