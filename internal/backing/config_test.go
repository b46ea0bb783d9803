// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package backing_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/aibor/memarchive/internal/backing"
	"github.com/aibor/memarchive/internal/memstream"
	"github.com/aibor/memarchive/internal/trailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipData(tb testing.TB, files map[string]string) []byte {
	tb.Helper()

	var buf bytes.Buffer

	writer := zip.NewWriter(&buf)

	for name, content := range files {
		file, err := writer.Create(name)
		require.NoError(tb, err)

		_, err = file.Write([]byte(content))
		require.NoError(tb, err)
	}

	require.NoError(tb, writer.Close())

	return buf.Bytes()
}

func cursor(tb testing.TB, stream *memstream.Stream) int64 {
	tb.Helper()

	pos, err := stream.Seek(0, io.SeekCurrent)
	require.NoError(tb, err)

	return pos
}

func TestConfigure_Create(t *testing.T) {
	cfg, err := backing.Configure(nil, backing.ModeCreate)
	require.NoError(t, err)

	assert.True(t, cfg.Trailer.IsEmpty(), "trailer empty")
	assert.Zero(t, cursor(t, cfg.Stream), "cursor")
	assert.Len(t, cfg.Snapshot(), trailer.Size)

	t.Run("ignores given data", func(t *testing.T) {
		cfg, err := backing.Configure([]byte("previous content"), backing.ModeCreate)
		require.NoError(t, err)

		expected, err := trailer.Empty().MarshalBinary()
		require.NoError(t, err)

		assert.Equal(t, expected, cfg.Snapshot())
	})

	t.Run("stream is writable", func(t *testing.T) {
		cfg, err := backing.Configure(nil, backing.ModeCreate)
		require.NoError(t, err)

		_, err = cfg.Stream.Write([]byte("PK"))
		require.NoError(t, err)
	})
}

func TestConfigure_CreateReadRoundTrip(t *testing.T) {
	created, err := backing.Configure(nil, backing.ModeCreate)
	require.NoError(t, err)

	snapshot := created.Snapshot()

	cfg, err := backing.Configure(snapshot, backing.ModeRead)
	require.NoError(t, err)

	assert.True(t, cfg.Trailer.IsEmpty())
	assert.Zero(t, cfg.Trailer.TotalEntries)
	assert.Zero(t, cfg.Trailer.DirectorySize)
	assert.Zero(t, cfg.Trailer.DirectoryOffset)

	reader, err := zip.NewReader(cfg.Stream, cfg.Stream.Size())
	require.NoError(t, err)
	assert.Empty(t, reader.File)
}

func TestConfigure_Read(t *testing.T) {
	data := zipData(t, map[string]string{"a": "alpha", "b": "beta"})

	cfg, err := backing.Configure(data, backing.ModeRead)
	require.NoError(t, err)

	assert.Equal(t, uint16(2), cfg.Trailer.TotalEntries)
	assert.Equal(t, data, cfg.Snapshot())

	_, err = cfg.Stream.Write([]byte("x"))
	require.ErrorIs(t, err, memstream.ErrNotWritable)

	t.Run("input is copied", func(t *testing.T) {
		input := bytes.Clone(data)

		cfg, err := backing.Configure(input, backing.ModeRead)
		require.NoError(t, err)

		input[0] = 'X'

		assert.Equal(t, data, cfg.Snapshot())
	})
}

func TestConfigure_TrailerNotFound(t *testing.T) {
	inputs := map[string][]byte{
		"nil":           nil,
		"text":          []byte("this is definitely not a container"),
		"local headers": []byte("PK\x03\x04PK\x01\x02"),
		"zeros":         make([]byte, 1024),
	}

	for _, mode := range []backing.Mode{backing.ModeRead, backing.ModeUpdate} {
		for name, input := range inputs {
			t.Run(mode.String()+"/"+name, func(t *testing.T) {
				cfg, err := backing.Configure(input, mode)
				require.ErrorIs(t, err, backing.ErrTrailerNotFound)
				assert.Nil(t, cfg)
			})
		}
	}
}

func TestConfigure_Update(t *testing.T) {
	data := zipData(t, map[string]string{"a": "alpha"})

	cfg, err := backing.Configure(data, backing.ModeUpdate)
	require.NoError(t, err)

	assert.Equal(t, uint16(1), cfg.Trailer.TotalEntries)
	assert.Zero(t, cursor(t, cfg.Stream), "cursor rewound")

	_, err = cfg.Stream.Write([]byte("XY"))
	require.NoError(t, err)

	snapshot := cfg.Snapshot()
	assert.Len(t, snapshot, len(data), "in range overwrite keeps size")
	assert.Equal(t, []byte("XY"), snapshot[:2])
}

func TestConfigure_SnapshotAfterClose(t *testing.T) {
	cfg, err := backing.Configure(nil, backing.ModeCreate)
	require.NoError(t, err)

	writer := zip.NewWriter(cfg.Stream)

	file, err := writer.Create("file.txt")
	require.NoError(t, err)

	_, err = file.Write([]byte("written before close"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	expected := cfg.Snapshot()

	require.NoError(t, cfg.Stream.Close())

	actual := cfg.Snapshot()
	assert.Equal(t, expected, actual)

	reader, err := zip.NewReader(bytes.NewReader(actual), int64(len(actual)))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)
	assert.Equal(t, "file.txt", reader.File[0].Name)
}

func TestConfigure_InvalidMode(t *testing.T) {
	_, err := backing.Configure(nil, backing.Mode(42))
	require.ErrorIs(t, err, backing.ErrInvalidMode)
}

func TestBuilder_Locate(t *testing.T) {
	t.Run("custom", func(t *testing.T) {
		expected := &trailer.Record{TotalEntries: 7}

		var called int

		builder := backing.Builder{
			Locate: func(rs io.ReadSeeker) (*trailer.Record, error) {
				called++
				return expected, nil
			},
		}

		cfg, err := builder.Configure([]byte("anything"), backing.ModeUpdate)
		require.NoError(t, err)

		assert.Equal(t, 1, called)
		assert.Same(t, expected, cfg.Trailer)
	})

	t.Run("error", func(t *testing.T) {
		locateErr := errors.New("scan failed")

		builder := backing.Builder{
			Locate: func(io.ReadSeeker) (*trailer.Record, error) {
				return nil, locateErr
			},
		}

		_, err := builder.Configure(nil, backing.ModeRead)
		require.ErrorIs(t, err, backing.ErrTrailerNotFound)
		require.ErrorIs(t, err, locateErr)
	})

	t.Run("nil record", func(t *testing.T) {
		builder := backing.Builder{
			Locate: func(io.ReadSeeker) (*trailer.Record, error) {
				return nil, nil //nolint:nilnil
			},
		}

		_, err := builder.Configure(nil, backing.ModeRead)
		require.ErrorIs(t, err, backing.ErrTrailerNotFound)
	})
}

func TestMode(t *testing.T) {
	for _, expected := range []backing.Mode{
		backing.ModeRead,
		backing.ModeCreate,
		backing.ModeUpdate,
	} {
		var actual backing.Mode

		require.NoError(t, actual.Set(expected.String()))
		assert.Equal(t, expected, actual)
	}

	var mode backing.Mode

	require.ErrorIs(t, mode.Set("delete"), backing.ErrInvalidMode)
	assert.Equal(t, "mode(42)", backing.Mode(42).String())
}
