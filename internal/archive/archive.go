// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"time"

	"github.com/aibor/memarchive/internal/backing"
	"github.com/aibor/memarchive/internal/memstream"
	"github.com/aibor/memarchive/internal/trailer"
)

// Entry is a file to add to an [Archive].
type Entry struct {
	Name     string
	Data     []byte
	Method   Method
	Modified time.Time
}

// EntryInfo describes an entry present in an [Archive].
type EntryInfo struct {
	Name           string
	Method         Method
	Size           uint64
	CompressedSize uint64
	CRC32          uint32
	Modified       time.Time
}

// Archive is a ZIP container held in memory.
//
// Create a new one with [Create] or open existing container bytes with
// [Open] or [OpenForUpdate]. The current bytes are available with
// [Archive.Bytes] at any time, even after [Archive.Close].
type Archive struct {
	cfg     *backing.Config
	mode    backing.Mode
	comment *string
}

// Create creates a new, empty [Archive].
func Create() (*Archive, error) {
	return open(nil, backing.ModeCreate)
}

// Open opens the given container bytes read-only.
func Open(data []byte) (*Archive, error) {
	return open(data, backing.ModeRead)
}

// OpenForUpdate opens the given container bytes for modification.
func OpenForUpdate(data []byte) (*Archive, error) {
	return open(data, backing.ModeUpdate)
}

func open(data []byte, mode backing.Mode) (*Archive, error) {
	cfg, err := backing.Configure(data, mode)
	if err != nil {
		return nil, fmt.Errorf("configure backing: %w", err)
	}

	return &Archive{cfg: cfg, mode: mode}, nil
}

// Trailer returns the current trailer record of the container.
func (a *Archive) Trailer() *trailer.Record {
	return a.cfg.Trailer
}

// Comment returns the container comment.
func (a *Archive) Comment() string {
	if a.comment != nil {
		return *a.comment
	}

	return string(a.cfg.Trailer.Comment)
}

// SetComment sets the container comment. It is written on the next call of
// [Archive.Add] or [Archive.Flush].
func (a *Archive) SetComment(comment string) error {
	if a.mode == backing.ModeRead {
		return ErrReadOnly
	}

	if len(comment) > trailer.MaxCommentLen {
		return trailer.ErrCommentTooLong
	}

	a.comment = &comment

	return nil
}

// Entries returns information about all entries in container order.
func (a *Archive) Entries() ([]EntryInfo, error) {
	reader, err := a.reader()
	if err != nil {
		return nil, err
	}

	infos := make([]EntryInfo, 0, len(reader.File))

	for _, file := range reader.File {
		infos = append(infos, EntryInfo{
			Name:           file.Name,
			Method:         Method(file.Method),
			Size:           file.UncompressedSize64,
			CompressedSize: file.CompressedSize64,
			CRC32:          file.CRC32,
			Modified:       file.Modified,
		})
	}

	return infos, nil
}

// ReadFile returns the uncompressed content of the named entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	reader, err := a.reader()
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(reader, name)
	if err != nil {
		return nil, fmt.Errorf("read entry: %w", err)
	}

	return data, nil
}

// FS returns an [fs.FS] of the current container content. It is not updated
// by later modifications.
func (a *Archive) FS() (fs.FS, error) {
	return a.reader()
}

// Add adds the given entries to the container.
//
// The container is rebuilt: present entries are copied without
// recompression, then the new entries are written followed by the central
// directory and the trailer record. On error the container is left as it
// was.
func (a *Archive) Add(entries ...Entry) error {
	if a.mode == backing.ModeRead {
		return ErrReadOnly
	}

	reader, err := a.reader()
	if err != nil {
		return err
	}

	present, err := readRawEntries(reader)
	if err != nil {
		return err
	}

	err = validateEntries(present, entries)
	if err != nil {
		return err
	}

	comment := reader.Comment
	if a.comment != nil {
		comment = *a.comment
	}

	err = a.rewrite(present, entries, comment)
	if err != nil {
		return err
	}

	a.comment = nil

	slog.Debug("Rewrote archive",
		slog.Int("present", len(present)),
		slog.Int("added", len(entries)),
		slog.Int64("size", a.cfg.Stream.Size()))

	return nil
}

// Flush writes pending changes like a changed comment.
func (a *Archive) Flush() error {
	return a.Add()
}

// Bytes returns a copy of the current container bytes.
func (a *Archive) Bytes() []byte {
	return a.cfg.Snapshot()
}

// Close closes the underlying stream. [Archive.Bytes] keeps working.
func (a *Archive) Close() error {
	return a.cfg.Stream.Close() //nolint:wrapcheck
}

func (a *Archive) reader() (*zip.Reader, error) {
	stream := a.cfg.Stream

	// Size reports 0 for a closed stream, Seek fails with its error.
	_, err := stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("read container: %w", err)
	}

	reader, err := newReader(stream, stream.Size())
	if err != nil {
		return nil, fmt.Errorf("read container: %w", err)
	}

	return reader, nil
}

// rewrite writes the complete container into a scratch buffer first. The
// backing stream is only replaced once the new container is complete, so a
// failure leaves the present container untouched.
func (a *Archive) rewrite(present []rawEntry, entries []Entry, comment string) error {
	scratch := memstream.NewBuffer(nil)

	out, err := memstream.Open(scratch, "w+b")
	if err != nil {
		return fmt.Errorf("open scratch: %w", err)
	}
	defer out.Close()

	writer := newWriter(out)

	for _, entry := range present {
		err := entry.writeTo(writer)
		if err != nil {
			return err
		}
	}

	for _, entry := range entries {
		err := writeEntry(writer, entry)
		if err != nil {
			return err
		}
	}

	err = writer.SetComment(comment)
	if err != nil {
		return fmt.Errorf("set comment: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("finish container: %w", err)
	}

	record, err := trailer.Locate(out)
	if err != nil {
		return fmt.Errorf("locate trailer: %w", err)
	}

	err = a.replace(scratch.Bytes())
	if err != nil {
		return err
	}

	a.cfg.Trailer = record

	return nil
}

// replace overwrites the backing data with data and rewinds the stream.
func (a *Archive) replace(data []byte) error {
	stream := a.cfg.Stream

	err := stream.Truncate(0)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	_, err = stream.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("rewind: %w", err)
	}

	_, err = stream.Write(data)
	if err != nil {
		return fmt.Errorf("write container: %w", err)
	}

	_, err = stream.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("rewind: %w", err)
	}

	return nil
}

func writeEntry(writer *zip.Writer, entry Entry) error {
	header := &zip.FileHeader{
		Name:     entry.Name,
		Method:   uint16(entry.Method),
		Modified: entry.Modified,
	}

	file, err := writer.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", entry.Name, err)
	}

	_, err = file.Write(entry.Data)
	if err != nil {
		return fmt.Errorf("write entry %s: %w", entry.Name, err)
	}

	return nil
}

func validateEntries(present []rawEntry, entries []Entry) error {
	names := make(map[string]bool, len(present)+len(entries))

	for _, entry := range present {
		names[entry.header.Name] = true
	}

	for _, entry := range entries {
		if entry.Name == "" {
			return ErrInvalidName
		}

		if len(entry.Name) > math.MaxUint16 {
			return fmt.Errorf("%w: name has %d bytes", ErrInvalidName, len(entry.Name))
		}

		if !entry.Method.valid() {
			return fmt.Errorf("%w: %s", ErrUnknownMethod, entry.Method)
		}

		if names[entry.Name] {
			return fmt.Errorf("%w: %s", ErrEntryExists, entry.Name)
		}

		names[entry.Name] = true
	}

	return nil
}
