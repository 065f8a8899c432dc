// SPDX-License-Identifier: EPL-2.0

package hrirbin

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/hrirpack/hrir"
)

// Encode writes the header and all entries, in the given order, to w.
// Every entry must hold exactly taps samples per ear.
func Encode(w io.Writer, sampleRate, taps int, entries []hrir.Entry) error {
	h := Header{
		Version:    Version,
		SampleRate: sampleRate,
		Taps:       taps,
		EntryCount: len(entries),
	}

	header, err := h.MarshalBinary()
	if err != nil {
		return err
	}

	// Check everything before the first byte goes out
	for i, e := range entries {
		if len(e.Left) != taps || len(e.Right) != taps {
			return fmt.Errorf("%w: entry %d has %d/%d samples, want %d",
				ErrTapMismatch, i, len(e.Left), len(e.Right), taps)
		}
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	// One reusable buffer per entry
	buf := make([]byte, EntrySize(taps))
	for i, e := range entries {
		putEntry(buf, e)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return nil
}

func putEntry(buf []byte, e hrir.Entry) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(e.Azimuth))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(e.Elevation))

	off := 8
	for _, s := range e.Left {
		binary.LittleEndian.PutUint16(buf[off:off+2], uint16(s))
		off += 2
	}
	for _, s := range e.Right {
		binary.LittleEndian.PutUint16(buf[off:off+2], uint16(s))
		off += 2
	}
}

// Marshal returns the complete file contents.
func Marshal(sampleRate, taps int, entries []hrir.Entry) ([]byte, error) {
	h := Header{SampleRate: sampleRate, Taps: taps, EntryCount: len(entries)}

	var buf bytes.Buffer
	buf.Grow(int(h.FileSize()))

	if err := Encode(&buf, sampleRate, taps, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes entries and atomically replaces path with the result,
// creating parent directories as needed. It returns the file size.
func WriteFile(path string, sampleRate, taps int, entries []hrir.Entry) (int64, error) {
	data, err := Marshal(sampleRate, taps, entries)
	if err != nil {
		return 0, err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place. path is never truncated or partially written.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing %q: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %q: %w", tmpName, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return fmt.Errorf("renaming to %q: %w", path, err)
	}

	committed = true
	return nil
}
