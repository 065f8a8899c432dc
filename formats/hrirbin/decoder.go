// SPDX-License-Identifier: EPL-2.0

package hrirbin

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/hrirpack/hrir"
)

// File is a decoded HRIR binary.
type File struct {
	Header
	Entries []hrir.Entry
}

// Decode reads a complete file from r.
//
// Memory grows with the bytes actually read, so a header announcing more
// entries or taps than r holds fails with ErrTruncated instead of
// allocating up front.
func Decode(r io.Reader) (*File, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	return decodeEntries(r, h)
}

func decodeEntries(r io.Reader, h Header) (*File, error) {
	f := &File{Header: h}
	size := int64(EntrySize(h.Taps))

	var buf bytes.Buffer
	for i := range h.EntryCount {
		buf.Reset()
		if _, err := io.CopyN(&buf, r, size); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: entry %d of %d", ErrTruncated, i, h.EntryCount)
			}
			return nil, fmt.Errorf("reading entry %d: %w", i, err)
		}
		f.Entries = append(f.Entries, parseEntry(buf.Bytes(), h.Taps))
	}

	return f, nil
}

// ReadFile decodes the file at path. A header describing more data than
// the file holds is rejected before any entry is read.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	r := bufio.NewReader(fh)
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	// Divide rather than multiply: EntryCount*EntrySize can overflow int64
	room := (info.Size() - HeaderSize) / int64(EntrySize(h.Taps))
	if int64(h.EntryCount) > room {
		return nil, fmt.Errorf("%w: header describes %d entries of %d taps, file holds %d bytes",
			ErrTruncated, h.EntryCount, h.Taps, info.Size())
	}

	return decodeEntries(r, h)
}

func parseEntry(buf []byte, taps int) hrir.Entry {
	e := hrir.Entry{
		Azimuth:   math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])),
		Elevation: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])),
		Left:      make([]int16, taps),
		Right:     make([]int16, taps),
	}

	off := 8
	for k := range taps {
		e.Left[k] = int16(binary.LittleEndian.Uint16(buf[off : off+2]))
		off += 2
	}
	for k := range taps {
		e.Right[k] = int16(binary.LittleEndian.Uint16(buf[off : off+2]))
		off += 2
	}

	return e
}

// Nearest returns the entry closest to (az, el) in degrees by great-circle
// distance. Ties go to the earlier entry. ok is false for an empty file.
func (f *File) Nearest(az, el float64) (e hrir.Entry, ok bool) {
	best := -2.0
	idx := -1

	for i, cand := range f.Entries {
		c := cosAngle(az, el, float64(cand.Azimuth), float64(cand.Elevation))
		if c > best {
			best, idx = c, i
		}
	}

	if idx < 0 {
		return hrir.Entry{}, false
	}
	return f.Entries[idx], true
}

// cosAngle is the cosine of the angle between two directions.
func cosAngle(az1, el1, az2, el2 float64) float64 {
	const rad = math.Pi / 180
	e1, e2 := el1*rad, el2*rad
	return math.Sin(e1)*math.Sin(e2) + math.Cos(e1)*math.Cos(e2)*math.Cos((az1-az2)*rad)
}
