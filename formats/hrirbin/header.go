// SPDX-License-Identifier: EPL-2.0

package hrirbin

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	// Magic opens every file.
	Magic = "HRIRBIN1"
	// Version is the only format version written and accepted.
	Version uint32 = 1
	// HeaderSize is magic + version + sample rate + taps + entry count.
	HeaderSize = 8 + 4*4
)

// Header is the fixed part at the start of a file.
type Header struct {
	Version    uint32
	SampleRate int
	Taps       int
	EntryCount int
}

// EntrySize is the byte length of one entry with taps samples per ear.
func EntrySize(taps int) int { return 8 + 4*taps }

// FileSize is the byte length of a file described by h.
func (h Header) FileSize() int64 {
	return HeaderSize + int64(h.EntryCount)*int64(EntrySize(h.Taps))
}

func (h Header) validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"sample rate", h.SampleRate},
		{"tap count", h.Taps},
		{"entry count", h.EntryCount},
	} {
		if f.v < 0 || f.v > math.MaxInt32 {
			return fmt.Errorf("%w: %s %d", ErrHeaderRange, f.name, f.v)
		}
	}
	return nil
}

// MarshalBinary returns the HeaderSize byte encoding of h.
func (h Header) MarshalBinary() ([]byte, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, HeaderSize)
	copy(buf[0:8], Magic)
	binary.LittleEndian.PutUint32(buf[8:12], h.Version)
	binary.LittleEndian.PutUint32(buf[12:16], uint32(int32(h.SampleRate)))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(int32(h.Taps)))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(int32(h.EntryCount)))

	return buf, nil
}

// DecodeHeader reads and checks the header at the start of r.
func DecodeHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("%w: header", ErrTruncated)
		}
		return Header{}, fmt.Errorf("reading header: %w", err)
	}

	if string(buf[0:8]) != Magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Version:    binary.LittleEndian.Uint32(buf[8:12]),
		SampleRate: int(int32(binary.LittleEndian.Uint32(buf[12:16]))),
		Taps:       int(int32(binary.LittleEndian.Uint32(buf[16:20]))),
		EntryCount: int(int32(binary.LittleEndian.Uint32(buf[20:24]))),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
