// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/hrirpack/hrir"
)

// pcmReader is the part of aiff.Decoder used after the header is parsed
type pcmReader interface {
	Format() *goaudio.Format
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

// Decoder reads a stereo impulse response from an AIFF file.
type Decoder struct{}

// DecodeResponse decodes the whole file. Channel 0 is the left ear and
// channel 1 the right ear.
func (Decoder) DecodeResponse(r io.Reader) (*hrir.Response, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decodePCM(dec, int(dec.BitDepth))
}

func decodePCM(dec pcmReader, bitDepth int) (*hrir.Response, error) {
	var scale float64
	switch bitDepth {
	case 16:
		scale = 32768.0
	case 24:
		scale = 8388608.0
	case 32:
		scale = 2147483648.0
	default:
		return nil, fmt.Errorf("%w: got %d-bit", ErrOnlyPCMSupported, bitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}
	if format.NumChannels < 2 {
		return nil, ErrNotStereo
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff samples: %w", err)
	}

	channels := format.NumChannels
	frames := len(buf.Data) / channels
	resp := &hrir.Response{
		SampleRate: format.SampleRate,
		Left:       make([]float64, frames),
		Right:      make([]float64, frames),
	}
	for f := range frames {
		resp.Left[f] = float64(buf.Data[f*channels]) / scale
		resp.Right[f] = float64(buf.Data[f*channels+1]) / scale
	}

	return resp, nil
}
