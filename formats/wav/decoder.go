// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/hrirpack/hrir"
)

// Decoder reads a stereo impulse response from a PCM WAV file.
type Decoder struct{}

// DecodeResponse decodes the whole file. Channel 0 is the left ear and
// channel 1 the right ear; further channels are ignored.
func (Decoder) DecodeResponse(r io.Reader) (*hrir.Response, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}
	if format.NumChannels < 2 {
		return nil, ErrNotStereo
	}

	scale, err := fullScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav samples: %w", err)
	}

	return deinterleave(buf, format.NumChannels, format.SampleRate, scale), nil
}

// fullScale is the magnitude of the most negative sample for bitDepth.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("%w: got %d-bit", ErrOnlyPCMSupported, bitDepth)
	}
}

// deinterleave splits the first two channels of buf into a Response.
func deinterleave(buf *goaudio.IntBuffer, channels, sampleRate int, scale float64) *hrir.Response {
	frames := len(buf.Data) / channels
	resp := &hrir.Response{
		SampleRate: sampleRate,
		Left:       make([]float64, frames),
		Right:      make([]float64, frames),
	}

	for f := range frames {
		base := f * channels
		resp.Left[f] = float64(buf.Data[base]) / scale
		resp.Right[f] = float64(buf.Data[base+1]) / scale
	}

	return resp
}
