// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteStereo16 writes a 16-bit PCM stereo WAV at sampleRate with left and
// right interleaved. The encoder patches chunk sizes on close, so w must be
// seekable (an *os.File works).
func WriteStereo16(w io.WriteSeeker, sampleRate int, left, right []int16) error {
	if len(left) != len(right) {
		return ErrChannelLengthMismatch
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           make([]int, 2*len(left)),
		SourceBitDepth: 16,
	}
	for i := range left {
		buf.Data[2*i] = int(left[i])
		buf.Data[2*i+1] = int(right[i])
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 2, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}

	return nil
}
