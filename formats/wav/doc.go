// SPDX-License-Identifier: EPL-2.0

// Package wav decodes stereo impulse responses from WAV files and writes
// converted entries back out as WAV for listening.
//
// It uses the github.com/go-audio/wav library for RIFF parsing and encoding.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16, 24 and 32-bit
//   - Two or more channels (channel 0 = left ear, channel 1 = right ear)
//   - Any sample rate
//
// # Decoding
//
//	file, _ := os.Open("H0e045a.wav")
//	resp, err := wav.Decoder{}.DecodeResponse(file)
//	// resp.Left and resp.Right hold float64 samples in [-1, 1]
//
// # Writing
//
//	out, _ := os.Create("entry.wav")
//	err := wav.WriteStereo16(out, 24000, entry.Left, entry.Right)
//
// # Error Handling
//
// The package defines several errors:
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the file is not 16, 24 or 32-bit integer PCM
//   - ErrNotStereo: the file has a single channel
//   - ErrUnsupportedWavLayout: the chunk layout could not be parsed
package wav
