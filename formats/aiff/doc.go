// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes stereo impulse responses from AIFF files.
//
// This package uses github.com/go-audio/aiff to parse the container. AIFF
// stores samples big-endian; the decoder handles byte order and returns
// float64 samples normalized to [-1, 1].
//
// # Supported Formats
//
//   - PCM 16, 24 and 32-bit
//   - Two or more channels (channel 0 = left ear, channel 1 = right ear)
//   - Any sample rate
//
// AIFF-C compressed files (.aifc) are not supported.
//
// # Decoding
//
//	file, _ := os.Open("subject_az30_el0.aiff")
//	resp, err := aiff.Decoder{}.DecodeResponse(file)
//	if errors.Is(err, aiff.ErrNotStereo) {
//	    // mono measurement
//	}
package aiff
