// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported      = errors.New("only 16, 24 and 32-bit PCM supported")
	ErrNotStereo             = errors.New("impulse response must have at least 2 channels")
	ErrChannelLengthMismatch = errors.New("left and right channels differ in length")
)
