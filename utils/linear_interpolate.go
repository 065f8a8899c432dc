// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate returns the value at fractional position x between y0
// and y1 (0 <= x <= 1).
func LinearInterpolate(y0, y1, x float64) float64 {
	return y0 + x*(y1-y0)
}

// SampleAt evaluates the piecewise linear curve through samples at the
// fractional index pos. Positions outside [0, len(samples)-1] are clamped
// to the edge samples. samples must not be empty.
func SampleAt(samples []float64, pos float64) float64 {
	last := len(samples) - 1
	if pos <= 0 {
		return samples[0]
	}
	if pos >= float64(last) {
		return samples[last]
	}

	i := int(pos)
	return LinearInterpolate(samples[i], samples[i+1], pos-float64(i))
}
