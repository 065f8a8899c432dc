// SPDX-License-Identifier: EPL-2.0

package hrir

// FitTaps returns exactly taps samples: the head of x when it is longer,
// x followed by zeros when it is shorter.
func FitTaps(x []float32, taps int) []float32 {
	out := make([]float32, taps)
	copy(out, x)
	return out
}
