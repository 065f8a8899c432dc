// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 clips x to [-1, 1] and maps it to a signed 16-bit sample
// using round(x * 32767). Halfway values round to even.
func Float64ToInt16(x float64) int16 {
	// Clamp first; scaling an unclamped value can round past ±32767
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.RoundToEven(x * 32767.0))
}

// Float32ToInt16 is Float64ToInt16 computed in single precision: x * 32767
// is rounded to float32 before rounding to an integer. Near a half step the
// result can differ by one from Float64ToInt16(float64(x)).
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scaled := x * 32767
	return int16(math.RoundToEven(float64(scaled)))
}

// QuantizeInt16 converts src into dst with Float32ToInt16. dst must be at
// least len(src) long.
func QuantizeInt16(dst []int16, src []float32) {
	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}
}
