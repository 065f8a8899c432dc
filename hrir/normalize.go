// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// PeakFloor keeps the joint peak of silent responses above zero.
const PeakFloor = 1e-9

// Peak returns the largest absolute sample of left and right, at least
// PeakFloor.
func Peak(left, right []float32) float64 {
	peak := PeakFloor
	for _, v := range left {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	for _, v := range right {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	return peak
}

// NormalizePair scales both channels by the same 1/peak when their joint
// peak exceeds 1. Quiet pairs are returned unchanged and never amplified.
//
// The arithmetic is single precision: the scale is rounded to float32 and
// every product is rounded back to float32. A float32 by float32 product
// is exact in float64, so scaling the widened samples and narrowing the
// result gives the same bits as a float32 multiply.
func NormalizePair(left, right []float32) ([]float32, []float32) {
	peak := Peak(left, right)
	if peak <= 1 {
		return left, right
	}

	scale := float64(float32(1 / peak))
	return scaled(left, scale), scaled(right, scale)
}

func scaled(x []float32, scale float64) []float32 {
	out := make([]float64, len(x))
	vecmath.ScaleBlock(out, widen(x), scale)
	return narrow(out)
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func narrow(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}
