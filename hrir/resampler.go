// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"math"

	"github.com/ik5/hrirpack/utils"
)

// Resample converts x from srcRate to dstRate by linear interpolation.
//
// Samples are narrowed to float32 first, matching how measurements are
// stored. Equal rates stop there. Otherwise the output has ResampledLen
// samples placed uniformly from the first to the last input sample, with
// position k at k*((len(x)-1)/(outLen-1)) and the last one pinned to the
// final input sample. Interpolation runs in float64.
func Resample(x []float64, srcRate, dstRate int) []float32 {
	outLen := ResampledLen(len(x), srcRate, dstRate)
	out := make([]float32, outLen)

	if srcRate == dstRate {
		for i, v := range x {
			out[i] = float32(v)
		}
		return out
	}
	if outLen == 0 {
		return out
	}

	in := make([]float64, len(x))
	for i, v := range x {
		in[i] = float64(float32(v))
	}

	if outLen == 1 {
		out[0] = float32(in[0])
		return out
	}

	span := float64(len(in) - 1)
	step := span / float64(outLen-1)
	for k := range outLen - 1 {
		out[k] = float32(utils.SampleAt(in, float64(k)*step))
	}
	out[outLen-1] = float32(in[len(in)-1])

	return out
}

// ResampledLen is the length Resample produces for n input samples:
// max(1, round(n*dstRate/srcRate)) with halves rounded to even, or n when
// the rates match or n is zero.
func ResampledLen(n, srcRate, dstRate int) int {
	if srcRate == dstRate || n == 0 {
		return n
	}
	return max(1, int(math.RoundToEven(float64(n)*(float64(dstRate)/float64(srcRate)))))
}
