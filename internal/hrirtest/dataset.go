// SPDX-License-Identifier: EPL-2.0

// Package hrirtest builds synthetic HRIR datasets for tests.
package hrirtest

import (
	"math"

	"github.com/ik5/hrirpack/hrir"
)

// Direction is an azimuth/elevation pair in degrees.
type Direction struct {
	Azimuth   float64
	Elevation float64
}

// Waveform returns the sample value for a measurement, receiver (0 = left,
// 1 = right) and sample index.
type Waveform func(measurement, receiver, sample int) float64

// NewDataset creates a dataset with one 2-receiver measurement per direction,
// n samples each. Positions get a third column (distance 1.2 m) the way SOFA
// files store spherical coordinates.
func NewDataset(sampleRate, n int, dirs []Direction, waveform Waveform) *hrir.Dataset {
	m := len(dirs)
	pos := hrir.NewArray("SourcePosition", m, 3)
	ir := hrir.NewArray("Data.IR", m, 2, n)

	for i, d := range dirs {
		pos.Set(d.Azimuth, i, 0)
		pos.Set(d.Elevation, i, 1)
		pos.Set(1.2, i, 2)

		for r := range 2 {
			for k := range n {
				ir.Set(waveform(i, r, k), i, r, k)
			}
		}
	}

	return &hrir.Dataset{Positions: pos, IR: ir, SampleRate: sampleRate}
}

// Azimuths returns directions on the horizontal plane.
func Azimuths(az ...float64) []Direction {
	dirs := make([]Direction, len(az))
	for i, a := range az {
		dirs[i] = Direction{Azimuth: a}
	}
	return dirs
}

// Tagged encodes the measurement index into every sample so tests can tell
// which measurement an entry came from: left = (i+1)/100, right = -(i+1)/100.
func Tagged(measurement, receiver, sample int) float64 {
	v := float64(measurement+1) / 100
	if receiver == 1 {
		return -v
	}
	return v
}

// Constant returns a waveform with fixed left and right values.
func Constant(left, right float64) Waveform {
	return func(_, receiver, _ int) float64 {
		if receiver == 1 {
			return right
		}
		return left
	}
}

// DecayingSine returns a decaying sine whose amplitude and interaural level
// depend on the measurement index, scaled by gain.
func DecayingSine(sampleRate int, freq, gain float64) Waveform {
	return func(measurement, receiver, sample int) float64 {
		t := float64(sample) / float64(sampleRate)
		level := gain * (1 + 0.1*float64(measurement%5))
		if receiver == 1 {
			level *= 0.6
		}
		return level * math.Exp(-t*2000) * math.Sin(2*math.Pi*freq*t)
	}
}
