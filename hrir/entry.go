// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/hrirpack/utils"
)

// Entry is one serialized direction: the original angles of the retained
// measurement and Taps quantized samples per ear.
type Entry struct {
	Azimuth   float32
	Elevation float32
	Left      []int16
	Right     []int16
}

// EntrySet is the outcome of BuildEntries.
type EntrySet struct {
	// Entries sorted by BinKey.
	Entries []Entry
	// Discarded counts measurements dropped by binning.
	Discarded int
}

// BuildEntries bins ds and runs every retained measurement through
// resampling, tap fitting, normalization and quantization.
//
// Parameters and shapes are validated before any work starts. With
// p.Workers > 1 entries are processed concurrently; each result is stored
// at its sorted position, so the output does not depend on scheduling.
func BuildEntries(ctx context.Context, ds *Dataset, p Params) (*EntrySet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	binned, err := Bin(ds, p.AzStep, p.ElStep)
	if err != nil {
		return nil, err
	}

	ms := binned.Measurements
	set := &EntrySet{
		Entries:   make([]Entry, len(ms)),
		Discarded: binned.Discarded,
	}

	if p.Workers <= 1 {
		for i, m := range ms {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("converting entry %d: %w", i, err)
			}
			set.Entries[i] = ConvertMeasurement(m, ds.SampleRate, p)
		}
		return set, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)

	for i, m := range ms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set.Entries[i] = ConvertMeasurement(m, ds.SampleRate, p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("converting entries: %w", err)
	}

	return set, nil
}

// ConvertMeasurement turns one measurement recorded at srcRate into an
// Entry of p.Taps samples per ear at p.TargetSampleRate.
func ConvertMeasurement(m Measurement, srcRate int, p Params) Entry {
	left := FitTaps(Resample(m.Left, srcRate, p.TargetSampleRate), p.Taps)
	right := FitTaps(Resample(m.Right, srcRate, p.TargetSampleRate), p.Taps)

	ln, rn := NormalizePair(left, right)

	e := Entry{
		Azimuth:   float32(m.Azimuth),
		Elevation: float32(m.Elevation),
		Left:      make([]int16, p.Taps),
		Right:     make([]int16, p.Taps),
	}
	utils.QuantizeInt16(e.Left, ln)
	utils.QuantizeInt16(e.Right, rn)

	return e
}
