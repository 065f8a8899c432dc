// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
)

// BinKey is a cell of the azimuth/elevation grid.
type BinKey struct {
	Az int
	El int
}

// Compare orders keys by azimuth bin, then elevation bin.
func (k BinKey) Compare(o BinKey) int {
	if c := cmp.Compare(k.Az, o.Az); c != 0 {
		return c
	}
	return cmp.Compare(k.El, o.El)
}

// Less reports whether k sorts before o.
func (k BinKey) Less(o BinKey) bool { return k.Compare(o) < 0 }

// WrapAzimuth maps az into [-180, 180).
func WrapAzimuth(az float64) float64 {
	w := math.Mod(az+180, 360)
	if w < 0 {
		w += 360
	}
	return w - 180
}

// KeyFor returns the grid cell of a direction. Rounding is half to even.
func KeyFor(az, el, azStep, elStep float64) BinKey {
	return BinKey{
		Az: int(math.RoundToEven(WrapAzimuth(az) / azStep)),
		El: int(math.RoundToEven(el / elStep)),
	}
}

// Binned is the outcome of Bin.
type Binned struct {
	// Measurements retained, one per key, sorted by Key.
	Measurements []Measurement
	// Discarded counts measurements dropped as duplicates.
	Discarded int
}

// Bin validates ds and keeps the first measurement, in index order, for
// every grid cell. Later measurements of an occupied cell are discarded.
func Bin(ds *Dataset, azStep, elStep float64) (*Binned, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if !(azStep > 0) || !(elStep > 0) {
		return nil, paramError("bin steps must be positive, got %v/%v", azStep, elStep)
	}

	m := ds.Len()
	seen := make(map[BinKey]struct{}, m)
	kept := make([]Measurement, 0, m)
	discarded := 0

	for i := range m {
		meas := ds.Measurement(i)
		meas.Key = KeyFor(meas.Azimuth, meas.Elevation, azStep, elStep)

		if _, ok := seen[meas.Key]; ok {
			discarded++
			slog.Debug("discarding duplicate measurement",
				"index", i,
				"azimuth", meas.Azimuth,
				"elevation", meas.Elevation,
				"az_bin", meas.Key.Az,
				"el_bin", meas.Key.El,
			)
			continue
		}

		seen[meas.Key] = struct{}{}
		kept = append(kept, meas)
	}

	slices.SortFunc(kept, func(a, b Measurement) int {
		return a.Key.Compare(b.Key)
	})

	return &Binned{Measurements: kept, Discarded: discarded}, nil
}
