// SPDX-License-Identifier: EPL-2.0

package hrir_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/hrirpack/hrir"
	"github.com/ik5/hrirpack/internal/hrirtest"
)

func TestWrapAzimuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 90, want: 90},
		{in: 179.5, want: 179.5},
		{in: 180, want: -180},
		{in: 270, want: -90},
		{in: 360, want: 0},
		{in: -90, want: -90},
		{in: -180, want: -180},
		{in: -181, want: 179},
		{in: 725, want: 5},
		{in: -725, want: -5},
	}

	for _, tt := range tests {
		got := hrir.WrapAzimuth(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAzimuth(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < -180 || got >= 180 {
			t.Errorf("WrapAzimuth(%v) = %v, outside [-180, 180)", tt.in, got)
		}
	}
}

func TestKeyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		az, el  float64
		azStep  float64
		elStep  float64
		wantKey hrir.BinKey
	}{
		{name: "origin", az: 0, el: 0, azStep: 3, elStep: 3, wantKey: hrir.BinKey{Az: 0, El: 0}},
		{name: "round down", az: 1, el: 1, azStep: 3, elStep: 3, wantKey: hrir.BinKey{Az: 0, El: 0}},
		{name: "round up", az: 2, el: -2, azStep: 3, elStep: 3, wantKey: hrir.BinKey{Az: 1, El: -1}},
		{name: "half rounds to even", az: 4.5, el: 7.5, azStep: 3, elStep: 3, wantKey: hrir.BinKey{Az: 2, El: 2}},
		{name: "wrapped azimuth", az: 270, el: 0, azStep: 5, elStep: 5, wantKey: hrir.BinKey{Az: -18, El: 0}},
		{name: "180 wraps to -180", az: 180, el: 90, azStep: 3, elStep: 3, wantKey: hrir.BinKey{Az: -60, El: 30}},
		{name: "independent steps", az: 30, el: 30, azStep: 10, elStep: 15, wantKey: hrir.BinKey{Az: 3, El: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hrir.KeyFor(tt.az, tt.el, tt.azStep, tt.elStep)
			if got != tt.wantKey {
				t.Errorf("KeyFor(%v, %v) = %+v, want %+v", tt.az, tt.el, got, tt.wantKey)
			}
		})
	}
}

func TestBinKey_Compare(t *testing.T) {
	t.Parallel()

	a := hrir.BinKey{Az: -1, El: 5}
	b := hrir.BinKey{Az: 0, El: -5}
	c := hrir.BinKey{Az: 0, El: 2}

	if !a.Less(b) || !b.Less(c) || !a.Less(c) {
		t.Error("Less() is not lexicographic on (Az, El)")
	}
	if c.Less(b) || b.Less(b) {
		t.Error("Less() reported a wrong ordering")
	}
	if b.Compare(b) != 0 {
		t.Error("Compare() of equal keys != 0")
	}
}

func TestBin_FirstWins(t *testing.T) {
	t.Parallel()

	// 9/3 = 3 and 10/3 = 3.33 share a bin; index 0 must win either way
	ds := hrirtest.NewDataset(48000, 8, hrirtest.Azimuths(10, 9), hrirtest.Tagged)

	binned, err := hrir.Bin(ds, 3, 3)
	if err != nil {
		t.Fatalf("Bin() error = %v", err)
	}

	if len(binned.Measurements) != 1 {
		t.Fatalf("Bin() kept %d measurements, want 1", len(binned.Measurements))
	}
	if binned.Discarded != 1 {
		t.Errorf("Bin() Discarded = %d, want 1", binned.Discarded)
	}

	m := binned.Measurements[0]
	if m.Index != 0 || m.Azimuth != 10 {
		t.Errorf("Bin() kept index %d (az %v), want index 0 (az 10)", m.Index, m.Azimuth)
	}
	if m.Left[0] != 0.01 {
		t.Errorf("Bin() kept samples %v, want samples of measurement 0", m.Left[:1])
	}
}

func TestBin_EndToEndExample(t *testing.T) {
	t.Parallel()

	ds := hrirtest.NewDataset(48000, 8, hrirtest.Azimuths(0, 1, 90, 91), hrirtest.Tagged)

	binned, err := hrir.Bin(ds, 3, 3)
	if err != nil {
		t.Fatalf("Bin() error = %v", err)
	}

	if len(binned.Measurements) != 2 {
		t.Fatalf("Bin() kept %d measurements, want 2", len(binned.Measurements))
	}

	wantIdx := []int{0, 2}
	wantKeys := []hrir.BinKey{{Az: 0, El: 0}, {Az: 30, El: 0}}
	for i, m := range binned.Measurements {
		if m.Index != wantIdx[i] {
			t.Errorf("Measurements[%d].Index = %d, want %d", i, m.Index, wantIdx[i])
		}
		if m.Key != wantKeys[i] {
			t.Errorf("Measurements[%d].Key = %+v, want %+v", i, m.Key, wantKeys[i])
		}
	}
}

func TestBin_SortedByKey(t *testing.T) {
	t.Parallel()

	dirs := []hrirtest.Direction{
		{Azimuth: 90, Elevation: 0},
		{Azimuth: 0, Elevation: 30},
		{Azimuth: -45, Elevation: 0},
		{Azimuth: 0, Elevation: -30},
		{Azimuth: 180, Elevation: 0},
		{Azimuth: 0, Elevation: 0},
	}
	ds := hrirtest.NewDataset(48000, 4, dirs, hrirtest.Tagged)

	binned, err := hrir.Bin(ds, 3, 3)
	if err != nil {
		t.Fatalf("Bin() error = %v", err)
	}

	// 180 wraps to -180 for binning but keeps its original value
	want := []hrirtest.Direction{
		{Azimuth: 180, Elevation: 0},
		{Azimuth: -45, Elevation: 0},
		{Azimuth: 0, Elevation: -30},
		{Azimuth: 0, Elevation: 0},
		{Azimuth: 0, Elevation: 30},
		{Azimuth: 90, Elevation: 0},
	}
	if len(binned.Measurements) != len(want) {
		t.Fatalf("Bin() kept %d measurements, want %d", len(binned.Measurements), len(want))
	}

	for i, m := range binned.Measurements {
		if m.Azimuth != want[i].Azimuth || m.Elevation != want[i].Elevation {
			t.Errorf("Measurements[%d] = (%v, %v), want (%v, %v)",
				i, m.Azimuth, m.Elevation, want[i].Azimuth, want[i].Elevation)
		}
		if i > 0 && !binned.Measurements[i-1].Key.Less(m.Key) {
			t.Errorf("Measurements[%d].Key %+v not after %+v", i, m.Key, binned.Measurements[i-1].Key)
		}
	}
}

func TestBin_RejectsBadInput(t *testing.T) {
	t.Parallel()

	ds := hrirtest.NewDataset(48000, 4, hrirtest.Azimuths(0), hrirtest.Tagged)

	if _, err := hrir.Bin(ds, 0, 3); !errors.Is(err, hrir.ErrInvalidParams) {
		t.Errorf("Bin() with zero az step error = %v, want ErrInvalidParams", err)
	}

	ds.IR = hrir.NewArray("Data.IR", 1, 1, 4)
	if _, err := hrir.Bin(ds, 3, 3); !errors.Is(err, hrir.ErrInvalidShape) {
		t.Errorf("Bin() with mono IR error = %v, want ErrInvalidShape", err)
	}
}

func BenchmarkBin(b *testing.B) {
	dirs := make([]hrirtest.Direction, 0, 2000)
	for i := range 2000 {
		dirs = append(dirs, hrirtest.Direction{Azimuth: float64(i%360) - 180, Elevation: float64(i/360*10) - 40})
	}
	ds := hrirtest.NewDataset(48000, 16, dirs, hrirtest.Tagged)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = hrir.Bin(ds, 3, 3)
	}
}
