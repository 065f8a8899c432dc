// SPDX-License-Identifier: EPL-2.0

package sofa

import (
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"slices"
	"testing"

	"gonum.org/v1/hdf5"

	"github.com/ik5/hrirpack/hrir"
)

type variable struct {
	dims []uint
	data []float64
}

// writeSOFA creates a minimal HDF5 file holding the given double variables
func writeSOFA(t *testing.T, vars map[string]variable) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sofa")

	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	defer f.Close()

	for name, v := range vars {
		space, err := hdf5.CreateSimpleDataspace(v.dims, nil)
		if err != nil {
			t.Fatalf("CreateSimpleDataspace(%s) error = %v", name, err)
		}

		dset, err := f.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
		if err != nil {
			t.Fatalf("CreateDataset(%s) error = %v", name, err)
		}

		if err := dset.Write(&v.data); err != nil {
			t.Fatalf("Write(%s) error = %v", name, err)
		}

		dset.Close()
		space.Close()
	}

	return path
}

func validVars() map[string]variable {
	return map[string]variable{
		VarSourcePosition: {
			dims: []uint{2, 3},
			data: []float64{0, 0, 1.2, 90, 30, 1.2},
		},
		VarDataIR: {
			dims: []uint{2, 2, 3},
			data: []float64{
				0.1, 0.2, 0.3, -0.1, -0.2, -0.3,
				0.4, 0.5, 0.6, -0.4, -0.5, -0.6,
			},
		},
		VarSamplingRate: {
			dims: []uint{1},
			data: []float64{48000},
		},
	}
}

// HDF5 is not built thread-safe everywhere, so these tests run serially.
func TestReader_ReadDataset(t *testing.T) {
	path := writeSOFA(t, validVars())

	ds, err := Reader{}.ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset() error = %v", err)
	}

	if ds.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", ds.SampleRate)
	}
	if !slices.Equal(ds.Positions.Shape, []int{2, 3}) {
		t.Errorf("Positions.Shape = %v, want [2 3]", ds.Positions.Shape)
	}
	if !slices.Equal(ds.IR.Shape, []int{2, 2, 3}) {
		t.Errorf("IR.Shape = %v, want [2 2 3]", ds.IR.Shape)
	}
	if ds.Positions.Name != VarSourcePosition || ds.IR.Name != VarDataIR {
		t.Errorf("array names = %q, %q", ds.Positions.Name, ds.IR.Name)
	}

	m := ds.Measurement(1)
	if m.Azimuth != 90 || m.Elevation != 30 {
		t.Errorf("Measurement(1) direction = (%v, %v), want (90, 30)", m.Azimuth, m.Elevation)
	}
	if !slices.Equal(m.Right, []float64{-0.4, -0.5, -0.6}) {
		t.Errorf("Measurement(1).Right = %v", m.Right)
	}
}

func TestReader_MissingVariable(t *testing.T) {
	for _, name := range []string{VarSourcePosition, VarDataIR, VarSamplingRate} {
		t.Run(name, func(t *testing.T) {
					vars := validVars()
			delete(vars, name)
			path := writeSOFA(t, vars)

			_, err := Reader{}.ReadDataset(path)
			if !errors.Is(err, ErrMissingVariable) {
				t.Errorf("ReadDataset() error = %v, want ErrMissingVariable", err)
			}
		})
	}
}

func TestReader_BadShape(t *testing.T) {
	vars := validVars()
	vars[VarDataIR] = variable{
		dims: []uint{2, 1, 3},
		data: []float64{1, 2, 3, 4, 5, 6},
	}
	path := writeSOFA(t, vars)

	_, err := Reader{}.ReadDataset(path)
	if !errors.Is(err, hrir.ErrInvalidShape) {
		t.Fatalf("ReadDataset() error = %v, want ErrInvalidShape", err)
	}

	var se *hrir.ShapeError
	if !errors.As(err, &se) || se.Array != VarDataIR {
		t.Errorf("ReadDataset() error = %v, want ShapeError for %s", err, VarDataIR)
	}
}

func TestReader_MissingFile(t *testing.T) {
	_, err := Reader{}.ReadDataset(filepath.Join(t.TempDir(), "nope.sofa"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDataset() error = %v, want fs.ErrNotExist", err)
	}
}

func TestSampleRateOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []float64
		want    int
		wantErr bool
	}{
		{name: "integer", data: []float64{44100}, want: 44100},
		{name: "first element", data: []float64{48000, 96000}, want: 48000},
		{name: "fraction truncated", data: []float64{44100.9}, want: 44100},
		{name: "empty", data: nil, wantErr: true},
		{name: "zero", data: []float64{0}, wantErr: true},
		{name: "negative", data: []float64{-48000}, wantErr: true},
		{name: "nan", data: []float64{math.NaN()}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := sampleRateOf(hrir.Array{Data: tt.data})
			if tt.wantErr {
				if !errors.Is(err, ErrBadSampleRate) {
					t.Errorf("sampleRateOf() error = %v, want ErrBadSampleRate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("sampleRateOf() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("sampleRateOf() = %d, want %d", got, tt.want)
			}
		})
	}
}
