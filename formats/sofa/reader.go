// SPDX-License-Identifier: EPL-2.0

package sofa

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/hdf5"

	"github.com/ik5/hrirpack/hrir"
)

// Variable names inside a SOFA file.
const (
	VarSourcePosition = "SourcePosition"
	VarDataIR         = "Data.IR"
	VarSamplingRate   = "Data.SamplingRate"
)

// Reader loads SOFA files. It implements hrir.DatasetReader.
type Reader struct{}

// ReadDataset opens path read-only and loads positions, impulse responses
// and the sample rate. Shapes are checked by hrir.Dataset.Validate.
func (Reader) ReadDataset(path string) (*hrir.Dataset, error) {
	// HDF5 reports a missing file with its own error stack; stat first so
	// callers can test for fs.ErrNotExist.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening sofa file: %w", err)
	}

	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("opening sofa file %s: %w", path, err)
	}
	defer f.Close()

	pos, err := readArray(f, VarSourcePosition)
	if err != nil {
		return nil, err
	}

	ir, err := readArray(f, VarDataIR)
	if err != nil {
		return nil, err
	}

	rate, err := readArray(f, VarSamplingRate)
	if err != nil {
		return nil, err
	}

	sampleRate, err := sampleRateOf(rate)
	if err != nil {
		return nil, err
	}

	ds := &hrir.Dataset{Positions: pos, IR: ir, SampleRate: sampleRate}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// readArray loads a whole float64 dataset and its shape.
func readArray(f *hdf5.File, name string) (hrir.Array, error) {
	dset, err := f.OpenDataset(name)
	if err != nil {
		return hrir.Array{}, fmt.Errorf("%w: %s: %w", ErrMissingVariable, name, err)
	}
	defer dset.Close()

	space := dset.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return hrir.Array{}, fmt.Errorf("reading %s shape: %w", name, err)
	}

	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}

	arr := hrir.NewArray(name, shape...)
	if len(arr.Data) == 0 {
		return arr, nil
	}
	if err := dset.Read(&arr.Data); err != nil {
		return hrir.Array{}, fmt.Errorf("reading %s: %w", name, err)
	}

	return arr, nil
}

// sampleRateOf takes the first element of Data.SamplingRate, truncated to
// whole hertz.
func sampleRateOf(rate hrir.Array) (int, error) {
	if len(rate.Data) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBadSampleRate)
	}

	v := rate.Data[0]
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadSampleRate, v)
	}

	return int(v), nil
}
