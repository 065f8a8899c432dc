// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"fmt"
	"math"
)

// Dataset is the input of a conversion: measurement positions, stereo
// impulse responses and their shared sample rate.
type Dataset struct {
	// Positions is M x C with C >= 2: azimuth and elevation in degrees
	// in the first two columns.
	Positions Array
	// IR is M x R x N with R >= 2: left and right ear in the first two
	// receivers, N samples each.
	IR Array
	// SampleRate of every response in IR, in Hz.
	SampleRate int
}

// Validate checks array shapes, the sample rate and that every direction
// is finite once stored as float32.
func (d *Dataset) Validate() error {
	pos, ir := d.Positions, d.IR

	if pos.NDim() != 2 || pos.Dim(1) < 2 {
		return &ShapeError{Array: arrayName(pos, "SourcePosition"), Shape: pos.Shape,
			Reason: "want M x C with at least 2 columns (azimuth, elevation)"}
	}
	if ir.NDim() != 3 || ir.Dim(1) < 2 {
		return &ShapeError{Array: arrayName(ir, "Data.IR"), Shape: ir.Shape,
			Reason: "want M x R x N with at least 2 receivers (left, right)"}
	}
	if pos.Dim(0) != ir.Dim(0) {
		return &ShapeError{Array: arrayName(pos, "SourcePosition"), Shape: pos.Shape,
			Reason: fmt.Sprintf("%d positions for %d measurements", pos.Dim(0), ir.Dim(0))}
	}
	if len(pos.Data) != pos.Size() {
		return &ShapeError{Array: arrayName(pos, "SourcePosition"), Shape: pos.Shape,
			Reason: fmt.Sprintf("holds %d values", len(pos.Data))}
	}
	if len(ir.Data) != ir.Size() {
		return &ShapeError{Array: arrayName(ir, "Data.IR"), Shape: ir.Shape,
			Reason: fmt.Sprintf("holds %d values", len(ir.Data))}
	}

	if d.SampleRate <= 0 {
		return paramError("source sample rate must be positive, got %d", d.SampleRate)
	}
	if ir.Dim(0) > 0 && ir.Dim(2) == 0 {
		return paramError("impulse responses are empty")
	}

	for i := range pos.Dim(0) {
		for col, name := range []string{"azimuth", "elevation"} {
			v := float64(float32(pos.At(i, col)))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: measurement %d %s is %v", ErrInvalidPosition, i, name, pos.At(i, col))
			}
		}
	}

	return nil
}

// Len is the number of measurements.
func (d *Dataset) Len() int { return d.IR.Dim(0) }

// Measurement returns measurement i. Left and Right alias the IR array.
func (d *Dataset) Measurement(i int) Measurement {
	return Measurement{
		Index: i,
		// Stored as float32, so bin on the value that ends up in the file
		Azimuth:   float64(float32(d.Positions.At(i, 0))),
		Elevation: float64(float32(d.Positions.At(i, 1))),
		Left:      d.IR.Row(i, 0),
		Right:     d.IR.Row(i, 1),
	}
}

// Measurement is a single raw stereo impulse response and its direction.
type Measurement struct {
	Index     int
	Key       BinKey
	Azimuth   float64
	Elevation float64
	Left      []float64
	Right     []float64
}

func arrayName(a Array, fallback string) string {
	if a.Name != "" {
		return a.Name
	}
	return fallback
}
