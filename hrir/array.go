// SPDX-License-Identifier: EPL-2.0

package hrir

import "slices"

// Array is a row-major N-dimensional array of float64 values, as read from a
// scientific-data container.
type Array struct {
	Name  string
	Shape []int
	Data  []float64
}

// NewArray allocates a zeroed array of the given shape.
func NewArray(name string, shape ...int) Array {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return Array{
		Name:  name,
		Shape: slices.Clone(shape),
		Data:  make([]float64, n),
	}
}

// NDim returns the number of dimensions.
func (a Array) NDim() int { return len(a.Shape) }

// Dim returns the size of dimension i, or 0 when a has fewer dimensions.
func (a Array) Dim(i int) int {
	if i < 0 || i >= len(a.Shape) {
		return 0
	}
	return a.Shape[i]
}

// Size is the element count implied by Shape.
func (a Array) Size() int {
	if len(a.Shape) == 0 {
		return 0
	}

	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// offset converts a full index into a position in Data.
func (a Array) offset(idx ...int) int {
	off := 0
	for i, v := range idx {
		off = off*a.Shape[i] + v
	}
	return off
}

// At returns the element at idx. len(idx) must equal NDim.
func (a Array) At(idx ...int) float64 {
	return a.Data[a.offset(idx...)]
}

// Set stores v at idx. len(idx) must equal NDim.
func (a Array) Set(v float64, idx ...int) {
	a.Data[a.offset(idx...)] = v
}

// Row returns the innermost-dimension slice addressed by prefix, without
// copying. len(prefix) must be NDim-1.
func (a Array) Row(prefix ...int) []float64 {
	n := a.Shape[len(a.Shape)-1]
	off := a.offset(prefix...) * n
	return a.Data[off : off+n]
}
