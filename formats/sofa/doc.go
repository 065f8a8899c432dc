// SPDX-License-Identifier: EPL-2.0

// Package sofa reads HRIR datasets from SOFA files.
//
// SOFA (Spatially Oriented Format for Acoustics, AES69) is an HDF5
// container. The reader uses gonum.org/v1/hdf5 and loads three variables:
//
//   - SourcePosition: M x C, azimuth and elevation in degrees in columns 0 and 1
//   - Data.IR: M x R x N impulse responses, receivers 0 and 1 are left and right
//   - Data.SamplingRate: the sample rate in Hz (first element)
//
// Everything else in the file is ignored.
//
//	ds, err := sofa.Reader{}.ReadDataset("subject_003.sofa")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(ds.IR.Shape)
//
// The package links against the HDF5 C library through cgo.
package sofa
