// SPDX-License-Identifier: EPL-2.0

// Package hrirpack converts head-related impulse response datasets into the
// compact HRIRBIN1 binary used by runtime spatializers.
//
// A conversion bins the measurements on an azimuth/elevation grid, keeps the
// first measurement per cell, resamples each ear to the target rate with
// linear interpolation, trims or zero-pads to a fixed tap count, jointly
// normalizes the stereo pair and quantizes to 16-bit.
//
// # Supported Inputs
//
//   - SOFA files (.sofa) via formats/sofa
//   - Directories of stereo WAV/AIFF impulse responses via formats/irdir
//
// # Quick Start
//
//	res, err := hrirpack.ConvertFile(ctx, "subject_003.sofa", "hrir.bin", hrir.DefaultParams())
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(res.EntryCount, res.OutputBytes)
//
// With a dataset already in memory use Convert:
//
//	ds, _ := hrirpack.ReadDataset("full/elev0")
//	res, err := hrirpack.Convert(ctx, ds, "full/elev0", "hrir.bin", params)
//
// # Output
//
// The file is written atomically: a temporary file is created next to the
// destination and renamed over it once complete. Nothing is written when
// validation or processing fails. See formats/hrirbin for the layout.
//
// # Architecture
//
// The package is organized into several sub-packages:
//   - hrir: dataset model, binning, resampling, normalization, entry building
//   - utils: interpolation and int16 quantization primitives
//   - formats/hrirbin: HRIRBIN1 encoder and loader
//   - formats/sofa, formats/irdir: dataset readers
//   - formats/wav, formats/aiff: stereo impulse response decoders
//
// # Concurrency
//
// Conversion is sequential by default. Params.Workers > 1 converts entries
// in parallel; the output bytes are identical for any worker count.
package hrirpack
