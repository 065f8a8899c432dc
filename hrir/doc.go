// SPDX-License-Identifier: EPL-2.0

// Package hrir implements the conversion core that turns a spatially indexed
// head-related impulse response (HRIR) dataset into fixed-length 16-bit
// stereo entries ready for serialization.
//
// The pipeline is a linear sequence of pure transformations:
//
//	Dataset -> Bin -> (Resample -> FitTaps -> NormalizePair -> quantize) -> []Entry
//
// # Datasets
//
// A Dataset holds two row-major arrays and a sample rate, the same three
// values a SOFA file stores in /SourcePosition, /Data.IR and
// /Data.SamplingRate:
//
//	ds := &hrir.Dataset{
//	    Positions:  hrir.Array{Name: "SourcePosition", Shape: []int{m, 3}, Data: pos},
//	    IR:         hrir.Array{Name: "Data.IR", Shape: []int{m, 2, n}, Data: ir},
//	    SampleRate: 48000,
//	}
//
// # Binning
//
// Measurement directions are quantized onto an azimuth/elevation grid. The
// first measurement that lands in a grid cell wins; later ones are dropped.
// Retained measurements are always returned in BinKey order, so the output
// never depends on map iteration order.
//
// # Building entries
//
//	set, err := hrir.BuildEntries(ctx, ds, hrir.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	// set.Entries are sorted by BinKey and each channel holds exactly
//	// params.Taps samples.
//
// Setting Params.Workers above 1 processes entries concurrently. The result
// is byte-for-byte identical to the sequential run.
//
// # Errors
//
// Malformed arrays fail with a *ShapeError (errors.Is(err, ErrInvalidShape)).
// Non-positive taps, bin steps or sample rates fail with ErrInvalidParams.
// Both are reported before any entry is computed.
package hrir
