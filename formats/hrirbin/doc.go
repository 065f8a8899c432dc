// SPDX-License-Identifier: EPL-2.0

// Package hrirbin reads and writes the compact HRIR binary format.
//
// # File Format
//
// All values are little-endian:
//
//	magic       [8]byte  "HRIRBIN1"
//	version     uint32   1
//	sample_rate int32    Hz
//	tap_count   int32    samples per ear
//	entry_count int32
//	entry_count times:
//	    azimuth_deg   float32
//	    elevation_deg float32
//	    left          [tap_count]int16
//	    right         [tap_count]int16
//
// The header is HeaderSize bytes and every entry occupies EntrySize(taps)
// bytes, so entry i starts at HeaderSize + i*EntrySize(taps).
//
// # Writing
//
//	n, err := hrirbin.WriteFile("out/kemar.bin", 24000, 192, entries)
//
// WriteFile encodes everything in memory first and then replaces the target
// atomically, so a failed run never leaves a partial file behind.
//
// # Reading
//
//	f, err := hrirbin.ReadFile("out/kemar.bin")
//	e, ok := f.Nearest(30, 0)
//
// Nearest picks the entry with the smallest great-circle distance.
package hrirbin
