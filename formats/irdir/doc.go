// SPDX-License-Identifier: EPL-2.0

// Package irdir reads an HRIR dataset from a directory of per-direction
// stereo impulse-response files.
//
// The direction of each measurement comes from its file name. Two naming
// schemes are recognised:
//
//   - MIT KEMAR: H<elevation>e<azimuth>a.wav, e.g. H-10e005a.wav
//   - generic: <anything>_az<azimuth>_el<elevation>.<ext>, e.g. subj1_az-30_el15.aiff
//
// Files are decoded through a registry keyed by extension (wav, aif and
// aiff by default). Files with other extensions and sub-directories are
// skipped. All responses must share one sample rate; shorter responses are
// zero-padded to the longest one.
//
//	ds, err := irdir.NewReader().ReadDataset("full/elev0")
package irdir
