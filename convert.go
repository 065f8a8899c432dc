// SPDX-License-Identifier: EPL-2.0

package hrirpack

import (
	"context"
	"log/slog"
	"slices"

	"github.com/ik5/hrirpack/formats/hrirbin"
	"github.com/ik5/hrirpack/hrir"
)

// Result summarizes a finished conversion. The JSON form is the metadata
// written next to the binary.
type Result struct {
	Input               string  `json:"input"`
	Output              string  `json:"output"`
	SourceSampleRate    int     `json:"source_sample_rate_hz"`
	TargetSampleRate    int     `json:"target_sample_rate_hz"`
	SourceShape         []int   `json:"source_shape_data_ir"`
	TapCount            int     `json:"tap_count"`
	EntryCount          int     `json:"entry_count"`
	AzStep              float64 `json:"az_step_deg"`
	ElStep              float64 `json:"el_step_deg"`
	OutputBytes         int64   `json:"output_bytes"`
	DiscardedDuplicates int     `json:"discarded_duplicates"`
}

// Convert builds compact entries from ds and writes them to output.
//
// input is only recorded in the Result. The output file is created or
// replaced only after every entry has been built; on error nothing is
// written.
func Convert(ctx context.Context, ds *hrir.Dataset, input, output string, p hrir.Params) (*Result, error) {
	set, err := hrir.BuildEntries(ctx, ds, p)
	if err != nil {
		return nil, err
	}

	n, err := hrirbin.WriteFile(output, p.TargetSampleRate, p.Taps, set.Entries)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Input:               input,
		Output:              output,
		SourceSampleRate:    ds.SampleRate,
		TargetSampleRate:    p.TargetSampleRate,
		SourceShape:         slices.Clone(ds.IR.Shape),
		TapCount:            p.Taps,
		EntryCount:          len(set.Entries),
		AzStep:              p.AzStep,
		ElStep:              p.ElStep,
		OutputBytes:         n,
		DiscardedDuplicates: set.Discarded,
	}

	slog.Info("wrote compact hrir", "output", output, "entries", res.EntryCount,
		"bytes", n, "discarded", set.Discarded)

	return res, nil
}

// ConvertFile reads the dataset at input (SOFA file or impulse response
// directory) and converts it to output.
func ConvertFile(ctx context.Context, input, output string, p hrir.Params) (*Result, error) {
	// Fail on bad parameters before touching the input.
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ds, err := ReadDataset(input)
	if err != nil {
		return nil, err
	}

	return Convert(ctx, ds, input, output, p)
}
