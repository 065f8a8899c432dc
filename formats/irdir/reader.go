// SPDX-License-Identifier: EPL-2.0

package irdir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/hrirpack/formats/aiff"
	"github.com/ik5/hrirpack/formats/wav"
	"github.com/ik5/hrirpack/hrir"
)

// Reader loads a directory of stereo impulse responses. It implements
// hrir.DatasetReader.
type Reader struct {
	decoders *hrir.Registry[hrir.ResponseDecoder]
}

// NewReader returns a Reader with WAV and AIFF decoders registered.
func NewReader() *Reader {
	r := &Reader{decoders: hrir.NewRegistry[hrir.ResponseDecoder]()}
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// Register adds or replaces the decoder for a file extension (without the
// leading dot, case-insensitive).
func (r *Reader) Register(ext string, dec hrir.ResponseDecoder) {
	r.decoders.Register(strings.ToLower(ext), dec)
}

type measurement struct {
	name   string
	az, el float64
	resp   *hrir.Response
}

// ReadDataset decodes every recognised file in dir, in file name order.
func (r *Reader) ReadDataset(dir string) (*hrir.Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading impulse response directory: %w", err)
	}

	var ms []measurement
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name()), "."))
		dec, ok := r.decoders.Get(ext)
		if !ok {
			continue
		}

		m, err := readOne(filepath.Join(dir, e.Name()), dec)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}

	if len(ms) == 0 {
		return nil, fmt.Errorf("%w in %s (formats: %s)", ErrNoFiles, dir,
			strings.Join(r.decoders.Formats(), ", "))
	}

	return assemble(ms)
}

func readOne(path string, dec hrir.ResponseDecoder) (measurement, error) {
	az, el, err := ParseName(path)
	if err != nil {
		return measurement{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return measurement{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	resp, err := dec.DecodeResponse(f)
	if err != nil {
		return measurement{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	slog.Debug("read impulse response", "file", path, "azimuth", az, "elevation", el,
		"sample_rate", resp.SampleRate, "samples", len(resp.Left))

	return measurement{name: path, az: az, el: el, resp: resp}, nil
}

// assemble packs measurements into M x 2 positions and an M x 2 x N IR
// array, zero-padding to the longest response.
func assemble(ms []measurement) (*hrir.Dataset, error) {
	rate := ms[0].resp.SampleRate
	n := 0
	for _, m := range ms {
		if m.resp.SampleRate != rate {
			return nil, fmt.Errorf("%w: %s is %d Hz, %s is %d Hz", ErrSampleRateMismatch,
				ms[0].name, rate, m.name, m.resp.SampleRate)
		}
		n = max(n, len(m.resp.Left), len(m.resp.Right))
	}

	pos := hrir.NewArray("SourcePosition", len(ms), 2)
	ir := hrir.NewArray("Data.IR", len(ms), 2, n)
	for i, m := range ms {
		pos.Set(m.az, i, 0)
		pos.Set(m.el, i, 1)
		copy(ir.Row(i, 0), m.resp.Left)
		copy(ir.Row(i, 1), m.resp.Right)
	}

	ds := &hrir.Dataset{Positions: pos, IR: ir, SampleRate: rate}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return ds, nil
}
