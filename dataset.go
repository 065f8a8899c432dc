// SPDX-License-Identifier: EPL-2.0

package hrirpack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/hrirpack/formats/irdir"
	"github.com/ik5/hrirpack/formats/sofa"
	"github.com/ik5/hrirpack/hrir"
)

// FormatDir is the registry key used for directory inputs.
const FormatDir = "dir"

// Readers maps file extensions (without the dot) and FormatDir to dataset
// readers. Register additional formats before calling ReadDataset.
var Readers = defaultReaders()

func defaultReaders() *hrir.Registry[hrir.DatasetReader] {
	r := hrir.NewRegistry[hrir.DatasetReader]()
	r.Register("sofa", sofa.Reader{})
	r.Register(FormatDir, irdir.NewReader())
	return r
}

// FormatOf returns the registry key for path: FormatDir for a directory,
// otherwise the lower-case extension.
func FormatOf(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("detecting format: %w", err)
	}
	if info.IsDir() {
		return FormatDir, nil
	}

	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")), nil
}

// ReadDataset loads path with the reader registered for its format.
func ReadDataset(path string) (*hrir.Dataset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	r, ok := Readers.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w %q for %s (known: %s)", ErrUnknownFormat, format, path,
			strings.Join(Readers.Formats(), ", "))
	}

	return r.ReadDataset(path)
}
