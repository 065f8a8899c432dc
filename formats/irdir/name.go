// SPDX-License-Identifier: EPL-2.0

package irdir

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	kemarName   = regexp.MustCompile(`^H(-?\d+)e(\d+)a$`)
	genericName = regexp.MustCompile(`(?:^|[_\-. ])az(-?\d+(?:\.\d+)?)_el(-?\d+(?:\.\d+)?)$`)
)

// ParseName returns the azimuth and elevation, in degrees, encoded in a
// file name. The extension is ignored.
func ParseName(name string) (az, el float64, err error) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	if m := kemarName.FindStringSubmatch(stem); m != nil {
		return parsePair(name, m[2], m[1])
	}
	if m := genericName.FindStringSubmatch(stem); m != nil {
		return parsePair(name, m[1], m[2])
	}

	return 0, 0, fmt.Errorf("%w: %s", ErrUnrecognisedName, name)
}

func parsePair(name, azText, elText string) (float64, float64, error) {
	az, err := strconv.ParseFloat(azText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %w", ErrUnrecognisedName, name, err)
	}

	el, err := strconv.ParseFloat(elText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %w", ErrUnrecognisedName, name, err)
	}

	return az, el, nil
}
