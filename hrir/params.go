// SPDX-License-Identifier: EPL-2.0

package hrir

import "errors"

// Defaults used by DefaultParams.
const (
	DefaultTargetSampleRate = 24000
	DefaultTaps             = 192
	DefaultAzStep           = 3.0
	DefaultElStep           = 3.0
)

// Params configures a conversion.
type Params struct {
	// TargetSampleRate is the output sample rate in Hz.
	TargetSampleRate int
	// Taps is the fixed per-channel response length.
	Taps int
	// AzStep and ElStep are the angular bin sizes in degrees.
	AzStep float64
	ElStep float64
	// Workers bounds concurrent entry processing. 0 and 1 both mean
	// sequential.
	Workers int
}

// DefaultParams returns 24 kHz, 192 taps, a 3 degree grid and one worker.
func DefaultParams() Params {
	return Params{
		TargetSampleRate: DefaultTargetSampleRate,
		Taps:             DefaultTaps,
		AzStep:           DefaultAzStep,
		ElStep:           DefaultElStep,
		Workers:          1,
	}
}

// Validate reports every invalid field, joined.
func (p Params) Validate() error {
	var errs []error

	if p.TargetSampleRate <= 0 {
		errs = append(errs, paramError("target sample rate must be positive, got %d", p.TargetSampleRate))
	}
	if p.Taps <= 0 {
		errs = append(errs, paramError("taps must be positive, got %d", p.Taps))
	}
	// Written as !(x > 0) so NaN is rejected too
	if !(p.AzStep > 0) {
		errs = append(errs, paramError("azimuth step must be positive, got %v", p.AzStep))
	}
	if !(p.ElStep > 0) {
		errs = append(errs, paramError("elevation step must be positive, got %v", p.ElStep))
	}
	if p.Workers < 0 {
		errs = append(errs, paramError("workers must not be negative, got %d", p.Workers))
	}

	return errors.Join(errs...)
}
