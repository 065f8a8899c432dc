// SPDX-License-Identifier: EPL-2.0

// Package config loads converter settings from YAML.
package config

import (
	"log/slog"

	"github.com/ik5/hrirpack/hrir"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel maps l to a slog level. Unknown values map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the top-level converter configuration.
type Config struct {
	// TargetSampleRate of the output binary, in Hz.
	TargetSampleRate int `yaml:"target_sample_rate_hz"`

	// Taps per ear in each entry.
	Taps int `yaml:"taps"`

	// AzStep and ElStep are the binning grid spacing in degrees.
	AzStep float64 `yaml:"az_step_deg"`
	ElStep float64 `yaml:"el_step_deg"`

	// Workers converting entries concurrently. 1 is sequential.
	Workers int `yaml:"workers"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// MetaOut, when set, is where the conversion metadata JSON is written.
	MetaOut string `yaml:"meta_out"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := hrir.DefaultParams()
	return &Config{
		TargetSampleRate: p.TargetSampleRate,
		Taps:             p.Taps,
		AzStep:           p.AzStep,
		ElStep:           p.ElStep,
		Workers:          p.Workers,
		LogLevel:         LogInfo,
	}
}

// Params returns the conversion parameters held by c.
func (c *Config) Params() hrir.Params {
	return hrir.Params{
		TargetSampleRate: c.TargetSampleRate,
		Taps:             c.Taps,
		AzStep:           c.AzStep,
		ElStep:           c.ElStep,
		Workers:          c.Workers,
	}
}
