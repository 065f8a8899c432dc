// SPDX-License-Identifier: EPL-2.0

// Command hrirpack converts a SOFA file or a directory of stereo impulse
// responses into a compact HRIRBIN1 binary, and inspects existing binaries.
//
// Usage:
//
//	hrirpack -in subject.sofa -out hrir.bin [-config hrirpack.yaml] [-taps 192] ...
//	hrirpack -inspect hrir.bin [-az 30 -el 0] [-wav entry.wav]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ik5/hrirpack"
	"github.com/ik5/hrirpack/formats/hrirbin"
	"github.com/ik5/hrirpack/formats/wav"
	"github.com/ik5/hrirpack/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	in, out    string
	configPath string
	cfg        *config.Config

	inspect string
	az, el  float64
	wavOut  string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "hrirpack: %v\n", err)
		return 2
	}

	slog.SetDefault(newLogger(stderr, opts.cfg.LogLevel))

	if opts.inspect != "" {
		err = inspect(opts, stdout)
	} else {
		err = convert(ctx, opts, stdout)
	}
	if err != nil {
		slog.Error("hrirpack failed", "err", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("hrirpack", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	opts := &options{}
	fs.StringVar(&opts.in, "in", "", "input SOFA file or impulse response directory")
	fs.StringVar(&opts.out, "out", "", "output HRIRBIN1 file")
	fs.StringVar(&opts.configPath, "config", "", "optional YAML configuration file")
	targetSR := fs.Int("target-sr", def.TargetSampleRate, "output sample rate in Hz")
	taps := fs.Int("taps", def.Taps, "taps per ear")
	azStep := fs.Float64("az-step", def.AzStep, "azimuth bin size in degrees")
	elStep := fs.Float64("el-step", def.ElStep, "elevation bin size in degrees")
	workers := fs.Int("workers", def.Workers, "entries converted in parallel")
	metaOut := fs.String("meta-out", "", "write conversion metadata JSON to this path")
	logLevel := fs.String("log-level", string(def.LogLevel), "debug, info, warn or error")
	fs.StringVar(&opts.inspect, "inspect", "", "print header and nearest entry of an HRIRBIN1 file")
	fs.Float64Var(&opts.az, "az", 0, "inspect: azimuth in degrees")
	fs.Float64Var(&opts.el, "el", 0, "inspect: elevation in degrees")
	fs.StringVar(&opts.wavOut, "wav", "", "inspect: export the nearest entry as a stereo WAV")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	// Flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target-sr":
			cfg.TargetSampleRate = *targetSR
		case "taps":
			cfg.Taps = *taps
		case "az-step":
			cfg.AzStep = *azStep
		case "el-step":
			cfg.ElStep = *elStep
		case "workers":
			cfg.Workers = *workers
		case "meta-out":
			cfg.MetaOut = *metaOut
		case "log-level":
			cfg.LogLevel = config.LogLevel(*logLevel)
		}
	})
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	opts.cfg = cfg

	if opts.inspect == "" && (opts.in == "" || opts.out == "") {
		return nil, errors.New("-in and -out are required (or -inspect)")
	}

	return opts, nil
}

func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

func convert(ctx context.Context, opts *options, stdout io.Writer) error {
	slog.Debug("converting", "in", opts.in, "out", opts.out, "params", opts.cfg.Params())

	res, err := hrirpack.ConvertFile(ctx, opts.in, opts.out, opts.cfg.Params())
	if err != nil {
		return err
	}

	meta, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	meta = append(meta, '\n')

	if opts.cfg.MetaOut != "" {
		if err := os.MkdirAll(filepath.Dir(opts.cfg.MetaOut), 0o755); err != nil {
			return fmt.Errorf("creating metadata directory: %w", err)
		}
		if err := os.WriteFile(opts.cfg.MetaOut, meta, 0o644); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
	}

	_, err = stdout.Write(meta)
	return err
}

func inspect(opts *options, stdout io.Writer) error {
	f, err := hrirbin.ReadFile(opts.inspect)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s version %d: %d Hz, %d taps, %d entries (%d bytes)\n",
		hrirbin.Magic, f.Version, f.SampleRate, f.Taps, f.EntryCount, f.FileSize())

	e, ok := f.Nearest(opts.az, opts.el)
	if !ok {
		return nil
	}

	fmt.Fprintf(stdout, "nearest to (%g, %g): az=%g el=%g peak L=%d R=%d\n",
		opts.az, opts.el, e.Azimuth, e.Elevation, peak(e.Left), peak(e.Right))

	if opts.wavOut == "" {
		return nil
	}

	out, err := os.Create(opts.wavOut)
	if err != nil {
		return fmt.Errorf("creating wav: %w", err)
	}
	if err := wav.WriteStereo16(out, f.SampleRate, e.Left, e.Right); err != nil {
		out.Close()
		return fmt.Errorf("writing wav: %w", err)
	}
	return out.Close()
}

func peak(x []int16) int {
	m := 0
	for _, v := range x {
		m = max(m, abs(int(v)))
	}
	return m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
