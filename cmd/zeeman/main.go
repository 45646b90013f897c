// SPDX-License-Identifier: MIT

// Command zeeman prints the anomalous Zeeman pattern of one spectral line
// and optionally draws its level-splitting diagram and intensity plot.
//
//	zeeman -upper "1, 1/2, 3/2" -lower "0, 1/2, 1/2" -format text -split d2.svg -intensity d2.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/zeeman"
	"github.com/katalvlaran/zeeman/format"
	"github.com/katalvlaran/zeeman/internal/config"
	"github.com/katalvlaran/zeeman/internal/logger"
	"github.com/katalvlaran/zeeman/level"
	"github.com/katalvlaran/zeeman/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 2 for usage errors and
// 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "zeeman:", err)
		return 2
	}

	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "zeeman:", err)
		return 2
	}
	lc := logger.DefaultConfig()
	lc.Level, lc.Format, lc.Output = lvl, cfg.LogFormat, stderr
	logger.Init(lc)
	log := logger.ForComponent("cli")

	if err := execute(cfg, stdout, stderr); err != nil {
		log.Error("failed", "err", err)
		fmt.Fprintln(stderr, "zeeman:", err)
		return 1
	}

	return 0
}

func execute(cfg *config.Config, stdout, stderr io.Writer) error {
	upper, err := level.Parse(cfg.Upper)
	if err != nil {
		return fmt.Errorf("upper level: %w", err)
	}
	lower, err := level.Parse(cfg.Lower)
	if err != nil {
		return fmt.Errorf("lower level: %w", err)
	}
	ff, err := format.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	p, err := zeeman.Analyze(upper, lower)
	if err != nil {
		return err
	}
	logger.Debug("pattern computed", "upper", upper.String(), "lower", lower.String(),
		"pi", len(p.Set.Pi), "sigma", len(p.Set.Sigma))

	// A diagram on stdout pushes the textual report to stderr.
	report := stdout
	if cfg.SplitPath == "-" || cfg.IntensityPath == "-" {
		report = stderr
	}
	fmt.Fprintln(report, p.Summary())
	if err := format.Write(report, p.Set, ff); err != nil {
		return err
	}

	if cfg.SplitPath == "" && cfg.IntensityPath == "" {
		return nil
	}
	if p.Set.Empty() {
		logger.ForComponent("cli").Warn("no allowed transitions, skipping diagrams",
			"upper", upper.String(), "lower", lower.String())
		return nil
	}
	base, err := baseOptions(cfg)
	if err != nil {
		return err
	}
	for _, d := range []struct {
		path string
		ctor func(render.Options) (render.Renderer, error)
	}{
		{cfg.SplitPath, render.NewSplitDiagram},
		{cfg.IntensityPath, render.NewIntensityPlot},
	} {
		if d.path == "" {
			continue
		}
		opts := base
		if cfg.ImageFormat == "" {
			if f, ok := render.FormatForPath(d.path); ok {
				opts.Format = f
			}
		}
		r, err := d.ctor(opts)
		if err != nil {
			return err
		}
		path := d.path
		if path == "-" {
			path = ""
		}
		if err := render.WriteFile(path, stdout, r, p); err != nil {
			return err
		}
	}

	return nil
}

// baseOptions layers the render config file, -image-format and -locale.
func baseOptions(cfg *config.Config) (render.Options, error) {
	opts := render.DefaultOptions()
	if cfg.RenderConfig != "" {
		var err error
		if opts, err = render.LoadOptions(cfg.RenderConfig); err != nil {
			return render.Options{}, err
		}
	}
	if cfg.ImageFormat != "" {
		f, err := render.ParseImageFormat(cfg.ImageFormat)
		if err != nil {
			return render.Options{}, err
		}
		opts.Format = f
	}
	if cfg.Locale != "" {
		opts.Locale = cfg.Locale
	}

	return opts, nil
}
