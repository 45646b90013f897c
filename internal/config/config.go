// SPDX-License-Identifier: MIT

// Package config resolves command-line settings from flags, the environment
// and an optional .env file.
package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	// ErrMissingLevel is returned when either level is not given.
	ErrMissingLevel = errors.New("config: both -upper and -lower are required")

	// ErrStdoutConflict is returned when both diagrams target stdout.
	ErrStdoutConflict = errors.New("config: -split and -intensity cannot both write to stdout")
)

type Config struct {
	Upper string // "L, S, J"
	Lower string

	Format string // json, yaml or text

	SplitPath     string // split diagram output; "-" ⇒ stdout
	IntensityPath string // intensity plot output; "-" ⇒ stdout
	RenderConfig  string // YAML render options
	ImageFormat   string // svg or png; empty ⇒ from extension or render config
	Locale        string

	LogLevel  string
	LogFormat string
}

// Load parses args (without the program name). An explicit flag wins over
// ZEEMAN_* variables, which win over the flag default. A .env file in the
// working directory is read first if present.
func Load(args []string, stderr io.Writer) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("zeeman", flag.ContinueOnError)
	fs.SetOutput(stderr)

	upper := fs.String("upper", "", `upper level "L, S, J", e.g. "1, 1/2, 3/2"`)
	lower := fs.String("lower", "", `lower level "L, S, J", e.g. "0, 1/2, 1/2"`)
	format := fs.String("format", "json", "transition output: json, yaml or text")
	split := fs.String("split", "", `write the split diagram to this file ("-" for stdout)`)
	intensity := fs.String("intensity", "", `write the intensity plot to this file ("-" for stdout)`)
	renderCfg := fs.String("render-config", "", "YAML file with render options")
	imageFormat := fs.String("image-format", "", "svg or png (default: from file extension)")
	locale := fs.String("locale", "", "caption language: en or zh")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name, env, def string) string {
		explicit := ""
		if set[name] {
			explicit = fs.Lookup(name).Value.String()
		}

		return firstNonEmpty(explicit, strings.TrimSpace(os.Getenv(env)), def)
	}

	cfg := &Config{
		Upper:         pick("upper", "ZEEMAN_UPPER", *upper),
		Lower:         pick("lower", "ZEEMAN_LOWER", *lower),
		Format:        pick("format", "ZEEMAN_FORMAT", *format),
		SplitPath:     pick("split", "ZEEMAN_SPLIT", *split),
		IntensityPath: pick("intensity", "ZEEMAN_INTENSITY", *intensity),
		RenderConfig:  pick("render-config", "ZEEMAN_RENDER_CONFIG", *renderCfg),
		ImageFormat:   pick("image-format", "ZEEMAN_IMAGE_FORMAT", *imageFormat),
		Locale:        pick("locale", "ZEEMAN_LOCALE", *locale),
		LogLevel:      pick("log-level", "ZEEMAN_LOG_LEVEL", *logLevel),
		LogFormat:     pick("log-format", "ZEEMAN_LOG_FORMAT", *logFormat),
	}
	if strings.TrimSpace(cfg.Upper) == "" || strings.TrimSpace(cfg.Lower) == "" {
		return nil, ErrMissingLevel
	}
	if cfg.SplitPath == "-" && cfg.IntensityPath == "-" {
		return nil, ErrStdoutConflict
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
