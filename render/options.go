// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrNothingToRender is returned for a pattern without transitions.
	ErrNothingToRender = errors.New("render: pattern has no transitions")

	// ErrBadOptions indicates an Options value that fails Validate.
	ErrBadOptions = errors.New("render: invalid options")

	// ErrUnknownImageFormat indicates an image format other than svg or png.
	ErrUnknownImageFormat = errors.New("render: unknown image format")

	// ErrFont indicates that the configured font file could not be loaded.
	ErrFont = errors.New("render: cannot load font")

	// ErrNilPattern is returned when Render receives a nil pattern.
	ErrNilPattern = errors.New("render: nil pattern")
)

// ImageFormat selects the backend.
type ImageFormat string

const (
	// SVG writes scalable vector markup.
	SVG ImageFormat = "svg"
	// PNG writes a raster image.
	PNG ImageFormat = "png"
)

// ParseImageFormat accepts "svg" and "png" in any case.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch f := ImageFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case SVG, PNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownImageFormat, s)
	}
}

// FormatForPath infers the image format from a file extension.
func FormatForPath(path string) (ImageFormat, bool) {
	f, err := ParseImageFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return "", false
	}

	return f, true
}

// Defaults.
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultMargin      = 30
	DefaultFontSize    = 14.0
	DefaultFontFamily  = "DejaVu Sans, Microsoft YaHei, sans-serif"
	DefaultSwellFactor = 5.0
	DefaultLocale      = "en"
	DefaultStrokeWidth = 1.5
)

// Colors is the palette, as #rrggbb strings.
type Colors struct {
	Background string `yaml:"background"`
	Ink        string `yaml:"ink"`
	Pi         string `yaml:"pi"`
	Sigma      string `yaml:"sigma"`
	Grid       string `yaml:"grid"`
}

// Options configures both diagrams and both backends.
type Options struct {
	Format ImageFormat `yaml:"format"`

	Width       int     `yaml:"width"`        // pixels
	Height      int     `yaml:"height"`       // pixels
	Margin      int     `yaml:"margin"`       // pixels on every side
	StrokeWidth float64 `yaml:"stroke_width"` // pixels

	FontSize   float64 `yaml:"font_size"`   // pixels
	FontFamily string  `yaml:"font_family"` // SVG font-family list
	FontFile   string  `yaml:"font_file"`   // TTF/OTF for PNG; empty ⇒ Go Regular

	// Locale selects caption language: "en" or "zh" (best match wins).
	Locale string `yaml:"locale"`

	// SwellFactor scales M·g into scene units in the split diagram.
	// Raise it if sublevels crowd together, lower it if they overflow.
	SwellFactor float64 `yaml:"swell_factor"`

	Colors Colors `yaml:"colors"`
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Format:      SVG,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Margin:      DefaultMargin,
		StrokeWidth: DefaultStrokeWidth,
		FontSize:    DefaultFontSize,
		FontFamily:  DefaultFontFamily,
		Locale:      DefaultLocale,
		SwellFactor: DefaultSwellFactor,
		Colors: Colors{
			Background: "#ffffff",
			Ink:        "#333333",
			Pi:         "#1565c0",
			Sigma:      "#e65100",
			Grid:       "#bbbbbb",
		},
	}
}

// LoadOptions reads a YAML file on top of DefaultOptions. Keys that are
// absent keep their default.
func LoadOptions(path string) (Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("render: read options: %w", err)
	}

	return ParseOptions(b)
}

// ParseOptions decodes YAML on top of DefaultOptions and validates the result.
func ParseOptions(b []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrBadOptions, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// Validate checks ranges and colour syntax.
func (o Options) Validate() error {
	if _, err := ParseImageFormat(string(o.Format)); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrBadOptions, o.Width, o.Height)
	}
	if o.Margin < 0 || 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
		return fmt.Errorf("%w: margin %d", ErrBadOptions, o.Margin)
	}
	// Negated form also rejects NaN.
	if !(o.FontSize > 0) || !(o.StrokeWidth > 0) || !(o.SwellFactor > 0) {
		return fmt.Errorf("%w: font_size, stroke_width and swell_factor must be > 0", ErrBadOptions)
	}
	for _, c := range []struct{ name, value string }{
		{"background", o.Colors.Background},
		{"ink", o.Colors.Ink},
		{"pi", o.Colors.Pi},
		{"sigma", o.Colors.Sigma},
		{"grid", o.Colors.Grid},
	} {
		if _, err := parseHexColor(c.value); err != nil {
			return fmt.Errorf("%w: colors.%s: %v", ErrBadOptions, c.name, err)
		}
	}

	return nil
}

// tone returns the #rrggbb string for a palette entry.
func (o Options) tone(t Tone) string {
	switch t {
	case TonePi:
		return o.Colors.Pi
	case ToneSigma:
		return o.Colors.Sigma
	case ToneGrid:
		return o.Colors.Grid
	default:
		return o.Colors.Ink
	}
}
