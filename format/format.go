// SPDX-License-Identifier: MIT

// Package format renders a transition.Set as human-readable text.
//
// Every line is written as its three exact components "m_upper, m_lower,
// intensity" grouped under π and σ, in the order the engine produced.
// Three layouts are available: JSON (two-space indent), YAML and an aligned
// plain-text table.
package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zeeman/transition"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("format: unknown output format")

// Format selects a layout.
type Format int

const (
	// JSON is {"pi": [...], "sigma": [...]} with two-space indentation.
	JSON Format = iota
	// YAML is the same document as YAML.
	YAML
	// Text is an aligned table.
	Text
)

// String returns the canonical name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "json", "yaml"/"yml" and "text"/"txt" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "text", "txt":
		return Text, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// document is the serialised shape shared by JSON and YAML.
type document struct {
	Pi    []string `json:"pi" yaml:"pi"`
	Sigma []string `json:"sigma" yaml:"sigma"`
}

func newDocument(s transition.Set) document {
	return document{Pi: strs(s.Pi), Sigma: strs(s.Sigma)}
}

// strs never returns nil so that empty groups serialise as [].
func strs(ts []transition.Transition) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}

	return out
}

// ToJSON renders s as indented JSON.
func ToJSON(s transition.Set) (string, error) {
	b, err := json.MarshalIndent(newDocument(s), "", "  ")
	if err != nil {
		return "", fmt.Errorf("format: json: %w", err)
	}

	return string(b), nil
}

// ToYAML renders s as YAML.
func ToYAML(s transition.Set) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(s)); err != nil {
		return "", fmt.Errorf("format: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("format: yaml: %w", err)
	}

	return buf.String(), nil
}

// ToText renders s as a table with one row per line:
//
//	π
//	  #  m_upper  m_lower  intensity
//	  1  -1/2     -1/2     2
func ToText(s transition.Set) string {
	var buf bytes.Buffer
	writeGroup(&buf, "π", s.Pi)
	buf.WriteByte('\n')
	writeGroup(&buf, "σ", s.Sigma)

	return buf.String()
}

func writeGroup(buf *bytes.Buffer, title string, ts []transition.Transition) {
	buf.WriteString(title)
	buf.WriteByte('\n')
	if len(ts) == 0 {
		buf.WriteString("  (none)\n")
		return
	}
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tm_upper\tm_lower\tintensity")
	for i, t := range ts {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", i+1, t.Upper, t.Lower, t.Intensity)
	}
	_ = tw.Flush()
}

// Render renders s in the requested layout.
func Render(s transition.Set, f Format) (string, error) {
	switch f {
	case JSON:
		return ToJSON(s)
	case YAML:
		return ToYAML(s)
	case Text:
		return ToText(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Write renders s and writes it to w followed by a newline when missing.
func Write(w io.Writer, s transition.Set, f Format) error {
	out, err := Render(s, f)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(w, out)

	return err
}
