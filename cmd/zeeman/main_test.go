package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-upper", "1, 1/2, 3/2", "-lower", "0, 1/2, 1/2"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	first, rest, ok := strings.Cut(out.String(), "\n")
	require.True(t, ok)
	assert.Equal(t, "g1 = 4/3, g2 = 2", first)
	assert.Contains(t, rest, `"-1/2, -1/2, 2"`)
	assert.Contains(t, rest, `"3/2, 1/2, 3/2"`)
}

func TestRunDiagrams(t *testing.T) {
	dir := t.TempDir()
	split := filepath.Join(dir, "hg.svg")
	intensity := filepath.Join(dir, "hg.png")

	var out, errOut bytes.Buffer
	code := run([]string{
		"-upper", "0, 1, 1", "-lower", "1, 1, 2", "-format", "text",
		"-split", split, "-intensity", intensity,
	}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "g1 = 2, g2 = 3/2")

	svg, err := os.ReadFile(split)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	raw, err := os.ReadFile(intensity)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestRunDiagramToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-upper", "1, 1/2, 3/2", "-lower", "0, 1/2, 1/2", "-split", "-"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	assert.True(t, strings.HasPrefix(out.String(), "<?xml"))
	assert.Contains(t, errOut.String(), "g1 = 4/3, g2 = 2")
}

func TestRunNoTransitionsSkipsDiagrams(t *testing.T) {
	split := filepath.Join(t.TempDir(), "x.svg")

	var out, errOut bytes.Buffer
	code := run([]string{"-upper", "1,1,0", "-lower", "0,0,0", "-split", split}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	assert.Contains(t, out.String(), "g1 = undefined, g2 = undefined")
	assert.Contains(t, out.String(), `"pi": []`)
	assert.Contains(t, errOut.String(), "no allowed transitions")
	assert.NoFileExists(t, split)
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"missing lower", []string{"-upper", "0, 1, 1"}, 2},
		{"both diagrams on stdout", []string{"-upper", "0, 1, 1", "-lower", "1, 1, 2", "-split", "-", "-intensity", "-"}, 2},
		{"bad log level", []string{"-upper", "0, 1, 1", "-lower", "1, 1, 2", "-log-level", "loud"}, 2},
		{"bad level", []string{"-upper", "0, 1", "-lower", "1, 1, 2"}, 1},
		{"selection rule", []string{"-upper", "0, 0, 0", "-lower", "2, 0, 2"}, 1},
		{"bad format", []string{"-upper", "0, 1, 1", "-lower", "1, 1, 2", "-format", "xml"}, 1},
		{"bad image format", []string{"-upper", "0, 1, 1", "-lower", "1, 1, 2", "-split", "x.svg", "-image-format", "gif"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, tc.code, run(tc.args, &out, &errOut))
			assert.Contains(t, errOut.String(), "zeeman:")
		})
	}
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "-upper")
}
