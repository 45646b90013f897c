package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zeeman/format"
	"github.com/katalvlaran/zeeman/level"
	"github.com/katalvlaran/zeeman/transition"
)

func sodium(t *testing.T) transition.Set {
	t.Helper()
	s, err := transition.Compute(level.MustParse("1,1/2,3/2"), level.MustParse("0,1/2,1/2"))
	require.NoError(t, err)

	return s
}

// TestToJSON checks the exact JSON document, order included.
func TestToJSON(t *testing.T) {
	out, err := format.ToJSON(sodium(t))
	require.NoError(t, err)

	want := `{
  "pi": [
    "-1/2, -1/2, 2",
    "1/2, 1/2, 2"
  ],
  "sigma": [
    "-3/2, -1/2, 3/2",
    "-1/2, 1/2, 1/2",
    "1/2, -1/2, 1/2",
    "3/2, 1/2, 3/2"
  ]
}`
	assert.Equal(t, want, out)
}

// TestToJSON_Empty renders both groups as empty arrays.
func TestToJSON_Empty(t *testing.T) {
	out, err := format.ToJSON(transition.Set{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pi": [], "sigma": []}`, out)
}

// TestToYAML decodes the YAML output back and compares the groups.
func TestToYAML(t *testing.T) {
	out, err := format.ToYAML(sodium(t))
	require.NoError(t, err)

	var doc struct {
		Pi    []string `yaml:"pi"`
		Sigma []string `yaml:"sigma"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"-1/2, -1/2, 2", "1/2, 1/2, 2"}, doc.Pi)
	assert.Len(t, doc.Sigma, 4)
	assert.Equal(t, "3/2, 1/2, 3/2", doc.Sigma[3])
}

// TestToText checks headings, ordering and the empty-group marker.
func TestToText(t *testing.T) {
	out := format.ToText(sodium(t))
	assert.True(t, strings.HasPrefix(out, "π\n"))
	assert.Contains(t, out, "\nσ\n")
	assert.Contains(t, out, "m_upper")
	sigma := out[strings.Index(out, "\nσ\n"):]
	assert.Less(t, strings.Index(sigma, "-3/2"), strings.Index(sigma, "  3  1/2"), "σ rows keep engine order")

	empty := format.ToText(transition.Set{})
	assert.Equal(t, 2, strings.Count(empty, "(none)"))
}

// TestParseFormat covers names, aliases and the error sentinel.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]format.Format{
		"json": format.JSON, "": format.JSON, "YAML": format.YAML, "yml": format.YAML, " text ": format.Text, "txt": format.Text,
	} {
		got, err := format.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := format.ParseFormat("xml")
	assert.ErrorIs(t, err, format.ErrUnknownFormat)

	assert.Equal(t, "yaml", format.YAML.String())
}

// TestWrite appends a trailing newline and rejects unknown formats.
func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.Write(&buf, sodium(t), format.JSON))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))

	err := format.Write(&buf, sodium(t), format.Format(42))
	assert.ErrorIs(t, err, format.ErrUnknownFormat)
}
