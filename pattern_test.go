package zeeman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zeeman"
	"github.com/katalvlaran/zeeman/frac"
	"github.com/katalvlaran/zeeman/level"
	"github.com/katalvlaran/zeeman/transition"
)

func positions(ls []zeeman.Line) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Label() + "@" + l.Position.String()
	}

	return out
}

// TestAnalyze_Mercury checks g-factors, M lists, shifts and line positions for 3S1 → 3P2.
func TestAnalyze_Mercury(t *testing.T) {
	p, err := zeeman.Analyze(level.MustParse("0,1,1"), level.MustParse("1,1,2"))
	require.NoError(t, err)

	require.True(t, p.Upper.HasG)
	require.True(t, p.Lower.HasG)
	assert.Equal(t, "2", p.Upper.G.String())
	assert.Equal(t, "3/2", p.Lower.G.String())
	assert.Equal(t, "g1 = 2, g2 = 3/2", p.Summary())

	require.Len(t, p.Upper.M, 3)
	require.Len(t, p.Lower.M, 5)
	assert.Equal(t, "-3", p.Lower.Shift[0].String())
	assert.Equal(t, "3", p.Lower.Shift[4].String())

	assert.Equal(t, []string{
		"π1@-1/2", "π2@0", "π3@1/2",
		"σ1@1", "σ2@-2", "σ3@3/2", "σ4@-3/2", "σ5@2", "σ6@-1",
	}, positions(p.Lines()))
}

// TestAnalyze_Sodium checks positions of the D2 pattern (anomalous sextet).
func TestAnalyze_Sodium(t *testing.T) {
	p, err := zeeman.Analyze(level.MustParse("1,1/2,3/2"), level.MustParse("0,1/2,1/2"))
	require.NoError(t, err)

	assert.Equal(t, "g1 = 4/3, g2 = 2", p.Summary())
	assert.Equal(t, []string{
		"π1@1/3", "π2@-1/3",
		"σ1@-1", "σ2@-5/3", "σ3@5/3", "σ4@1",
	}, positions(p.Lines()))

	ls := p.Lines()
	assert.Equal(t, transition.Pi, ls[0].Polarization())
	assert.Equal(t, transition.SigmaMinus, ls[2].Polarization())
	assert.Equal(t, transition.SigmaPlus, ls[4].Polarization())
}

// TestAnalyze_JZeroLevel keeps the J=0 level unsplit instead of failing.
func TestAnalyze_JZeroLevel(t *testing.T) {
	p, err := zeeman.Analyze(level.MustParse("1,1,0"), level.MustParse("0,1,1"))
	require.NoError(t, err)

	assert.False(t, p.Upper.HasG)
	require.Len(t, p.Upper.Shift, 1)
	assert.True(t, p.Upper.Shift[0].IsZero())
	assert.Equal(t, "g1 = undefined, g2 = 2", p.Summary())
	assert.Equal(t, []string{"π1@0", "σ1@2", "σ2@-2"}, positions(p.Lines()))
}

// TestAnalyze_Errors propagates domain errors and returns no pattern.
func TestAnalyze_Errors(t *testing.T) {
	p, err := zeeman.Analyze(level.MustParse("1,1,2"), level.MustParse("1,1,0"))
	assert.ErrorIs(t, err, transition.ErrSelectionRule)
	assert.Nil(t, p)

	p, err = zeeman.Analyze(level.New(frac.Int(1), frac.Half, frac.New(2, 3)), level.MustParse("0,1/2,1/2"))
	assert.ErrorIs(t, err, level.ErrInvalidQuantumNumber)
	assert.Nil(t, p)
}

// TestAnalyze_ZeroToZero gives an empty but valid pattern.
func TestAnalyze_ZeroToZero(t *testing.T) {
	p, err := zeeman.Analyze(level.MustParse("1,1,0"), level.MustParse("0,0,0"))
	require.NoError(t, err)
	assert.True(t, p.Set.Empty())
	assert.Empty(t, p.Lines())
}
