package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zeeman/frac"
	"github.com/katalvlaran/zeeman/transition"
)

// TestSublevelStrengths_SumRule checks that I_π + 2·ΣI_σ is independent of M,
// for both the upper and lower level, on every ΔJ branch.
func TestSublevelStrengths_SumRule(t *testing.T) {
	cases := []struct {
		name      string
		j1, j2    string
		wantUpper string
		wantCount int
	}{
		{"ΔJ=0 J=1", "1", "1", "2", 3},        // J(J+1)
		{"ΔJ=0 J=5/2", "5/2", "5/2", "35/4", 6}, // J(J+1)
		{"ΔJ=-1 Hg 546", "1", "2", "10", 3},   // (J1+1)(2J1+3)
		{"ΔJ=+1 Na D2", "3/2", "1/2", "3", 4}, // J1(2J1-1)
		{"ΔJ=+1 J=3", "3", "2", "15", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := transition.ComputeJ(frac.MustParse(tc.j1), frac.MustParse(tc.j2))
			require.NoError(t, err)

			up := transition.SublevelStrengths(s)
			require.Len(t, up, tc.wantCount)
			for _, st := range up {
				assert.Equal(t, tc.wantUpper, st.Total.String(), "upper M=%s", st.M)
			}
			for i := 1; i < len(up); i++ {
				assert.True(t, up[i-1].M.Less(up[i].M), "ascending M")
			}

			low := transition.LowerSublevelStrengths(s)
			require.NotEmpty(t, low)
			for _, st := range low[1:] {
				assert.True(t, st.Total.Equal(low[0].Total), "lower M=%s", st.M)
			}
		})
	}
}

// TestTotals sums both polarizations exactly.
func TestTotals(t *testing.T) {
	s, err := transition.ComputeJ(frac.One, frac.Int(2))
	require.NoError(t, err)

	pi, sigma := transition.Totals(s)
	assert.Equal(t, "10", pi.String())
	assert.Equal(t, "10", sigma.String())

	pi, sigma = transition.Totals(transition.Set{})
	assert.True(t, pi.IsZero())
	assert.True(t, sigma.IsZero())
}
