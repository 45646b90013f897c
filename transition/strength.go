// SPDX-License-Identifier: MIT

package transition

import (
	"slices"

	"github.com/katalvlaran/zeeman/frac"
)

// Strength is the total line strength attached to one magnetic sublevel.
type Strength struct {
	M     frac.Frac
	Total frac.Frac
}

// SublevelStrengths returns, for each upper sublevel that has at least one
// line, I_π + 2·ΣI_σ in ascending M order. The σ formulas carry the ½
// factor of transverse observation, hence the weight 2. In LS coupling the
// totals are all equal (the sum rule), which makes this a convenient
// self-check on a Set.
func SublevelStrengths(s Set) []Strength {
	return strengths(s, func(t Transition) frac.Frac { return t.Upper })
}

// LowerSublevelStrengths is SublevelStrengths grouped by the lower sublevel.
func LowerSublevelStrengths(s Set) []Strength {
	return strengths(s, func(t Transition) frac.Frac { return t.Lower })
}

func strengths(s Set, key func(Transition) frac.Frac) []Strength {
	var out []Strength
	add := func(m, v frac.Frac) {
		for i := range out {
			if out[i].M.Equal(m) {
				out[i].Total = out[i].Total.Add(v)
				return
			}
		}
		out = append(out, Strength{M: m, Total: v})
	}

	two := frac.Int(2)
	for _, t := range s.Pi {
		add(key(t), t.Intensity)
	}
	for _, t := range s.Sigma {
		add(key(t), t.Intensity.Mul(two))
	}
	slices.SortFunc(out, func(a, b Strength) int { return a.M.Cmp(b.M) })

	return out
}

// Totals returns ΣI_π and ΣI_σ.
func Totals(s Set) (pi, sigma frac.Frac) {
	return frac.Sum(intensities(s.Pi)...), frac.Sum(intensities(s.Sigma)...)
}

func intensities(ts []Transition) []frac.Frac {
	out := make([]frac.Frac, len(ts))
	for i, t := range ts {
		out[i] = t.Intensity
	}

	return out
}
