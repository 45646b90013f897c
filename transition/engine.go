// SPDX-License-Identifier: MIT

package transition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/zeeman/frac"
	"github.com/katalvlaran/zeeman/level"
)

// panicPairing is raised when the index pairing of the two M lists breaks.
// It signals a bug in this package, never bad input.
const panicPairing = "transition: M-list pairing invariant broken"

// Compute enumerates the allowed transitions from upper to lower.
//
// Implementation:
//   - Stage 1: validate both levels (non-negative half-integers, integral L).
//   - Stage 2: delegate to ComputeJ; only J takes part in the enumeration.
//
// Errors:
//   - level.ErrInvalidQuantumNumber for malformed levels.
//   - ErrSelectionRule when |ΔJ| ∉ {0, 1}.
//
// A J = 0 → J = 0 pair yields the empty Set and a nil error.
func Compute(upper, lower level.Level) (Set, error) {
	if err := upper.Validate(); err != nil {
		return Set{}, fmt.Errorf("upper level: %w", err)
	}
	if err := lower.Validate(); err != nil {
		return Set{}, fmt.Errorf("lower level: %w", err)
	}

	return ComputeJ(upper.J, lower.J)
}

// ComputeJ runs the engine on bare total angular momenta j1 (upper) and j2 (lower).
//
// Implementation:
//   - Stage 1: derive both M lists (validates j1, j2).
//   - Stage 2: check the selection rule on ΔJ = j1 − j2.
//   - Stage 3: dispatch on ΔJ ∈ {0, −1, +1}.
//   - Stage 4: sort both lists by (m_upper, m_lower).
//
// Complexity: O(J log J).
func ComputeJ(j1, j2 frac.Frac) (Set, error) {
	// Stage 1: magnetic sublevels.
	m1, err := level.MList(j1)
	if err != nil {
		return Set{}, fmt.Errorf("upper level: %w", err)
	}
	m2, err := level.MList(j2)
	if err != nil {
		return Set{}, fmt.Errorf("lower level: %w", err)
	}

	// Stage 2: selection rule.
	dj := j1.Sub(j2)
	if !dj.IsInt() || frac.One.Less(dj.Abs()) {
		return Set{}, fmt.Errorf("%w: J_upper=%s J_lower=%s", ErrSelectionRule, j1, j2)
	}

	// Stage 3: case split.
	var s Set
	switch dj.Sign() {
	case 0:
		if j1.IsZero() {
			return Set{}, nil // 0 → 0 has no dipole line
		}
		s = sameJ(j1, m1, m2)
	case -1:
		s = upperSmaller(j1, m1, m2)
	default:
		s = upperLarger(j1, m1, m2)
	}

	// Stage 4: deterministic order.
	sortTransitions(s.Pi)
	sortTransitions(s.Sigma)

	return s, nil
}

// sameJ handles ΔJ = 0 with J > 0. m1 and m2 are identical lists.
func sameJ(j frac.Frac, m1, m2 []frac.Frac) Set {
	n := len(m1)
	s := Set{
		Pi:    make([]Transition, 0, n),
		Sigma: make([]Transition, 0, 2*n),
	}

	var (
		i int
		m frac.Frac
	)
	for i = 0; i < n; i++ {
		m = m1[i]
		if m.IsZero() {
			continue // M=0 → M=0 is forbidden for ΔJ = 0
		}
		s.Pi = append(s.Pi, Transition{Upper: m, Lower: m2[i], Intensity: m.Square()})
	}

	for i = 0; i < n; i++ {
		m = m1[i]
		if i < n-1 {
			s.Sigma = append(s.Sigma, Transition{Upper: m, Lower: m2[i+1], Intensity: sigmaUp(j, m)})
		}
		if i > 0 {
			s.Sigma = append(s.Sigma, Transition{Upper: m, Lower: m2[i-1], Intensity: sigmaDown(j, m)})
		}
	}

	return s
}

// sigmaUp is ¼(J+m+1)(J−m).
func sigmaUp(j, m frac.Frac) frac.Frac {
	return frac.Quarter.Mul(j.Add(m).Add(frac.One)).Mul(j.Sub(m))
}

// sigmaDown is ¼(J−m+1)(J+m).
func sigmaDown(j, m frac.Frac) frac.Frac {
	return frac.Quarter.Mul(j.Sub(m).Add(frac.One)).Mul(j.Add(m))
}

// upperSmaller handles ΔJ = −1 (J1 = J2 − 1): every upper sublevel has a
// π partner at the same index + 1 in the lower list and two σ partners.
func upperSmaller(j1 frac.Frac, m1, m2 []frac.Frac) Set {
	n1 := len(m1)
	s := Set{
		Pi:    make([]Transition, 0, n1),
		Sigma: make([]Transition, 0, 2*n1),
	}
	jp1 := j1.Add(frac.One)

	var (
		i int
		m frac.Frac
	)
	for i = 0; i < n1; i++ {
		m = m1[i]
		mustPair(m, m2[i+1])
		s.Pi = append(s.Pi, Transition{Upper: m, Lower: m2[i+1], Intensity: jp1.Square().Sub(m.Square())})
	}

	for i = 0; i < n1; i++ {
		m = m1[i]
		a := j1.Sub(m) // J1 − m
		b := j1.Add(m) // J1 + m
		s.Sigma = append(s.Sigma,
			Transition{Upper: m, Lower: m2[i], Intensity: frac.Quarter.Mul(a.Add(frac.One)).Mul(a.Add(frac.Int(2)))},
			Transition{Upper: m, Lower: m2[i+2], Intensity: frac.Quarter.Mul(b.Add(frac.One)).Mul(b.Add(frac.Int(2)))},
		)
	}

	return s
}

// upperLarger handles ΔJ = +1 (J1 = J2 + 1), the mirror of upperSmaller:
// iteration runs over the lower list.
func upperLarger(j1 frac.Frac, m1, m2 []frac.Frac) Set {
	n2 := len(m2)
	s := Set{
		Pi:    make([]Transition, 0, n2),
		Sigma: make([]Transition, 0, 2*n2),
	}
	jsq := j1.Square()

	var (
		i int
		m frac.Frac
	)
	for i = 0; i < n2; i++ {
		mustPair(m2[i], m1[i+1])
		s.Pi = append(s.Pi, Transition{Upper: m1[i+1], Lower: m2[i], Intensity: jsq.Sub(m1[i+1].Square())})
	}

	for i = 0; i < n2; i++ {
		m = m2[i]
		a := j1.Sub(m) // J1 − m
		b := j1.Add(m) // J1 + m
		s.Sigma = append(s.Sigma,
			Transition{Upper: m1[i], Lower: m, Intensity: frac.Quarter.Mul(a.Add(frac.One)).Mul(a)},
			Transition{Upper: m1[i+2], Lower: m, Intensity: frac.Quarter.Mul(b.Add(frac.One)).Mul(b)},
		)
	}

	return s
}

// mustPair enforces that index-paired sublevels carry the same M.
func mustPair(a, b frac.Frac) {
	if !a.Equal(b) {
		panic(fmt.Sprintf("%s: %s != %s", panicPairing, a, b))
	}
}

// sortTransitions orders lines by (m_upper, m_lower) ascending.
func sortTransitions(ts []Transition) {
	slices.SortFunc(ts, func(a, b Transition) int {
		if c := a.Upper.Cmp(b.Upper); c != 0 {
			return c
		}

		return a.Lower.Cmp(b.Lower)
	})
}
