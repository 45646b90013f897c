// SPDX-License-Identifier: MIT

package zeeman

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zeeman/frac"
	"github.com/katalvlaran/zeeman/level"
	"github.com/katalvlaran/zeeman/transition"
)

// Sublevels is one level together with its magnetic splitting.
type Sublevels struct {
	Level level.Level

	// G is the Landé g-factor; meaningful only when HasG is true.
	G frac.Frac
	// HasG is false for J = 0, where g is undefined and the level does not split.
	HasG bool

	// M lists the magnetic quantum numbers −J … J.
	M []frac.Frac
	// Shift holds M·g for each entry of M (all zero when HasG is false).
	Shift []frac.Frac
}

// Line is a transition placed on the spectrum.
type Line struct {
	transition.Transition

	// Position is g_upper·m_upper − g_lower·m_lower, the shift from the
	// unperturbed line in units of μB·B.
	Position frac.Frac
	// Index is 1-based within the line's category (π₁, π₂, … / σ₁, σ₂, …).
	Index int
}

// Symbol returns "π" or "σ"; σ+ and σ− share a symbol.
func (l Line) Symbol() string {
	if l.Polarization() == transition.Pi {
		return "π"
	}

	return "σ"
}

// Label returns "π1", "σ3", ….
func (l Line) Label() string {
	return fmt.Sprintf("%s%d", l.Symbol(), l.Index)
}

// Pattern is the complete Zeeman pattern of one line: the input contract of
// every renderer.
type Pattern struct {
	Upper Sublevels
	Lower Sublevels
	Set   transition.Set
}

// Analyze computes g-factors, M lists and the transition set for the line
// upper → lower.
//
// Errors:
//   - level.ErrInvalidQuantumNumber for malformed levels.
//   - transition.ErrSelectionRule when |ΔJ| ∉ {0, 1}.
func Analyze(upper, lower level.Level) (*Pattern, error) {
	set, err := transition.Compute(upper, lower)
	if err != nil {
		return nil, err
	}
	up, err := split(upper)
	if err != nil {
		return nil, fmt.Errorf("upper level: %w", err)
	}
	lo, err := split(lower)
	if err != nil {
		return nil, fmt.Errorf("lower level: %w", err)
	}

	return &Pattern{Upper: up, Lower: lo, Set: set}, nil
}

// split derives g, M and M·g for one level.
func split(lv level.Level) (Sublevels, error) {
	ms, err := lv.M()
	if err != nil {
		return Sublevels{}, err
	}
	sl := Sublevels{Level: lv, M: ms, Shift: make([]frac.Frac, len(ms))}

	g, err := lv.G()
	switch {
	case err == nil:
		sl.G, sl.HasG = g, true
	case errors.Is(err, level.ErrUndefinedGFactor):
		// J = 0: single unshifted sublevel.
	default:
		return Sublevels{}, err
	}
	for i, m := range ms {
		sl.Shift[i] = m.Mul(sl.G)
	}

	return sl, nil
}

// ShiftOf returns m·g for the level (0 for a J = 0 level).
func (s Sublevels) ShiftOf(m frac.Frac) frac.Frac {
	return m.Mul(s.G)
}

// Lines returns every π line followed by every σ line with its position on
// the spectrum, in Set order.
func (p *Pattern) Lines() []Line {
	out := make([]Line, 0, p.Set.Len())
	for i, t := range p.Set.Pi {
		out = append(out, p.line(t, i+1))
	}
	for i, t := range p.Set.Sigma {
		out = append(out, p.line(t, i+1))
	}

	return out
}

func (p *Pattern) line(t transition.Transition, idx int) Line {
	return Line{
		Transition: t,
		Position:   p.Upper.ShiftOf(t.Upper).Sub(p.Lower.ShiftOf(t.Lower)),
		Index:      idx,
	}
}

// Summary returns "g1 = 2, g2 = 3/2"; an undefined g prints as "undefined".
func (p *Pattern) Summary() string {
	return fmt.Sprintf("g1 = %s, g2 = %s", gText(p.Upper), gText(p.Lower))
}

func gText(s Sublevels) string {
	if !s.HasG {
		return "undefined"
	}

	return s.G.String()
}
