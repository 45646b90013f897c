// SPDX-License-Identifier: MIT

package transition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zeeman/frac"
)

// ErrSelectionRule is returned when |J_upper − J_lower| is not 0 or 1.
var ErrSelectionRule = errors.New("transition: selection rule violated, need ΔJ in {-1, 0, +1}")

// Polarization classifies a line by Δm = m_upper − m_lower.
type Polarization int

const (
	// Pi is Δm = 0.
	Pi Polarization = iota
	// SigmaPlus is Δm = +1.
	SigmaPlus
	// SigmaMinus is Δm = −1.
	SigmaMinus
)

// String returns "π", "σ+" or "σ-".
func (p Polarization) String() string {
	switch p {
	case Pi:
		return "π"
	case SigmaPlus:
		return "σ+"
	case SigmaMinus:
		return "σ-"
	default:
		return fmt.Sprintf("Polarization(%d)", int(p))
	}
}

// IsSigma reports whether p is one of the σ components.
func (p Polarization) IsSigma() bool {
	return p == SigmaPlus || p == SigmaMinus
}

// Transition is one line between magnetic sublevels.
type Transition struct {
	// Upper is the magnetic quantum number of the upper level.
	Upper frac.Frac `json:"m_upper" yaml:"m_upper"`
	// Lower is the magnetic quantum number of the lower level.
	Lower frac.Frac `json:"m_lower" yaml:"m_lower"`
	// Intensity is the relative line strength, ≥ 0.
	Intensity frac.Frac `json:"intensity" yaml:"intensity"`
}

// DeltaM returns m_upper − m_lower.
func (t Transition) DeltaM() frac.Frac {
	return t.Upper.Sub(t.Lower)
}

// Polarization derives the line's polarization from Δm.
func (t Transition) Polarization() Polarization {
	switch t.DeltaM().Sign() {
	case 0:
		return Pi
	case 1:
		return SigmaPlus
	default:
		return SigmaMinus
	}
}

// Equal reports exact equality of all three components.
func (t Transition) Equal(o Transition) bool {
	return t.Upper.Equal(o.Upper) && t.Lower.Equal(o.Lower) && t.Intensity.Equal(o.Intensity)
}

// String renders "m_upper, m_lower, intensity", e.g. "-1, -2, 3".
func (t Transition) String() string {
	return fmt.Sprintf("%s, %s, %s", t.Upper, t.Lower, t.Intensity)
}

// Set is the full result for one level pair. The zero value is the empty
// set ("no transition").
type Set struct {
	Pi    []Transition `json:"pi" yaml:"pi"`
	Sigma []Transition `json:"sigma" yaml:"sigma"`
}

// Empty reports whether the set contains no lines.
func (s Set) Empty() bool {
	return len(s.Pi) == 0 && len(s.Sigma) == 0
}

// Len returns the total number of lines.
func (s Set) Len() int {
	return len(s.Pi) + len(s.Sigma)
}

// All returns π lines followed by σ lines, in a new slice.
func (s Set) All() []Transition {
	out := make([]Transition, 0, s.Len())
	out = append(out, s.Pi...)

	return append(out, s.Sigma...)
}

// Equal reports element-wise exact equality, including order.
func (s Set) Equal(o Set) bool {
	return equalList(s.Pi, o.Pi) && equalList(s.Sigma, o.Sigma)
}

func equalList(a, b []Transition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
