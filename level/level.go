// SPDX-License-Identifier: MIT

package level

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/zeeman/frac"
)

// Level is an LS-coupled energy level described by its orbital (L), spin (S)
// and total (J) angular momentum quantum numbers.
//
// Level is a small value type; it is never mutated after construction.
type Level struct {
	L frac.Frac `json:"l" yaml:"l"`
	S frac.Frac `json:"s" yaml:"s"`
	J frac.Frac `json:"j" yaml:"j"`
}

// New builds a Level from exact quantum numbers. It does not validate;
// call Validate (or let the transition engine do it).
func New(l, s, j frac.Frac) Level {
	return Level{L: l, S: s, J: j}
}

// FromStrings parses the three quantum numbers independently, e.g.
// FromStrings("1", "1/2", "3/2").
func FromStrings(l, s, j string) (Level, error) {
	var (
		lv  Level
		err error
	)
	if lv.L, err = frac.Parse(l); err != nil {
		return Level{}, fmt.Errorf("level: L: %w", err)
	}
	if lv.S, err = frac.Parse(s); err != nil {
		return Level{}, fmt.Errorf("level: S: %w", err)
	}
	if lv.J, err = frac.Parse(j); err != nil {
		return Level{}, fmt.Errorf("level: J: %w", err)
	}

	return lv, nil
}

// Parse reads a descriptor such as "1,1/2,3/2", "[0, 1, 1]" or "2 1 3".
// The result is validated with Validate.
func Parse(s string) (Level, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "[")
	t = strings.TrimSuffix(t, "]")
	fields := strings.FieldsFunc(t, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Level{}, fmt.Errorf("%w: %q", ErrBadDescriptor, s)
	}
	lv, err := FromStrings(fields[0], fields[1], fields[2])
	if err != nil {
		return Level{}, err
	}
	if err = lv.Validate(); err != nil {
		return Level{}, err
	}

	return lv, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Level {
	lv, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return lv
}

// Validate checks that L, S and J are non-negative multiples of 1/2 and that
// L is an integer. The coupling triangle is left to the caller; see
// ValidateStrict.
func (lv Level) Validate() error {
	if err := validateMomentum("L", lv.L); err != nil {
		return err
	}
	if !lv.L.IsInt() {
		return fmt.Errorf("%w: L=%s must be an integer", ErrInvalidQuantumNumber, lv.L)
	}
	if err := validateMomentum("S", lv.S); err != nil {
		return err
	}

	return validateMomentum("J", lv.J)
}

// ValidateStrict runs Validate and additionally requires |L−S| ≤ J ≤ L+S
// with J−(L+S) integral.
func (lv Level) ValidateStrict() error {
	if err := lv.Validate(); err != nil {
		return err
	}
	if !lv.Coupled() {
		return fmt.Errorf("%w: L=%s S=%s J=%s", ErrTriangleRule, lv.L, lv.S, lv.J)
	}

	return nil
}

// Coupled reports whether J is reachable by adding L and S.
func (lv Level) Coupled() bool {
	lo := lv.L.Sub(lv.S).Abs()
	hi := lv.L.Add(lv.S)
	if lv.J.Less(lo) || hi.Less(lv.J) {
		return false
	}

	return hi.Sub(lv.J).IsInt()
}

// validateMomentum enforces x ≥ 0 and 2x ∈ ℤ.
func validateMomentum(name string, x frac.Frac) error {
	if x.Sign() < 0 || !x.IsHalfInt() {
		return fmt.Errorf("%w: %s=%s", ErrInvalidQuantumNumber, name, x)
	}

	return nil
}

// G returns the Landé g-factor of the level. See GFactor.
func (lv Level) G() (frac.Frac, error) {
	return GFactor(lv.L, lv.S, lv.J)
}

// M returns the magnetic sublevels of the level. See MList.
func (lv Level) M() ([]frac.Frac, error) {
	return MList(lv.J)
}

// Shift returns m·g, the sublevel displacement in units of μB·B.
// For J = 0 the level does not split and Shift returns 0 without
// evaluating the (undefined) g-factor.
func (lv Level) Shift(m frac.Frac) (frac.Frac, error) {
	if lv.J.IsZero() {
		return frac.Zero, nil
	}
	g, err := lv.G()
	if err != nil {
		return frac.Frac{}, err
	}

	return m.Mul(g), nil
}

// String renders the descriptor as "L, S, J".
func (lv Level) String() string {
	return fmt.Sprintf("%s, %s, %s", lv.L, lv.S, lv.J)
}
