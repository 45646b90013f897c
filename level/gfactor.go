// SPDX-License-Identifier: MIT

package level

import (
	"fmt"

	"github.com/katalvlaran/zeeman/frac"
)

// GFactor returns the LS-coupling Landé g-factor
//
//	g = 1 + [J(J+1) − L(L+1) + S(S+1)] / [2J(J+1)]
//
// Errors:
//   - ErrUndefinedGFactor when J = 0 (the denominator vanishes).
//
// Complexity: O(1).
func GFactor(l, s, j frac.Frac) (frac.Frac, error) {
	jj := j.Mul(j.Add(frac.One)) // J(J+1)
	den := jj.Mul(frac.Int(2))
	num := jj.Sub(l.Mul(l.Add(frac.One))).Add(s.Mul(s.Add(frac.One)))
	q, err := num.Quo(den)
	if err != nil {
		return frac.Frac{}, fmt.Errorf("%w: L=%s S=%s", ErrUndefinedGFactor, l, s)
	}

	return frac.One.Add(q), nil
}

// MList returns the 2J+1 magnetic quantum numbers −J, −J+1, …, J in
// ascending order.
//
// Errors:
//   - ErrInvalidQuantumNumber when J is negative or not a multiple of 1/2.
//
// Complexity: O(J).
func MList(j frac.Frac) ([]frac.Frac, error) {
	if err := validateMomentum("J", j); err != nil {
		return nil, err
	}
	n, err := Multiplicity(j)
	if err != nil {
		return nil, err
	}

	return frac.Range(j.Neg(), n), nil
}

// Multiplicity returns 2J+1, the number of magnetic sublevels.
func Multiplicity(j frac.Frac) (int, error) {
	if err := validateMomentum("J", j); err != nil {
		return 0, err
	}
	n, err := j.Mul(frac.Int(2)).Add(frac.One).Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: J=%s", ErrInvalidQuantumNumber, j)
	}

	return int(n), nil
}
