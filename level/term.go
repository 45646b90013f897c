// SPDX-License-Identifier: MIT

package level

import (
	"fmt"

	"github.com/katalvlaran/zeeman/frac"
)

// letters maps L to its spectroscopic letter. After G the sequence is
// alphabetical with J omitted.
var letters = []string{"S", "P", "D", "F", "G", "H", "I", "K", "L", "M", "N", "O", "Q", "R", "T", "U", "V"}

// MaxL is the largest L with a letter in the table.
const MaxL = 16

// Letter returns the spectroscopic letter for L (0 ⇒ "S", 1 ⇒ "P", …).
//
// Errors:
//   - ErrUnsupportedL when L is negative, fractional or above MaxL.
func Letter(l frac.Frac) (string, error) {
	n, err := l.Int64()
	if err != nil || n < 0 || n > MaxL {
		return "", fmt.Errorf("%w: L=%s", ErrUnsupportedL, l)
	}

	return letters[n], nil
}

// TermParts returns the multiplicity 2S+1, the L letter and J, the three
// pieces of a term symbol ^{2S+1}L_J.
func (lv Level) TermParts() (mult, letter, j string, err error) {
	letter, err = Letter(lv.L)
	if err != nil {
		return "", "", "", err
	}
	mult = lv.S.Mul(frac.Int(2)).Add(frac.One).String()

	return mult, letter, lv.J.String(), nil
}

// Term returns the flat term symbol, e.g. "2P3/2" or "3S1".
func (lv Level) Term() (string, error) {
	mult, letter, j, err := lv.TermParts()
	if err != nil {
		return "", err
	}

	return mult + letter + j, nil
}
