// SPDX-License-Identifier: MIT

package frac

import (
	"fmt"
	"math/big"
	"strings"
)

// Frac is an immutable exact rational number. The zero value is 0.
//
// A Frac never exposes its underlying *big.Rat, so copies may be shared
// freely between goroutines.
type Frac struct {
	r *big.Rat // nil ⇔ 0; never mutated after construction
}

// ratZero is the read-only operand used for the zero value.
var ratZero = new(big.Rat)

// Common constants.
var (
	Zero    = Frac{}
	One     = Int(1)
	Half    = New(1, 2)
	Quarter = New(1, 4)
)

// Int returns the integer n as a Frac.
func Int(n int64) Frac {
	return Frac{r: new(big.Rat).SetInt64(n)}
}

// New returns num/den reduced to lowest terms.
// It panics if den == 0, which is a programmer error for literal constants;
// use Parse for untrusted input.
func New(num, den int64) Frac {
	if den == 0 {
		panic(panicZeroDenominator)
	}

	return Frac{r: new(big.Rat).SetFrac64(num, den)}
}

// Parse converts s into a Frac. Accepted forms:
//   - integers:  "2", "-1", "+3"
//   - fractions: "3/2", "-1/2"
//   - decimals:  "1.5", ".5", "-0.25"
//
// Surrounding whitespace is ignored.
//
// Errors:
//   - ErrZeroDenominator for "n/0".
//   - ErrSyntax for anything else big.Rat cannot read exactly.
func Parse(s string) (Frac, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Frac{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}
	// Exponents and hexadecimal forms are valid for big.Rat but never
	// meaningful for a quantum number, so reject them up front.
	if strings.ContainsAny(t, "eEpPxXbBoO_") {
		return Frac{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if num, den, ok := strings.Cut(t, "/"); ok {
		n, okNum := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, okDen := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okNum || !okDen {
			return Frac{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		if d.Sign() == 0 {
			return Frac{}, fmt.Errorf("%w: %q", ErrZeroDenominator, s)
		}

		return Frac{r: new(big.Rat).SetFrac(n, d)}, nil
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return Frac{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return Frac{r: r}, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// examples and tests.
func MustParse(s string) Frac {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return f
}

// rat returns a read-only view of the value.
func (f Frac) rat() *big.Rat {
	if f.r == nil {
		return ratZero
	}

	return f.r
}

// Add returns f + g.
func (f Frac) Add(g Frac) Frac {
	return Frac{r: new(big.Rat).Add(f.rat(), g.rat())}
}

// Sub returns f − g.
func (f Frac) Sub(g Frac) Frac {
	return Frac{r: new(big.Rat).Sub(f.rat(), g.rat())}
}

// Mul returns f · g.
func (f Frac) Mul(g Frac) Frac {
	return Frac{r: new(big.Rat).Mul(f.rat(), g.rat())}
}

// Quo returns f / g, or ErrDivisionByZero when g is zero.
func (f Frac) Quo(g Frac) (Frac, error) {
	if g.IsZero() {
		return Frac{}, ErrDivisionByZero
	}

	return Frac{r: new(big.Rat).Quo(f.rat(), g.rat())}, nil
}

// Neg returns −f.
func (f Frac) Neg() Frac {
	return Frac{r: new(big.Rat).Neg(f.rat())}
}

// Abs returns |f|.
func (f Frac) Abs() Frac {
	return Frac{r: new(big.Rat).Abs(f.rat())}
}

// Square returns f².
func (f Frac) Square() Frac {
	return f.Mul(f)
}

// Sign returns -1, 0 or +1.
func (f Frac) Sign() int {
	return f.rat().Sign()
}

// IsZero reports whether f == 0.
func (f Frac) IsZero() bool {
	return f.Sign() == 0
}

// IsInt reports whether f is an integer.
func (f Frac) IsInt() bool {
	return f.rat().IsInt()
}

// IsHalfInt reports whether 2f is an integer, i.e. f ∈ {…, -1/2, 0, 1/2, 1, …}.
// Integers are half-integers in this sense.
func (f Frac) IsHalfInt() bool {
	return f.Mul(Int(2)).IsInt()
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Frac) Cmp(g Frac) int {
	return f.rat().Cmp(g.rat())
}

// Equal reports exact equality.
func (f Frac) Equal(g Frac) bool {
	return f.Cmp(g) == 0
}

// Less reports f < g.
func (f Frac) Less(g Frac) bool {
	return f.Cmp(g) < 0
}

// Float64 returns the nearest float64. Only renderers should need this.
func (f Frac) Float64() float64 {
	v, _ := f.rat().Float64()

	return v
}

// Int64 returns f as an int64, or ErrNotInteger when f is fractional or
// does not fit.
func (f Frac) Int64() (int64, error) {
	r := f.rat()
	if !r.IsInt() || !r.Num().IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, f)
	}

	return r.Num().Int64(), nil
}

// String renders the reduced form: "2", "-1/2", "3/2".
func (f Frac) String() string {
	return f.rat().RatString()
}

// MarshalText implements encoding.TextMarshaler.
func (f Frac) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Frac) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// Range returns n consecutive values lo, lo+1, …, lo+n−1.
// A non-positive n yields an empty (non-nil) slice.
func Range(lo Frac, n int) []Frac {
	if n < 0 {
		n = 0
	}
	out := make([]Frac, n)
	for i := 0; i < n; i++ {
		out[i] = lo.Add(Int(int64(i)))
	}

	return out
}

// Max returns the largest element of xs, or 0 for an empty slice.
func Max(xs ...Frac) Frac {
	if len(xs) == 0 {
		return Frac{}
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if best.Less(x) {
			best = x
		}
	}

	return best
}

// Sum returns the exact sum of xs.
func Sum(xs ...Frac) Frac {
	acc := new(big.Rat)
	for _, x := range xs {
		acc.Add(acc, x.rat())
	}

	return Frac{r: acc}
}
