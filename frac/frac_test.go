package frac_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zeeman/frac"
)

// TestParse_Forms verifies every accepted literal form and its canonical rendering.
func TestParse_Forms(t *testing.T) {
	cases := map[string]string{
		"2":      "2",
		"-1":     "-1",
		"+3":     "3",
		"3/2":    "3/2",
		"-1/2":   "-1/2",
		"6/4":    "3/2",
		" 1 / 2": "1/2",
		"1.5":    "3/2",
		"0.5":    "1/2",
		"-0.25":  "-1/4",
		"0":      "0",
	}
	for in, want := range cases {
		got, err := frac.Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got.String(), "input %q", in)
	}
}

// TestParse_Errors ensures malformed input is rejected with the right sentinel.
func TestParse_Errors(t *testing.T) {
	_, err := frac.Parse("1/0")
	assert.ErrorIs(t, err, frac.ErrZeroDenominator)

	for _, in := range []string{"", "abc", "1/2/3", "1e3", "0x10", "1/x", "½"} {
		_, err = frac.Parse(in)
		assert.ErrorIs(t, err, frac.ErrSyntax, "input %q", in)
	}
}

// TestArithmetic checks exact results and that operands are never mutated.
func TestArithmetic(t *testing.T) {
	a := frac.MustParse("3/2")
	b := frac.MustParse("1/3")

	assert.Equal(t, "11/6", a.Add(b).String())
	assert.Equal(t, "7/6", a.Sub(b).String())
	assert.Equal(t, "1/2", a.Mul(b).String())
	q, err := a.Quo(b)
	require.NoError(t, err)
	assert.Equal(t, "9/2", q.String())
	assert.Equal(t, "-3/2", a.Neg().String())
	assert.Equal(t, "3/2", a.Neg().Abs().String())
	assert.Equal(t, "9/4", a.Square().String())

	// operands unchanged
	assert.Equal(t, "3/2", a.String())
	assert.Equal(t, "1/3", b.String())

	_, err = a.Quo(frac.Zero)
	assert.ErrorIs(t, err, frac.ErrDivisionByZero)
}

// TestZeroValue verifies that the zero value behaves as 0 everywhere.
func TestZeroValue(t *testing.T) {
	var z frac.Frac
	assert.True(t, z.IsZero())
	assert.True(t, z.IsInt())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Equal(frac.Int(0)))
	assert.Equal(t, "1", z.Add(frac.One).String())
	assert.Equal(t, 0.0, z.Float64())
}

// TestPredicates covers integer / half-integer classification and ordering.
func TestPredicates(t *testing.T) {
	assert.True(t, frac.Int(2).IsHalfInt())
	assert.True(t, frac.Half.IsHalfInt())
	assert.False(t, frac.Half.IsInt())
	assert.False(t, frac.New(1, 3).IsHalfInt())
	assert.False(t, frac.Quarter.IsHalfInt())

	assert.True(t, frac.New(-1, 2).Less(frac.Zero))
	assert.Equal(t, 1, frac.One.Cmp(frac.Half))
	assert.Equal(t, -1, frac.New(-3, 2).Sign())
	assert.True(t, frac.New(2, 4).Equal(frac.Half))
}

// TestInt64 checks integral conversion and its failure mode.
func TestInt64(t *testing.T) {
	n, err := frac.New(10, 5).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = frac.Half.Int64()
	assert.ErrorIs(t, err, frac.ErrNotInteger)
}

// TestRangeMaxSum covers the slice helpers.
func TestRangeMaxSum(t *testing.T) {
	r := frac.Range(frac.New(-3, 2), 4)
	require.Len(t, r, 4)
	assert.Equal(t, []string{"-3/2", "-1/2", "1/2", "3/2"}, strs(r))
	assert.Empty(t, frac.Range(frac.Zero, -1))

	assert.Equal(t, "3/2", frac.Max(r...).String())
	assert.Equal(t, "0", frac.Max().String())
	assert.Equal(t, "0", frac.Sum(r...).String())
	assert.Equal(t, "7/4", frac.Sum(frac.One, frac.Half, frac.Quarter).String())
}

// TestTextMarshaling checks that Frac round-trips through encoding/json as a string.
func TestTextMarshaling(t *testing.T) {
	type pair struct {
		J frac.Frac `json:"j"`
	}
	b, err := json.Marshal(pair{J: frac.New(5, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"j":"5/2"}`, string(b))

	var p pair
	require.NoError(t, json.Unmarshal([]byte(`{"j":"-7/2"}`), &p))
	assert.Equal(t, "-7/2", p.J.String())

	assert.Error(t, json.Unmarshal([]byte(`{"j":"x"}`), &p))
}

// TestNewPanicsOnZeroDenominator documents the programmer-error contract.
func TestNewPanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { frac.New(1, 0) })
	assert.Panics(t, func() { frac.MustParse("nope") })
}

func strs(xs []frac.Frac) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}

	return out
}
