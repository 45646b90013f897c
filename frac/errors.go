// SPDX-License-Identifier: MIT

package frac

import "errors"

// Sentinel errors. Callers match them with errors.Is; Parse wraps them with
// the offending input.
var (
	// ErrSyntax indicates that a string is not an integer, a/b fraction or decimal.
	ErrSyntax = errors.New("frac: invalid number syntax")

	// ErrZeroDenominator indicates a literal fraction with a zero denominator ("1/0").
	ErrZeroDenominator = errors.New("frac: zero denominator")

	// ErrDivisionByZero is returned by Quo when the divisor is zero.
	ErrDivisionByZero = errors.New("frac: division by zero")

	// ErrNotInteger is returned by Int64 for non-integral or out-of-range values.
	ErrNotInteger = errors.New("frac: value is not a 64-bit integer")
)

const panicZeroDenominator = "frac: New: zero denominator"
