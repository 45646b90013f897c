// SPDX-License-Identifier: MIT

package level

import "errors"

var (
	// ErrInvalidQuantumNumber indicates a negative quantum number, a value that
	// is not a multiple of 1/2, or a non-integral L.
	ErrInvalidQuantumNumber = errors.New("level: invalid quantum number")

	// ErrUndefinedGFactor is returned for J = 0, where the Landé formula divides by zero.
	ErrUndefinedGFactor = errors.New("level: g-factor undefined for J = 0")

	// ErrTriangleRule indicates |L−S| ≤ J ≤ L+S does not hold (strict validation only).
	ErrTriangleRule = errors.New("level: J violates |L-S| <= J <= L+S")

	// ErrUnsupportedL indicates L has no spectroscopic letter in the table.
	ErrUnsupportedL = errors.New("level: no spectroscopic letter for L")

	// ErrBadDescriptor indicates a level string that is not "L,S,J".
	ErrBadDescriptor = errors.New("level: descriptor must be \"L,S,J\"")
)
