// SPDX-License-Identifier: MIT

// Package frac provides Frac, an immutable exact rational number used for
// angular-momentum quantum numbers, g-factors, line positions and intensities.
//
// 🚀 Why exact rationals?
//
//	Quantum numbers are integers or half-integers, and every derived quantity
//	in LS coupling (g-factors, M·g shifts, relative line strengths) is a small
//	fraction such as 4/3 or 3/2. Keeping them exact means:
//	  • results print the way a textbook writes them ("4/3", not 1.3333333)
//	  • repeated computations are bit-identical and compare with Equal
//	  • M values can be turned into list offsets without rounding
//
// ✨ Key features:
//   - value semantics: every operation returns a new Frac, inputs never change
//   - the zero value is a valid 0
//   - Parse accepts "3", "-3/2", "1.5" and ".5"
//   - String renders the canonical reduced form ("3/2", "-1/2", "2")
//   - encoding.TextMarshaler / TextUnmarshaler for JSON and YAML
//
// ⚙️ Usage:
//
//	j := frac.MustParse("3/2")
//	n := j.Mul(frac.Int(2)).Add(frac.Int(1)) // 2J+1 = 4
//	fmt.Println(n, j.IsHalfInt())           // 4 true
//
// Floating point enters only through Float64, which renderers call at the
// drawing boundary.
package frac
