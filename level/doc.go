// SPDX-License-Identifier: MIT

// Package level models one LS-coupled atomic energy level (L, S, J) and the
// quantities derived from it alone.
//
// 🚀 What lives here?
//
//	• Level        - the (L, S, J) descriptor with exact quantum numbers
//	• GFactor      - Landé g-factor in LS coupling
//	• MList        - magnetic quantum numbers −J … J
//	• Letter/Term  - spectroscopic notation (²P₃/₂ ⇒ "2P3/2")
//
// Formula:
//
//	g = 1 + [J(J+1) − L(L+1) + S(S+1)] / [2J(J+1)]
//
// g is undefined for J = 0; GFactor returns ErrUndefinedGFactor instead of
// dividing by zero. A J = 0 level has the single sublevel M = 0 and does
// not split, which Level.Shift reflects by returning 0.
//
// All functions are pure and safe for concurrent use.
package level
