// SPDX-License-Identifier: MIT

// Package transition enumerates the electric-dipole transitions between the
// magnetic sublevels of two LS-coupled levels and computes their relative
// intensities exactly.
//
// 🚀 What does Compute return?
//
//	A Set with two lists, each sorted by (m_upper, m_lower):
//	  • Pi    - Δm = 0 lines, light polarized parallel to the field
//	  • Sigma - Δm = ±1 lines
//
// Selection rules:
//
//	ΔJ = J_upper − J_lower ∈ {−1, 0, +1}; anything else is ErrSelectionRule.
//	J = 0 → J = 0 is not an error but has no lines: Compute returns an empty Set.
//	For ΔJ = 0 the M = 0 → M = 0 π line is forbidden.
//
// Relative intensities (m is the magnetic number named in each case):
//
//	ΔJ = 0  (J):       π  m²
//	                   σ  ¼(J+m+1)(J−m) to m+1,  ¼(J−m+1)(J+m) to m−1
//	ΔJ = −1 (J1<J2):   π  (J1+1)² − m²
//	                   σ  ¼(J1−m+1)(J1−m+2) to m−1,  ¼(J1+m+1)(J1+m+2) to m+1
//	ΔJ = +1 (J1>J2):   π  J1² − m²                     (m upper = lower)
//	                   σ  ¼(J1−m+1)(J1−m) from m−1,  ¼(J1+m+1)(J1+m) from m+1
//	                   (m is the lower sublevel here)
//
// The σ strengths include the ½ factor of transverse observation, so the
// per-sublevel sum rule reads I_π + 2·ΣI_σ = const (see SublevelStrengths).
//
// Intensities are relative: only ratios inside one Set are meaningful.
// Everything is exact (frac.Frac); there is no floating point in this package.
//
// Complexity: O(J log J) time (sorting), O(J) memory. Compute is pure and
// safe for concurrent use.
package transition
