// Package zeeman computes the anomalous Zeeman effect of LS-coupled atoms:
// how one spectral line splits into π and σ components in a weak magnetic
// field, and how strong each component is.
//
// 🚀 What is in the box?
//
//	A small, exact, dependency-light toolkit that brings together:
//		• Exact numbers: quantum numbers, g-factors and intensities as fractions
//		• Levels: (L, S, J) descriptors, Landé g-factor, M lists, term symbols
//		• Transitions: dipole selection rules and relative line strengths
//		• Patterns: everything a diagram needs, line positions included
//		• Formatting: JSON / YAML / text listings of a transition set
//		• Rendering: level-splitting diagram and intensity stick plot (SVG, PNG)
//
// ✨ Why exact?
//
//   - g-factors such as 4/3 and positions such as 2/3 print exactly
//   - the same input always yields the same, comparable output
//   - the computational packages are pure: no I/O, no logging, no globals
//
// Under the hood, everything is organized under these subpackages:
//
//	frac/       - immutable exact rational numbers
//	level/      - Level, GFactor, MList, spectroscopic letters
//	transition/ - Compute: π/σ enumeration, intensities, sum rule
//	format/     - textual renderings of a transition Set
//	render/     - Renderer implementations producing SVG or PNG images
//	cmd/zeeman  - command-line front end
//
// Quick example (mercury 546.1 nm, 3S1 → 3P2):
//
//	p, err := zeeman.Analyze(level.MustParse("0,1,1"), level.MustParse("1,1,2"))
//	// p.Upper.G = 2, p.Lower.G = 3/2, 3 π and 6 σ components
//
//	go get github.com/katalvlaran/zeeman
package zeeman
