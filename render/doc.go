// SPDX-License-Identifier: MIT

// Package render draws a zeeman.Pattern as an image.
//
// Two diagrams are provided:
//
//   - SplitDiagram: the unsplit upper and lower levels, the dashed fan to
//     their magnetic sublevels (offset by M·g·SwellFactor), the M and M·g
//     columns, and one arrow per transition labelled π₁…, σ₁….
//   - IntensityPlot: a stick spectrum with one stick per line at
//     g₁·m₁ − g₂·m₂, height = relative intensity, π above the axis and
//     σ below it.
//
// Layout is backend-agnostic: a diagram first builds a Scene (segments,
// arrows and labels in a logical coordinate frame, y pointing up), then a
// backend turns the Scene into SVG markup or a supersampled PNG.
//
// Configuration lives in Options, which can be loaded from YAML. Captions
// are localised ("en", "zh"); for CJK captions in PNG output point
// Options.FontFile at a TTF/OTF font that has the glyphs.
//
// The computational packages never import render.
package render
