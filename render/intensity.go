// SPDX-License-Identifier: MIT

package render

import (
	"strconv"

	"github.com/katalvlaran/zeeman"
	"github.com/katalvlaran/zeeman/frac"
	"github.com/katalvlaran/zeeman/transition"
)

// intensityXPad widens the position axis beyond the outermost line.
const intensityXPad = 0.2

// layoutIntensity builds the stick spectrum: π lines point up, σ lines down,
// each at its position g₁m₁ − g₂m₂ with height equal to its intensity.
func layoutIntensity(p *zeeman.Pattern, tr translator) *Scene {
	lines := p.Lines()

	pos := make([]frac.Frac, len(lines))
	ints := make([]frac.Frac, len(lines))
	for i, l := range lines {
		pos[i], ints[i] = l.Position.Abs(), l.Intensity
	}
	maxPos, maxI := frac.Max(pos...).Float64(), frac.Max(ints...).Float64()
	xr := maxPos + intensityXPad
	if maxPos == 0 {
		xr = 1
	}
	if maxI == 0 {
		maxI = 1
	}

	sc := newScene(-xr, -maxI, xr, maxI)
	sc.arrow(-xr, 0, xr, 0, ToneInk)

	// Tick labels, one per distinct position.
	tick := -maxI * 0.06
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		s := l.Position.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		x := l.Position.Float64()
		sc.line(x, 0, x, tick/2, false, ToneGrid)
		sc.text(x, tick*2, s, AnchorMiddle, ToneGrid)
	}

	for _, l := range lines {
		x := l.Position.Float64()
		h := l.Intensity.Float64()
		if l.Polarization() != transition.Pi {
			h = -h
		}
		tone := lineTone(l.Polarization())
		sc.line(x, 0, x, h, false, tone)
		sc.text(x, h, signed(l.Intensity, h < 0), AnchorStart, tone)
		sc.Labels = append(sc.Labels, Label{At: Point{x, h / 2}, Text: l.Symbol(), Sub: strconv.Itoa(l.Index), Anchor: AnchorStart, Tone: tone})
	}

	sc.text(maxPos, maxI/2, tr.tr(msgPiLight), AnchorStart, TonePi)
	sc.text(maxPos, -maxI/2, tr.tr(msgSigmaLin), AnchorStart, ToneSigma)

	sc.fit(0.1 * xr)

	return sc
}

// signed prints an intensity, negated for lines drawn below the axis.
func signed(v frac.Frac, neg bool) string {
	if neg {
		return v.Neg().String()
	}

	return v.String()
}
