// SPDX-License-Identifier: MIT

package render

import (
	"strconv"

	"github.com/katalvlaran/zeeman"
	"github.com/katalvlaran/zeeman/frac"
	"github.com/katalvlaran/zeeman/transition"
)

// Layout constants of the split diagram, in scene units on a 100×100 frame.
const (
	splitLowerY   = 25.0 // unsplit lower level
	splitUpperY   = 75.0 // unsplit upper level
	splitTermX    = 0.0  // term symbols
	splitLevelX0  = 8.0  // unsplit level start
	splitFanX     = 30.0 // unsplit level end, dashed fan start
	splitSubX0    = 40.0 // split sublevels start
	splitSubX1    = 75.0 // split sublevels end
	splitMX       = 76.0 // M column
	splitMgX      = 85.0 // M·g column
	splitHeaderDY = 5.0  // header height above the top sublevel
)

// layoutSplit builds the level-splitting diagram.
func layoutSplit(p *zeeman.Pattern, opts Options, tr translator) (*Scene, error) {
	sc := newScene(0, 0, 100, 100)

	y := func(base float64, shift frac.Frac) float64 {
		return base + shift.Float64()*opts.SwellFactor
	}
	upperY := make([]float64, len(p.Upper.M))
	for i := range p.Upper.M {
		upperY[i] = y(splitUpperY, p.Upper.Shift[i])
	}
	lowerY := make([]float64, len(p.Lower.M))
	for i := range p.Lower.M {
		lowerY[i] = y(splitLowerY, p.Lower.Shift[i])
	}

	// Term symbols and unsplit levels.
	for _, lv := range []struct {
		sl   zeeman.Sublevels
		base float64
	}{{p.Upper, splitUpperY}, {p.Lower, splitLowerY}} {
		mult, letter, j, err := lv.sl.Level.TermParts()
		if err != nil {
			return nil, err
		}
		sc.Labels = append(sc.Labels, Label{At: Point{splitTermX, lv.base}, Sup: mult, Text: letter, Sub: j})
		sc.line(splitLevelX0, lv.base, splitFanX, lv.base, false, ToneInk)
	}

	// Dashed fan and split sublevels.
	for _, yy := range upperY {
		sc.line(splitFanX, splitUpperY, splitSubX0, yy, true, ToneInk)
		sc.line(splitSubX0, yy, splitSubX1, yy, false, ToneInk)
	}
	for _, yy := range lowerY {
		sc.line(splitFanX, splitLowerY, splitSubX0, yy, true, ToneInk)
		sc.line(splitSubX0, yy, splitSubX1, yy, false, ToneInk)
	}

	// M and M·g columns.
	top := upperY[0]
	for _, yy := range upperY {
		top = max(top, yy)
	}
	sc.text(splitMX, top+splitHeaderDY, "M", AnchorStart, ToneInk)
	sc.text(splitMgX, top+splitHeaderDY, "Mg", AnchorStart, ToneInk)
	for i, m := range p.Upper.M {
		sc.text(splitMX, upperY[i], m.String(), AnchorStart, ToneInk)
		sc.text(splitMgX, upperY[i], p.Upper.Shift[i].String(), AnchorStart, ToneInk)
	}
	for i, m := range p.Lower.M {
		sc.text(splitMX, lowerY[i], m.String(), AnchorStart, ToneInk)
		sc.text(splitMgX, lowerY[i], p.Lower.Shift[i].String(), AnchorStart, ToneInk)
	}

	// One arrow per transition, π first, evenly spread over the sublevels.
	lines := p.Lines()
	dx := (splitSubX1 - splitSubX0) / float64(len(lines)+1)
	x := splitSubX0 + dx/2
	for _, l := range lines {
		y1 := y(splitUpperY, p.Upper.ShiftOf(l.Upper))
		y2 := y(splitLowerY, p.Lower.ShiftOf(l.Lower))
		tone := lineTone(l.Polarization())
		sc.arrow(x, y1, x, y2, tone)
		sc.Labels = append(sc.Labels, Label{At: Point{x, y1 + 1}, Text: l.Symbol(), Sub: strconv.Itoa(l.Index), Anchor: AnchorMiddle, Tone: tone})
		x += dx
	}

	// Field captions.
	sc.text(splitTermX+15, splitUpperY+3, tr.tr(msgNoField), AnchorStart, ToneInk)
	sc.text(splitSubX0+15, top+3, tr.tr(msgWithField), AnchorStart, ToneInk)

	sc.fit(3)

	return sc, nil
}

func lineTone(p transition.Polarization) Tone {
	if p == transition.Pi {
		return TonePi
	}

	return ToneSigma
}
