// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// writeSVG serialises a scene as a standalone SVG document.
func writeSVG(w io.Writer, sc *Scene, opts Options) error {
	vp := newViewport(sc, float64(opts.Width), float64(opts.Height), float64(opts.Margin))
	var b strings.Builder

	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">
`, opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="%s"/>
`, opts.Colors.Background)

	for _, s := range sc.Segments {
		x1, y1 := vp.px(s.From)
		x2, y2 := vp.px(s.To)
		dash := ""
		if s.Dashed {
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, num(4*opts.StrokeWidth))
		}
		fmt.Fprintf(&b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>
`, num(x1), num(y1), num(x2), num(y2), opts.tone(s.Tone), num(opts.StrokeWidth), dash)
	}

	for _, a := range sc.Arrows {
		x1, y1 := vp.px(a.From)
		x2, y2 := vp.px(a.To)
		col := opts.tone(a.Tone)
		fmt.Fprintf(&b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>
`, num(x1), num(y1), num(x2), num(y2), col, num(opts.StrokeWidth))
		if head, ok := arrowHead(x1, y1, x2, y2, headSize(opts)); ok {
			fmt.Fprintf(&b, `  <polygon points="%s,%s %s,%s %s,%s" fill="%s"/>
`, num(head[0][0]), num(head[0][1]), num(head[1][0]), num(head[1][1]), num(head[2][0]), num(head[2][1]), col)
		}
	}

	small := opts.FontSize * 0.7
	for _, l := range sc.Labels {
		x, y := vp.px(l.At)
		fmt.Fprintf(&b, `  <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s" text-anchor="%s">`,
			num(x), num(y), escapeXML(opts.FontFamily), num(opts.FontSize), opts.tone(l.Tone), svgAnchor(l.Anchor))
		if l.Sup != "" {
			fmt.Fprintf(&b, `<tspan font-size="%s" baseline-shift="super">%s</tspan>`, num(small), escapeXML(l.Sup))
		}
		b.WriteString(escapeXML(l.Text))
		if l.Sub != "" {
			fmt.Fprintf(&b, `<tspan font-size="%s" baseline-shift="sub">%s</tspan>`, num(small), escapeXML(l.Sub))
		}
		b.WriteString("</text>\n")
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func svgAnchor(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// num formats a pixel coordinate with at most two decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}

	return s
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func headSize(opts Options) float64 {
	return 4 * opts.StrokeWidth
}

// arrowHead returns the triangle tip, left, right for an arrow ending at
// (x2, y2) in pixel space. ok is false for a zero-length arrow.
func arrowHead(x1, y1, x2, y2, size float64) (pts [3][2]float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	n := math.Hypot(dx, dy)
	if n == 0 {
		return pts, false
	}
	ux, uy := dx/n, dy/n
	bx, by := x2-ux*size*1.6, y2-uy*size*1.6
	pts[0] = [2]float64{x2, y2}
	pts[1] = [2]float64{bx - uy*size, by + ux*size}
	pts[2] = [2]float64{bx + uy*size, by - ux*size}

	return pts, true
}
