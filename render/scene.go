// SPDX-License-Identifier: MIT

package render

import "math"

// Point is a position in scene coordinates (y grows upwards).
type Point struct {
	X, Y float64
}

// Anchor is the horizontal alignment of a label relative to its point.
type Anchor int

const (
	// AnchorStart puts the text to the right of the point.
	AnchorStart Anchor = iota
	// AnchorMiddle centres the text on the point.
	AnchorMiddle
	// AnchorEnd puts the text to the left of the point.
	AnchorEnd
)

// Tone selects a palette entry.
type Tone int

const (
	// ToneInk is the foreground colour.
	ToneInk Tone = iota
	// TonePi colours π lines.
	TonePi
	// ToneSigma colours σ lines.
	ToneSigma
	// ToneGrid is a light helper colour.
	ToneGrid
)

// Segment is a straight line.
type Segment struct {
	From, To Point
	Dashed   bool
	Tone     Tone
}

// Arrow is a segment with a head at To.
type Arrow struct {
	From, To Point
	Tone     Tone
}

// Label is a piece of text with an optional superscript prefix and
// subscript suffix, as in a term symbol ²P₃/₂.
type Label struct {
	At     Point
	Text   string
	Sup    string
	Sub    string
	Anchor Anchor
	Tone   Tone
}

// Scene is a backend-independent drawing.
type Scene struct {
	// Min and Max bound the logical coordinate frame.
	Min, Max Point

	Segments []Segment
	Arrows   []Arrow
	Labels   []Label
}

func newScene(minX, minY, maxX, maxY float64) *Scene {
	return &Scene{Min: Point{minX, minY}, Max: Point{maxX, maxY}}
}

func (s *Scene) line(x1, y1, x2, y2 float64, dashed bool, tone Tone) {
	s.Segments = append(s.Segments, Segment{From: Point{x1, y1}, To: Point{x2, y2}, Dashed: dashed, Tone: tone})
}

func (s *Scene) arrow(x1, y1, x2, y2 float64, tone Tone) {
	s.Arrows = append(s.Arrows, Arrow{From: Point{x1, y1}, To: Point{x2, y2}, Tone: tone})
}

func (s *Scene) text(x, y float64, txt string, anchor Anchor, tone Tone) {
	s.Labels = append(s.Labels, Label{At: Point{x, y}, Text: txt, Anchor: anchor, Tone: tone})
}

// fit grows the frame so that every item lies inside it, plus pad on each side.
func (s *Scene) fit(pad float64) {
	minX, minY, maxX, maxY := s.Min.X, s.Min.Y, s.Max.X, s.Max.Y
	grow := func(p Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, g := range s.Segments {
		grow(g.From)
		grow(g.To)
	}
	for _, a := range s.Arrows {
		grow(a.From)
		grow(a.To)
	}
	for _, l := range s.Labels {
		grow(l.At)
	}
	if minX < s.Min.X {
		minX -= pad
	}
	if minY < s.Min.Y {
		minY -= pad
	}
	if maxX > s.Max.X {
		maxX += pad
	}
	if maxY > s.Max.Y {
		maxY += pad
	}
	s.Min, s.Max = Point{minX, minY}, Point{maxX, maxY}
}

// viewport maps scene coordinates to pixel coordinates (y grows downwards).
type viewport struct {
	scene         *Scene
	left, top     float64
	width, height float64
}

func newViewport(s *Scene, w, h, margin float64) viewport {
	return viewport{scene: s, left: margin, top: margin, width: w - 2*margin, height: h - 2*margin}
}

func (v viewport) px(p Point) (float64, float64) {
	dx := v.scene.Max.X - v.scene.Min.X
	dy := v.scene.Max.Y - v.scene.Min.Y
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	x := v.left + (p.X-v.scene.Min.X)/dx*v.width
	y := v.top + (v.scene.Max.Y-p.Y)/dy*v.height

	return x, y
}
