// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// pngSupersample is the oversampling factor; the canvas is drawn this many
// times larger and scaled down with Catmull-Rom for anti-aliasing.
const pngSupersample = 4

// canvas is a supersampled drawing surface.
type canvas struct {
	img   *image.RGBA
	scale float64
	line  float64 // stroke width in canvas pixels
	face  font.Face
	small font.Face
	pal   map[Tone]color.RGBA
}

func newCanvas(opts Options) (*canvas, error) {
	s := float64(pngSupersample)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width*pngSupersample, opts.Height*pngSupersample))

	bg, err := parseHexColor(opts.Colors.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %v", ErrBadOptions, err)
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	pal := make(map[Tone]color.RGBA, 4)
	for _, t := range []Tone{ToneInk, TonePi, ToneSigma, ToneGrid} {
		c, err := parseHexColor(opts.tone(t))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadOptions, err)
		}
		pal[t] = c
	}

	ttf := goregular.TTF
	if opts.FontFile != "" {
		if ttf, err = os.ReadFile(opts.FontFile); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFont, err)
		}
	}
	fnt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: opts.FontSize * s, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	small, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: opts.FontSize * s * 0.7, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}

	return &canvas{img: img, scale: s, line: opts.StrokeWidth * s, face: face, small: small, pal: pal}, nil
}

// writePNG rasterises a scene.
func writePNG(w io.Writer, sc *Scene, opts Options) error {
	cv, err := newCanvas(opts)
	if err != nil {
		return err
	}
	s := cv.scale
	vp := newViewport(sc, float64(opts.Width)*s, float64(opts.Height)*s, float64(opts.Margin)*s)

	for _, g := range sc.Segments {
		x1, y1 := vp.px(g.From)
		x2, y2 := vp.px(g.To)
		if g.Dashed {
			cv.dashed(x1, y1, x2, y2, 4*cv.line, cv.pal[g.Tone])
		} else {
			cv.stroke(x1, y1, x2, y2, cv.pal[g.Tone])
		}
	}
	for _, a := range sc.Arrows {
		x1, y1 := vp.px(a.From)
		x2, y2 := vp.px(a.To)
		c := cv.pal[a.Tone]
		cv.stroke(x1, y1, x2, y2, c)
		if head, ok := arrowHead(x1, y1, x2, y2, headSize(opts)*s); ok {
			cv.triangle(head, c)
		}
	}
	for _, l := range sc.Labels {
		x, y := vp.px(l.At)
		cv.label(x, y, l, cv.pal[l.Tone])
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), cv.img, cv.img.Bounds(), draw.Over, nil)

	return png.Encode(w, out)
}

// stroke draws a thick line by stamping squares along it.
func (cv *canvas) stroke(x1, y1, x2, y2 float64, c color.RGBA) {
	dx, dy := x2-x1, y2-y1
	steps := math.Max(math.Max(math.Abs(dx), math.Abs(dy)), 1)
	half := cv.line / 2
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx, cy := x1+dx*t, y1+dy*t
		for ty := -half; ty <= half; ty++ {
			for tx := -half; tx <= half; tx++ {
				cv.img.SetRGBA(int(cx+tx), int(cy+ty), c)
			}
		}
	}
}

// dashed draws alternating on/off runs of length period.
func (cv *canvas) dashed(x1, y1, x2, y2, period float64, c color.RGBA) {
	n := math.Hypot(x2-x1, y2-y1)
	if n == 0 {
		return
	}
	ux, uy := (x2-x1)/n, (y2-y1)/n
	for d := 0.0; d < n; d += 2 * period {
		e := math.Min(d+period, n)
		cv.stroke(x1+ux*d, y1+uy*d, x1+ux*e, y1+uy*e, c)
	}
}

// triangle fills a triangle by testing each pixel of its bounding box.
func (cv *canvas) triangle(p [3][2]float64, c color.RGBA) {
	minX := math.Floor(math.Min(p[0][0], math.Min(p[1][0], p[2][0])))
	maxX := math.Ceil(math.Max(p[0][0], math.Max(p[1][0], p[2][0])))
	minY := math.Floor(math.Min(p[0][1], math.Min(p[1][1], p[2][1])))
	maxY := math.Ceil(math.Max(p[0][1], math.Max(p[1][1], p[2][1])))
	edge := func(a, b [2]float64, x, y float64) float64 {
		return (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			e0 := edge(p[0], p[1], x, y)
			e1 := edge(p[1], p[2], x, y)
			e2 := edge(p[2], p[0], x, y)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				cv.img.SetRGBA(int(x), int(y), c)
			}
		}
	}
}

// label draws sup, text and sub on a common baseline at y.
func (cv *canvas) label(x, y float64, l Label, c color.RGBA) {
	width := font.MeasureString(cv.small, l.Sup) + font.MeasureString(cv.face, l.Text) + font.MeasureString(cv.small, l.Sub)
	switch l.Anchor {
	case AnchorMiddle:
		x -= float64(width.Ceil()) / 2
	case AnchorEnd:
		x -= float64(width.Ceil())
	}
	asc := float64(cv.face.Metrics().Ascent.Ceil())
	src := image.NewUniform(c)

	d := &font.Drawer{Dst: cv.img, Src: src, Face: cv.small, Dot: fixed.P(int(x), int(y-asc*0.45))}
	d.DrawString(l.Sup)
	d.Face = cv.face
	d.Dot.Y = fixed.I(int(y))
	d.DrawString(l.Text)
	d.Face = cv.small
	d.Dot.Y = fixed.I(int(y + asc*0.25))
	d.DrawString(l.Sub)
}
