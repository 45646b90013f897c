// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/zeeman"
	"github.com/katalvlaran/zeeman/internal/logger"
)

// Renderer draws a pattern to w in the format chosen by its Options.
type Renderer interface {
	Render(w io.Writer, p *zeeman.Pattern) error
}

// kind selects the layout.
type kind int

const (
	splitDiagram kind = iota
	intensityPlot
)

func (k kind) String() string {
	if k == splitDiagram {
		return "split"
	}

	return "intensity"
}

type renderer struct {
	kind kind
	opts Options
	tr   translator
}

// NewSplitDiagram returns a Renderer for the level-splitting diagram: both
// levels with their sublevels, M and M·g columns, and one arrow per allowed
// transition.
func NewSplitDiagram(opts Options) (Renderer, error) {
	return newRenderer(splitDiagram, opts)
}

// NewIntensityPlot returns a Renderer for the relative-intensity stick
// spectrum: π lines above the axis, σ lines below.
func NewIntensityPlot(opts Options) (Renderer, error) {
	return newRenderer(intensityPlot, opts)
}

func newRenderer(k kind, opts Options) (*renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &renderer{kind: k, opts: opts, tr: newTranslator(opts.Locale)}, nil
}

// Scene lays out p without drawing it.
func (r *renderer) Scene(p *zeeman.Pattern) (*Scene, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	if p.Set.Empty() {
		return nil, ErrNothingToRender
	}
	if r.kind == splitDiagram {
		return layoutSplit(p, r.opts, r.tr)
	}

	return layoutIntensity(p, r.tr), nil
}

// Render implements Renderer.
func (r *renderer) Render(w io.Writer, p *zeeman.Pattern) error {
	sc, err := r.Scene(p)
	if err != nil {
		return err
	}
	logger.ForComponent("render").Debug("scene laid out",
		"kind", r.kind.String(),
		"format", string(r.opts.Format),
		"segments", len(sc.Segments),
		"arrows", len(sc.Arrows),
		"labels", len(sc.Labels))

	if r.opts.Format == PNG {
		return writePNG(w, sc, r.opts)
	}

	return writeSVG(w, sc, r.opts)
}

// LayoutScene exposes the layout of a Renderer built by this package.
func LayoutScene(r Renderer, p *zeeman.Pattern) (*Scene, error) {
	rr, ok := r.(*renderer)
	if !ok {
		return nil, fmt.Errorf("render: %T has no scene", r)
	}

	return rr.Scene(p)
}

// WriteFile renders p to path, or to stdout when path is empty.
func WriteFile(path string, stdout io.Writer, r Renderer, p *zeeman.Pattern) (err error) {
	if path == "" {
		return r.Render(stdout, p)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	if err = r.Render(f, p); err != nil {
		return err
	}
	logger.Info("diagram written", "path", path)

	return nil
}
