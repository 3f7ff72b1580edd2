// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/gg"
)

// A Mark is a graphical representation of data rows. Marks read their
// positions and styling from the plot's aesthetic assignments, merged
// with any layer-local overrides.
type Mark interface {
	build(a map[string]string) []gg.Plotter
}

// Line connects successive rows with a path, ordered by x. Color
// groups the data into one line per level.
type Line struct{}

func (Line) build(a map[string]string) []gg.Plotter {
	return []gg.Plotter{gg.LayerLines{X: a["x"], Y: a["y"], Color: a["color"]}}
}

// Dot draws a point per row.
type Dot struct{}

func (Dot) build(a map[string]string) []gg.Plotter {
	return []gg.Plotter{gg.LayerPoints{X: a["x"], Y: a["y"], Color: a["color"], Size: a["size"]}}
}

// Area shades between y and zero.
type Area struct{}

func (Area) build(a map[string]string) []gg.Plotter {
	fill := a["fill"]
	if fill == "" {
		fill = a["color"]
	}
	return []gg.Plotter{gg.LayerArea{X: a["x"], Upper: a["y"], Fill: fill}}
}

// Band shades between the ymin and ymax aesthetics. It is typically
// layered beneath a Line showing the same aggregate.
type Band struct{}

func (Band) build(a map[string]string) []gg.Plotter {
	fill := a["fill"]
	if fill == "" {
		fill = a["color"]
	}
	return []gg.Plotter{gg.LayerArea{X: a["x"], Upper: a["ymax"], Lower: a["ymin"], Fill: fill}}
}

// Steps connects successive rows with horizontal-then-vertical
// segments. It is the natural mark for Hist output.
type Steps struct{}

func (Steps) build(a map[string]string) []gg.Plotter {
	return []gg.Plotter{gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: a["x"], Y: a["y"], Color: a["color"]},
		Step:       gg.StepHMid,
	}}
}

type layer struct {
	mark   Mark
	stats  []gg.Stat
	vars   map[string]string
	jitter *jitterSpec
	flip   bool
}

type jitterSpec struct {
	width float64
	seed  int64
}

// A LayerOption configures one layer of a plot.
type LayerOption func(*layer)

// With applies table statistics to the layer's data before the mark
// is drawn. Statistics see the data grouped by the layer's color,
// fill, and size columns.
func With(stats ...gg.Stat) LayerOption {
	return func(l *layer) {
		l.stats = append(l.stats, stats...)
	}
}

// By binds a data column to an aesthetic for this layer only.
func By(aes, col string) LayerOption {
	return func(l *layer) {
		l.vars[aes] = col
	}
}

// Jitter displaces the layer's x values by uniform noise of the given
// total width before drawing. The displacement is deterministic for a
// fixed seed.
func Jitter(width float64, seed int64) LayerOption {
	return func(l *layer) {
		l.jitter = &jitterSpec{width, seed}
	}
}

// FlipOrient swaps the layer's x and y bindings, drawing the mark
// horizontally.
func FlipOrient() LayerOption {
	return func(l *layer) {
		l.flip = true
	}
}

// Add appends a layer drawing mark, configured by opts.
func (p *Plot) Add(mark Mark, opts ...LayerOption) *Plot {
	np := p.clone()
	l := layer{mark: mark, vars: make(map[string]string)}
	for _, o := range opts {
		o(&l)
	}
	np.layers = append(np.layers, l)
	return np
}
