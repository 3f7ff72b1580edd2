// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axisgrid provides multi-panel figure objects: FacetGrid
// splits a plot into panels on categorical columns, and PairGrid
// draws a matrix of panels over variable pairs. Both return the
// receiver from their configuration methods so calls chain.
package axisgrid

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/internal/scales"
)

const (
	defaultPanelWidth  = 400
	defaultPanelHeight = 300
)

// FacetOptions configures a FacetGrid.
type FacetOptions struct {
	// Row and Col name categorical columns whose distinct values
	// become the grid's rows and columns. Either may be empty.
	Row, Col string

	// ColWrap wraps a column-only facet into multiple rows of at
	// most ColWrap panels. It requires Col without Row.
	ColWrap int

	// FreeX and FreeY give each column band its own x scale and
	// each row band its own y scale. The default is scales shared
	// across all panels. Not supported with ColWrap.
	FreeX, FreeY bool

	// PanelWidth and PanelHeight are the size of each panel in
	// pixels of SVG output. Zero means a default.
	PanelWidth, PanelHeight int
}

// A FacetGrid is a plot split into a grid of panels. Layers added
// with Map are drawn in every panel against that panel's subset of
// the data.
type FacetGrid struct {
	p            *gg.Plot
	nrows, ncols int
	panelW       int
	panelH       int
}

// New creates a FacetGrid over data.
func New(data table.Grouping, o FacetOptions) (*FacetGrid, error) {
	return Attach(gg.NewPlot(data), o)
}

// Attach applies faceting to an existing plot and wraps it in a
// FacetGrid. Layers already added to p stay in the root panel;
// normally facets are attached before any layers.
func Attach(p *gg.Plot, o FacetOptions) (*FacetGrid, error) {
	data := p.Data()
	have := make(map[string]bool)
	for _, c := range data.Columns() {
		have[c] = true
	}
	for _, col := range []string{o.Row, o.Col} {
		if col != "" && !have[col] {
			return nil, fmt.Errorf("facet column %q not in data (have %v)", col, data.Columns())
		}
	}
	if o.ColWrap != 0 {
		if o.Row != "" || o.Col == "" {
			return nil, fmt.Errorf("ColWrap requires Col faceting without Row")
		}
		if o.FreeX || o.FreeY {
			return nil, fmt.Errorf("free scales are not supported with ColWrap")
		}
	}

	g := &FacetGrid{p: p, nrows: 1, ncols: 1, panelW: o.PanelWidth, panelH: o.PanelHeight}
	if g.panelW == 0 {
		g.panelW = defaultPanelWidth
	}
	if g.panelH == 0 {
		g.panelH = defaultPanelHeight
	}

	if o.Col != "" {
		n := scales.Levels(data, o.Col)
		if o.ColWrap > 0 && n > o.ColWrap {
			g.ncols = o.ColWrap
			g.nrows = (n + o.ColWrap - 1) / o.ColWrap
			p.Add(gg.FacetWrap{Col: o.Col, Cols: o.ColWrap})
		} else {
			g.ncols = n
			p.Add(gg.FacetX{Col: o.Col, SplitXScales: o.FreeX})
		}
	}
	if o.Row != "" {
		g.nrows = scales.Levels(data, o.Row)
		p.Add(gg.FacetY{Col: o.Row, SplitYScales: o.FreeY})
	}
	return g, nil
}

// Plot returns the underlying gg plot for operations the grid does
// not expose.
func (g *FacetGrid) Plot() *gg.Plot { return g.p }

// Rows returns the number of panel rows.
func (g *FacetGrid) Rows() int { return g.nrows }

// Cols returns the number of panel columns.
func (g *FacetGrid) Cols() int { return g.ncols }

// Map adds layers to every panel.
func (g *FacetGrid) Map(layers ...gg.Plotter) *FacetGrid {
	g.p.Add(layers...)
	return g
}

// Stat applies table statistics to the grid's data before subsequent
// Map calls.
func (g *FacetGrid) Stat(stats ...gg.Stat) *FacetGrid {
	g.p.Stat(stats...)
	return g
}

// SetAxisLabels overrides the automatic x and y axis labels. An empty
// string leaves that axis alone.
func (g *FacetGrid) SetAxisLabels(x, y string) *FacetGrid {
	if x != "" {
		g.p.Add(gg.AxisLabel("x", x))
	}
	if y != "" {
		g.p.Add(gg.AxisLabel("y", y))
	}
	return g
}

// SetTitle sets the figure title.
func (g *FacetGrid) SetTitle(title string) *FacetGrid {
	g.p.Add(gg.Title(title))
	return g
}

// WriteSVG renders the grid, sized by its panel dimensions and
// panel count.
func (g *FacetGrid) WriteSVG(w io.Writer) error {
	return g.p.WriteSVG(w, g.ncols*g.panelW, g.nrows*g.panelH)
}
