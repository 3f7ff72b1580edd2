// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/axisgrid"
	"github.com/statplot/statplot/internal/scales"
)

const (
	defaultPanelWidth  = 400
	defaultPanelHeight = 300
)

// Render compiles the plot description onto a gg.Plot. The returned plot
// can be rendered with its WriteSVG method or extended further.
func (p *Plot) Render() (*gg.Plot, error) {
	gp, _, _, err := p.compile()
	return gp, err
}

// WriteSVG renders the plot as SVG to w. The output size comes from
// Configure, or from the panel count at a default panel size.
func (p *Plot) WriteSVG(w io.Writer) error {
	gp, nrows, ncols, err := p.compile()
	if err != nil {
		return err
	}
	width, height := p.width, p.height
	if width == 0 {
		width = ncols * defaultPanelWidth
	}
	if height == 0 {
		height = nrows * defaultPanelHeight
	}
	return gp.WriteSVG(w, width, height)
}

func (p *Plot) compile() (gp *gg.Plot, nrows, ncols int, err error) {
	if p.err != nil {
		return nil, 0, 0, p.err
	}
	if p.data == nil {
		return nil, 0, 0, fmt.Errorf("plot has no data")
	}
	if err := p.checkColumns(); err != nil {
		return nil, 0, 0, err
	}

	vars := make(map[string]string, len(p.vars))
	for k, v := range p.vars {
		vars[k] = v
	}
	nrows, ncols = 1, 1

	switch {
	case len(p.pair.xvars) > 0:
		// Pairing melts the data into long form and rebinds the
		// position aesthetics to the melted value columns. Each
		// variable pair becomes one panel.
		long := axisgrid.PairData(p.data, p.pair.xvars, p.pair.yvars)
		gp = gg.NewPlot(long)
		vars["x"], vars["y"] = axisgrid.XVal, axisgrid.YVal
		gp.Add(
			gg.FacetX{Col: axisgrid.XVar, SplitXScales: true, Labeler: axisgrid.VarLabel},
			gg.FacetY{Col: axisgrid.YVar, SplitYScales: true, Labeler: axisgrid.VarLabel},
		)
		nrows, ncols = len(p.pair.yvars), len(p.pair.xvars)

	case p.facet.col != "" || p.facet.row != "":
		gp = gg.NewPlot(p.data)
		grid, err := axisgrid.Attach(gp, axisgrid.FacetOptions{
			Row:     p.facet.row,
			Col:     p.facet.col,
			ColWrap: p.facet.wrap,
		})
		if err != nil {
			return nil, 0, 0, err
		}
		nrows, ncols = grid.Rows(), grid.Cols()

	default:
		gp = gg.NewPlot(p.data)
	}

	for _, axis := range []string{"x", "y"} {
		if p.logs[axis] && vars[axis] != "" {
			gp.Stat(logColumn{vars[axis]})
		}
		if lim, ok := p.limits[axis]; ok {
			gp.SetScale(axis, gg.NewLinearScaler().SetMin(lim.lo).SetMax(lim.hi))
		}
	}

	// Anchor a histogram's count axis at zero. Counts should read
	// from zero anyway, and it keeps the scale well-formed when
	// every bin holds the same count.
	for _, l := range p.layers {
		if !hasHist(l.stats) {
			continue
		}
		axis := "y"
		if l.flip {
			axis = "x"
		}
		if _, ok := p.limits[axis]; !ok {
			gp.SetScale(axis, gg.NewLinearScaler().Include(0))
		}
	}

	if col := vars["color"]; col != "" {
		scales.Hue(gp, p.data, col)
	}
	if col := fillColumn(vars); col != "" {
		scales.Fill(gp, p.data, col)
	}

	for _, l := range p.layers {
		p.compileLayer(gp, l, vars)
	}

	for _, axis := range []string{"x", "y"} {
		label, ok := p.labels[axis]
		if !ok && p.logs[axis] && p.vars[axis] != "" {
			label, ok = fmt.Sprintf("log10(%s)", p.vars[axis]), true
		}
		if ok {
			gp.Add(gg.AxisLabel(axis, label))
		}
	}
	if p.title != "" {
		gp.Add(gg.Title(p.title))
	}
	return gp, nrows, ncols, nil
}

// compileLayer adds one layer to gp, isolated by Save/Restore so its
// grouping and statistics do not leak into later layers.
func (p *Plot) compileLayer(gp *gg.Plot, l layer, vars map[string]string) {
	gp.Save()
	defer gp.Restore()

	a := make(map[string]string, len(vars)+len(l.vars))
	for k, v := range vars {
		a[k] = v
	}
	for k, v := range l.vars {
		a[k] = v
	}
	if l.flip {
		a["x"], a["y"] = a["y"], a["x"]
	}

	// The drawn x can be a statistic output (such as "count" on a
	// flipped histogram) that does not exist yet; those layers take
	// the statistic's own ordering.
	if col := a["x"]; col != "" && hasColumn(gp.Data(), col) {
		gp.SortBy(col)
	}
	if cols := semanticColumns(a); len(cols) > 0 {
		gp.GroupBy(cols...)
	}
	if l.jitter != nil && a["x"] != "" {
		gp.Stat(jitterColumn{a["x"], l.jitter.width, l.jitter.seed})
	}
	for _, s := range l.stats {
		gp.Stat(s)
	}
	gp.Add(l.mark.build(a)...)
}

func hasColumn(g table.Grouping, col string) bool {
	for _, c := range g.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

func hasHist(stats []gg.Stat) bool {
	for _, s := range stats {
		if _, ok := s.(Hist); ok {
			return true
		}
	}
	return false
}

// semanticColumns returns the distinct non-empty columns bound to the
// grouping aesthetics, in a fixed order.
func semanticColumns(a map[string]string) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, aes := range []string{"color", "fill", "size"} {
		if col := a[aes]; col != "" && !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	return cols
}

// fillColumn returns the column that fills will be drawn from: the
// fill assignment, falling back to color the way Area and Band do.
func fillColumn(vars map[string]string) string {
	if vars["fill"] != "" {
		return vars["fill"]
	}
	return vars["color"]
}

func (p *Plot) checkColumns() error {
	have := make(map[string]bool)
	for _, col := range p.data.Columns() {
		have[col] = true
	}
	check := func(col, what string) error {
		if col != "" && !have[col] {
			return fmt.Errorf("%s column %q not in data (have %v)", what, col, p.data.Columns())
		}
		return nil
	}
	for aes, col := range p.vars {
		if err := check(col, aes); err != nil {
			return err
		}
	}
	if err := check(p.facet.row, "facet row"); err != nil {
		return err
	}
	if err := check(p.facet.col, "facet"); err != nil {
		return err
	}
	for _, col := range p.pair.xvars {
		if err := check(col, "pair"); err != nil {
			return err
		}
	}
	for _, col := range p.pair.yvars {
		if err := check(col, "pair"); err != nil {
			return err
		}
	}
	for _, l := range p.layers {
		if len(l.stats) > 0 {
			// Statistics introduce columns of their own, so
			// layer bindings can't be checked against the
			// input data.
			continue
		}
		for aes, col := range l.vars {
			if err := check(col, aes); err != nil {
				return err
			}
		}
	}
	return nil
}
