// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisgrid

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/internal/scales"
)

// Column names of the long-form pair data. Layers passed to the Map
// family should bind x to XVal and y to YVal.
const (
	XVar = "x variable"
	XVal = "x value"
	YVar = "y variable"
	YVal = "y value"
)

// PairOptions configures a PairGrid.
type PairOptions struct {
	// Vars names the columns paired on both axes. If empty, all
	// numeric columns except Hue are used.
	Vars []string

	// XVars and YVars override Vars per axis for a non-square
	// grid.
	XVars, YVars []string

	// Hue names a column mapped to stroke color in every panel.
	Hue string

	// Corner drops the panels above the diagonal.
	Corner bool

	// PanelSize is the width and height of each panel in pixels
	// of SVG output. Zero means a default.
	PanelSize int
}

// A PairGrid is a matrix of panels over pairs of variables: panel
// (i, j) plots x variable i against y variable j. Each column of
// panels shares an x scale and each row shares a y scale.
//
// The data behind the grid is in long form: each input row appears
// once per variable pair, with the pair's values in the XVal and YVal
// columns. The Map family adds layers against this long form,
// restricted to a region of the matrix.
type PairGrid struct {
	p            *gg.Plot
	xvars, yvars []string
	hue          string
	data         table.Grouping
	panel        int
}

// NewPairGrid creates a PairGrid over data.
func NewPairGrid(data table.Grouping, o PairOptions) (*PairGrid, error) {
	xvars, yvars, err := pairVars(data, o)
	if err != nil {
		return nil, err
	}
	long := pairLong(data, xvars, yvars)

	g := &PairGrid{
		xvars: xvars, yvars: yvars,
		hue:   o.Hue,
		panel: o.PanelSize,
	}
	if g.panel == 0 {
		g.panel = 250
	}

	p := gg.NewPlot(long)
	if o.Hue != "" {
		p.GroupBy(o.Hue)
		scales.Hue(p, long, o.Hue)
	}
	if o.Corner {
		p.SetData(table.Filter(p.Data(), func(xv, yv string) bool {
			return varIndex(yv) >= varIndex(xv)
		}, XVar, YVar))
	}
	p.Add(
		gg.FacetX{Col: XVar, SplitXScales: true, Labeler: varLabel},
		gg.FacetY{Col: YVar, SplitYScales: true, Labeler: varLabel},
	)
	g.p = p
	g.data = p.Data()
	return g, nil
}

// Plot returns the underlying gg plot.
func (g *PairGrid) Plot() *gg.Plot { return g.p }

// Rows returns the number of panel rows.
func (g *PairGrid) Rows() int { return len(g.yvars) }

// Cols returns the number of panel columns.
func (g *PairGrid) Cols() int { return len(g.xvars) }

// Map adds layers to every panel.
func (g *PairGrid) Map(layers ...gg.Plotter) *PairGrid {
	return g.mapRegion(regionAll, nil, layers)
}

// MapDiag adds layers to the panels whose x and y variable are the
// same.
func (g *PairGrid) MapDiag(layers ...gg.Plotter) *PairGrid {
	return g.mapRegion(regionDiag, nil, layers)
}

// MapOffDiag adds layers to the panels whose x and y variable differ.
func (g *PairGrid) MapOffDiag(layers ...gg.Plotter) *PairGrid {
	return g.mapRegion(regionOffDiag, nil, layers)
}

// MapLower adds layers to the panels below the diagonal.
func (g *PairGrid) MapLower(layers ...gg.Plotter) *PairGrid {
	return g.mapRegion(regionLower, nil, layers)
}

// MapUpper adds layers to the panels above the diagonal.
func (g *PairGrid) MapUpper(layers ...gg.Plotter) *PairGrid {
	return g.mapRegion(regionUpper, nil, layers)
}

// Scatter adds the default off-diagonal mapping: a point per
// observation, colored by hue.
func (g *PairGrid) Scatter() *PairGrid {
	return g.MapOffDiag(gg.LayerPoints{X: XVal, Y: YVal, Color: g.hue})
}

// DiagDensity draws a density estimate of each variable in its
// diagonal panel. The density curve is rescaled into the span of the
// variable so it shares the panel's coordinate system.
func (g *PairGrid) DiagDensity() *PairGrid {
	stats := []gg.Stat{
		keepConstCols{
			ggstat.Density{X: XVal, Domain: ggstat.DomainData{SplitGroups: true}},
			[]string{XVar, YVar, g.hue},
		},
		rescaleInto{XVal, "probability density", "density display"},
	}
	return g.mapRegion(regionDiag, stats, []gg.Plotter{
		gg.LayerLines{X: XVal, Y: "density display", Color: g.hue},
	})
}

// SetAxisLabels overrides the outer x and y axis labels, which
// otherwise name the melted value columns. An empty string leaves
// that axis alone.
func (g *PairGrid) SetAxisLabels(x, y string) *PairGrid {
	if x != "" {
		g.p.Add(gg.AxisLabel("x", x))
	}
	if y != "" {
		g.p.Add(gg.AxisLabel("y", y))
	}
	return g
}

// SetTitle sets the figure title.
func (g *PairGrid) SetTitle(title string) *PairGrid {
	g.p.Add(gg.Title(title))
	return g
}

// WriteSVG renders the grid at its panel size times the panel count.
func (g *PairGrid) WriteSVG(w io.Writer) error {
	return g.p.WriteSVG(w, len(g.xvars)*g.panel, len(g.yvars)*g.panel)
}

type region func(xi, yi int, same bool) bool

func regionAll(xi, yi int, same bool) bool     { return true }
func regionDiag(xi, yi int, same bool) bool    { return same }
func regionOffDiag(xi, yi int, same bool) bool { return !same }
func regionLower(xi, yi int, same bool) bool   { return !same && yi > xi }
func regionUpper(xi, yi int, same bool) bool   { return !same && yi < xi }

func (g *PairGrid) mapRegion(keep region, stats []gg.Stat, layers []gg.Plotter) *PairGrid {
	p := g.p
	p.Save()
	defer p.Restore()
	p.SetData(table.Filter(g.data, func(xv, yv string) bool {
		return keep(varIndex(xv), varIndex(yv), varName(xv) == varName(yv))
	}, XVar, YVar))
	for _, s := range stats {
		p.Stat(s)
	}
	p.Add(layers...)
	return g
}

// pairVars resolves the x and y variable lists from the options.
func pairVars(data table.Grouping, o PairOptions) (xvars, yvars []string, err error) {
	all := o.Vars
	if len(all) == 0 && (len(o.XVars) == 0 || len(o.YVars) == 0) {
		all = numericColumns(data, o.Hue)
	}
	xvars, yvars = o.XVars, o.YVars
	if len(xvars) == 0 {
		xvars = all
	}
	if len(yvars) == 0 {
		yvars = all
	}
	if len(xvars) == 0 || len(yvars) == 0 {
		return nil, nil, fmt.Errorf("no numeric columns to pair")
	}
	have := make(map[string]bool)
	for _, c := range data.Columns() {
		have[c] = true
	}
	for _, c := range append(xvars[:len(xvars):len(xvars)], yvars...) {
		if !have[c] {
			return nil, nil, fmt.Errorf("pair variable %q not in data (have %v)", c, data.Columns())
		}
	}
	return xvars, yvars, nil
}

// numericColumns returns the columns of data whose type is []int or
// []float64, except skip.
func numericColumns(data table.Grouping, skip string) []string {
	gids := data.Tables()
	if len(gids) == 0 {
		return nil
	}
	t := data.Table(gids[0])
	var cols []string
	for _, col := range data.Columns() {
		if col == skip {
			continue
		}
		switch t.Column(col).(type) {
		case []int, []float64:
			cols = append(cols, col)
		}
	}
	return cols
}

// pairLong expands each table of data into the pair cross product:
// one block of rows per (x variable, y variable) pair, with the
// variable names in the XVar and YVar columns and their values,
// converted to float64, in XVal and YVal. Non-pair columns are
// repeated into each block. Variable name columns carry an index
// prefix so panels lay out in the given order; varLabel strips it.
func pairLong(data table.Grouping, xvars, yvars []string) table.Grouping {
	return table.MapTables(data, func(_ table.GroupID, t *table.Table) *table.Table {
		n := t.Len()
		vals := make(map[string][]float64)
		for _, v := range xvars {
			if _, ok := vals[v]; !ok {
				var xs []float64
				slice.Convert(&xs, t.MustColumn(v))
				vals[v] = xs
			}
		}
		for _, v := range yvars {
			if _, ok := vals[v]; !ok {
				var xs []float64
				slice.Convert(&xs, t.MustColumn(v))
				vals[v] = xs
			}
		}

		total := n * len(xvars) * len(yvars)
		xvarCol := make([]string, 0, total)
		yvarCol := make([]string, 0, total)
		xvalCol := make([]float64, 0, total)
		yvalCol := make([]float64, 0, total)
		for yi, yv := range yvars {
			for xi, xv := range xvars {
				xl, yl := varValue(xi, xv), varValue(yi, yv)
				for r := 0; r < n; r++ {
					xvarCol = append(xvarCol, xl)
					yvarCol = append(yvarCol, yl)
					xvalCol = append(xvalCol, vals[xv][r])
					yvalCol = append(yvalCol, vals[yv][r])
				}
			}
		}

		b := new(table.Builder).
			Add(XVar, xvarCol).Add(XVal, xvalCol).
			Add(YVar, yvarCol).Add(YVal, yvalCol)

		inPair := make(map[string]bool)
		for v := range vals {
			inPair[v] = true
		}
		blocks := len(xvars) * len(yvars)
		for _, col := range t.Columns() {
			if inPair[col] {
				continue
			}
			cv := reflect.ValueOf(t.Column(col))
			nc := reflect.MakeSlice(cv.Type(), 0, total)
			for i := 0; i < blocks; i++ {
				nc = reflect.AppendSlice(nc, cv)
			}
			b.Add(col, nc.Interface())
		}
		return b.Done()
	})
}

// PairData expands data into the long-form pair cross product used
// by PairGrid, pairing each of xvars against each of yvars. See
// pairLong for the column layout.
func PairData(data table.Grouping, xvars, yvars []string) table.Grouping {
	return pairLong(data, xvars, yvars)
}

// VarLabel strips the panel-order prefix from an XVar or YVar value.
// It is the facet labeler for plots built over PairData.
func VarLabel(v interface{}) string {
	return varLabel(v)
}

// varValue encodes a pair variable for the XVar/YVar columns. The
// two-digit index prefix makes lexical facet order match the given
// variable order.
func varValue(i int, name string) string {
	return fmt.Sprintf("%02d %s", i, name)
}

func varIndex(v string) int {
	i, err := strconv.Atoi(v[:2])
	if err != nil {
		return -1
	}
	return i
}

func varName(v string) string {
	return v[3:]
}

func varLabel(v interface{}) string {
	return varName(v.(string))
}
