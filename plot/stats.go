// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"math/rand"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Hist bins the X column and emits one row per bin, with the bin
// center in X and the number of observations in "count". Bin
// boundaries are shared across groups so stacked or colored
// histograms line up. Constant columns are carried through.
type Hist struct {
	// X is the column to bin.
	X string

	// Bins is the number of bins. If it is 0, it defaults to 10.
	Bins int
}

func (h Hist) F(g table.Grouping) table.Grouping {
	bins := h.Bins
	if bins <= 0 {
		bins = 10
	}

	// Shared break points so bins line up across groups.
	lo, hi := math.NaN(), math.NaN()
	for _, gid := range g.Tables() {
		var xs []float64
		slice.Convert(&xs, g.Table(gid).MustColumn(h.X))
		gmin, gmax := stats.Bounds(xs)
		if gmin < lo || math.IsNaN(lo) {
			lo = gmin
		}
		if gmax > hi || math.IsNaN(hi) {
			hi = gmax
		}
	}
	width := (hi - lo) / float64(bins)
	if width == 0 || math.IsNaN(width) {
		width = 1
	}
	breaks := make([]float64, bins)
	for i := range breaks {
		breaks[i] = lo + width*float64(i)
	}

	// Bin compares samples against the breaks, so X must be float64
	// to match them.
	g = table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(h.X))
		return table.NewBuilder(t).Add(h.X, xs).Done()
	})

	// Bin puts rows at or past the last break into the last bin, so
	// the maximum lands in it rather than falling off the edge.
	binned := ggstat.Bin{X: h.X, Breaks: breaks}.F(g)

	// Bin emits only the occupied bins, keyed by left edge. Spread
	// each group over the full break list so empty bins count zero,
	// and report bin centers.
	centers := make([]float64, bins)
	for i := range centers {
		centers[i] = lo + width*(float64(i)+0.5)
	}
	return table.MapTables(binned, func(_ table.GroupID, t *table.Table) *table.Table {
		var edges, counts []float64
		slice.Convert(&edges, t.MustColumn(h.X))
		slice.Convert(&counts, t.MustColumn("count"))
		full := make([]float64, bins)
		for i, e := range edges {
			if b := int(math.Round((e - lo) / width)); 0 <= b && b < bins {
				full[b] += counts[i]
			}
		}
		b := new(table.Builder).Add(h.X, centers).Add("count", full)
		carryConst(b, t, bins, h.X, "count")
		return b.Done()
	})
}

// Density estimates the probability density of the X column by kernel
// density estimation. The output replaces X with evaluation points
// and adds a "probability density" column. Evaluation bounds are
// shared across groups.
type Density struct {
	// X is the column to estimate the density of.
	X string

	// N is the number of evaluation points. If it is 0, a
	// reasonable default is used.
	N int

	// Bandwidth overrides the estimated kernel bandwidth.
	Bandwidth float64
}

func (d Density) F(g table.Grouping) table.Grouping {
	return ggstat.Density{X: d.X, N: d.N, Bandwidth: d.Bandwidth}.F(g)
}

// Smooth fits a LOESS regression of Y on X and replaces the data with
// points sampled from the fit.
type Smooth struct {
	// X and Y are the predictor and response columns.
	X, Y string

	// Span controls the smoothness of the fit, between 0 and 1.
	// If it is 0, it defaults to 0.5.
	Span float64
}

func (s Smooth) F(g table.Grouping) table.Grouping {
	return ggstat.LOESS{X: s.X, Y: s.Y, Span: s.Span}.F(g)
}

// logColumn replaces a column with its log10. Non-positive values
// become NaN.
type logColumn struct {
	col string
}

func (l logColumn) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(l.col))
		return table.NewBuilder(t).Add(l.col, vec.Map(math.Log10, xs)).Done()
	})
}

// jitterColumn displaces a column by uniform noise of the given total
// width, deterministically for a fixed seed.
type jitterColumn struct {
	col   string
	width float64
	seed  int64
}

func (j jitterColumn) F(g table.Grouping) table.Grouping {
	rng := rand.New(rand.NewSource(j.seed))
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(j.col))
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = x + j.width*(rng.Float64()-0.5)
		}
		return table.NewBuilder(t).Add(j.col, out).Done()
	})
}

// carryConst copies columns of t that are constant, other than the
// skip columns, into b as n-row columns.
func carryConst(b *table.Builder, t *table.Table, n int, skip ...string) {
	skipped := make(map[string]bool)
	for _, col := range skip {
		skipped[col] = true
	}
	for _, col := range t.Columns() {
		if skipped[col] {
			continue
		}
		cv := reflect.ValueOf(t.Column(col))
		if cv.Len() == 0 || !cv.Type().Elem().Comparable() {
			continue
		}
		first := cv.Index(0).Interface()
		ok := true
		for i := 1; i < cv.Len(); i++ {
			if cv.Index(i).Interface() != first {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		nc := reflect.MakeSlice(cv.Type(), n, n)
		for i := 0; i < n; i++ {
			nc.Index(i).Set(cv.Index(0))
		}
		b.Add(col, nc.Interface())
	}
}
