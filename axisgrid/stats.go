// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisgrid

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// keepConstCols wraps a statistic that drops data columns, saving the
// named columns before it runs and restoring them after. The columns
// must be constant within each group, which holds for grouping and
// facet columns. Groups the statistic leaves with no rows get the
// columns back as empty slices so every group exposes the same column
// set.
type keepConstCols struct {
	stat gg.Stat
	cols []string
}

func (k keepConstCols) F(g table.Grouping) table.Grouping {
	if len(g.Tables()) == 0 {
		return k.stat.F(g)
	}
	want := make(map[string]bool)
	for _, col := range k.cols {
		if col != "" {
			want[col] = true
		}
	}
	// Restore in input column order so every group's output has the
	// same column sequence.
	var cols []string
	types := make(map[string]reflect.Type)
	for _, col := range g.Columns() {
		if !want[col] {
			continue
		}
		cols = append(cols, col)
		types[col] = table.ColType(g, col)
	}
	saved := make(map[table.GroupID]map[string]interface{})
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		if t.Len() == 0 {
			continue
		}
		m := make(map[string]interface{})
		for _, col := range cols {
			m[col] = reflect.ValueOf(t.MustColumn(col)).Index(0).Interface()
		}
		saved[gid] = m
	}

	ng := k.stat.F(g)
	return table.MapTables(ng, func(gid table.GroupID, t *table.Table) *table.Table {
		b := table.NewBuilder(t)
		for _, col := range cols {
			if t.Column(col) != nil {
				continue
			}
			if v, ok := saved[gid][col]; ok {
				b.AddConst(col, v)
			} else {
				b.Add(col, reflect.MakeSlice(types[col], 0, 0).Interface())
			}
		}
		return b.Done()
	})
}

// rescaleInto adds column Out, which is column Y scaled linearly so
// its maximum lands at the top of column X's span. This lets a
// derived curve such as a density estimate share a panel with the
// data it describes.
type rescaleInto struct {
	X, Y, Out string
}

func (r rescaleInto) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() == 0 {
			return table.NewBuilder(t).Add(r.Out, []float64{}).Done()
		}
		var xs, ys []float64
		slice.Convert(&xs, t.MustColumn(r.X))
		slice.Convert(&ys, t.MustColumn(r.Y))
		xmin, xmax := stats.Bounds(xs)
		_, ymax := stats.Bounds(ys)
		out := make([]float64, len(ys))
		for i, y := range ys {
			v := 0.0
			if ymax > 0 {
				v = y / ymax
			}
			out[i] = xmin + v*(xmax-xmin)
		}
		return table.NewBuilder(t).Add(r.Out, out).Done()
	})
}
