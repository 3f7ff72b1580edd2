// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estimate

import (
	"math"
	"math/rand"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Agg is a table statistic that aggregates a response column over the
// distinct values of an input column.
//
// For each table in a grouping, Agg emits one row per distinct value
// of X, in order of first appearance (sort the table by X first for
// ordered output). The result has the X column, the Y column replaced
// by the point estimate, and columns "lo Y" and "hi Y" with the error
// interval bounds. Columns that are constant within a table, such as
// grouping columns, are carried through; other columns are dropped.
//
// NaN observations are ignored. If every observation at some X is
// NaN, the estimate and bounds at that X are NaN.
type Agg struct {
	// X is the name of the input (grouping) column.
	X string

	// Y is the name of the response column. It must be
	// convertible to []float64.
	Y string

	// Estimator reduces the observations at each X to a point
	// estimate. The zero value is Mean.
	Estimator Estimator

	// ErrorBar gives the interval around each estimate. The zero
	// value is a 95% bootstrap confidence interval.
	ErrorBar ErrorBar

	// Boot is the number of bootstrap resamples for the CI error
	// method. If it is 0, it defaults to 1000.
	Boot int

	// Seed seeds the bootstrap resampler. Results are
	// deterministic for a fixed seed and input.
	Seed int64
}

func (a Agg) boot() int {
	if a.Boot == 0 {
		return 1000
	}
	return a.Boot
}

func (a Agg) F(g table.Grouping) table.Grouping {
	rng := rand.New(rand.NewSource(a.Seed))
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() == 0 {
			return t
		}
		return a.aggTable(t, rng)
	})
}

func (a Agg) aggTable(t *table.Table, rng *rand.Rand) *table.Table {
	var ys []float64
	slice.Convert(&ys, t.MustColumn(a.Y))
	xv := reflect.ValueOf(t.MustColumn(a.X))

	// Partition row indexes by distinct X, keeping first-appearance
	// order.
	var order []interface{}
	rowsOf := make(map[interface{}][]int)
	for i := 0; i < xv.Len(); i++ {
		k := xv.Index(i).Interface()
		if _, ok := rowsOf[k]; !ok {
			order = append(order, k)
		}
		rowsOf[k] = append(rowsOf[k], i)
	}

	nx := len(order)
	outX := reflect.MakeSlice(xv.Type(), nx, nx)
	est := make([]float64, nx)
	lo := make([]float64, nx)
	hi := make([]float64, nx)
	nan := math.NaN()
	for j, k := range order {
		outX.Index(j).Set(reflect.ValueOf(k))
		var vals []float64
		for _, i := range rowsOf[k] {
			if !math.IsNaN(ys[i]) {
				vals = append(vals, ys[i])
			}
		}
		if len(vals) == 0 {
			est[j], lo[j], hi[j] = nan, nan, nan
			continue
		}
		e, err := a.Estimator.Apply(vals)
		if err != nil {
			est[j], lo[j], hi[j] = nan, nan, nan
			continue
		}
		est[j] = e
		lo[j], hi[j] = a.ErrorBar.interval(vals, e, a.Estimator, a.boot(), rng)
	}

	b := new(table.Builder).
		Add(a.X, outX.Interface()).
		Add(a.Y, est).
		Add("lo "+a.Y, lo).
		Add("hi "+a.Y, hi)

	// Carry through constant columns.
	for _, col := range t.Columns() {
		if col == a.X || col == a.Y {
			continue
		}
		cv := reflect.ValueOf(t.Column(col))
		if !isConst(cv) {
			continue
		}
		nc := reflect.MakeSlice(cv.Type(), nx, nx)
		for j := 0; j < nx; j++ {
			nc.Index(j).Set(cv.Index(0))
		}
		b.Add(col, nc.Interface())
	}
	return b.Done()
}

func isConst(cv reflect.Value) bool {
	if cv.Len() == 0 {
		return false
	}
	if !cv.Type().Elem().Comparable() {
		return false
	}
	first := cv.Index(0).Interface()
	for i := 1; i < cv.Len(); i++ {
		if cv.Index(i).Interface() != first {
			return false
		}
	}
	return true
}
