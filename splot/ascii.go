// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/guptarohit/asciigraph"

	"github.com/statplot/statplot/estimate"
)

// asciiPreview prints a rough terminal rendering of y against x. The
// data is aggregated the same way the line plot would aggregate it,
// ignoring the hue split, so the preview shows one series.
func asciiPreview(w io.Writer, data *table.Table, f *figure) error {
	if f.X == "" || f.Y == "" {
		return fmt.Errorf("ascii preview needs x and y columns")
	}
	g := table.SortBy(data, f.X)
	g = estimate.Agg{
		X: f.X, Y: f.Y,
		Estimator: estimate.Estimator(f.Estimator),
		ErrorBar:  estimate.ErrorBar{Method: estimate.None},
	}.F(g)

	var ys []float64
	for _, gid := range g.Tables() {
		var part []float64
		slice.Convert(&part, g.Table(gid).MustColumn(f.Y))
		ys = append(ys, part...)
	}
	if len(ys) == 0 {
		return fmt.Errorf("no rows to plot")
	}

	graph := asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s by %s", f.Y, f.X)))
	_, err := fmt.Fprintln(w, graph)
	return err
}
