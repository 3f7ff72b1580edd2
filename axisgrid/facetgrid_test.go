// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisgrid

import (
	"io"
	"testing"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

func gridData() *table.Table {
	n := 24
	xs := make([]float64, n)
	ys := make([]float64, n)
	rows := make([]string, n)
	cols := make([]string, n)
	for i := range xs {
		xs[i] = float64(i % 4)
		ys[i] = float64(i)
		rows[i] = []string{"r1", "r2"}[i%2]
		cols[i] = []string{"c1", "c2", "c3"}[i%3]
	}
	return new(table.Builder).
		Add("x", xs).Add("y", ys).
		Add("r", rows).Add("c", cols).
		Done()
}

func TestFacetGridShape(t *testing.T) {
	try := func(o FacetOptions, wantRows, wantCols int) {
		t.Helper()
		g, err := New(gridData(), o)
		if err != nil {
			t.Errorf("%+v: unexpected error %s", o, err)
			return
		}
		if g.Rows() != wantRows || g.Cols() != wantCols {
			t.Errorf("%+v: want %dx%d, have %dx%d",
				o, wantRows, wantCols, g.Rows(), g.Cols())
		}
	}

	try(FacetOptions{}, 1, 1)
	try(FacetOptions{Col: "c"}, 1, 3)
	try(FacetOptions{Row: "r"}, 2, 1)
	try(FacetOptions{Row: "r", Col: "c"}, 2, 3)
	// Wrapping splits 3 columns into 2+1.
	try(FacetOptions{Col: "c", ColWrap: 2}, 2, 2)
	// A wrap wider than the level count changes nothing.
	try(FacetOptions{Col: "c", ColWrap: 5}, 1, 3)
}

func TestFacetGridErrors(t *testing.T) {
	try := func(o FacetOptions) {
		t.Helper()
		if _, err := New(gridData(), o); err == nil {
			t.Errorf("%+v: want error, have nil", o)
		}
	}

	try(FacetOptions{Col: "nope"})
	try(FacetOptions{Row: "nope"})
	try(FacetOptions{ColWrap: 2})
	try(FacetOptions{Row: "r", Col: "c", ColWrap: 2})
	try(FacetOptions{Col: "c", ColWrap: 2, FreeX: true})
}

func TestFacetGridRender(t *testing.T) {
	g, err := New(gridData(), FacetOptions{Row: "r", Col: "c", FreeY: true})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	g.Map(gg.LayerPoints{X: "x", Y: "y"}).
		SetAxisLabels("input", "output").
		SetTitle("panels")
	if err := g.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}
}
