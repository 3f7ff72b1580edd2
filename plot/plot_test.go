// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"io"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/estimate"
)

func builderData() *table.Table {
	return new(table.Builder).
		Add("x", []float64{1, 2, 3, 1, 2, 3}).
		Add("y", []float64{10, 20, 30, 40, 50, 60}).
		Add("group", []string{"a", "a", "a", "b", "b", "b"}).
		Done()
}

func TestBuilderImmutable(t *testing.T) {
	base := New(builderData()).XY("x", "y")
	with := base.Assign("color", "group").Title("derived")

	if _, err := base.Render(); err != nil {
		t.Errorf("base spoiled by derived plot: %s", err)
	}
	if base.vars["color"] != "" {
		t.Errorf("base gained color assignment %q", base.vars["color"])
	}
	if base.title != "" {
		t.Errorf("base gained title %q", base.title)
	}
	if with.vars["color"] != "group" {
		t.Errorf("derived lost color assignment")
	}
}

func TestDeferredErrors(t *testing.T) {
	try := func(p *Plot, wantErr string) {
		t.Helper()
		_, err := p.Render()
		if err == nil || !strings.Contains(err.Error(), wantErr) {
			t.Errorf("want error containing %q, have %v", wantErr, err)
		}
	}

	data := builderData()
	try(New(data).Assign("shape", "group"), "aesthetic")
	try(New(data).XY("x", "nope"), `"nope"`)
	try(New(data).XY("x", "y").Facet("nope", ""), `"nope"`)
	try(New(data).XY("x", "y").FacetWrap("group", 0), "wrap")
	try(New(data).XY("x", "y").Pair(nil, nil), "Pair")
	try(New(data).XY("x", "y").LogScale("color"), "axes")
	try(New(nil), "no data")

	// The first error wins and later calls still chain.
	p := New(data).Assign("shape", "group").XY("x", "y").Title("ok")
	if _, err := p.Render(); err == nil || !strings.Contains(err.Error(), "aesthetic") {
		t.Errorf("first error lost, have %v", err)
	}
}

func TestLayerBindingsChecked(t *testing.T) {
	p := New(builderData()).XY("x", "y").Add(Dot{}, By("color", "nope"))
	if _, err := p.Render(); err == nil {
		t.Errorf("bad layer binding: want error, have nil")
	}

	// Stat layers may bind columns the stat creates.
	p = New(builderData()).XY("x", "y").
		Add(Band{},
			With(estimate.Agg{X: "x", Y: "y", ErrorBar: estimate.ErrorBar{Method: estimate.SD}}),
			By("ymin", "lo y"), By("ymax", "hi y"))
	if _, err := p.Render(); err != nil {
		t.Errorf("stat-created binding rejected: %s", err)
	}
}

func TestRenderLine(t *testing.T) {
	p := New(builderData()).
		XY("x", "y").
		Assign("color", "group").
		Add(Band{},
			With(estimate.Agg{X: "x", Y: "y", ErrorBar: estimate.ErrorBar{Method: estimate.SD}}),
			By("ymin", "lo y"), By("ymax", "hi y")).
		Add(Line{}, With(estimate.Agg{X: "x", Y: "y", ErrorBar: estimate.ErrorBar{Method: estimate.None}})).
		Label("y", "response").
		Title("aggregates")
	if err := p.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}
}

func TestRenderFacetsAndPairs(t *testing.T) {
	p := New(builderData()).XY("x", "y").FacetWrap("group", 1).Add(Dot{})
	if err := p.WriteSVG(io.Discard); err != nil {
		t.Fatalf("faceted: %s", err)
	}

	p = New(builderData()).Pair([]string{"x", "y"}, []string{"x", "y"}).Add(Dot{})
	if err := p.WriteSVG(io.Discard); err != nil {
		t.Fatalf("paired: %s", err)
	}
}

func TestRenderHistogram(t *testing.T) {
	p := New(builderData()).
		Assign("x", "y").
		Add(Steps{}, With(Hist{X: "y", Bins: 3}), By("y", "count"))
	if err := p.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}
}

// Uniform data fills every bin with the same count, leaving the count
// axis with a single-valued domain. The scale must still render.
func TestRenderHistogramUniform(t *testing.T) {
	tab := new(table.Builder).Add("v", []float64{0, 1, 2, 3, 4, 5}).Done()

	p := New(tab).Assign("x", "v").
		Add(Steps{}, With(Hist{X: "v", Bins: 3}), By("y", "count"))
	if err := p.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}

	flipped := New(tab).Assign("x", "v").
		Add(Steps{}, With(Hist{X: "v", Bins: 3}), By("y", "count"), FlipOrient())
	if err := flipped.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering flipped: %s", err)
	}
}

func TestFlipAndJitter(t *testing.T) {
	p := New(builderData()).XY("x", "y").
		Add(Dot{}, Jitter(0.2, 7)).
		Add(Dot{}, FlipOrient())
	if err := p.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}
}
