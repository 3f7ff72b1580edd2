// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides a declarative plot builder. A Plot starts
// from a data table and a set of variable assignments, accumulates
// layers of marks with optional statistics, and is split into panels
// by faceting or variable pairing. Builder methods return a modified
// copy, so a partially specified plot can be reused:
//
//	base := plot.New(data).Assign("x", "timepoint").Assign("y", "signal")
//	base.Add(plot.Line{}, plot.With(estimate.Agg{X: "timepoint", Y: "signal"}))
//
// Render compiles the plot description onto a gg.Plot; WriteSVG
// renders it.
package plot

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Aesthetics a column can be assigned to. "color" maps a column to
// the stroke color of lines and points, "fill" to area fills, and
// "size" to point area. "ymin" and "ymax" are consumed by the Band
// mark.
var aesNames = map[string]bool{
	"x": true, "y": true,
	"color": true, "fill": true, "size": true,
	"ymin": true, "ymax": true,
}

// A Plot is a declarative plot specification.
type Plot struct {
	data   table.Grouping
	vars   map[string]string
	layers []layer
	facet  facetSpec
	pair   pairSpec
	labels map[string]string
	title  string
	limits map[string]limitSpec
	logs   map[string]bool
	width  int
	height int
	err    error
}

type facetSpec struct {
	row, col string
	wrap     int
}

type pairSpec struct {
	xvars, yvars []string
}

type limitSpec struct {
	lo, hi float64
}

// New returns an empty plot specification over data.
func New(data table.Grouping) *Plot {
	return &Plot{
		data:   data,
		vars:   make(map[string]string),
		labels: make(map[string]string),
		limits: make(map[string]limitSpec),
		logs:   make(map[string]bool),
	}
}

// clone returns a shallow copy of p with its maps and slices
// unshared, so modifying the copy leaves p usable.
func (p *Plot) clone() *Plot {
	np := *p
	np.vars = make(map[string]string, len(p.vars))
	for k, v := range p.vars {
		np.vars[k] = v
	}
	np.labels = make(map[string]string, len(p.labels))
	for k, v := range p.labels {
		np.labels[k] = v
	}
	np.limits = make(map[string]limitSpec, len(p.limits))
	for k, v := range p.limits {
		np.limits[k] = v
	}
	np.logs = make(map[string]bool, len(p.logs))
	for k, v := range p.logs {
		np.logs[k] = v
	}
	np.layers = append([]layer(nil), p.layers...)
	return &np
}

// fail records the first configuration error. It is reported by
// Render, so call sites can chain without checking each step.
func (p *Plot) fail(err error) *Plot {
	np := p.clone()
	if np.err == nil {
		np.err = err
	}
	return np
}

// Assign binds a data column to an aesthetic.
func (p *Plot) Assign(aes, col string) *Plot {
	if !aesNames[aes] {
		return p.fail(fmt.Errorf("unknown aesthetic %q", aes))
	}
	np := p.clone()
	np.vars[aes] = col
	return np
}

// XY binds the x and y aesthetics. It is shorthand for two Assign
// calls.
func (p *Plot) XY(x, y string) *Plot {
	return p.Assign("x", x).Assign("y", y)
}

// Facet splits the plot into a column of panels per value of col and
// a row of panels per value of row. Either may be empty.
func (p *Plot) Facet(col, row string) *Plot {
	np := p.clone()
	np.facet.col, np.facet.row = col, row
	np.facet.wrap = 0
	return np
}

// FacetWrap splits the plot into panels per value of col, wrapped
// into rows of at most wrap panels.
func (p *Plot) FacetWrap(col string, wrap int) *Plot {
	if wrap <= 0 {
		return p.fail(fmt.Errorf("FacetWrap requires wrap > 0"))
	}
	np := p.clone()
	np.facet = facetSpec{col: col, wrap: wrap}
	return np
}

// Pair draws the cartesian product of the xs and ys columns as a
// panel matrix. Layers bound to the x and y aesthetics are drawn
// against each pair in turn. Pairing replaces any x and y column
// assignments.
func (p *Plot) Pair(xs, ys []string) *Plot {
	if len(xs) == 0 || len(ys) == 0 {
		return p.fail(fmt.Errorf("Pair requires at least one column per axis"))
	}
	np := p.clone()
	np.pair = pairSpec{xvars: xs, yvars: ys}
	return np
}

// Label overrides the automatic label of an axis ("x" or "y").
func (p *Plot) Label(axis, text string) *Plot {
	np := p.clone()
	np.labels[axis] = text
	return np
}

// Title sets the figure title.
func (p *Plot) Title(text string) *Plot {
	np := p.clone()
	np.title = text
	return np
}

// Limit forces the scale of an axis to cover [lo, hi].
func (p *Plot) Limit(axis string, lo, hi float64) *Plot {
	if axis != "x" && axis != "y" {
		return p.fail(fmt.Errorf("Limit applies to the x and y axes only"))
	}
	np := p.clone()
	np.limits[axis] = limitSpec{lo, hi}
	return np
}

// LogScale draws an axis in log10 by transforming the assigned
// column. The axis label notes the transform.
func (p *Plot) LogScale(axis string) *Plot {
	if axis != "x" && axis != "y" {
		return p.fail(fmt.Errorf("LogScale applies to the x and y axes only"))
	}
	np := p.clone()
	np.logs[axis] = true
	return np
}

// Configure sets the output size in pixels. For faceted or paired
// plots this is the size of the whole figure, not of each panel.
func (p *Plot) Configure(width, height int) *Plot {
	np := p.clone()
	np.width, np.height = width, height
	return np
}
