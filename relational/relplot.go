// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relational

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/axisgrid"
	"github.com/statplot/statplot/estimate"
)

// A Kind selects the relational plot drawn in each panel of RelPlot.
type Kind string

const (
	KindScatter Kind = "scatter"
	KindLine    Kind = "line"
)

// RelOptions configures RelPlot.
type RelOptions struct {
	Mapping

	// Kind selects the per-panel plot. The zero value is scatter.
	Kind Kind

	// Row and Col name columns to facet on; see
	// axisgrid.FacetOptions.
	Row, Col string

	// ColWrap wraps a column-only facet; see
	// axisgrid.FacetOptions.
	ColWrap int

	// FreeX and FreeY unshare the x and y scales across panels.
	FreeX, FreeY bool

	// PanelWidth and PanelHeight size each panel in SVG pixels.
	PanelWidth, PanelHeight int

	// The remaining fields configure line aggregation and are
	// ignored for scatter. See LineOptions.
	Estimator estimate.Estimator
	ErrorBar  estimate.ErrorBar
	Boot      int
	Seed      int64
	NoAgg     bool
	NoSort    bool
}

// RelPlot draws a relational plot of the selected kind, split into a
// grid of panels on the row and col semantics. It is the faceted
// dispatcher over LinePlot and ScatterPlot.
func RelPlot(data table.Grouping, o RelOptions) (*axisgrid.FacetGrid, error) {
	if err := o.check(data, o.Row, o.Col); err != nil {
		return nil, err
	}

	grid, err := axisgrid.New(data, axisgrid.FacetOptions{
		Row: o.Row, Col: o.Col,
		ColWrap: o.ColWrap,
		FreeX:   o.FreeX, FreeY: o.FreeY,
		PanelWidth: o.PanelWidth, PanelHeight: o.PanelHeight,
	})
	if err != nil {
		return nil, err
	}

	p := grid.Plot()
	switch o.Kind {
	case KindLine:
		lineContent(p, data, LineOptions{
			Mapping:   o.Mapping,
			Estimator: o.Estimator,
			ErrorBar:  o.ErrorBar,
			Boot:      o.Boot,
			Seed:      o.Seed,
			NoAgg:     o.NoAgg,
			NoSort:    o.NoSort,
		})
	case KindScatter, "":
		scatterContent(p, data, ScatterOptions{Mapping: o.Mapping})
	default:
		return nil, fmt.Errorf("unknown plot kind %q", o.Kind)
	}
	return grid, nil
}
