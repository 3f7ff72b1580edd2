// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relational

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/estimate"
	"github.com/statplot/statplot/internal/scales"
)

// LineOptions configures LinePlot.
type LineOptions struct {
	Mapping

	// Estimator aggregates the y observations at each x. The zero
	// value is the mean.
	Estimator estimate.Estimator

	// ErrorBar selects the interval shaded around the line. The
	// zero value is a 95% bootstrap confidence interval.
	ErrorBar estimate.ErrorBar

	// Boot and Seed configure the bootstrap. See estimate.Agg.
	Boot int
	Seed int64

	// NoAgg plots each observation instead of aggregating. No
	// error band is drawn.
	NoAgg bool

	// NoSort connects points in data order rather than x order.
	NoSort bool
}

// LinePlot draws y against x as one line per semantic subgroup, with
// y aggregated over repeated x values and an error interval shaded
// behind each line.
func LinePlot(data table.Grouping, o LineOptions) (*gg.Plot, error) {
	if err := o.check(data); err != nil {
		return nil, err
	}
	p := gg.NewPlot(data)
	lineContent(p, data, o)
	return p, nil
}

// lineContent adds the line plot pipeline (sorting, grouping,
// aggregation, band and line layers) to p. data is the pre-facet
// data, used to size the hue scales. Any faceting must already be
// applied to p.
func lineContent(p *gg.Plot, data table.Grouping, o LineOptions) {
	if !o.NoSort {
		p.SortBy(o.X)
	}
	if cols := o.groupCols(); len(cols) > 0 {
		p.GroupBy(cols...)
	}

	if !o.NoAgg {
		p.Stat(estimate.Agg{
			X: o.X, Y: o.Y,
			Estimator: o.Estimator,
			ErrorBar:  o.ErrorBar,
			Boot:      o.Boot,
			Seed:      o.Seed,
		})
		if o.ErrorBar.Method != estimate.None {
			band := gg.LayerArea{X: o.X, Upper: "hi " + o.Y, Lower: "lo " + o.Y}
			if o.Hue != "" {
				scales.Fill(p, data, o.Hue)
				band.Fill = o.Hue
			} else {
				band.Fill = p.Const(color.Gray{208})
			}
			p.Add(band)
		}
	}

	if o.Hue != "" {
		scales.Hue(p, data, o.Hue)
	}
	p.Add(gg.LayerLines{X: o.X, Y: o.Y, Color: o.Hue})
}
