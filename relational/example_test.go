// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relational_test

import (
	"fmt"
	"io"

	"github.com/statplot/statplot/dataset"
	"github.com/statplot/statplot/estimate"
	"github.com/statplot/statplot/relational"
)

// Aggregate a repeated-measures timecourse into one line per event
// type, with a standard error band shaded behind each line.
func ExampleLinePlot() {
	data := dataset.FMRI()
	p, err := relational.LinePlot(data, relational.LineOptions{
		Mapping:  relational.Mapping{X: "timepoint", Y: "signal", Hue: "event"},
		ErrorBar: estimate.ErrorBar{Method: estimate.SE},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.WriteSVG(io.Discard, 600, 400))
	// Output: <nil>
}

// Split the same plot into one panel per brain region.
func ExampleRelPlot() {
	data := dataset.FMRI()
	grid, err := relational.RelPlot(data, relational.RelOptions{
		Mapping:  relational.Mapping{X: "timepoint", Y: "signal", Hue: "event"},
		Kind:     relational.KindLine,
		Col:      "region",
		ErrorBar: estimate.ErrorBar{Method: estimate.SE},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d x %d panels\n", grid.Rows(), grid.Cols())
	// Output: 1 x 2 panels
}

// Draw raw observations with hue and size semantics.
func ExampleScatterPlot() {
	data := dataset.Penguins()
	p, err := relational.ScatterPlot(data, relational.ScatterOptions{
		Mapping: relational.Mapping{
			X: "bill_length_mm", Y: "bill_depth_mm",
			Hue:  "species",
			Size: "body_mass_g",
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.WriteSVG(io.Discard, 600, 400))
	// Output: <nil>
}
