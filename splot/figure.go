// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/dataset"
	"github.com/statplot/statplot/estimate"
	"github.com/statplot/statplot/relational"
)

// A figure describes one plot. It is filled in either from command
// line flags or from a TOML file given to --spec, which looks like:
//
//	kind = "line"
//	x = "timepoint"
//	y = "signal"
//	hue = "event"
//	col = "region"
//	errorbar = "se"
//	title = "fMRI response by region"
//
//	[data]
//	dataset = "fmri"
type figure struct {
	Data dataSpec `toml:"data"`

	Kind  string `toml:"kind"`
	X     string `toml:"x"`
	Y     string `toml:"y"`
	Hue   string `toml:"hue"`
	Size  string `toml:"size"`
	Style string `toml:"style"`

	Row   string `toml:"row"`
	Col   string `toml:"col"`
	Wrap  int    `toml:"wrap"`
	FreeX bool   `toml:"free_x"`
	FreeY bool   `toml:"free_y"`

	Estimator string  `toml:"estimator"`
	ErrorBar  string  `toml:"errorbar"`
	Level     float64 `toml:"level"`
	Boot      int     `toml:"boot"`
	Seed      int64   `toml:"seed"`
	NoAgg     bool    `toml:"no_agg"`
	NoSort    bool    `toml:"no_sort"`

	Title       string `toml:"title"`
	XLabel      string `toml:"xlabel"`
	YLabel      string `toml:"ylabel"`
	PanelWidth  int    `toml:"panel_width"`
	PanelHeight int    `toml:"panel_height"`
}

type dataSpec struct {
	// Dataset names a built-in sample dataset.
	Dataset string `toml:"dataset"`

	// CSV is the path of a CSV file with a header row.
	CSV string `toml:"csv"`
}

func readFigure(path string) (*figure, error) {
	var fig figure
	meta, err := toml.DecodeFile(path, &fig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if un := meta.Undecoded(); len(un) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, un[0].String())
	}
	return &fig, nil
}

func (d dataSpec) load() (*table.Table, error) {
	switch {
	case d.Dataset != "" && d.CSV != "":
		return nil, fmt.Errorf("give a dataset or a CSV file, not both")
	case d.Dataset != "":
		return dataset.Load(d.Dataset)
	case d.CSV != "":
		return dataset.Open(d.CSV)
	}
	return nil, fmt.Errorf("no data source: give --data or --csv")
}

func (f *figure) relOptions() relational.RelOptions {
	return relational.RelOptions{
		Mapping: relational.Mapping{
			X: f.X, Y: f.Y,
			Hue: f.Hue, Size: f.Size, Style: f.Style,
		},
		Kind:        relational.Kind(f.Kind),
		Row:         f.Row,
		Col:         f.Col,
		ColWrap:     f.Wrap,
		FreeX:       f.FreeX,
		FreeY:       f.FreeY,
		PanelWidth:  f.PanelWidth,
		PanelHeight: f.PanelHeight,
		Estimator:   estimate.Estimator(f.Estimator),
		ErrorBar: estimate.ErrorBar{
			Method: estimate.ErrorMethod(f.ErrorBar),
			Level:  f.Level,
		},
		Boot:   f.Boot,
		Seed:   f.Seed,
		NoAgg:  f.NoAgg,
		NoSort: f.NoSort,
	}
}
