// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package relational draws plots that relate two data columns, with
// additional columns mapped to the hue, size, and style semantics.
//
// LinePlot aggregates the response at each x position and shades an
// error interval around the aggregate line. ScatterPlot draws raw
// observations. RelPlot dispatches to either and splits the plot into
// a facet grid on the row and col semantics.
package relational

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// A Mapping names the data columns bound to each semantic channel. X
// and Y are required by every plot; the rest are optional.
//
// Hue maps a column to stroke color. Size maps a column to mark size
// where the mark supports it (points); for lines it only partitions
// the data. Style partitions the data so each style level gets its
// own line or point run; the SVG mark set has no dash or shape
// channel, so when Hue is also set, style levels within a hue level
// share that level's color.
type Mapping struct {
	X, Y  string
	Hue   string
	Size  string
	Style string
}

// groupCols returns the distinct non-empty grouping columns of m.
func (m Mapping) groupCols() []string {
	var cols []string
	for _, c := range []string{m.Hue, m.Size, m.Style} {
		if c == "" {
			continue
		}
		dup := false
		for _, have := range cols {
			if have == c {
				dup = true
				break
			}
		}
		if !dup {
			cols = append(cols, c)
		}
	}
	return cols
}

// check verifies that every column m names exists in data, plus any
// extra column names given.
func (m Mapping) check(data table.Grouping, extra ...string) error {
	if m.X == "" || m.Y == "" {
		return fmt.Errorf("mapping requires both x and y columns")
	}
	want := append([]string{m.X, m.Y}, m.groupCols()...)
	want = append(want, extra...)
	have := make(map[string]bool)
	for _, c := range data.Columns() {
		have[c] = true
	}
	for _, c := range want {
		if c != "" && !have[c] {
			return fmt.Errorf("column %q not in data (have %v)", c, data.Columns())
		}
	}
	return nil
}
