// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relational

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/internal/scales"
)

// ScatterOptions configures ScatterPlot.
type ScatterOptions struct {
	Mapping
}

// ScatterPlot draws each observation as a point, with hue mapped to
// point color and size to point area.
func ScatterPlot(data table.Grouping, o ScatterOptions) (*gg.Plot, error) {
	if err := o.check(data); err != nil {
		return nil, err
	}

	p := gg.NewPlot(data)
	scatterContent(p, data, o)
	return p, nil
}

// scatterContent adds the scatter layers to p. Any faceting must
// already be applied.
func scatterContent(p *gg.Plot, data table.Grouping, o ScatterOptions) {
	if cols := o.groupCols(); len(cols) > 0 {
		p.GroupBy(cols...)
	}
	if o.Hue != "" {
		scales.Hue(p, data, o.Hue)
	}
	p.Add(gg.LayerPoints{X: o.X, Y: o.Y, Color: o.Hue, Size: o.Size})
}
