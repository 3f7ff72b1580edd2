// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales wires palettes to gg scales for the semantic
// channels shared by the plotting packages.
package scales

import (
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/statplot/statplot/palettes"
)

// Levels returns the number of distinct values in the named column.
func Levels(data table.Grouping, col string) int {
	return len(table.GroupBy(data, col).Tables())
}

// Hue binds an ordinal qualitative color scale to the stroke
// aesthetic, sized to the number of levels of col in data.
func Hue(p *gg.Plot, data table.Grouping, col string) {
	s := gg.NewOrdinalScale()
	s.Ranger(palettes.Ranger(palettes.Qualitative(Levels(data, col))))
	p.SetScale("stroke", s)
}

// Fill binds an ordinal pale color scale to the fill aesthetic. It is
// the band-fill companion of Hue: level i of the fill scale is a pale
// variant of level i of the stroke scale.
func Fill(p *gg.Plot, data table.Grouping, col string) {
	s := gg.NewOrdinalScale()
	s.Ranger(palettes.Ranger(palettes.Pale(Levels(data, col))))
	p.SetScale("fill", s)
}
