// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"image/color"
	"testing"
)

func TestPaletteSizes(t *testing.T) {
	for _, pal := range []func(int) []color.Color{Qualitative, Dark, Pale, Sequential} {
		for _, n := range []int{1, 2, 6, 12} {
			if have := len(pal(n)); have != n {
				t.Errorf("palette of %d colors: have %d", n, have)
			}
		}
	}
}

func TestQualitativeDistinct(t *testing.T) {
	pal := Qualitative(8)
	seen := make(map[[4]uint32]int)
	for i, c := range pal {
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		if j, ok := seen[key]; ok {
			t.Errorf("colors %d and %d are identical: %v", j, i, c)
		}
		seen[key] = i
	}
}

func TestPaleLighter(t *testing.T) {
	// Pale fills must be lighter than their Qualitative strokes so
	// bands read as background.
	q := Qualitative(4)
	p := Pale(4)
	for i := range q {
		if lum(p[i]) <= lum(q[i]) {
			t.Errorf("color %d: pale %v not lighter than qualitative %v", i, p[i], q[i])
		}
	}
}

func TestDeterministic(t *testing.T) {
	a, b := Qualitative(6), Qualitative(6)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("color %d differs between calls: %v, %v", i, a[i], b[i])
		}
	}
}

func TestRanger(t *testing.T) {
	if Ranger(Qualitative(3)) == nil {
		t.Errorf("Ranger returned nil")
	}
}

func lum(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return r + g + b
}
