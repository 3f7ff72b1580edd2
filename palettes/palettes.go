// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes generates color palettes for mapping categorical
// data to the hue channel. Palettes are built in HCL space so levels
// are evenly spaced perceptually, and are deterministic for a given
// size.
package palettes

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// hue0 offsets the first hue away from pure red, which reads as an
// alert color in most contexts.
const hue0 = 15.0

// Qualitative returns n maximally distinct hues at medium chroma and
// lightness, suitable for line and point strokes.
func Qualitative(n int) []color.Color {
	return hueCircle(n, 0.55, 0.55)
}

// Dark returns the darker companion of Qualitative, suitable for text
// and emphasis marks.
func Dark(n int) []color.Color {
	return hueCircle(n, 0.5, 0.35)
}

// Pale returns the lighter companion of Qualitative, suitable for
// fills such as error bands behind their stroke-colored lines.
func Pale(n int) []color.Color {
	return hueCircle(n, 0.25, 0.85)
}

// Sequential returns an n-step light-to-dark ramp of a single hue,
// suitable for ordered categories.
func Sequential(n int) []color.Color {
	pal := make([]color.Color, n)
	for i := range pal {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		pal[i] = colorful.Hcl(266, 0.2+0.4*frac, 0.9-0.55*frac).Clamped()
	}
	return pal
}

// Ranger wraps a palette as a discrete range for a gg ordinal scale.
func Ranger(pal []color.Color) gg.DiscreteRanger {
	return gg.NewColorRanger(pal)
}

func hueCircle(n int, chroma, lightness float64) []color.Color {
	pal := make([]color.Color, n)
	for i := range pal {
		h := hue0 + 360*float64(i)/float64(max(n, 1))
		pal[i] = colorful.Hcl(h, chroma, lightness).Clamped()
	}
	return pal
}
