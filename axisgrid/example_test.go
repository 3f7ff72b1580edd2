// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisgrid_test

import (
	"fmt"
	"io"

	"github.com/statplot/statplot/axisgrid"
	"github.com/statplot/statplot/dataset"
)

// Pair every numeric penguin measurement against every other, with
// scatter panels off the diagonal, per-variable densities on it, and
// species mapped to color throughout.
func ExampleNewPairGrid() {
	data := dataset.Penguins()
	grid, err := axisgrid.NewPairGrid(data, axisgrid.PairOptions{Hue: "species"})
	if err != nil {
		fmt.Println(err)
		return
	}
	grid.Scatter().DiagDensity()
	fmt.Printf("%d x %d panels: %v\n", grid.Rows(), grid.Cols(), grid.WriteSVG(io.Discard))
	// Output: 4 x 4 panels: <nil>
}
