// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statplot/statplot/axisgrid"
)

func pairCommand() *cobra.Command {
	var data dataSpec
	var vars, hue, title, out string
	var corner bool
	var panelSize int

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "draw a pairwise matrix of variable relationships",
		Long: `Pair draws every pairing of the numeric columns as a grid of
panels, with scatter plots off the diagonal and each variable's
density estimate on it. By default all numeric columns are paired;
--vars selects a subset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := data.load()
			if err != nil {
				return err
			}
			o := axisgrid.PairOptions{
				Hue:       hue,
				Corner:    corner,
				PanelSize: panelSize,
			}
			if vars != "" {
				o.Vars = strings.Split(vars, ",")
			}
			grid, err := axisgrid.NewPairGrid(t, o)
			if err != nil {
				return err
			}
			grid.Scatter().DiagDensity()
			if title != "" {
				grid.SetTitle(title)
			}
			loggerFromContext(cmd.Context()).Debug("built pair grid",
				"rows", grid.Rows(), "cols", grid.Cols())

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return grid.WriteSVG(w)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&data.Dataset, "data", "", "sample dataset to plot (see splot datasets)")
	fs.StringVar(&data.CSV, "csv", "", "CSV file to plot")
	fs.StringVar(&vars, "vars", "", "comma-separated columns to pair (default all numeric)")
	fs.StringVar(&hue, "hue", "", "column mapped to color")
	fs.BoolVar(&corner, "corner", false, "draw the lower triangle and diagonal only")
	fs.IntVar(&panelSize, "panel-size", 0, "panel size in pixels")
	fs.StringVar(&title, "title", "", "figure title")
	fs.StringVarP(&out, "out", "o", "", "output SVG file (default standard output)")
	return cmd
}
