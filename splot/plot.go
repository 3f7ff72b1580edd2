// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/statplot/statplot/relational"
)

func plotCommand() *cobra.Command {
	var fig figure
	var specPath, out string
	var ascii bool

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "draw a line or scatter plot, optionally faceted",
		Long: `Plot draws y against x from a dataset or CSV file as SVG.

The hue, size, and style semantics split the data into subgroups. Line
plots aggregate repeated x values with an estimator and shade an error
interval behind each line. With --row or --col the plot is split into
a grid of panels.

All settings can instead come from a TOML figure file given to --spec;
flags set on the command line are ignored in that case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f := &fig
			if specPath != "" {
				var err error
				if f, err = readFigure(specPath); err != nil {
					return err
				}
			}
			data, err := f.Data.load()
			if err != nil {
				return err
			}
			logger.Debug("loaded data", "rows", data.Len())

			grid, err := relational.RelPlot(data, f.relOptions())
			if err != nil {
				return err
			}
			if f.XLabel != "" || f.YLabel != "" {
				grid.SetAxisLabels(f.XLabel, f.YLabel)
			}
			if f.Title != "" {
				grid.SetTitle(f.Title)
			}
			logger.Debug("built plot", "kind", f.Kind,
				"rows", grid.Rows(), "cols", grid.Cols())

			if ascii {
				return asciiPreview(cmd.OutOrStdout(), data, f)
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			if err := grid.WriteSVG(w); err != nil {
				return fmt.Errorf("rendering SVG: %w", err)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&fig.Data.Dataset, "data", "", "sample dataset to plot (see splot datasets)")
	fs.StringVar(&fig.Data.CSV, "csv", "", "CSV file to plot")
	fs.StringVar(&fig.Kind, "kind", "scatter", "plot kind: scatter or line")
	fs.StringVarP(&fig.X, "x", "x", "", "column drawn on the x axis")
	fs.StringVarP(&fig.Y, "y", "y", "", "column drawn on the y axis")
	fs.StringVar(&fig.Hue, "hue", "", "column mapped to color")
	fs.StringVar(&fig.Size, "size", "", "column mapped to point size")
	fs.StringVar(&fig.Style, "style", "", "column splitting the data into separate marks")
	fs.StringVar(&fig.Row, "row", "", "column faceted across panel rows")
	fs.StringVar(&fig.Col, "col", "", "column faceted across panel columns")
	fs.IntVar(&fig.Wrap, "wrap", 0, "wrap column facets into rows of this many panels")
	fs.BoolVar(&fig.FreeX, "free-x", false, "give each panel column its own x scale")
	fs.BoolVar(&fig.FreeY, "free-y", false, "give each panel row its own y scale")
	fs.StringVar(&fig.Estimator, "estimator", "", "line aggregation: mean, median, sum, min, max, count, or std")
	fs.StringVar(&fig.ErrorBar, "errorbar", "", "error interval: ci, pi, se, sd, or none")
	fs.Float64Var(&fig.Level, "level", 0, "interval level (percent for ci and pi, width for se and sd)")
	fs.IntVar(&fig.Boot, "boot", 0, "bootstrap resamples for ci")
	fs.Int64Var(&fig.Seed, "seed", 0, "bootstrap random seed")
	fs.BoolVar(&fig.NoAgg, "no-agg", false, "plot every observation instead of aggregating")
	fs.BoolVar(&fig.NoSort, "no-sort", false, "connect line points in data order instead of x order")
	fs.StringVar(&fig.Title, "title", "", "figure title")
	fs.StringVar(&fig.XLabel, "xlabel", "", "x axis label")
	fs.StringVar(&fig.YLabel, "ylabel", "", "y axis label")
	fs.IntVar(&fig.PanelWidth, "panel-width", 0, "panel width in pixels")
	fs.IntVar(&fig.PanelHeight, "panel-height", 0, "panel height in pixels")
	fs.StringVar(&specPath, "spec", "", "TOML figure file to render")
	fs.StringVarP(&out, "out", "o", "", "output SVG file (default standard output)")
	fs.BoolVar(&ascii, "ascii", false, "print a terminal preview instead of SVG")
	return cmd
}
