// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/statplot/statplot/estimate"
	"github.com/statplot/statplot/plot"
)

func renderCommand() *cobra.Command {
	var data dataSpec
	var x, y, row, col, pairCols, title, xlabel, ylabel, out string
	var adds []string
	var wrap, width, height int
	var logx, logy bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "compose a plot from layer expressions",
		Long: `Render builds a plot layer by layer. Each --add flag gives one
layer as a mark name followed by key=value settings:

	splot render --data flights -x year -y passengers \
	    --add "band agg=mean errorbar=ci ymin='lo passengers' ymax='hi passengers'" \
	    --add "line agg=mean color=month" -o flights.svg

Marks are line, dot, area, band, and steps. Keys x, y, color, fill,
size, ymin, and ymax bind columns for that layer; agg and errorbar
aggregate the layer like a line plot; jitter=WIDTH displaces x values;
flip swaps the axes. Values with spaces need quotes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if len(adds) == 0 {
				return fmt.Errorf("no layers: give at least one --add")
			}
			t, err := data.load()
			if err != nil {
				return err
			}

			p := plot.New(t)
			if x != "" {
				p = p.Assign("x", x)
			}
			if y != "" {
				p = p.Assign("y", y)
			}
			switch {
			case pairCols != "":
				vars := strings.Split(pairCols, ",")
				p = p.Pair(vars, vars)
			case wrap > 0:
				p = p.FacetWrap(col, wrap)
			case row != "" || col != "":
				p = p.Facet(col, row)
			}
			if logx {
				p = p.LogScale("x")
			}
			if logy {
				p = p.LogScale("y")
			}
			if title != "" {
				p = p.Title(title)
			}
			if xlabel != "" {
				p = p.Label("x", xlabel)
			}
			if ylabel != "" {
				p = p.Label("y", ylabel)
			}
			if width > 0 || height > 0 {
				p = p.Configure(width, height)
			}

			for _, expr := range adds {
				if p, err = addLayer(p, expr, x, y); err != nil {
					return err
				}
			}
			logger.Debug("composed plot", "layers", len(adds))

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return p.WriteSVG(w)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&data.Dataset, "data", "", "sample dataset to plot (see splot datasets)")
	fs.StringVar(&data.CSV, "csv", "", "CSV file to plot")
	fs.StringVarP(&x, "x", "x", "", "default column for the x axis")
	fs.StringVarP(&y, "y", "y", "", "default column for the y axis")
	fs.StringArrayVar(&adds, "add", nil, "layer expression (repeatable)")
	fs.StringVar(&row, "row", "", "column faceted across panel rows")
	fs.StringVar(&col, "col", "", "column faceted across panel columns")
	fs.IntVar(&wrap, "wrap", 0, "wrap column facets into rows of this many panels")
	fs.StringVar(&pairCols, "pair", "", "comma-separated columns drawn as a pairwise matrix")
	fs.BoolVar(&logx, "logx", false, "draw the x axis in log10")
	fs.BoolVar(&logy, "logy", false, "draw the y axis in log10")
	fs.StringVar(&title, "title", "", "figure title")
	fs.StringVar(&xlabel, "xlabel", "", "x axis label")
	fs.StringVar(&ylabel, "ylabel", "", "y axis label")
	fs.IntVar(&width, "width", 0, "figure width in pixels")
	fs.IntVar(&height, "height", 0, "figure height in pixels")
	fs.StringVarP(&out, "out", "o", "", "output SVG file (default standard output)")
	return cmd
}

var markNames = map[string]plot.Mark{
	"line":  plot.Line{},
	"dot":   plot.Dot{},
	"area":  plot.Area{},
	"band":  plot.Band{},
	"steps": plot.Steps{},
}

// addLayer parses one --add expression and appends the layer to p.
// defX and defY are the command-level axis columns, used by agg when
// the expression doesn't rebind them.
func addLayer(p *plot.Plot, expr, defX, defY string) (*plot.Plot, error) {
	words, err := shellquote.Split(expr)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", expr, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty layer expression")
	}
	mark, ok := markNames[words[0]]
	if !ok {
		return nil, fmt.Errorf("unknown mark %q", words[0])
	}

	var opts []plot.LayerOption
	agg := estimate.Agg{X: defX, Y: defY}
	hasAgg := false
	for _, word := range words[1:] {
		if word == "flip" {
			opts = append(opts, plot.FlipOrient())
			continue
		}
		key, val, ok := strings.Cut(word, "=")
		if !ok {
			return nil, fmt.Errorf("layer %q: %q is not key=value", expr, word)
		}
		switch key {
		case "x":
			agg.X = val
			opts = append(opts, plot.By(key, val))
		case "y":
			agg.Y = val
			opts = append(opts, plot.By(key, val))
		case "color", "fill", "size", "ymin", "ymax":
			opts = append(opts, plot.By(key, val))
		case "agg":
			agg.Estimator = estimate.Estimator(val)
			hasAgg = true
		case "errorbar":
			agg.ErrorBar.Method = estimate.ErrorMethod(val)
			hasAgg = true
		case "level":
			if agg.ErrorBar.Level, err = strconv.ParseFloat(val, 64); err != nil {
				return nil, fmt.Errorf("layer %q: bad level %q", expr, val)
			}
		case "jitter":
			width, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("layer %q: bad jitter width %q", expr, val)
			}
			opts = append(opts, plot.Jitter(width, 0))
		default:
			return nil, fmt.Errorf("layer %q: unknown key %q", expr, key)
		}
	}
	if hasAgg {
		if agg.X == "" || agg.Y == "" {
			return nil, fmt.Errorf("layer %q: agg needs x and y columns", expr)
		}
		opts = append(opts, plot.With(agg))
	}
	return p.Add(mark, opts...), nil
}
