// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Splot draws statistical plots from tabular data.
//
// It renders line plots with aggregation and error bands, scatter
// plots with hue and size semantics, faceted panel grids, and
// pairwise variable matrices as SVG. Data comes from a CSV file or
// one of the built-in sample datasets.
//
// For example, to plot mean passengers per year with one line per
// month:
//
//	splot plot --data flights --kind line -x year -y passengers --hue month -o flights.svg
//
// A figure can also be described in a TOML file and rendered with
// --spec.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "splot:", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "splot",
		Short:         "splot draws statistical plots from tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.WarnLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(datasetsCommand())
	root.AddCommand(plotCommand())
	root.AddCommand(renderCommand())
	root.AddCommand(pairCommand())
	return root
}
