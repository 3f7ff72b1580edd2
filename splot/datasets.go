// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"

	"github.com/statplot/statplot/dataset"
)

func datasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets [name]",
		Short: "list the sample datasets, or print one as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range dataset.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			t, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded dataset",
				"name", args[0], "rows", t.Len(), "columns", len(t.Columns()))
			return table.Fprint(cmd.OutOrStdout(), t)
		},
	}
}
