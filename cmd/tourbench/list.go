// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/dataset"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return a.fail(err)
			}
			names, err := dataset.List(cfg.DatasetDir)
			if err != nil {
				return a.fail(err)
			}
			if len(names) == 0 {
				fmt.Fprintf(a.out, "No datasets in %s.\n", cfg.DatasetDir)
				return nil
			}
			fmt.Fprintln(a.out, "Available datasets:")
			for i, name := range names {
				fmt.Fprintf(a.out, "%d. %s\n", i+1, name)
			}

			return nil
		},
	}
}
