// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strconv"

	"github.com/H0llyW00dzZ/logfacade/src/config"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect logging configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [FILE]",
		Short: "Validate a configuration file and print the effective settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := config.Load(path)
			if err != nil {
				Logger().ErrorErr(err, "configuration {0} rejected", path)
				return err
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithRenderer(renderer.NewMarkdown()),
			)
			table.Header([]string{"Setting", "Value"})
			if err := table.Bulk([][]string{
				{"factory", cfg.Factory},
				{"verbose", strconv.FormatBool(cfg.Verbose)},
				{"output", cfg.Output},
				{"color", cfg.Color},
			}); err != nil {
				return err
			}
			return table.Render()
		},
	})
	return cmd
}
