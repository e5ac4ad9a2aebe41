// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/spf13/cobra"
)

func newLevelsCommand() *cobra.Command {
	var factory string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print which levels each standard factory emits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := []string{logger.FactoryNameNull, logger.FactoryNameVerbose, logger.FactoryNameWarning}
			if factory != "" {
				if _, err := logger.FactoryByName(factory); err != nil {
					return err
				}
				names = []string{factory}
			}
			return renderGatingMatrix(cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringVarP(&factory, "factory", "f", "", "show a single factory")
	return cmd
}

// renderGatingMatrix writes a markdown table with one row per level and one
// column per factory, each cell reading "emit" or "drop".
func renderGatingMatrix(w io.Writer, factories []string) error {
	loggers := make([]logger.Logger, len(factories))
	for i, name := range factories {
		f, err := logger.FactoryByName(name)
		if err != nil {
			return err
		}
		// Enabled never writes, so the standard factories are safe to probe.
		loggers[i] = f.GetLogger("probe")
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)

	headers := append([]string{"Level"}, factories...)
	table.Header(headers)

	var rows [][]string
	for _, level := range logger.Levels() {
		row := []string{level.String()}
		for _, l := range loggers {
			cell := "drop"
			if l.Enabled(level) {
				cell = "emit"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
