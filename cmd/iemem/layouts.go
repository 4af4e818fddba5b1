package main

import (
	"fmt"
	"strings"

	"iemem/layout"
	"iemem/report"

	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the builtin layout builds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := report.NewTable(
			report.ColumnSpec{Header: "Build"},
			report.ColumnSpec{Header: "Identities"},
			report.ColumnSpec{Header: "Entities", AlignRight: true},
			report.ColumnSpec{Header: "Area"},
			report.ColumnSpec{Header: "Description"},
		)
		for _, build := range layout.Builds() {
			l, err := layout.Builtin(build)
			if err != nil {
				return err
			}
			table.AddRow(
				l.Build,
				strings.Join(l.Identities, ","),
				fmt.Sprint(l.EntityList.Count),
				l.Sprite.CurrentArea.String(),
				l.Description,
			)
		}
		return table.Render(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
