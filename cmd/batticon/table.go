package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlie0129/batticon/pkg/icon"
)

func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "table",
		GroupID: gBasic,
		Short:   "Print the icon table",
		Long:    `Print the icon table. A level uses the icon of the highest row it reaches.`,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, bold("Battery icons:"))
			for _, th := range icon.Thresholds() {
				r := []rune(th.Glyph)[0]
				fmt.Fprintf(out, "  >= %3d%%  %s  U+%04X\n", th.Level, th.Glyph, r)
			}
		},
	}
}
