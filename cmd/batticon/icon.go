package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/batticon/pkg/icon"
	"github.com/charlie0129/batticon/pkg/powerinfo"
)

var getBattery = powerinfo.GetBattery

func NewIconCommand() *cobra.Command {
	withLevel := false

	cmd := &cobra.Command{
		Use:     "icon [LEVEL]",
		GroupID: gBasic,
		Short:   "Print the battery icon for a level",
		Long: `Print the battery icon for a level.

LEVEL is a percentage, e.g. 73. Without LEVEL, the charge of this machine's
battery is used, which makes the command usable from i3blocks or similar
tools that run a script per block.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				level int
				state string
			)

			if len(args) == 1 {
				var err error
				level, err = parseIntArg(args, "level")
				if err != nil {
					return err
				}
			} else {
				bat, err := getBattery()
				if err != nil {
					return fmt.Errorf("failed to get battery info: %w", err)
				}
				level = bat.Level()
				state = bat.State.String()
				logrus.WithFields(logrus.Fields{
					"level":   level,
					"state":   state,
					"current": bat.Current,
					"full":    bat.Full,
				}).Debug("read host battery")
			}

			glyph, ok := icon.Lookup(level)
			if !ok {
				return fmt.Errorf("no icon for level %d", level)
			}

			if !withLevel {
				fmt.Fprintln(cmd.OutOrStdout(), glyph)
				return nil
			}

			out := glyph + " " + bold("%d%%", level)
			if state == "charging" {
				state = color.GreenString(state)
			}
			if state != "" {
				out += " " + state
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().BoolVar(&withLevel, "with-level", false, "also print the level and, for the host battery, its state")

	return cmd
}
