package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/batticon/pkg/annotate"
	"github.com/charlie0129/batticon/pkg/config"
)

var (
	target      = annotate.DefaultTarget
	debugOutput = false
	onInvalid   = string(annotate.PolicySkip)
)

// NewAnnotateCommand is the root command. It filters i3status output.
func NewAnnotateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batticon",
		Short: "batticon adds a battery icon to i3status output",
		Long: `batticon adds a battery icon to i3status output.

It reads status lines from stdin, each line being one complete JSON array of
blocks, prepends a Nerd Font battery glyph to the battery block and writes the
line back to stdout. Lines that are not a complete JSON document are dropped.

Only whole-array-per-line input is supported. The raw i3bar stream from
i3status opens with a bare "[" line and prefixes later status lines with ",",
so those lines are dropped as well. Put a step in front of batticon that
emits one bare array per line, and restore the i3bar framing after it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadAnnotateOptions(cmd)
			if err != nil {
				return err
			}

			a, err := annotate.New(opts)
			if err != nil {
				return err
			}

			stats, err := a.Run(cmd.InOrStdin(), cmd.OutOrStdout())
			logrus.WithFields(stats.LogrusFields()).Debug("input exhausted")
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&target, "target", annotate.DefaultTarget, "name of the block to annotate")
	f.BoolVar(&debugOutput, "debug-output", false, "print the label and level as plain lines before each annotated status line")
	f.StringVar(&onInvalid, "on-invalid", string(annotate.PolicySkip), "what to do when the percentage cannot be parsed (skip, drop, fail)")

	return cmd
}

// loadAnnotateOptions reads the config file and applies flags that were set
// explicitly on top of it.
func loadAnnotateOptions(cmd *cobra.Command) (annotate.Options, error) {
	f, err := config.NewFile(configPath)
	if err != nil {
		return annotate.Options{}, err
	}

	return applyFlags(cmd, f)
}

func applyFlags(cmd *cobra.Command, conf config.Config) (annotate.Options, error) {
	flags := cmd.Flags()
	if flags.Changed("target") {
		conf.SetTarget(target)
	}
	if flags.Changed("debug-output") {
		conf.SetDebugOutput(debugOutput)
	}
	if flags.Changed("on-invalid") {
		conf.SetOnInvalid(onInvalid)
	}

	logrus.WithFields(conf.LogrusFields()).Debug("config loaded")

	return config.AnnotateOptions(conf)
}
