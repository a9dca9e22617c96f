package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/batticon/pkg/annotate"
	"github.com/charlie0129/batticon/pkg/powerinfo"
)

var (
	logLevel   = "info"
	configPath = ""
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	// stdout carries the status line, so logs always go to stderr.
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(w io.Writer, err error) {
	if errors.Is(err, annotate.ErrInvalidPercentage) || errors.Is(err, annotate.ErrMissingPercentage) {
		fmt.Fprintln(w, "\nError: the battery block has no usable percentage")
		fmt.Fprintln(w, "  - Check the battery format_down/format_up in your i3status config, it must include the percentage placeholder")
		fmt.Fprintln(w, "  - Or run with '--on-invalid skip' to keep going")
	} else if errors.Is(err, powerinfo.ErrNoBattery) {
		fmt.Fprintln(w, "\nError: no battery found on this machine")
		fmt.Fprintln(w, "  - Pass a level explicitly, e.g. 'batticon icon 73'")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(os.Stderr, err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := NewAnnotateCommand()

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "config file path (optional)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewIconCommand(),
		NewTableCommand(),
		NewVersionCommand(),
	)

	return cmd
}
