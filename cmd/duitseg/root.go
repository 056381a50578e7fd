package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mjl-/duitseg"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	logFile   string
	themePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "duitseg",
		Short:         "Segmented buttons for duit, in a window or a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to file instead of stderr")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Theme file, YAML")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newTermCmd(flags))
	cmd.AddCommand(newLayoutCmd())
	cmd.AddCommand(newThemeCmd())

	return cmd
}

// logger returns a logger writing to w, or to the log file if set.
// The returned close function must be called when done.
func (f *rootFlags) logger(w io.Writer) (zerolog.Logger, func() error, error) {
	nop := func() error { return nil }
	level, err := zerolog.ParseLevel(strings.ToLower(f.logLevel))
	if err != nil {
		return zerolog.Nop(), nop, fmt.Errorf("parse log level: %w", err)
	}

	closer := nop
	if f.logFile != "" {
		fp, err := os.OpenFile(f.logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nop, fmt.Errorf("open log file: %w", err)
		}
		w = fp
		closer = fp.Close
	}

	var out io.Writer
	switch f.logFormat {
	case "json":
		out = w
	case "console":
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		console.NoColor = f.logFile != ""
		out = console
	default:
		closer()
		return zerolog.Nop(), nop, fmt.Errorf("unknown log format %q, need console or json", f.logFormat)
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}

// theme returns the theme from the theme flag, or the default theme.
func (f *rootFlags) theme() (*duitseg.Theme, error) {
	if f.themePath == "" {
		return duitseg.DefaultTheme(), nil
	}
	return duitseg.LoadTheme(f.themePath)
}

func parseVariant(s string) (duitseg.Variant, error) {
	v, ok := duitseg.ParseVariant(s)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q, need horizontal or vertical", s)
	}
	return v, nil
}
