package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjl-/duitseg"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Check or print themes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check file",
		Short: "Load and validate a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := duitseg.LoadTheme(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, theme %q\n", args[0], t.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "default",
		Short: "Print the default theme as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := duitseg.DefaultTheme().Marshal()
			if err != nil {
				return fmt.Errorf("marshal theme: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(buf)
			return err
		},
	})

	return cmd
}
