package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mjl-/duitseg"
)

type demoOptions struct {
	dimensions string
	font       string
}

func newDemoCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a window with tabs and a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dimensions, "dimensions", "800x600", "Initial window size")
	cmd.Flags().StringVar(&opts.font, "font", "", "Font, empty for the devdraw default")

	return cmd
}

// demoUI returns the UI for the demo window: a sidebar of views, one of which has a selection.
func demoUI(dui *duitseg.DUI, log zerolog.Logger) (*duitseg.Tabs, *duitseg.State[duitseg.UI]) {
	sizes := &duitseg.State[string]{}
	sizes.Insert("Small", "s")
	medium := sizes.Insert("Medium", "m")
	sizes.Insert("Large", "l")
	sizes.Activate(medium)

	sizeLabel := &duitseg.Label{Text: "size: m"}
	selection := duitseg.HorizontalSelection(sizes, func(k duitseg.Key) duitseg.Event {
		sizes.Activate(k)
		v, _ := sizes.ActiveData()
		sizeLabel.Text = "size: " + v
		dui.MarkLayout(sizeLabel)
		log.Info().Str("size", v).Msg("size changed")
		return duitseg.Event{Consumed: true, NeedDraw: true}
	})
	selection.Spacing = 4

	nested := &duitseg.State[duitseg.UI]{}
	first := nested.Insert("First", &duitseg.Label{Text: "first nested view"})
	nested.Insert("Second", &duitseg.Label{Text: "second nested view\nwith two lines"})
	nested.Activate(first)

	size := duitseg.NewStack(duitseg.Vertical{}, selection, sizeLabel)
	size.Margin = 8

	views := &duitseg.State[duitseg.UI]{}
	about := views.Insert("About", &duitseg.Label{Text: "Segmented buttons.\nClick a tab, or use the arrow keys."})
	views.Insert("Size", size)
	views.Insert("Nested", &duitseg.Tabs{Views: nested, Padding: duitseg.SpaceXY(4, 4)})
	views.Activate(about)

	tabs := &duitseg.Tabs{
		Views:   views,
		Variant: duitseg.Vertical{},
		Padding: duitseg.SpaceXY(8, 8),
		Changed: func(k duitseg.Key) duitseg.Event {
			label, _ := views.Label(k)
			log.Info().Str("view", label).Msg("view changed")
			return duitseg.Event{}
		},
	}
	return tabs, views
}

func runDemo(rootFlags *rootFlags, opts *demoOptions) error {
	log, closeLog, err := rootFlags.logger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := rootFlags.theme()
	if err != nil {
		return err
	}

	dui, err := duitseg.NewDUI("duitseg", &duitseg.DUIOpts{
		Dimensions: opts.dimensions,
		FontName:   opts.font,
		Theme:      theme,
		Log:        &log,
	})
	if err != nil {
		return fmt.Errorf("new dui: %w", err)
	}
	defer dui.Close()

	tabs, _ := demoUI(dui, log)
	dui.Top.UI = tabs
	dui.Render()

	for {
		select {
		case e := <-dui.Inputs:
			dui.Input(e)

		case err, ok := <-dui.Error:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("dui")
			return err

		case <-dui.Done:
			return nil
		}
	}
}
