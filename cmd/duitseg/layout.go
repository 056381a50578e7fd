package main

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mjl-/duitseg"
)

type layoutOptions struct {
	variant string
	width   int
	height  int
	spacing int
	padding string
	cell    string
}

func newLayoutCmd() *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout label ...",
		Short: "Print the rectangles of the entries of a segmented button",
		Long: `Print the rectangles of the entries of a segmented button with the given labels.

Text is measured in cells of fixed size, wide characters take two cells. With a width (or
height for vertical), entries share that space, otherwise they are as large as the largest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", "horizontal", "Direction of entries: horizontal or vertical")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Exact width, 0 for as wide as needed")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Exact height, 0 for as high as needed")
	cmd.Flags().IntVar(&opts.spacing, "spacing", 0, "Space between entries")
	cmd.Flags().StringVar(&opts.padding, "padding", "0x0", "Padding around labels, as XxY")
	cmd.Flags().StringVar(&opts.cell, "cell", "1x1", "Size of a character cell, as WxH")

	return cmd
}

// parseSize parses "WxH".
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return image.ZP, fmt.Errorf("bad size %q, need WxH", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return image.ZP, fmt.Errorf("bad width in %q: %w", s, err)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return image.ZP, fmt.Errorf("bad height in %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return image.ZP, fmt.Errorf("negative size %q", s)
	}
	return image.Pt(x, y), nil
}

func runLayout(cmd *cobra.Command, opts *layoutOptions, labels []string) error {
	v, err := parseVariant(opts.variant)
	if err != nil {
		return err
	}
	cell, err := parseSize(opts.cell)
	if err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	padding, err := parseSize(opts.padding)
	if err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	if opts.spacing < 0 {
		return fmt.Errorf("negative spacing %d", opts.spacing)
	}

	limits := duitseg.Limits{Max: image.Pt(math.MaxInt32, math.MaxInt32)}
	if opts.width > 0 {
		limits.Min.X, limits.Max.X = opts.width, opts.width
	}
	if opts.height > 0 {
		limits.Min.Y, limits.Max.Y = opts.height, opts.height
	}

	state := &duitseg.State[struct{}]{}
	for _, l := range labels {
		state.Insert(l, struct{}{})
	}
	metrics := duitseg.Metrics{Spacing: opts.spacing, Padding: padding}
	arr := duitseg.Arrange(state, v, duitseg.CellMeasurer{Cell: cell}, metrics, limits)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %dx%d\n", v, arr.Size.X, arr.Size.Y)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLABEL\tRECT")
	for i, k := range arr.Keys {
		label, _ := state.Label(k)
		fmt.Fprintf(tw, "%d\t%s\t%v\n", k, label, arr.Bounds[i])
	}
	return tw.Flush()
}
