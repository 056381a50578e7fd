package main

import (
	"image"
	"testing"

	"9fans.net/go/draw"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mjl-/duitseg"
)

func click(dui *duitseg.DUI, p image.Point) {
	down := draw.Mouse{Point: p, Buttons: duitseg.Button1}
	dui.Top.UI.Mouse(dui, &dui.Top, down, down, image.ZP)
	up := draw.Mouse{Point: p}
	dui.Top.UI.Mouse(dui, &dui.Top, up, down, image.ZP)
}

func TestDemoUI(t *testing.T) {
	t.Parallel()

	dui := &duitseg.DUI{TextMeasurer: duitseg.CellMeasurer{Cell: image.Pt(8, 16)}, Log: zerolog.Nop()}
	tabs, views := demoUI(dui, zerolog.Nop())
	dui.Top.UI = tabs
	size := image.Pt(800, 600)
	tabs.Layout(dui, &dui.Top, size, true)

	// Sidebar as high as the window, three entries sharing it.
	arr := tabs.Bar.Arrangement()
	require.Len(t, arr.Keys, 3)
	require.Equal(t, image.Rect(0, 0, 66, 200), arr.Bounds[0])
	require.Equal(t, image.Rect(0, 200, 66, 400), arr.Bounds[1])

	click(dui, image.Pt(30, 300))
	label, ok := views.Label(views.KeyAt(1))
	require.True(t, ok)
	require.Equal(t, "Size", label)
	require.True(t, views.IsActive(views.KeyAt(1)))
	require.Equal(t, duitseg.Dirty, dui.Top.Layout)

	tabs.Layout(dui, &dui.Top, size, true)
	view, ok := views.ActiveData()
	require.True(t, ok)
	stack, ok := view.(*duitseg.Stack)
	require.True(t, ok)

	// Choose "Small" in the selection at the top of the view.
	selection := stack.Kids[0].UI.(*duitseg.Segmented)
	sizeLabel := stack.Kids[1].UI.(*duitseg.Label)
	require.Equal(t, "size: m", sizeLabel.Text)
	viewOrigin := image.Pt(66, 0).Add(image.Pt(8, 8))
	click(dui, viewOrigin.Add(image.Pt(10, 10)))
	require.Equal(t, "size: s", sizeLabel.Text)
	require.Equal(t, duitseg.Dirty, stack.Kids[1].Layout)

	sizes := selection.Segments
	active, ok := sizes.Active()
	require.True(t, ok)
	require.Equal(t, sizes.KeyAt(0), active)
}
