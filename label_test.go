package duitseg

import (
	"image"
	"testing"

	"9fans.net/go/draw"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	dui := headless()
	clicks := 0
	ui := &Label{
		Text: "one\nthree\n",
		Click: func() Event {
			clicks++
			return Event{Consumed: true, NeedDraw: true}
		},
	}
	self := &Kid{UI: ui}
	ui.Layout(dui, self, image.Pt(400, 300), true)
	// A trailing newline gives an empty last line.
	require.Equal(t, image.Rect(0, 0, 40, 48), self.R)

	self.Draw = Clean
	r := ui.Mouse(dui, self, mouse(image.Pt(1, 1), Button1), mouse(image.Pt(1, 1), Button1), image.ZP)
	require.True(t, r.Consumed)
	require.Equal(t, 1, clicks)
	require.Equal(t, Dirty, self.Draw)

	// Held button is not another click.
	ui.Mouse(dui, self, mouse(image.Pt(2, 1), Button1), mouse(image.Pt(1, 1), Button1), image.ZP)
	require.Equal(t, 1, clicks)

	r = ui.Key(dui, self, '\n', draw.Mouse{}, image.ZP)
	require.True(t, r.Consumed)
	require.Equal(t, 2, clicks)

	require.Nil(t, ui.FirstFocus(dui, self))
	require.NotNil(t, ui.Focus(dui, self, ui))
}
