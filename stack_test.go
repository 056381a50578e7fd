package duitseg

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Parallel()

	t.Run("row", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		ui := NewStack(nil, &Label{Text: "ab"}, &Label{Text: "abcd\nx"})
		ui.Margin = 3
		ui.Padding = SpaceXY(1, 2)
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(400, 300), true)

		require.Equal(t, image.Rect(1, 2, 17, 18), ui.Kids[0].R)
		require.Equal(t, image.Rect(20, 2, 52, 34), ui.Kids[1].R)
		require.Equal(t, image.Rect(0, 0, 53, 36), self.R)
	})

	t.Run("column", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		s := &State[int]{}
		s.Insert("one", 1)
		sel := HorizontalSelection(s, Activator(s))
		ui := NewStack(Vertical{}, sel, &Label{Text: "below"})
		ui.Margin = 4
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(400, 300), true)

		require.Equal(t, image.Rect(0, 0, 42, 26), ui.Kids[0].R)
		require.Equal(t, image.Rect(0, 30, 40, 46), ui.Kids[1].R)
		require.Equal(t, image.Rect(0, 0, 42, 46), self.R)

		// Mouse events reach the selection, relative to it.
		click(dui, self, ui, image.Pt(10, 10))
		_, ok := s.Active()
		require.True(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		ui := &Stack{}
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(400, 300), true)
		require.Equal(t, image.Rectangle{}, self.R)
		require.Nil(t, ui.FirstFocus(dui, self))
	})
}
