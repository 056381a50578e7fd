package duitseg

import (
	"image"
	"testing"

	"9fans.net/go/draw"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// headless returns a DUI without display, measuring text in 8x16 cells.
func headless() *DUI {
	return &DUI{TextMeasurer: CellMeasurer{Cell: image.Pt(8, 16)}, Log: zerolog.Nop()}
}

type activations struct {
	keys []Key
}

func (a *activations) activate(k Key) Event {
	a.keys = append(a.keys, k)
	return Event{Consumed: true, NeedDraw: true}
}

func newSegmented(t *testing.T, v Variant) (*State[string], []Key, *Segmented, *activations) {
	t.Helper()
	s := &State[string]{}
	keys := []Key{s.Insert("A", "a"), s.Insert("BB", "b"), s.Insert("CCC", "c")}
	s.Activate(keys[0])
	acts := &activations{}
	ui := &Segmented{Segments: s, Variant: v, Activate: acts.activate}
	return s, keys, ui, acts
}

func mouse(p image.Point, buttons int) draw.Mouse {
	return draw.Mouse{Point: p, Buttons: buttons}
}

func click(dui *DUI, self *Kid, ui UI, p image.Point) Result {
	down := mouse(p, Button1)
	ui.Mouse(dui, self, down, down, image.ZP)
	return ui.Mouse(dui, self, mouse(p, 0), down, image.ZP)
}

func TestSegmentedLayout(t *testing.T) {
	t.Parallel()

	t.Run("horizontal", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, keys, ui, _ := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		// Widest label 3 cells, padding from font height: 8 by 4, border 1.
		require.Equal(t, image.Rect(0, 0, 126, 26), self.R)
		a := ui.Arrangement()
		require.Equal(t, keys, a.Keys)
		require.Equal(t, []image.Rectangle{
			image.Rect(0, 0, 42, 26),
			image.Rect(42, 0, 84, 26),
			image.Rect(84, 0, 126, 26),
		}, a.Bounds)
	})

	t.Run("vertical with spacing", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, _ := newSegmented(t, Vertical{})
		ui.Spacing = 2
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		require.Equal(t, image.Rect(0, 0, 42, 3*26+2*2), self.R)
		require.Equal(t, image.Rect(0, 56, 42, 82), ui.Arrangement().Bounds[2])
	})

	t.Run("full width", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, _ := newSegmented(t, Horizontal{})
		ui.Width = -1
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(300, 600), true)
		require.Equal(t, image.Rect(0, 0, 300, 26), self.R)
		require.Equal(t, image.Rect(200, 0, 300, 26), ui.Arrangement().Bounds[2])
	})

	t.Run("fixed size", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, _ := newSegmented(t, Horizontal{})
		ui.Width = 150
		ui.Height = 40
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(100, 600), true)
		// Width capped by what is available.
		require.Equal(t, image.Rect(0, 0, 100, 40), self.R)
	})

	t.Run("padding and theme", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		dui.Theme = DefaultTheme()
		dui.Theme.Spacing = 3
		_, _, ui, _ := newSegmented(t, Horizontal{})
		ui.Padding = image.Pt(2, 1)
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		// 24+4+2 by 16+2+2, with theme spacing.
		require.Equal(t, image.Rect(0, 0, 3*30+2*3, 20), self.R)
	})

	t.Run("no segments", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		ui := &Segmented{}
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		require.Equal(t, image.Rectangle{}, self.R)
		require.Nil(t, ui.FirstFocus(dui, self))
	})
}

func TestSegmentedLayoutIgnoresActive(t *testing.T) {
	t.Parallel()

	for _, v := range []Variant{Horizontal{}, Vertical{}} {
		dui := headless()
		s, keys, ui, _ := newSegmented(t, v)
		self := &Kid{UI: ui}

		s.Deactivate()
		ui.Layout(dui, self, image.Pt(800, 600), true)
		want, wantR := ui.Arrangement(), self.R

		for _, k := range append(keys, 0) {
			if k == 0 {
				s.Deactivate()
			} else {
				s.Activate(k)
			}
			ui.Layout(dui, self, image.Pt(800, 600), true)
			require.Equal(t, wantR, self.R, "%s, active %d", v, k)
			require.Equal(t, want.Size, ui.Arrangement().Size)
			require.Equal(t, want.Bounds, ui.Arrangement().Bounds)
		}
	}
}

func TestSegmentedMouse(t *testing.T) {
	t.Parallel()

	t.Run("click emits, does not activate", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		s, keys, ui, acts := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		self.Draw = Clean

		r := click(dui, self, ui, image.Pt(50, 10))
		require.True(t, r.Consumed)
		require.Equal(t, []Key{keys[1]}, acts.keys)
		require.True(t, s.IsActive(keys[0]))
		require.Equal(t, Dirty, self.Draw)
	})

	t.Run("press and release on different entries", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, acts := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		down := mouse(image.Pt(10, 10), Button1)
		ui.Mouse(dui, self, down, down, image.ZP)
		ui.Mouse(dui, self, mouse(image.Pt(100, 10), Button1), down, image.ZP)
		ui.Mouse(dui, self, mouse(image.Pt(100, 10), 0), down, image.ZP)
		require.Empty(t, acts.keys)
	})

	t.Run("hover", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, keys, ui, _ := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		self.Draw = Clean

		r := ui.Mouse(dui, self, mouse(image.Pt(100, 10), 0), mouse(image.Pt(100, 10), 0), image.ZP)
		require.Equal(t, ui, r.Hit)
		require.Equal(t, keys[2], ui.hover)
		require.Equal(t, Dirty, self.Draw)

		// Same entry, no redraw.
		self.Draw = Clean
		ui.Mouse(dui, self, mouse(image.Pt(101, 11), 0), mouse(image.Pt(101, 11), 0), image.ZP)
		require.Equal(t, Clean, self.Draw)
	})

	t.Run("hover ends when the mouse moves to a sibling", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, keys, seg, _ := newSegmented(t, Horizontal{})
		label := &Label{Text: "below"}
		stack := NewStack(Vertical{}, seg, label)
		self := &Kid{UI: stack}
		stack.Layout(dui, self, image.Pt(800, 600), true)
		require.Equal(t, image.Rect(0, 26, 40, 42), stack.Kids[1].R)

		over := mouse(image.Pt(50, 10), 0)
		stack.Mouse(dui, self, over, over, image.ZP)
		require.Equal(t, keys[1], seg.hover)

		// Only the label sees this event.
		below := mouse(image.Pt(5, 30), 0)
		r := stack.Mouse(dui, self, below, below, image.ZP)
		require.Equal(t, label, r.Hit)

		// Drawing uses the mouse at draw time, relative to the selection.
		require.Zero(t, seg.hoverAt(mouse(below.Point.Sub(stack.Kids[0].R.Min), 0)))
		require.Zero(t, seg.hover)

		// Coming back to the same entry needs a redraw again.
		stack.Kids[0].Draw = Clean
		stack.Mouse(dui, self, over, over, image.ZP)
		require.Equal(t, keys[1], seg.hover)
		require.Equal(t, Dirty, stack.Kids[0].Draw)
	})

	t.Run("no hover when disabled", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, _ := newSegmented(t, Horizontal{})
		ui.Disabled = true
		ui.Layout(dui, &Kid{UI: ui}, image.Pt(800, 600), true)
		require.Zero(t, ui.hoverAt(mouse(image.Pt(50, 10), 0)))
	})

	t.Run("activator", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		s := &State[int]{}
		s.Insert("one", 1)
		two := s.Insert("two", 2)
		ui := HorizontalSelection(s, Activator(s))
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		click(dui, self, ui, ui.Arrangement().Bounds[1].Min.Add(image.Pt(1, 1)))
		data, ok := s.ActiveData()
		require.True(t, ok)
		require.Equal(t, 2, data)
		require.True(t, s.IsActive(two))
	})

	t.Run("stale key", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		s := &State[int]{}
		one := s.Insert("one", 1)
		two := s.Insert("two", 2)
		s.Activate(one)
		var got []Key
		ui := HorizontalViewSwitcher(s, func(k Key) Event {
			got = append(got, k)
			return Activator(s)(k)
		})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		// Removed after layout, before the click is handled.
		s.Remove(two)
		click(dui, self, ui, ui.Arrangement().Bounds[1].Min.Add(image.Pt(1, 1)))
		require.Equal(t, []Key{two}, got)
		require.True(t, s.IsActive(one))

		// The next layout forgets the removed entry.
		ui.Layout(dui, self, image.Pt(800, 600), true)
		require.Equal(t, []Key{one}, ui.Arrangement().Keys)
		require.Zero(t, ui.hover)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, acts := newSegmented(t, Horizontal{})
		ui.Disabled = true
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		r := click(dui, self, ui, image.Pt(50, 10))
		require.False(t, r.Consumed)
		require.Empty(t, acts.keys)
		require.Nil(t, ui.FirstFocus(dui, self))

		r = ui.Key(dui, self, draw.KeyRight, mouse(image.Pt(50, 10), 0), image.ZP)
		require.False(t, r.Consumed)
		require.Empty(t, acts.keys)
	})
}

func TestSegmentedLabelAt(t *testing.T) {
	t.Parallel()

	dui := headless()
	_, _, ui, _ := newSegmented(t, Horizontal{})
	ui.Layout(dui, &Kid{UI: ui}, image.Pt(800, 600), true)
	r := ui.Arrangement().Bounds[1]

	// Centered in the entry, measured like the layout.
	require.Equal(t, image.Pt(55, 5), ui.labelAt(dui.measurer(nil), r, "BB"))
	require.Equal(t, image.Pt(53, 5), ui.labelAt(CellMeasurer{Cell: image.Pt(10, 20)}, r, "BB"))

	// Too wide for the entry, starts after padding and border.
	require.Equal(t, image.Pt(9, 5), ui.labelAt(dui.measurer(nil), image.Rect(0, 0, 20, 26), "CCC"))
}

func TestSegmentedKey(t *testing.T) {
	t.Parallel()

	t.Run("horizontal arrows", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		s, keys, ui, acts := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		m := mouse(image.Pt(10, 10), 0)

		r := ui.Key(dui, self, draw.KeyRight, m, image.ZP)
		require.True(t, r.Consumed)
		require.Equal(t, []Key{keys[1]}, acts.keys)
		require.True(t, s.IsActive(keys[0]))

		// At the first entry already: consumed, nothing to activate.
		r = ui.Key(dui, self, draw.KeyLeft, m, image.ZP)
		require.True(t, r.Consumed)
		require.Len(t, acts.keys, 1)

		// Not for this direction.
		r = ui.Key(dui, self, draw.KeyDown, m, image.ZP)
		require.False(t, r.Consumed)
		require.Len(t, acts.keys, 1)
	})

	t.Run("vertical arrows", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		s, keys, ui, acts := newSegmented(t, Vertical{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)
		s.Activate(keys[2])

		ui.Key(dui, self, draw.KeyUp, mouse(image.ZP, 0), image.ZP)
		require.Equal(t, []Key{keys[1]}, acts.keys)

		r := ui.Key(dui, self, draw.KeyRight, mouse(image.ZP, 0), image.ZP)
		require.False(t, r.Consumed)
	})

	t.Run("space under mouse", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, keys, ui, acts := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		ui.Key(dui, self, ' ', mouse(image.Pt(100, 10), 0), image.ZP)
		ui.Key(dui, self, '\n', mouse(image.Pt(50, 10), 0), image.ZP)
		require.Equal(t, []Key{keys[2], keys[1]}, acts.keys)
	})

	t.Run("tab", func(t *testing.T) {
		t.Parallel()
		dui := headless()
		_, _, ui, _ := newSegmented(t, Horizontal{})
		self := &Kid{UI: ui}
		ui.Layout(dui, self, image.Pt(800, 600), true)

		orig := image.Pt(5, 5)
		r := ui.Key(dui, self, '\t', mouse(image.Pt(10, 10), 0), orig)
		require.True(t, r.Consumed)
		require.NotNil(t, r.Warp)
		require.Equal(t, image.Pt(42+8, 4).Add(orig), *r.Warp)

		// From the last entry, focus moves on to the parent.
		r = ui.Key(dui, self, '\t', mouse(image.Pt(100, 10), 0), orig)
		require.False(t, r.Consumed)
		require.Nil(t, r.Warp)
	})
}

func TestSegmentedFocus(t *testing.T) {
	t.Parallel()

	dui := headless()
	s, keys, ui, _ := newSegmented(t, Horizontal{})
	self := &Kid{UI: ui}
	ui.Layout(dui, self, image.Pt(800, 600), true)

	first := ui.FirstFocus(dui, self)
	require.NotNil(t, first)
	require.Equal(t, image.Pt(8, 4), *first)

	s.Activate(keys[2])
	p := ui.Focus(dui, self, ui)
	require.NotNil(t, p)
	require.Equal(t, image.Pt(84+8, 4), *p)

	require.Nil(t, ui.Focus(dui, self, &Label{}))
	require.True(t, ui.Mark(self, ui, true))
	require.Equal(t, Dirty, self.Layout)
}

func TestSelectionConstructors(t *testing.T) {
	t.Parallel()

	s := &State[struct{}]{}
	for _, tt := range []struct {
		ui      *Segmented
		variant Variant
		style   Style
	}{
		{HorizontalSelection(s, nil), Horizontal{}, StyleSelection},
		{VerticalSelection(s, nil), Vertical{}, StyleSelection},
		{HorizontalViewSwitcher(s, nil), Horizontal{}, StyleViewSwitcher},
		{VerticalViewSwitcher(s, nil), Vertical{}, StyleViewSwitcher},
	} {
		require.Equal(t, tt.variant, tt.ui.Variant)
		require.Equal(t, tt.style, tt.ui.Style)
		require.Equal(t, Segments(s), tt.ui.Segments)
	}
}
