package duitseg

import (
	"image"
	"slices"

	"9fans.net/go/draw"
)

// Segmented is a segmented button: a row or column of entries of the same size, of which at most one is active.
// Use it for tab bars, view switchers and choosing one of a few options.
// The entries come from Segments, typically a *State owned by the application.
//
// Segmented never changes its Segments. Clicking an entry calls Activate with the key of the
// entry. It is up to the application to activate the entry in its State, and to return an
// Event with NeedDraw (or NeedLayout) set.
//
// Keys:
//	space/enter, activate entry under the mouse
//	arrow left/right (horizontal) or up/down (vertical), activate the previous/next entry
//	tab, move mouse to the next entry
type Segmented struct {
	Segments Segments              `json:"-"` // Entries to show, in order. Nil shows nothing.
	Variant  Variant               `json:"-"` // Horizontal or Vertical. Nil means Horizontal.
	Style    Style                            // Palette to use from the theme.
	Spacing  int                              // Between entries, in lowDPI pixels. 0 means the theme spacing.
	Padding  image.Point                      // Around labels, in lowDPI pixels. Zero means the theme padding, or derived from the font height.
	Width    int                              // 0 means as wide as needed, -1 means full width, >0 means that exact amount of lowDPI pixels.
	Height   int                              // 0 means as high as needed, -1 means full height, >0 means that exact amount of lowDPI pixels.
	Font     *draw.Font            `json:"-"` // For labels, nil means default font.
	Disabled bool                             // No activation, drawn in the disabled colors.
	Activate func(k Key) (e Event) `json:"-"` // Called when an entry is clicked or chosen with keys. The key may be stale.

	arr     Arrangement
	metrics Metrics
	hover   Key // Entry under the mouse, 0 for none.
	pressed Key // Entry where button 1 went down.
	m       draw.Mouse
}

var _ UI = &Segmented{}

type noSegments struct{}

func (noSegments) Len() int                 { return 0 }
func (noSegments) KeyAt(int) Key            { return 0 }
func (noSegments) Label(Key) (string, bool) { return "", false }
func (noSegments) Active() (Key, bool)      { return 0, false }

func (ui *Segmented) segments() Segments {
	if ui.Segments == nil {
		return noSegments{}
	}
	return ui.Segments
}

func (ui *Segmented) variant() Variant {
	if ui.Variant == nil {
		return Horizontal{}
	}
	return ui.Variant
}

func (ui *Segmented) measureMetrics(dui *DUI, m Measurer) Metrics {
	theme := dui.theme()
	spacing := ui.Spacing
	if spacing == 0 {
		spacing = theme.Spacing
	}
	var pad image.Point
	switch {
	case ui.Padding != image.ZP:
		pad = image.Pt(dui.Scale(ui.Padding.X), dui.Scale(ui.Padding.Y))
	case theme.Padding > 0:
		pad = pt(dui.Scale(theme.Padding))
	default:
		h := m.StringSize("").Y
		pad = image.Pt(h/2, h/4)
	}
	return Metrics{
		Spacing: dui.Scale(spacing),
		Padding: pad,
		Border:  BorderSize,
	}
}

func (ui *Segmented) limits(dui *DUI, sizeAvail image.Point) Limits {
	l := Limits{Max: sizeAvail}
	if ui.Width < 0 {
		l.Min.X = sizeAvail.X
	} else if ui.Width > 0 {
		w := minimum(dui.Scale(ui.Width), sizeAvail.X)
		l.Min.X, l.Max.X = w, w
	}
	if ui.Height < 0 {
		l.Min.Y = sizeAvail.Y
	} else if ui.Height > 0 {
		h := minimum(dui.Scale(ui.Height), sizeAvail.Y)
		l.Min.Y, l.Max.Y = h, h
	}
	return l
}

// Arrangement returns the entry rectangles of the last layout.
func (ui *Segmented) Arrangement() Arrangement {
	return ui.arr
}

func (ui *Segmented) Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool) {
	dui.debugLayout(self)

	m := dui.measurer(ui.Font)
	ui.metrics = ui.measureMetrics(dui, m)
	ui.arr = Arrange(ui.segments(), ui.variant(), m, ui.metrics, ui.limits(dui, sizeAvail))
	if !slices.Contains(ui.arr.Keys, ui.hover) {
		ui.hover = 0
	}
	self.R = rect(ui.arr.Size)
}

func (ui *Segmented) Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	dui.debugDraw(self)

	segs := ui.segments()
	a := ui.variant().Appearance(dui.theme(), ui.Style)
	img.Draw(rect(ui.arr.Size).Add(orig), dui.Color(a.Background), nil, image.ZP)

	active, _ := segs.Active()
	hovered := ui.hoverAt(m)
	font := dui.Font(ui.Font)
	measurer := dui.measurer(ui.Font)
	radius := dui.Scale(a.Radius)
	n := len(ui.arr.Keys)
	for i, k := range ui.arr.Keys {
		r := ui.arr.Bounds[i]
		label, ok := segs.Label(k)
		if !ok || r.Empty() {
			// Removed after layout, a new layout is coming.
			continue
		}
		hover := k == hovered
		sw := a.Swatch(k == active, hover, ui.Disabled)
		r = r.Add(orig)
		drawRounded(img, r, radius, a.Corners(i, n, ui.metrics.Spacing), dui.Color(sw.Background), dui.Color(sw.Border))

		p := ui.labelAt(measurer, r, label)
		if hover && k == ui.pressed && m.Buttons&Button1 != 0 {
			p.Y++
		}
		img.String(p, dui.Color(sw.Text), image.ZP, font, label)
	}
}

// labelAt returns where label starts in entry rectangle r: centered, but not over the padding.
// Use the measurer the layout used, or labels won't fit.
func (ui *Segmented) labelAt(m Measurer, r image.Rectangle, label string) image.Point {
	p := r.Min.Add(r.Size().Sub(m.StringSize(label)).Div(2))
	return maxPt(p, r.Min.Add(ui.metrics.Padding).Add(pt(ui.metrics.Border)))
}

// hoverAt returns the entry under m, relative to the widget, and remembers it.
// The mouse may have left the widget without a mouse event reaching it.
func (ui *Segmented) hoverAt(m draw.Mouse) Key {
	ui.hover = 0
	if !ui.Disabled {
		ui.hover, _ = ui.arr.Hit(m.Point)
	}
	return ui.hover
}

func (ui *Segmented) activate(self *Kid, r *Result, k Key) {
	r.Consumed = true
	self.Draw = Dirty
	if ui.Activate != nil {
		e := ui.Activate(k)
		propagateEvent(self, r, e)
	}
}

func (ui *Segmented) Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.Disabled {
		return
	}
	hover, _ := ui.arr.Hit(m.Point)
	if hover != ui.hover {
		ui.hover = hover
		self.Draw = Dirty
	}
	if ui.m.Buttons&Button1 != m.Buttons&Button1 {
		self.Draw = Dirty
		if m.Buttons&Button1 != 0 {
			ui.pressed = hover
		} else {
			if hover != 0 && hover == ui.pressed {
				ui.activate(self, &r, hover)
			}
			ui.pressed = 0
		}
	}
	ui.m = m
	return
}

// arrowKeys returns the keys for previous and next entry.
func (ui *Segmented) arrowKeys() (prev, next rune) {
	if _, ok := ui.variant().(Vertical); ok {
		return draw.KeyUp, draw.KeyDown
	}
	return draw.KeyLeft, draw.KeyRight
}

func (ui *Segmented) Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if ui.Disabled {
		return
	}
	prev, next := ui.arrowKeys()
	switch k {
	case ' ', '\n':
		if key, ok := ui.arr.Hit(m.Point); ok {
			ui.activate(self, &r, key)
		}
	case prev, next:
		delta := 1
		if k == prev {
			delta = -1
		}
		key, ok := Neighbor(ui.segments(), delta)
		if active, _ := ui.segments().Active(); ok && key != active {
			ui.activate(self, &r, key)
		} else if ok {
			r.Consumed = true
		}
	case '\t':
		i := ui.arr.Index(m.Point)
		if i >= 0 && i+1 < len(ui.arr.Bounds) {
			p := orig.Add(ui.focusPoint(i + 1))
			r.Warp = &p
			r.Consumed = true
		}
	}
	return
}

func (ui *Segmented) focusPoint(index int) image.Point {
	return ui.arr.Bounds[index].Min.Add(ui.metrics.Padding)
}

func (ui *Segmented) FirstFocus(dui *DUI, self *Kid) *image.Point {
	if len(ui.arr.Bounds) == 0 || ui.Disabled {
		return nil
	}
	p := ui.focusPoint(0)
	return &p
}

// Focus returns the point of the active entry, or the first entry.
func (ui *Segmented) Focus(dui *DUI, self *Kid, o UI) *image.Point {
	if o != ui || len(ui.arr.Bounds) == 0 {
		return nil
	}
	i := 0
	if active, ok := ui.segments().Active(); ok {
		i = maximum(0, slices.Index(ui.arr.Keys, active))
	}
	p := ui.focusPoint(i)
	return &p
}

func (ui *Segmented) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Segmented) Print(dui *DUI, self *Kid, indent int) {
	PrintUI(dui, "Segmented "+ui.variant().String(), self, indent)
}
