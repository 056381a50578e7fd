package duitseg

import (
	"image"

	"9fans.net/go/draw"
)

// Tabs is a view switcher next to the UI of the active view.
// Each entry in Views holds the UI to show when that entry is active.
//
// Tabs acts as the application for its view switcher: when an entry is clicked, Tabs activates
// it in Views and lays itself out again with the new view. If you change Views yourself, e.g.
// removing the active view, call dui.MarkLayout on the Tabs.
type Tabs struct {
	Views   *State[UI]            `json:"-"` // Entries in the bar, data is the UI shown. The zero State is used when nil.
	Variant Variant               `json:"-"` // Horizontal puts the bar above the view, Vertical to the left. Nil means Horizontal.
	Bar     *Segmented                       // Optional, created on first layout. Tabs sets its Segments and Activate.
	Padding Space                            // Around the view, in lowDPI pixels.
	Changed func(k Key) (e Event) `json:"-"` // Called after another view was activated.

	kids []*Kid // bar, and the active view if any
	size image.Point
}

var _ UI = &Tabs{}

func (ui *Tabs) variant() Variant {
	if ui.Variant == nil {
		return Horizontal{}
	}
	return ui.Variant
}

// ensure sets up the bar and the kid for the active view. It returns whether the view
// is not the one laid out before.
func (ui *Tabs) ensure() (changed bool) {
	if ui.Views == nil {
		ui.Views = &State[UI]{}
	}
	if ui.Bar == nil {
		if _, ok := ui.variant().(Vertical); ok {
			ui.Bar = VerticalViewSwitcher(nil, nil)
			ui.Bar.Height = -1
		} else {
			ui.Bar = HorizontalViewSwitcher(nil, nil)
			ui.Bar.Width = -1
		}
	}
	ui.Bar.Segments = ui.Views
	ui.Bar.Activate = ui.activate
	if len(ui.kids) == 0 {
		ui.kids = []*Kid{{UI: ui.Bar, ID: "tabs-bar"}}
		changed = true
	}

	view, ok := ui.Views.ActiveData()
	switch {
	case (!ok || view == nil) && len(ui.kids) > 1:
		ui.kids = ui.kids[:1]
		changed = true
	case ok && view != nil && len(ui.kids) == 1:
		ui.kids = append(ui.kids, &Kid{UI: view, ID: "tabs-view"})
		changed = true
	case ok && view != nil && ui.kids[1].UI != view:
		ui.kids[1].UI = view
		changed = true
	}
	return changed
}

func (ui *Tabs) activate(k Key) (e Event) {
	prev, _ := ui.Views.Active()
	ui.Views.Activate(k)
	e.Consumed = true
	if cur, _ := ui.Views.Active(); cur == prev {
		return
	}
	e.NeedLayout = true
	if ui.Changed != nil {
		ce := ui.Changed(k)
		e.NeedDraw = e.NeedDraw || ce.NeedDraw
	}
	return
}

func (ui *Tabs) Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool) {
	dui.debugLayout(self)
	if ui.ensure() {
		force = true
	}
	if KidsLayout(dui, self, ui.kids, force) {
		return
	}

	bar := ui.kids[0]
	bar.UI.Layout(dui, bar, sizeAvail, true)
	bar.R = rect(bar.R.Size())
	bar.Layout = Clean
	size := bar.R.Size()

	if len(ui.kids) > 1 {
		pad := dui.ScaleSpace(ui.Padding)
		offset := image.Pt(0, bar.R.Dy())
		if _, ok := ui.variant().(Vertical); ok {
			offset = image.Pt(bar.R.Dx(), 0)
		}
		avail := pad.Avail(sizeAvail.Sub(offset))

		view := ui.kids[1]
		view.UI.Layout(dui, view, avail, true)
		view.R = rect(view.R.Size()).Add(offset).Add(pad.Offset())
		view.Layout = Clean
		size = maxPt(size, pad.Outset(view.R).Max)
	}
	ui.size = size
	self.R = rect(size)
}

func (ui *Tabs) Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	KidsDraw(dui, self, ui.kids, ui.size, nil, img, orig, m, force)
}

func (ui *Tabs) Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r = KidsMouse(dui, self, ui.kids, m, origM, orig)
	if len(ui.kids) > 0 && ui.kids[0].Layout != Clean {
		// Another view was activated.
		self.Layout = Dirty
	}
	return
}

func (ui *Tabs) Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r = KidsKey(dui, self, ui.kids, k, m, orig)
	if len(ui.kids) > 0 && ui.kids[0].Layout != Clean {
		self.Layout = Dirty
	}
	return
}

func (ui *Tabs) FirstFocus(dui *DUI, self *Kid) *image.Point {
	return KidsFirstFocus(dui, self, ui.kids)
}

func (ui *Tabs) Focus(dui *DUI, self *Kid, o UI) *image.Point {
	return KidsFocus(dui, self, ui.kids, o)
}

func (ui *Tabs) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return KidsMark(self, ui.kids, o, forLayout)
}

func (ui *Tabs) Print(dui *DUI, self *Kid, indent int) {
	PrintUI(dui, "Tabs", self, indent)
	KidsPrint(dui, ui.kids, indent+1)
}
