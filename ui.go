package duitseg

import (
	"image"

	"9fans.net/go/draw"
)

// UI is implemented by all user interface elements.
// All calls happen from the main loop, inside DUI.Input.
//
// The self *Kid passed to each call holds the UI's layout/draw state and, after Layout,
// its rectangle. Coordinates in mouse events are relative to the UI's top-left corner.
type UI interface {
	// Layout asks the UI to lay itself out in at most sizeAvail, and set self.R to its size.
	// If force is set, the UI must lay out itself and its children even if it thinks it is clean.
	Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool)

	// Draw draws the UI on img at orig.
	Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool)

	// Mouse handles a mouse event. origM is the mouse at the time the buttons were last pressed.
	Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result)

	// Key handles a key press while the mouse is over the UI.
	Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result)

	// FirstFocus returns where the mouse should go when focus moves into this UI with tab, if anywhere.
	FirstFocus(dui *DUI, self *Kid) (warp *image.Point)

	// Focus returns where the mouse should go to focus on o, if o is this UI or one of its children.
	Focus(dui *DUI, self *Kid, o UI) (warp *image.Point)

	// Mark marks o as needing a layout or draw, if o is this UI or one of its children.
	Mark(self *Kid, o UI, forLayout bool) (marked bool)

	// Print logs a line about the UI, indented, followed by lines for its children.
	Print(dui *DUI, self *Kid, indent int)
}

// Event is returned by callbacks, telling the UI what to do next.
type Event struct {
	Consumed   bool // Whether event was consumed, and should not be further handled by upper UI's.
	NeedLayout bool // Whether UI now needs a layout.
	NeedDraw   bool // Whether UI now needs a draw.
}

// Result is returned by Mouse and Key.
type Result struct {
	Hit      UI           // The UI where the event ended up.
	Consumed bool         // Whether event was consumed, and should not be further handled by upper UI's.
	Warp     *image.Point // If set, mouse will warp to location.
}

// Status is the layout or draw state of a Kid.
type Status byte

const (
	Dirty    = Status(iota) // UI itself needs layout/draw; kids will also get a layout/draw call, with force set.
	DirtyKid                // UI itself does not need layout/draw, but one of its children does, so pass the call on.
	Clean                   // UI does not need layout/draw.

	// order is important, Clean is highest and means least amount of work
)

func (s Status) String() string {
	switch s {
	case Dirty:
		return "dirty"
	case DirtyKid:
		return "dirtykid"
	case Clean:
		return "clean"
	}
	return "?"
}

func propagateEvent(self *Kid, r *Result, e Event) {
	if e.NeedLayout {
		self.Layout = Dirty
	}
	if e.NeedDraw {
		self.Draw = Dirty
	}
	r.Consumed = e.Consumed || r.Consumed
}
