package duitseg

import (
	"image"

	"9fans.net/go/draw"
)

// Kid holds a UI and its layout/draw state.
type Kid struct {
	UI     UI              // UI this state is about.
	R      image.Rectangle // Location and size within the parent UI.
	Draw   Status          // Whether UI or its children need a draw.
	Layout Status          // Whether UI or its children need a layout.
	ID     string          // For identifying this UI in debug output.
}

// NewKids turns UIs into Kids containing those UIs. Useful for creating UI trees.
func NewKids(uis ...UI) []*Kid {
	kids := make([]*Kid, len(uis))
	for i, ui := range uis {
		kids[i] = &Kid{UI: ui}
	}
	return kids
}

// Mark checks if o is its UI, and if so marks it as needing a layout or draw.
func (k *Kid) Mark(o UI, forLayout bool) (marked bool) {
	if o != k.UI {
		return false
	}
	if forLayout {
		k.Layout = Dirty
	} else {
		k.Draw = Dirty
	}
	return true
}

// propagate passes the need for layout or draw of kid up to k.
func (k *Kid) propagate(kid *Kid) {
	if kid.Layout != Clean && k.Layout == Clean {
		k.Layout = DirtyKid
	}
	if kid.Draw != Clean && k.Draw == Clean {
		k.Draw = DirtyKid
	}
}

// KidsLayout is called by layout UIs before they do their own layouts.
// KidsLayout returns whether there is any work left to do, determined by looking at self.Layout.
// Children will be laid out if necessary.
func KidsLayout(dui *DUI, self *Kid, kids []*Kid, force bool) (done bool) {
	if force {
		self.Layout = Clean
		self.Draw = Dirty
		return false
	}
	switch self.Layout {
	case Clean:
		return true
	case Dirty:
		self.Layout = Clean
		self.Draw = Dirty
		return false
	}
	for _, k := range kids {
		if k.Layout == Clean {
			continue
		}
		k.UI.Layout(dui, k, k.R.Size(), false)
		k.Layout = Clean
		k.Draw = Dirty
		self.Draw = DirtyKid
	}
	self.Layout = Clean
	return true
}

// KidsDraw draws a background, and kids that need it.
// bg is the background for the area not covered by kids, nil means the DUI background.
func KidsDraw(dui *DUI, self *Kid, kids []*Kid, uiSize image.Point, bg *draw.Image, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	dui.debugDraw(self)

	force = force || self.Draw == Dirty
	if force {
		if bg == nil {
			bg = dui.Background
		}
		img.Draw(rect(uiSize).Add(orig), bg, nil, image.ZP)
	}
	for _, k := range kids {
		if !force && k.Draw == Clean {
			continue
		}
		mm := m
		mm.Point = mm.Point.Sub(k.R.Min)
		if force {
			k.Draw = Dirty
		}
		k.UI.Draw(dui, k, img, orig.Add(k.R.Min), mm, force || k.Draw == Dirty)
		k.Draw = Clean
	}
	self.Draw = Clean
}

// KidsMouse delivers a mouse event to the kid under the mouse.
// While buttons are held, the kid where the press started keeps receiving events.
func KidsMouse(dui *DUI, self *Kid, kids []*Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	for _, k := range kids {
		if !origM.Point.In(k.R) {
			continue
		}
		origM.Point = origM.Point.Sub(k.R.Min)
		m.Point = m.Point.Sub(k.R.Min)
		r = k.UI.Mouse(dui, k, m, origM, orig.Add(k.R.Min))
		self.propagate(k)
		return
	}
	return Result{}
}

// KidsKey delivers a key to the kid under the mouse.
// An unconsumed tab moves the mouse to the first focus point of a following kid.
func KidsKey(dui *DUI, self *Kid, kids []*Kid, key rune, m draw.Mouse, orig image.Point) (r Result) {
	for i, k := range kids {
		if !m.Point.In(k.R) {
			continue
		}
		m.Point = m.Point.Sub(k.R.Min)
		r = k.UI.Key(dui, k, key, m, orig.Add(k.R.Min))
		self.propagate(k)
		if !r.Consumed && key == '\t' {
			for _, next := range kids[i+1:] {
				first := next.UI.FirstFocus(dui, next)
				if first != nil {
					p := first.Add(orig).Add(next.R.Min)
					r.Warp = &p
					r.Consumed = true
					break
				}
			}
		}
		return
	}
	return Result{}
}

// KidsFirstFocus returns the first focus point of the first kid that has one.
func KidsFirstFocus(dui *DUI, self *Kid, kids []*Kid) *image.Point {
	for _, k := range kids {
		first := k.UI.FirstFocus(dui, k)
		if first != nil {
			p := first.Add(k.R.Min)
			return &p
		}
	}
	return nil
}

// KidsFocus returns the focus point for o, if it is in kids.
func KidsFocus(dui *DUI, self *Kid, kids []*Kid, o UI) *image.Point {
	for _, k := range kids {
		p := k.UI.Focus(dui, k, o)
		if p != nil {
			pp := p.Add(k.R.Min)
			return &pp
		}
	}
	return nil
}

// KidsMark marks o in self or kids, and marks self with DirtyKid if o is one of the kids.
func KidsMark(self *Kid, kids []*Kid, o UI, forLayout bool) (marked bool) {
	if self.Mark(o, forLayout) {
		return true
	}
	for _, k := range kids {
		if !k.UI.Mark(k, o, forLayout) {
			continue
		}
		if forLayout {
			if self.Layout == Clean {
				self.Layout = DirtyKid
			}
		} else {
			if self.Draw == Clean {
				self.Draw = DirtyKid
			}
		}
		return true
	}
	return false
}

// KidsPrint calls Print on each kid UI.
func KidsPrint(dui *DUI, kids []*Kid, indent int) {
	for _, k := range kids {
		k.UI.Print(dui, k, indent)
	}
}
