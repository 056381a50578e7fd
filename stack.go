package duitseg

import (
	"image"

	"9fans.net/go/draw"
)

// NewStack returns a stack of uis in direction v.
func NewStack(v Variant, uis ...UI) *Stack {
	return &Stack{Kids: NewKids(uis...), Variant: v}
}

// Stack puts its kids next to each other, in a row (Horizontal) or a column (Vertical).
// Unlike a segmented button, kids keep their own size.
type Stack struct {
	Kids       []*Kid      // Kids and UIs in this stack.
	Variant    Variant     `json:"-"` // Direction. Nil means Horizontal.
	Margin     int         // Between kids, in lowDPI pixels.
	Padding    Space       // Inside the stack, around the kids, in lowDPI pixels.
	Background *draw.Image `json:"-"` // Background for this stack, instead of default duit background.

	size image.Point
}

var _ UI = &Stack{}

func (ui *Stack) Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool) {
	dui.debugLayout(self)
	if KidsLayout(dui, self, ui.Kids, force) {
		return
	}

	// Lay out as a row, transposing for columns.
	row := func(p image.Point) image.Point {
		if _, ok := ui.Variant.(Vertical); ok {
			return transpose(p)
		}
		return p
	}
	padding := dui.ScaleSpace(ui.Padding)
	margin := dui.Scale(ui.Margin)
	avail := row(padding.Avail(sizeAvail))

	x, height := 0, 0
	for i, k := range ui.Kids {
		if i > 0 {
			x += margin
		}
		k.UI.Layout(dui, k, row(image.Pt(maximum(0, avail.X-x), avail.Y)), true)
		size := row(k.R.Size())
		k.R = rect(row(size)).Add(row(image.Pt(x, 0))).Add(padding.Offset())
		k.Layout = Clean
		x += size.X
		height = maximum(height, size.Y)
	}
	ui.size = row(image.Pt(x, height)).Add(padding.Size())
	self.R = rect(ui.size)
}

func (ui *Stack) Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	KidsDraw(dui, self, ui.Kids, ui.size, ui.Background, img, orig, m, force)
}

func (ui *Stack) Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	return KidsMouse(dui, self, ui.Kids, m, origM, orig)
}

func (ui *Stack) Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	return KidsKey(dui, self, ui.Kids, k, m, orig)
}

func (ui *Stack) FirstFocus(dui *DUI, self *Kid) *image.Point {
	return KidsFirstFocus(dui, self, ui.Kids)
}

func (ui *Stack) Focus(dui *DUI, self *Kid, o UI) *image.Point {
	return KidsFocus(dui, self, ui.Kids, o)
}

func (ui *Stack) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return KidsMark(self, ui.Kids, o, forLayout)
}

func (ui *Stack) Print(dui *DUI, self *Kid, indent int) {
	name := "Stack horizontal"
	if ui.Variant != nil {
		name = "Stack " + ui.Variant.String()
	}
	PrintUI(dui, name, self, indent)
	KidsPrint(dui, ui.Kids, indent+1)
}
