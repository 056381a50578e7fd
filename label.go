package duitseg

import (
	"image"
	"strings"

	"9fans.net/go/draw"
)

// Label draws lines of text in a single font. Lines are separated by newlines, they are not wrapped.
//
// Keys:
//	\n, like button1 click, calls the Click function
type Label struct {
	Text  string           // Text to draw, one line per newline.
	Font  *draw.Font       `json:"-"` // For drawing text.
	Color *Color           // Text color. Nil means the inactive text color of the theme.
	Click func() (e Event) `json:"-"` // Called on button1 click.

	lines  []string
	height int
	size   image.Point
	m      draw.Mouse
}

var _ UI = &Label{}

func (ui *Label) Layout(dui *DUI, self *Kid, sizeAvail image.Point, force bool) {
	dui.debugLayout(self)

	m := dui.measurer(ui.Font)
	ui.lines = strings.Split(ui.Text, "\n")
	ui.height = m.StringSize("").Y
	width := 0
	for _, line := range ui.lines {
		width = maximum(width, m.StringSize(line).X)
	}
	ui.size = image.Pt(width, len(ui.lines)*ui.height)
	self.R = rect(ui.size)
}

func (ui *Label) Draw(dui *DUI, self *Kid, img *draw.Image, orig image.Point, m draw.Mouse, force bool) {
	dui.debugDraw(self)

	color := dui.theme().Selection.Inactive.Text
	if ui.Color != nil {
		color = *ui.Color
	}
	font := dui.Font(ui.Font)
	p := orig
	for _, line := range ui.lines {
		img.String(p, dui.Color(color), image.ZP, font, line)
		p.Y += ui.height
	}
}

func (ui *Label) Mouse(dui *DUI, self *Kid, m draw.Mouse, origM draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if m.In(rect(ui.size)) && ui.m.Buttons == 0 && m.Buttons == Button1 && ui.Click != nil {
		e := ui.Click()
		propagateEvent(self, &r, e)
	}
	ui.m = m
	return
}

func (ui *Label) Key(dui *DUI, self *Kid, k rune, m draw.Mouse, orig image.Point) (r Result) {
	r.Hit = ui
	if k == '\n' && ui.Click != nil {
		e := ui.Click()
		propagateEvent(self, &r, e)
	}
	return
}

func (ui *Label) FirstFocus(dui *DUI, self *Kid) *image.Point {
	return nil
}

func (ui *Label) Focus(dui *DUI, self *Kid, o UI) *image.Point {
	if o != ui {
		return nil
	}
	return &image.ZP
}

func (ui *Label) Mark(self *Kid, o UI, forLayout bool) (marked bool) {
	return self.Mark(o, forLayout)
}

func (ui *Label) Print(dui *DUI, self *Kid, indent int) {
	PrintUI(dui, "Label "+strings.SplitN(ui.Text, "\n", 2)[0], self, indent)
}
