package duitseg

import (
	"image"

	"github.com/mattn/go-runewidth"
)

// Measurer returns the size of a single line of text. *draw.Font is a Measurer.
type Measurer interface {
	StringSize(s string) image.Point
}

// CellMeasurer measures text on a grid of fixed size character cells, like a terminal.
// Wide characters take two cells. The zero CellMeasurer uses 1x1 cells.
type CellMeasurer struct {
	Cell image.Point
}

func (m CellMeasurer) StringSize(s string) image.Point {
	cell := m.Cell
	if cell == image.ZP {
		cell = pt(1)
	}
	return image.Pt(runewidth.StringWidth(s)*cell.X, cell.Y)
}

// Metrics are the sizes, in pixels for the display at hand, that go into the layout of a segmented button.
type Metrics struct {
	Spacing int         // Between entries.
	Padding image.Point // Between entry border and label, on each side.
	Border  int         // Width of entry border.
}

// Arrangement is a laid out segmented button: its size and the rectangle of each entry, relative
// to the top-left of the button. Keys and Bounds are in entry order.
type Arrangement struct {
	Size   image.Point
	Keys   []Key
	Bounds []image.Rectangle
}

// Index returns the position of the entry at p, or -1.
func (a Arrangement) Index(p image.Point) int {
	for i, r := range a.Bounds {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// Hit returns the key of the entry at p.
// The key may have been removed from the state since the arrangement was made.
func (a Arrangement) Hit(p image.Point) (Key, bool) {
	i := a.Index(p)
	if i < 0 {
		return 0, false
	}
	return a.Keys[i], true
}

// EntrySize returns the size needed for label, including padding and border.
func EntrySize(m Measurer, metrics Metrics, label string) image.Point {
	return m.StringSize(label).Add(metrics.Padding.Mul(2)).Add(pt(2 * metrics.Border))
}

// Arrange lays out the entries of segs with variant v. All entries get the size of the largest entry.
func Arrange(segs Segments, v Variant, m Measurer, metrics Metrics, limits Limits) Arrangement {
	if v == nil {
		v = Horizontal{}
	}
	n := segs.Len()
	a := Arrangement{
		Keys:   make([]Key, n),
		Bounds: make([]image.Rectangle, n),
	}
	max := image.ZP
	for i := range a.Keys {
		k := segs.KeyAt(i)
		a.Keys[i] = k
		label, _ := segs.Label(k)
		max = maxPt(max, EntrySize(m, metrics, label))
	}
	a.Size = v.Measure(limits, max, n, metrics.Spacing)
	r := rect(a.Size)
	for i := range a.Bounds {
		a.Bounds[i] = v.ButtonBounds(r, i, n, metrics.Spacing)
	}
	return a
}
