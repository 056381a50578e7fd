package duitseg

import (
	"image"
)

// Vertical lays out entries from top to bottom, each as high as the highest entry.
// The width of all entries is that of the widest entry.
//
// Vertical is Horizontal with X and Y swapped.
type Vertical struct{}

var _ Variant = Vertical{}

func (Vertical) variant() {}

func (Vertical) String() string {
	return "vertical"
}

func (Vertical) Appearance(theme *Theme, style Style) Appearance {
	a := newAppearance(theme, style)
	a.First = CornerTopLeft | CornerTopRight
	a.Last = CornerBottomLeft | CornerBottomRight
	return a
}

func (Vertical) ButtonBounds(bounds image.Rectangle, index, count, spacing int) image.Rectangle {
	return transposeRect(splitBounds(transposeRect(bounds), index, count, spacing))
}

func (Vertical) Measure(limits Limits, max image.Point, count, spacing int) image.Point {
	return transpose(measureRow(limits.transpose(), transpose(max), count, spacing))
}

// ParseVariant returns the variant named s, "horizontal" or "vertical".
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "horizontal", "h":
		return Horizontal{}, true
	case "vertical", "v":
		return Vertical{}, true
	}
	return nil, false
}
