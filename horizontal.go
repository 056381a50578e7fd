package duitseg

import (
	"image"
)

// Horizontal lays out entries from left to right, each as wide as the widest entry.
type Horizontal struct{}

var _ Variant = Horizontal{}

func (Horizontal) variant() {}

func (Horizontal) String() string {
	return "horizontal"
}

func (Horizontal) Appearance(theme *Theme, style Style) Appearance {
	a := newAppearance(theme, style)
	a.First = CornerTopLeft | CornerBottomLeft
	a.Last = CornerTopRight | CornerBottomRight
	return a
}

func (Horizontal) ButtonBounds(bounds image.Rectangle, index, count, spacing int) image.Rectangle {
	return splitBounds(bounds, index, count, spacing)
}

func (Horizontal) Measure(limits Limits, max image.Point, count, spacing int) image.Point {
	return measureRow(limits, max, count, spacing)
}
