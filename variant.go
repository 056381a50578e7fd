package duitseg

import (
	"image"
)

// Variant is the orientation of a segmented button. It decides where entries go and how they look.
// The set is closed: Horizontal and Vertical.
type Variant interface {
	// Appearance returns the colors and shapes for entries of a segmented button in style.
	Appearance(theme *Theme, style Style) Appearance

	// ButtonBounds returns the rectangle for the entry at index, out of count
	// entries, in bounds, with spacing pixels between entries.
	ButtonBounds(bounds image.Rectangle, index, count, spacing int) image.Rectangle

	// Measure returns the size of a segmented button with count entries that are each
	// at least max in size, within limits.
	Measure(limits Limits, max image.Point, count, spacing int) image.Point

	String() string

	variant()
}

// Limits is the range of sizes a UI can take.
type Limits struct {
	Min, Max image.Point
}

// Clamp returns p limited to l. Max wins when Min is larger than Max.
func (l Limits) Clamp(p image.Point) image.Point {
	p = maxPt(p, l.Min)
	p.X = minimum(p.X, l.Max.X)
	p.Y = minimum(p.Y, l.Max.Y)
	return p
}

func (l Limits) transpose() Limits {
	return Limits{transpose(l.Min), transpose(l.Max)}
}

// splitBounds divides the width of bounds into count equal parts with spacing between them and
// returns the part at index. Widths are rounded down, the last entry may end before bounds.Max.X.
func splitBounds(bounds image.Rectangle, index, count, spacing int) image.Rectangle {
	if count <= 1 {
		if count == 1 && index != 0 {
			return image.Rectangle{bounds.Min, bounds.Min}
		}
		return bounds
	}
	if index < 0 || index >= count {
		return image.Rectangle{bounds.Min, bounds.Min}
	}
	spacing = maximum(0, spacing)
	have := bounds.Dx() - (count-1)*spacing
	if have <= 0 {
		// Not even room for the gaps.
		return image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X, bounds.Max.Y)
	}
	width := have / count
	x := bounds.Min.X + index*(width+spacing)
	return image.Rect(x, bounds.Min.Y, x+width, bounds.Max.Y)
}

// measureRow returns the size of count entries of size max next to each other.
func measureRow(limits Limits, max image.Point, count, spacing int) image.Point {
	if count <= 0 {
		return limits.Clamp(image.ZP)
	}
	spacing = maximum(0, spacing)
	size := image.Pt(count*max.X+(count-1)*spacing, max.Y)
	return limits.Clamp(size)
}
