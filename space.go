package duitseg

import (
	"image"
)

// Space is padding or margin around a UI, in lowDPI pixels until scaled with DUI.ScaleSpace.
type Space struct {
	Top, Right, Bottom, Left int
}

// SpaceXY returns a Space with x on the left and right, and y on the top and bottom.
func SpaceXY(x, y int) Space {
	return Space{Top: y, Right: x, Bottom: y, Left: x}
}

// Size is the total horizontal and vertical space.
func (s Space) Size() image.Point {
	return image.Pt(s.Left+s.Right, s.Top+s.Bottom)
}

// Offset is where the content starts.
func (s Space) Offset() image.Point {
	return image.Pt(s.Left, s.Top)
}

// Avail returns what remains of size for the content, never negative.
func (s Space) Avail(size image.Point) image.Point {
	return maxPt(image.ZP, size.Sub(s.Size()))
}

// Outset grows content rectangle r by s.
func (s Space) Outset(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: r.Min.Sub(s.Offset()), Max: r.Max.Add(image.Pt(s.Right, s.Bottom))}
}

// Map applies fn to each side.
func (s Space) Map(fn func(int) int) Space {
	return Space{fn(s.Top), fn(s.Right), fn(s.Bottom), fn(s.Left)}
}
