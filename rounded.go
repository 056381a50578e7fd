package duitseg

import (
	"image"

	"9fans.net/go/draw"
)

// drawRounded fills r with bg and draws a border in border on the inside of r.
// Only the corners in rounded get an arc of radius, the others are square.
func drawRounded(img *draw.Image, r image.Rectangle, radius int, rounded Corners, bg, border *draw.Image) {
	radius = minimum(radius, minimum(r.Dx(), r.Dy())/2)
	if radius <= 0 || rounded == CornersNone {
		img.Draw(r, bg, nil, image.ZP)
		img.Border(r, BorderSize, border, image.ZP)
		return
	}

	x0 := r.Min.X
	x1 := r.Max.X - 1
	y0 := r.Min.Y
	y1 := r.Max.Y - 1

	// Fill as a cross, then fill or round each corner square.
	img.Draw(image.Rect(x0+radius, y0, x1-radius+1, y1+1), bg, nil, image.ZP)
	img.Draw(image.Rect(x0, y0+radius, x1+1, y1-radius+1), bg, nil, image.ZP)

	type corner struct {
		c      Corners
		center image.Point
		square image.Rectangle
		alpha  int
	}
	corners := []corner{
		{CornerTopLeft, image.Pt(x0+radius, y0+radius), image.Rect(x0, y0, x0+radius, y0+radius), 90},
		{CornerBottomLeft, image.Pt(x0+radius, y1-radius), image.Rect(x0, y1-radius+1, x0+radius, y1+1), 180},
		{CornerBottomRight, image.Pt(x1-radius, y1-radius), image.Rect(x1-radius+1, y1-radius+1, x1+1, y1+1), 270},
		{CornerTopRight, image.Pt(x1-radius, y0+radius), image.Rect(x1-radius+1, y0, x1+1, y0+radius), 0},
	}
	for _, c := range corners {
		if rounded&c.c == 0 {
			img.Draw(c.square, bg, nil, image.ZP)
			continue
		}
		img.FillArc(c.center, radius, radius, 0, bg, image.ZP, c.alpha, 90)
		img.Arc(c.center, radius, radius, 0, border, image.ZP, c.alpha, 90)
	}

	off := func(c Corners) int {
		if rounded&c != 0 {
			return radius
		}
		return 0
	}
	img.Line(image.Pt(x0, y0+off(CornerTopLeft)), image.Pt(x0, y1-off(CornerBottomLeft)), 0, 0, 0, border, image.ZP)
	img.Line(image.Pt(x0+off(CornerBottomLeft), y1), image.Pt(x1-off(CornerBottomRight), y1), 0, 0, 0, border, image.ZP)
	img.Line(image.Pt(x1, y1-off(CornerBottomRight)), image.Pt(x1, y0+off(CornerTopRight)), 0, 0, 0, border, image.ZP)
	img.Line(image.Pt(x1-off(CornerTopRight), y0), image.Pt(x0+off(CornerTopLeft), y0), 0, 0, 0, border, image.ZP)
}
