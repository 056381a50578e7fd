package duitseg

import "image"

func pt(v int) image.Point {
	return image.Point{v, v}
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}

// maxPt returns the largest X and largest Y of a and b.
func maxPt(a, b image.Point) image.Point {
	return image.Pt(maximum(a.X, b.X), maximum(a.Y, b.Y))
}

// transpose swaps X and Y. Vertical layout is horizontal layout on transposed geometry.
func transpose(p image.Point) image.Point {
	return image.Pt(p.Y, p.X)
}

func transposeRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{transpose(r.Min), transpose(r.Max)}
}

func maximum(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minimum(a, b int) int {
	if a < b {
		return a
	}
	return b
}
