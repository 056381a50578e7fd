package duitseg

// Corners is a set of rectangle corners.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	CornersNone Corners = 0
	CornersAll          = CornerTopLeft | CornerTopRight | CornerBottomRight | CornerBottomLeft
)

// Appearance is how a segmented button looks: colors for each entry state, and which corners
// of the first and last entry are rounded. Entries in between have square corners.
type Appearance struct {
	Background Color // Behind the entries, visible in the spacing.
	Radius     int   // In lowDPI pixels.
	First      Corners
	Last       Corners

	Active   Swatch
	Inactive Swatch
	Hover    Swatch
	Disabled Swatch
}

func newAppearance(theme *Theme, style Style) Appearance {
	if theme == nil {
		theme = DefaultTheme()
	}
	p := theme.Palette(style)
	return Appearance{
		Background: p.Background,
		Radius:     p.Radius,
		Active:     p.Active,
		Inactive:   p.Inactive,
		Hover:      p.Hover,
		Disabled:   p.Disabled,
	}
}

// Swatch returns the colors for an entry. Disabled wins over active, active over hover.
func (a Appearance) Swatch(active, hover, disabled bool) Swatch {
	switch {
	case disabled:
		return a.Disabled
	case active:
		return a.Active
	case hover:
		return a.Hover
	}
	return a.Inactive
}

// Corners returns the rounded corners for the entry at index of count entries.
// With spacing between entries, each entry stands on its own and is rounded all around.
func (a Appearance) Corners(index, count, spacing int) Corners {
	if spacing > 0 {
		return CornersAll
	}
	var c Corners
	if index == 0 {
		c |= a.First
	}
	if index == count-1 {
		c |= a.Last
	}
	return c
}
