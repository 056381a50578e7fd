package duitseg

// HorizontalSelection returns a row of entries for choosing one option, like a group of radio buttons.
func HorizontalSelection(segs Segments, activate func(k Key) Event) *Segmented {
	return &Segmented{Segments: segs, Variant: Horizontal{}, Style: StyleSelection, Activate: activate}
}

// VerticalSelection returns a column of entries for choosing one option.
func VerticalSelection(segs Segments, activate func(k Key) Event) *Segmented {
	return &Segmented{Segments: segs, Variant: Vertical{}, Style: StyleSelection, Activate: activate}
}

// HorizontalViewSwitcher returns a tab bar. The data of the active entry typically determines
// what the application shows below it, see Tabs.
func HorizontalViewSwitcher(segs Segments, activate func(k Key) Event) *Segmented {
	return &Segmented{Segments: segs, Variant: Horizontal{}, Style: StyleViewSwitcher, Activate: activate}
}

// VerticalViewSwitcher returns a column of tabs, e.g. for a sidebar.
func VerticalViewSwitcher(segs Segments, activate func(k Key) Event) *Segmented {
	return &Segmented{Segments: segs, Variant: Vertical{}, Style: StyleViewSwitcher, Activate: activate}
}

// Activator returns an activate function that activates the entry in state and asks for a
// redraw, for use with the constructors above when nothing else needs to happen.
func Activator[D any](state *State[D]) func(k Key) Event {
	return func(k Key) Event {
		state.Activate(k)
		return Event{Consumed: true, NeedDraw: true}
	}
}
