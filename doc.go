/*
Package duitseg provides segmented buttons for duit-style user interfaces: a row or column of
same-sized entries, of which at most one is active.

The entries live in a State, owned by the application. A State is an ordered collection of
entries, each with a Key, a label and data of the application's choosing. Keys are never reused,
so a key held after its entry was removed simply refers to nothing.

A Segmented draws the entries of a State and turns clicks and arrow keys into calls of its
Activate function. It never changes the State itself: the application activates the entry,
possibly after checking something, and returns an Event asking for a redraw. Use Activator when
nothing else needs to happen.

	views := &duitseg.State[string]{}
	home := views.Insert("Home", "home")
	views.Insert("Settings", "settings")
	views.Activate(home)
	bar := duitseg.HorizontalViewSwitcher(views, duitseg.Activator(views))

How entries are placed is up to the Variant: Horizontal puts them in a row, Vertical in a
column. Both give all entries the same size, the size of the largest label. Arrange computes the
rectangles without a display, e.g. for tests or for the terminal renderer in package term.

Colors come from a Theme, which can be loaded from a YAML file with LoadTheme. The Style of a
Segmented selects the palette: StyleSelection for choosing an option, StyleViewSwitcher for tab
bars. Tabs combines a view switcher with the UI of the active view.

Like in duit, you run the event loop, receiving inputs from dui.Inputs and passing them to
dui.Input. After changing a State outside of an Activate function, call dui.MarkDraw, or
dui.MarkLayout when entries were added, removed or relabeled.
*/
package duitseg
