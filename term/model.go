// Package term draws segmented buttons in a terminal, as a bubbletea model.
//
// The entries, variant and theme are the same as for the window UI; text is measured in
// character cells. Like duitseg.Segmented, Model never changes the entries: choosing an entry
// produces an ActivateMsg, and the program activates the entry in its State.
package term

import (
	"image"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mjl-/duitseg"
)

// unbounded is used as available size before the terminal size is known.
const unbounded = 1 << 16

// ActivateMsg is sent when the user chooses an entry. The key may be stale.
type ActivateMsg struct {
	Key duitseg.Key
}

// Model is a segmented button in a terminal. Sizes are in cells.
type Model struct {
	Segments duitseg.Segments
	Variant  duitseg.Variant // Nil means horizontal.
	Style    duitseg.Style
	Theme    *duitseg.Theme // Nil means the default theme.
	Keys     KeyMap
	Spacing  int         // Cells between entries.
	Padding  image.Point // Cells around labels. Zero means one cell left and right.
	Full     bool        // Take the full width (horizontal) or height (vertical).
	Origin   image.Point // Top-left of the model on the screen, for mouse events.
	Disabled bool

	width, height int
	hover         duitseg.Key
}

// New returns a model for segs, with the default key map for v.
func New(segs duitseg.Segments, v duitseg.Variant, style duitseg.Style) Model {
	return Model{
		Segments: segs,
		Variant:  v,
		Style:    style,
		Keys:     DefaultKeyMap(v),
	}
}

func (m Model) variant() duitseg.Variant {
	if m.Variant == nil {
		return duitseg.Horizontal{}
	}
	return m.Variant
}

func (m Model) theme() *duitseg.Theme {
	if m.Theme == nil {
		return duitseg.DefaultTheme()
	}
	return m.Theme
}

func (m Model) metrics() duitseg.Metrics {
	pad := m.Padding
	if pad == image.ZP {
		pad = image.Pt(1, 0)
	}
	return duitseg.Metrics{Spacing: m.Spacing, Padding: pad}
}

func (m Model) limits() duitseg.Limits {
	l := duitseg.Limits{Max: image.Pt(unbounded, unbounded)}
	if m.width > 0 {
		l.Max.X = m.width - m.Origin.X
	}
	if m.height > 0 {
		l.Max.Y = m.height - m.Origin.Y
	}
	if m.Full {
		if _, ok := m.variant().(duitseg.Vertical); ok {
			l.Min.Y = l.Max.Y
		} else {
			l.Min.X = l.Max.X
		}
	}
	return l
}

// Arrangement returns the rectangles of the entries, relative to Origin.
func (m Model) Arrangement() duitseg.Arrangement {
	if m.Segments == nil {
		return duitseg.Arrangement{}
	}
	return duitseg.Arrange(m.Segments, m.variant(), duitseg.CellMeasurer{}, m.metrics(), m.limits())
}

// Hover returns the entry under the mouse.
func (m Model) Hover() (duitseg.Key, bool) {
	return m.hover, m.hover != 0
}

func (m Model) Init() tea.Cmd {
	return nil
}

func activate(k duitseg.Key) tea.Cmd {
	return func() tea.Msg {
		return ActivateMsg{Key: k}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.mouse(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.key(msg)
	}
	return m, nil
}

func (m Model) mouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.Disabled || m.Segments == nil {
		return m, nil
	}
	p := image.Pt(msg.X, msg.Y).Sub(m.Origin)
	k, _ := m.Arrangement().Hit(p)
	m.hover = k
	if k != 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m, activate(k)
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) tea.Cmd {
	if m.Disabled || m.Segments == nil {
		return nil
	}
	segs := m.Segments
	var k duitseg.Key
	var ok bool
	switch {
	case key.Matches(msg, m.Keys.Prev):
		k, ok = duitseg.Neighbor(segs, -1)
	case key.Matches(msg, m.Keys.Next):
		k, ok = duitseg.Neighbor(segs, 1)
	case key.Matches(msg, m.Keys.First):
		k, ok = segs.KeyAt(0), segs.Len() > 0
	case key.Matches(msg, m.Keys.Last):
		k, ok = segs.KeyAt(segs.Len()-1), segs.Len() > 0
	}
	if active, _ := segs.Active(); !ok || k == active {
		return nil
	}
	return activate(k)
}

func (m Model) style(a duitseg.Appearance, active, hover bool, r image.Rectangle) lipgloss.Style {
	sw := a.Swatch(active, hover, m.Disabled)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(sw.Text.RGB())).
		Background(lipgloss.Color(sw.Background.RGB())).
		Bold(active).
		Width(r.Dx()).
		Height(r.Dy()).
		MaxWidth(r.Dx()).
		MaxHeight(r.Dy()).
		Align(lipgloss.Center, lipgloss.Center)
}

func (m Model) View() string {
	if m.Segments == nil {
		return ""
	}
	arr := m.Arrangement()
	a := m.variant().Appearance(m.theme(), m.Style)
	_, vertical := m.variant().(duitseg.Vertical)
	gap := lipgloss.NewStyle().Background(lipgloss.Color(a.Background.RGB()))
	active, _ := m.Segments.Active()

	var parts []string
	var prev image.Rectangle
	for i, k := range arr.Keys {
		r := arr.Bounds[i]
		label, ok := m.Segments.Label(k)
		if !ok || r.Empty() {
			continue
		}
		if i > 0 {
			if vertical && r.Min.Y > prev.Max.Y {
				parts = append(parts, gap.Width(r.Dx()).Height(r.Min.Y-prev.Max.Y).Render(""))
			} else if !vertical && r.Min.X > prev.Max.X {
				parts = append(parts, gap.Width(r.Min.X-prev.Max.X).Height(r.Dy()).Render(""))
			}
		}
		parts = append(parts, m.style(a, k == active, k == m.hover && !m.Disabled, r).Render(label))
		prev = r
	}
	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
