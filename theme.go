package duitseg

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"9fans.net/go/draw"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Color is an RGBA color, 0xRRGGBBAA like draw.Color.
// In theme files it is written as "#rrggbb" or "#rrggbbaa".
type Color draw.Color

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 && len(t) != 8 {
		return 0, fmt.Errorf("bad color %q, need #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", s, err)
	}
	if len(t) == 6 {
		v = v<<8 | 0xff
	}
	return Color(v), nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// RGB returns "#rrggbb", without alpha.
func (c Color) RGB() string {
	return fmt.Sprintf("#%06x", uint32(c)>>8)
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = v
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Swatch holds the colors for one state of an entry.
type Swatch struct {
	Text       Color `yaml:"text"`
	Background Color `yaml:"background"`
	Border     Color `yaml:"border"`
}

// Palette holds the colors of a segmented button in one Style.
type Palette struct {
	Background Color  `yaml:"background"` // Shown in the spacing between entries.
	Radius     int    `yaml:"radius" validate:"gte=0,lte=64"`
	Active     Swatch `yaml:"active"`
	Inactive   Swatch `yaml:"inactive"`
	Hover      Swatch `yaml:"hover"`
	Disabled   Swatch `yaml:"disabled"`
}

// Theme holds the palettes for segmented buttons, and default sizes.
type Theme struct {
	Name         string  `yaml:"name" validate:"required,max=64"`
	Spacing      int     `yaml:"spacing" validate:"gte=0,lte=256"` // Default spacing between entries, in lowDPI pixels.
	Padding      int     `yaml:"padding" validate:"gte=0,lte=256"` // Default padding in entries, 0 means derived from the font height.
	Selection    Palette `yaml:"selection"`
	ViewSwitcher Palette `yaml:"view_switcher"`
}

// Style is the role of a segmented button, selecting a palette from a Theme.
type Style uint8

const (
	StyleSelection    Style = iota // Choose one of a few options.
	StyleViewSwitcher              // Choose the view shown elsewhere.
)

func (s Style) String() string {
	switch s {
	case StyleSelection:
		return "selection"
	case StyleViewSwitcher:
		return "view_switcher"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Palette returns the palette for style.
func (t *Theme) Palette(style Style) Palette {
	if style == StyleViewSwitcher {
		return t.ViewSwitcher
	}
	return t.Selection
}

// DefaultTheme returns the built-in light theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:    "light",
		Spacing: 0,
		Selection: Palette{
			Background: 0xbbbbbbff,
			Radius:     4,
			Active:     Swatch{Text: 0xffffffff, Background: 0x007bffff, Border: 0x007bffff},
			Inactive:   Swatch{Text: 0x333333ff, Background: 0xf8f8f8ff, Border: 0xbbbbbbff},
			Hover:      Swatch{Text: 0x222222ff, Background: 0xfafafaff, Border: 0x3272dcff},
			Disabled:   Swatch{Text: 0x888888ff, Background: 0xf0f0f0ff, Border: 0xe0e0e0ff},
		},
		ViewSwitcher: Palette{
			Background: 0xfcfcfcff,
			Radius:     4,
			Active:     Swatch{Text: 0x222222ff, Background: 0xdde6f5ff, Border: 0x3272dcff},
			Inactive:   Swatch{Text: 0x333333ff, Background: 0xfcfcfcff, Border: 0xfcfcfcff},
			Hover:      Swatch{Text: 0x222222ff, Background: 0xf0f0f0ff, Border: 0xf0f0f0ff},
			Disabled:   Swatch{Text: 0x888888ff, Background: 0xfcfcfcff, Border: 0xfcfcfcff},
		},
	}
}

// ThemeError is returned for theme files that cannot be parsed or are invalid.
type ThemeError struct {
	Path  string // Empty when parsing from memory.
	Field string // Set for validation errors.
	Err   error
}

func (e *ThemeError) Error() string {
	path := e.Path
	if path == "" {
		path = "theme"
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", path, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", path, e.Err)
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func themeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			p := sl.Current().Interface().(Palette)
			if p.Active.Background == p.Inactive.Background && p.Active.Text == p.Inactive.Text {
				sl.ReportError(p.Active, "Active", "active", "distinct", "")
			}
		}, Palette{})
	})
	return validate
}

// ParseTheme parses a YAML theme. Fields not in data keep the values of DefaultTheme.
func ParseTheme(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, &ThemeError{Err: err}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTheme reads and parses the YAML theme file at path.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ThemeError{Path: path, Err: err}
	}
	t, err := ParseTheme(data)
	if err != nil {
		var te *ThemeError
		if errors.As(err, &te) {
			te.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Validate checks the theme for values out of range and palettes where the active entry
// cannot be told apart from the others.
func (t *Theme) Validate() error {
	err := themeValidator().Struct(t)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ThemeError{Field: fe.Namespace(), Err: fmt.Errorf("failed %q check", fe.Tag())}
	}
	return &ThemeError{Err: err}
}

// Marshal returns the theme as YAML.
func (t *Theme) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
