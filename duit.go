package duitseg

import (
	"fmt"
	"image"
	"io"
	"sync"
	"time"

	"9fans.net/go/draw"
	"github.com/rs/zerolog"
)

const (
	BorderSize = 1 // regardless of lowDPI/hiDPI
)

const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4
	Button5
)

type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
	InputError
)

// Input is an event from devdraw or a function to run on the main loop, see DUI.Inputs.
type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
	Error error
}

// DUIOpts are options for NewDUI. Nil means defaults everywhere.
type DUIOpts struct {
	Dimensions string          // Initial window size, eg "800x600". Empty means devdraw default.
	FontName   string          // Default font, empty means devdraw default.
	Theme      *Theme          // Nil means DefaultTheme.
	Log        *zerolog.Logger // Nil means no logging.
}

// DUI is a window with a tree of UIs.
//
// A DUI without Display can still lay out UIs and handle their mouse and key events, as long
// as TextMeasurer is set. Sizes are then in lowDPI pixels. Useful for tests.
type DUI struct {
	Inputs  chan Input
	Top     Kid
	Call    chan func()   // Functions sent here will go through DUI.Inputs and run by DUI.Input() in the main event loop. For code that changes UI state.
	Error   chan error    // Errors from devdraw.
	Done    chan struct{} // Closed when window is closed.
	Display *draw.Display

	Theme *Theme
	Log   zerolog.Logger

	// Measures text for UIs without their own font. Nil means the display's default font.
	TextMeasurer Measurer

	BackgroundColor Color
	Background      *draw.Image

	DebugDraw   int // if > 0, UIs log all calls to their Draw function. Toggle with F7
	DebugLayout int // if > 0, UIs log all calls to their Layout function. Toggle with F8

	colors      map[Color]*draw.Image
	stop        chan struct{}
	doneOnce    sync.Once
	mousectl    *draw.Mousectl
	keyctl      *draw.Keyboardctl
	mouse       draw.Mouse
	origMouse   draw.Mouse
	lastMouseUI UI
	logInputs   bool
	logTiming   bool
}

// NewDUI opens a window with title name.
// You must run the event loop, passing inputs from dui.Inputs to dui.Input.
func NewDUI(name string, opts *DUIOpts) (dui *DUI, err error) {
	if opts == nil {
		opts = &DUIOpts{}
	}
	errch := make(chan error, 1)
	display, err := draw.Init(errch, opts.FontName, name, opts.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("init display: %w", err)
	}

	log := zerolog.Nop()
	if opts.Log != nil {
		log = *opts.Log
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	dui = &DUI{
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
		stop:     make(chan struct{}, 1),
		Inputs:   make(chan Input, 1),
		Call:     make(chan func(), 1),
		Error:    make(chan error, 1),
		Done:     make(chan struct{}),

		Display: display,
		Theme:   theme,
		Log:     log,

		BackgroundColor: 0xfcfcfcff,
	}

	check, handle := errorHandler(func(xerr error) {
		display.Close()
		dui = nil
		err = xerr
	})
	defer handle()

	dui.Background, err = dui.allocColor(dui.BackgroundColor)
	check(err, "allocate background")
	// Allocate all theme colors now, so drawing does not fail halfway.
	for _, style := range []Style{StyleSelection, StyleViewSwitcher} {
		p := theme.Palette(style)
		for _, c := range []Color{p.Background, p.Active.Text, p.Active.Background, p.Active.Border, p.Inactive.Text, p.Inactive.Background, p.Inactive.Border, p.Hover.Text, p.Hover.Background, p.Hover.Border, p.Disabled.Text, p.Disabled.Background, p.Disabled.Border} {
			_, err := dui.allocColor(c)
			check(err, "allocate color %s for %s", c, style)
		}
	}

	go func() {
		for {
			select {
			case m := <-dui.mousectl.C:
				dui.Inputs <- Input{Type: InputMouse, Mouse: m}
			case k := <-dui.keyctl.C:
				dui.Inputs <- Input{Type: InputKey, Key: k}
			case <-dui.mousectl.Resize:
				dui.Inputs <- Input{Type: InputResize}
			case fn := <-dui.Call:
				dui.Inputs <- Input{Type: InputFunc, Func: fn}
			case <-dui.stop:
				return
			case e := <-errch:
				if e == io.EOF {
					// devdraw disappeared, typically because window was closed (either by user, or by duit)
					dui.done()
					return
				}
				dui.Inputs <- Input{Type: InputError, Error: e}
			}
		}
	}()

	dui.Top.Layout = Dirty
	dui.Top.Draw = Dirty
	return dui, nil
}

func (d *DUI) allocColor(c Color) (*draw.Image, error) {
	if img, ok := d.colors[c]; ok {
		return img, nil
	}
	img, err := d.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, draw.Color(c))
	if err != nil {
		return nil, err
	}
	if d.colors == nil {
		d.colors = map[Color]*draw.Image{}
	}
	d.colors[c] = img
	return img, nil
}

// Color returns a replicated 1x1 image with color c, for drawing.
// Colors of the theme are allocated by NewDUI. Failure to allocate others is logged and
// returns the background.
func (d *DUI) Color(c Color) *draw.Image {
	img, err := d.allocColor(c)
	if err != nil {
		d.Log.Error().Err(err).Stringer("color", c).Msg("allocate color")
		return d.Background
	}
	return img
}

// Render calls Layout followed by Draw.
func (d *DUI) Render() {
	d.Layout()
	d.Draw()
}

// Layout lays out the top UI if it or one of its children needs it.
func (d *DUI) Layout() {
	if d.Top.Layout == Clean {
		return
	}
	var t0 time.Time
	if d.logTiming {
		t0 = time.Now()
	}
	d.Top.UI.Layout(d, &d.Top, d.Display.ScreenImage.R.Size(), d.Top.Layout == Dirty)
	d.Top.Layout = Clean
	if d.logTiming {
		d.Log.Info().Dur("duration", time.Since(t0)).Msg("layout")
	}
}

// Draw draws the UIs that need it and flushes the display.
func (d *DUI) Draw() {
	if d.Top.Draw == Clean {
		return
	}
	var t0, t1 time.Time
	if d.logTiming {
		t0 = time.Now()
	}
	if d.Top.Draw == Dirty {
		d.Display.ScreenImage.Draw(d.Display.ScreenImage.R, d.Background, nil, image.ZP)
	}
	d.Top.UI.Draw(d, &d.Top, d.Display.ScreenImage, image.ZP, d.mouse, d.Top.Draw == Dirty)
	d.Top.Draw = Clean
	if d.logTiming {
		t1 = time.Now()
	}
	if err := d.Display.Flush(); err != nil {
		d.Log.Error().Err(err).Msg("flush")
	}
	if d.logTiming {
		d.Log.Info().Dur("draw", t1.Sub(t0)).Dur("flush", time.Since(t1)).Msg("draw")
	}
}

func (d *DUI) apply(r Result) {
	if r.Warp != nil {
		err := d.Display.MoveTo(*r.Warp)
		if err != nil {
			d.Log.Error().Err(err).Stringer("point", *r.Warp).Msg("warp mouse")
		} else {
			d.mouse.Point = *r.Warp
			d.origMouse.Point = *r.Warp
			r = d.Top.UI.Mouse(d, &d.Top, d.mouse, d.origMouse, image.ZP)
		}
	}
	if r.Hit != d.lastMouseUI && d.lastMouseUI != nil {
		d.MarkDraw(d.lastMouseUI)
	}
	d.lastMouseUI = r.Hit

	d.Render()
}

// Mouse delivers a mouse event to the UIs.
func (d *DUI) Mouse(m draw.Mouse) {
	if d.logInputs {
		d.Log.Info().Stringer("point", m.Point).Int("buttons", m.Buttons).Msg("mouse")
	}
	if m.Buttons == 0 || d.origMouse.Buttons == 0 {
		d.origMouse = m
	}
	d.mouse = m
	r := d.Top.UI.Mouse(d, &d.Top, m, d.origMouse, image.ZP)
	d.apply(r)
}

// Resize lays out and draws everything after the window changed size.
func (d *DUI) Resize() {
	if d.logInputs {
		d.Log.Info().Msg("resize")
	}
	if err := d.Display.Attach(draw.Refmesg); err != nil {
		d.Log.Error().Err(err).Msg("attach after resize")
		return
	}
	d.Top.Layout = Dirty
	d.Top.Draw = Dirty
	d.Render()
}

// Key delivers a key to the UIs. Function keys toggle debugging aids.
func (d *DUI) Key(k rune) {
	switch k {
	case draw.KeyFn + 1:
		d.logInputs = !d.logInputs
		d.Log.Info().Bool("loginputs", d.logInputs).Msg("toggled")
		return
	case draw.KeyFn + 2:
		d.logTiming = !d.logTiming
		d.Log.Info().Bool("logtiming", d.logTiming).Msg("toggled")
		return
	case draw.KeyFn + 3:
		d.Top.UI.Print(d, &d.Top, 0)
		return
	case draw.KeyFn + 6:
		d.Log.Info().Msg("rendering entire ui")
		d.Top.Layout = Dirty
		d.Top.Draw = Dirty
		d.Render()
		return
	case draw.KeyFn + 7:
		d.DebugDraw = (d.DebugDraw + 1) % 2
		d.Log.Info().Int("debugdraw", d.DebugDraw).Msg("toggled")
		return
	case draw.KeyFn + 8:
		d.DebugLayout = (d.DebugLayout + 1) % 2
		d.Log.Info().Int("debuglayout", d.DebugLayout).Msg("toggled")
		return
	}
	if d.logInputs {
		d.Log.Info().Str("key", string(k)).Msg("key")
	}
	r := d.Top.UI.Key(d, &d.Top, k, d.mouse, image.ZP)
	if !r.Consumed {
		switch k {
		case '\t':
			first := d.Top.UI.FirstFocus(d, &d.Top)
			if first != nil {
				r.Warp = first
				r.Consumed = true
			}
		case draw.KeyCmd + 'w':
			d.Close()
			return
		}
	}
	d.apply(r)
}

// Focus moves the mouse to ui.
func (d *DUI) Focus(ui UI) {
	p := d.Top.UI.Focus(d, &d.Top, ui)
	if p == nil {
		return
	}
	err := d.Display.MoveTo(*p)
	if err != nil {
		d.Log.Error().Err(err).Stringer("point", *p).Msg("move mouse")
		return
	}
	d.mouse.Point = *p
	d.origMouse.Point = *p
	r := d.Top.UI.Mouse(d, &d.Top, d.mouse, d.origMouse, image.ZP)
	d.apply(r)
}

// Input handles an input from dui.Inputs.
func (d *DUI) Input(e Input) {
	switch e.Type {
	case InputMouse:
		d.Mouse(e.Mouse)
	case InputKey:
		d.Key(e.Key)
	case InputResize:
		d.Resize()
	case InputFunc:
		e.Func()
		d.Render()
	case InputError:
		select {
		case d.Error <- e.Error:
		default:
			d.Log.Error().Err(e.Error).Msg("from devdraw")
		}
	}
}

// MarkLayout marks ui as needing a layout. A nil ui marks the entire tree.
func (d *DUI) MarkLayout(ui UI) {
	if ui == nil {
		d.Top.Layout = Dirty
		return
	}
	if !d.Top.UI.Mark(&d.Top, ui, true) {
		d.Log.Debug().Msg("MarkLayout: ui not found, marking top")
		d.Top.Layout = Dirty
	}
}

// MarkDraw marks ui as needing a draw. A nil ui marks the entire tree.
func (d *DUI) MarkDraw(ui UI) {
	if ui == nil {
		d.Top.Draw = Dirty
		return
	}
	if !d.Top.UI.Mark(&d.Top, ui, false) {
		d.Top.Draw = Dirty
	}
}

func (d *DUI) done() {
	d.doneOnce.Do(func() {
		close(d.Done)
	})
}

// Close stops the input loop, closes the window and closes Done.
func (d *DUI) Close() {
	select {
	case d.stop <- struct{}{}:
	default:
	}
	if err := d.Display.Close(); err != nil {
		d.Log.Error().Err(err).Msg("close display")
	}
	d.done()
}

// Font returns font, or the default font if font is nil.
func (d *DUI) Font(font *draw.Font) *draw.Font {
	if font != nil {
		return font
	}
	return d.Display.DefaultFont
}

// measurer returns the measurer for text in font, falling back to TextMeasurer and then the default font.
func (d *DUI) measurer(font *draw.Font) Measurer {
	if font != nil {
		return font
	}
	if d.TextMeasurer != nil {
		return d.TextMeasurer
	}
	return d.Display.DefaultFont
}

// Scale turns lowDPI pixels into pixels for the display.
func (d *DUI) Scale(n int) int {
	if d.Display == nil || d.Display.DPI < 2*100 {
		return n
	}
	return (d.Display.DPI / 100) * n
}

// ScaleSpace returns s scaled for the display.
func (d *DUI) ScaleSpace(s Space) Space {
	return s.Map(d.Scale)
}

// theme returns the theme, the default if none was set.
func (d *DUI) theme() *Theme {
	if d.Theme == nil {
		d.Theme = DefaultTheme()
	}
	return d.Theme
}

func (d *DUI) debugLayout(self *Kid) {
	if d.DebugLayout > 0 {
		d.Log.Debug().Str("ui", self.ID).Stringer("r", self.R).Stringer("layout", self.Layout).Stringer("draw", self.Draw).Msg("layout")
	}
}

func (d *DUI) debugDraw(self *Kid) {
	if d.DebugDraw > 0 {
		d.Log.Debug().Str("ui", self.ID).Stringer("r", self.R).Stringer("layout", self.Layout).Stringer("draw", self.Draw).Msg("draw")
	}
}

// PrintUI logs a line about a UI, for use in implementations of UI.Print.
func PrintUI(dui *DUI, s string, self *Kid, indent int) {
	dui.Log.Info().Int("indent", indent).Str("ui", s).Str("id", self.ID).Stringer("r", self.R).Stringer("layout", self.Layout).Stringer("draw", self.Draw).Msg(fmt.Sprintf("%*s%s", indent*2, "", s))
}
