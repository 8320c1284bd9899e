package platform

import (
	"log/slog"
	"testing"

	"github.com/tinyrange/imx11/internal/imgui"
	"github.com/tinyrange/imx11/internal/x11"
	"github.com/tinyrange/imx11/internal/x11/keysym"
)

// kpHome is the unshifted keypad 7 when Num Lock is off.
const kpHome keysym.Keysym = 0xff95

// Keycodes of a standard pc105 US layout.
const (
	kcEscape    x11.Keycode = 9
	kcOne       x11.Keycode = 10
	kcBackSpace x11.Keycode = 22
	kcTab       x11.Keycode = 23
	kcQ         x11.Keycode = 24
	kcY         x11.Keycode = 29
	kcReturn    x11.Keycode = 36
	kcControlL  x11.Keycode = 37
	kcA         x11.Keycode = 38
	kcShiftL    x11.Keycode = 50
	kcZ         x11.Keycode = 52
	kcX         x11.Keycode = 53
	kcC         x11.Keycode = 54
	kcV         x11.Keycode = 55
	kcShiftR    x11.Keycode = 62
	kcAltL      x11.Keycode = 64
	kcSpace     x11.Keycode = 65
	kcCapsLock  x11.Keycode = 66
	kcKP7       x11.Keycode = 79
	kcControlR  x11.Keycode = 105
	kcAltR      x11.Keycode = 108
	kcHome      x11.Keycode = 110
	kcUp        x11.Keycode = 111
	kcPrior     x11.Keycode = 112
	kcLeft      x11.Keycode = 113
	kcRight     x11.Keycode = 114
	kcEnd       x11.Keycode = 115
	kcDown      x11.Keycode = 116
	kcNext      x11.Keycode = 117
	kcInsert    x11.Keycode = 118
	kcDelete    x11.Keycode = 119
	kcSuperL    x11.Keycode = 133
	kcSuperR    x11.Keycode = 134
	kcUnmapped  x11.Keycode = 200
)

func usLayout() map[x11.Keycode][2]keysym.Keysym {
	return map[x11.Keycode][2]keysym.Keysym{
		kcEscape:    {keysym.Escape, keysym.Escape},
		kcOne:       {'1', '!'},
		kcBackSpace: {keysym.BackSpace, keysym.BackSpace},
		kcTab:       {keysym.Tab, keysym.Tab},
		kcQ:         {'q', 'Q'},
		kcY:         {'y', keysym.Y},
		kcReturn:    {keysym.Return, keysym.Return},
		kcControlL:  {keysym.ControlL, keysym.ControlL},
		kcA:         {'a', keysym.A},
		kcShiftL:    {keysym.ShiftL, keysym.ShiftL},
		kcZ:         {'z', keysym.Z},
		kcX:         {'x', keysym.X},
		kcC:         {'c', keysym.C},
		kcV:         {'v', keysym.V},
		kcShiftR:    {keysym.ShiftR, keysym.ShiftR},
		kcAltL:      {keysym.AltL, keysym.AltL},
		kcSpace:     {keysym.Space, keysym.Space},
		kcCapsLock:  {keysym.CapsLock, keysym.CapsLock},
		kcKP7:       {kpHome, keysym.KP0 + 7},
		kcControlR:  {keysym.ControlR, keysym.ControlR},
		kcAltR:      {keysym.AltR, keysym.AltR},
		kcHome:      {keysym.Home, keysym.Home},
		kcUp:        {keysym.Up, keysym.Up},
		kcPrior:     {keysym.Prior, keysym.Prior},
		kcLeft:      {keysym.Left, keysym.Left},
		kcRight:     {keysym.Right, keysym.Right},
		kcEnd:       {keysym.End, keysym.End},
		kcDown:      {keysym.Down, keysym.Down},
		kcNext:      {keysym.Next, keysym.Next},
		kcInsert:    {keysym.Insert, keysym.Insert},
		kcDelete:    {keysym.Delete, keysym.Delete},
		kcSuperL:    {keysym.SuperL, keysym.SuperL},
		kcSuperR:    {keysym.SuperR, keysym.SuperR},
	}
}

type warp struct {
	x, y int32
}

// fakeDisplay is an in-memory X server with one window.
type fakeDisplay struct {
	width, height uint32
	geometryErr   error

	pointerX, pointerY int32
	offScreen          bool

	keys    x11.Keymap
	symbols map[x11.Keycode][2]keysym.Keysym

	warps []warp
	calls []string
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		width:   1280,
		height:  720,
		symbols: usLayout(),
	}
}

func (d *fakeDisplay) GetGeometry(w x11.Window) (uint32, uint32, error) {
	d.calls = append(d.calls, "GetGeometry")
	if d.geometryErr != nil {
		return 0, 0, d.geometryErr
	}
	return d.width, d.height, nil
}

func (d *fakeDisplay) QueryPointer(w x11.Window) (int32, int32, bool) {
	d.calls = append(d.calls, "QueryPointer")
	if d.offScreen {
		return 0, 0, false
	}
	return d.pointerX, d.pointerY, true
}

func (d *fakeDisplay) WarpPointer(w x11.Window, x, y int32) {
	d.calls = append(d.calls, "WarpPointer")
	d.warps = append(d.warps, warp{x, y})
	d.pointerX, d.pointerY = x, y
}

func (d *fakeDisplay) QueryKeymap() x11.Keymap {
	d.calls = append(d.calls, "QueryKeymap")
	return d.keys
}

func (d *fakeDisplay) KeycodeToKeysym(code x11.Keycode, group, level int) keysym.Keysym {
	if group != 0 || level < 0 || level > 1 {
		return keysym.NoSymbol
	}
	return d.symbols[code][level]
}

func (d *fakeDisplay) KeysymToKeycode(sym keysym.Keysym) x11.Keycode {
	for code := 8; code < 256; code++ {
		levels, ok := d.symbols[x11.Keycode(code)]
		if !ok {
			continue
		}
		if levels[0] == sym || levels[1] == sym {
			return x11.Keycode(code)
		}
	}
	return 0
}

// fakeClock is a manually advanced tick source.
type fakeClock struct {
	now uint64
	tps uint64
}

func (c *fakeClock) Now() uint64            { return c.now }
func (c *fakeClock) TicksPerSecond() uint64 { return c.tps }

const testWindow x11.Window = 0x3200004

type fixture struct {
	ctx   *imgui.Context
	dpy   *fakeDisplay
	clock *fakeClock
	s     *Session
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	f := &fixture{
		ctx:   imgui.CreateContext(),
		dpy:   newFakeDisplay(),
		clock: &fakeClock{now: 5000, tps: 1000},
	}
	s, err := Init(f.ctx, f.dpy, testWindow, f.clock, opts)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	f.s = s
	return f
}

func (f *fixture) io() *imgui.IO {
	return f.ctx.IO
}

func (f *fixture) key(t *testing.T, typ x11.EventType, code x11.Keycode, state x11.ModMask) error {
	t.Helper()
	ret, err := f.s.HandleEvent(&x11.Event{Type: typ, Window: testWindow, Keycode: code, State: state})
	if ret != NotConsumed {
		t.Fatalf("HandleEvent returned %d, want %d", ret, NotConsumed)
	}
	return err
}

func (f *fixture) button(t *testing.T, typ x11.EventType, button uint32) {
	t.Helper()
	ret, err := f.s.HandleEvent(&x11.Event{Type: typ, Window: testWindow, Button: button})
	if ret != NotConsumed {
		t.Fatalf("HandleEvent returned %d, want %d", ret, NotConsumed)
	}
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
}

var _ Display = (*fakeDisplay)(nil)
