// Package platform feeds X11 input and frame timing into an imgui.IO.
//
// The host owns the event loop. It forwards every X event to
// Session.HandleEvent and calls Session.NewFrame once per rendered frame,
// before any UI code runs. Both must be called from the thread that owns the
// display connection.
package platform

import (
	"fmt"
	"log/slog"

	"github.com/tinyrange/imx11/internal/imgui"
	"github.com/tinyrange/imx11/internal/x11"
	"github.com/tinyrange/imx11/internal/x11/keysym"
)

// Display is the part of an X server connection the adapter queries.
type Display interface {
	GetGeometry(w x11.Window) (width, height uint32, err error)
	QueryPointer(w x11.Window) (x, y int32, ok bool)
	WarpPointer(w x11.Window, x, y int32)
	QueryKeymap() x11.Keymap
	KeycodeToKeysym(code x11.Keycode, group, level int) keysym.Keysym
	KeysymToKeycode(sym keysym.Keysym) x11.Keycode
}

// Clock is a monotonic tick source.
type Clock interface {
	Now() uint64
	TicksPerSecond() uint64
}

// keyRoles lists the keysym bound to each imgui key role.
var keyRoles = [imgui.KeyCount]keysym.Keysym{
	imgui.KeyTab:        keysym.Tab,
	imgui.KeyLeftArrow:  keysym.Left,
	imgui.KeyRightArrow: keysym.Right,
	imgui.KeyUpArrow:    keysym.Up,
	imgui.KeyDownArrow:  keysym.Down,
	imgui.KeyPageUp:     keysym.Prior,
	imgui.KeyPageDown:   keysym.Next,
	imgui.KeyHome:       keysym.Home,
	imgui.KeyEnd:        keysym.End,
	imgui.KeyInsert:     keysym.Insert,
	imgui.KeyDelete:     keysym.Delete,
	imgui.KeyBackspace:  keysym.BackSpace,
	imgui.KeySpace:      keysym.Space,
	imgui.KeyEnter:      keysym.Return,
	imgui.KeyEscape:     keysym.Escape,
	imgui.KeyA:          keysym.A,
	imgui.KeyC:          keysym.C,
	imgui.KeyV:          keysym.V,
	imgui.KeyX:          keysym.X,
	imgui.KeyY:          keysym.Y,
	imgui.KeyZ:          keysym.Z,
}

// modifierKeys holds the keycodes polled for modifier state, resolved once
// at Init like the key map.
type modifierKeys struct {
	ctrlL, ctrlR   x11.Keycode
	shiftL, shiftR x11.Keycode
	altL, altR     x11.Keycode
	superL, superR x11.Keycode
}

// Session is the adapter state for one window. A Session is not safe for
// concurrent use.
type Session struct {
	ctx *imgui.Context
	io  *imgui.IO
	dpy Display
	win x11.Window
	clk Clock

	time           uint64
	ticksPerSecond uint64

	mods            modifierKeys
	lastMouseCursor imgui.MouseCursor

	hasGamepad           bool
	wantUpdateHasGamepad bool

	opts Options
	log  *slog.Logger
}

// Init starts a session that writes into ctx.IO. The display and window are
// borrowed and must outlive the session.
func Init(ctx *imgui.Context, dpy Display, win x11.Window, clk Clock, opts Options) (*Session, error) {
	switch {
	case ctx == nil || ctx.IO == nil:
		return nil, fmt.Errorf("%w: no UI context", ErrConfiguration)
	case dpy == nil:
		return nil, fmt.Errorf("%w: no display", ErrConfiguration)
	case win == 0:
		return nil, fmt.Errorf("%w: no window", ErrConfiguration)
	case clk == nil:
		return nil, fmt.Errorf("%w: no clock", ErrConfiguration)
	}

	opts.normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	tps := clk.TicksPerSecond()
	if tps == 0 {
		return nil, fmt.Errorf("%w: clock reports zero ticks per second", ErrConfiguration)
	}

	s := &Session{
		ctx:                  ctx,
		io:                   ctx.IO,
		dpy:                  dpy,
		win:                  win,
		clk:                  clk,
		time:                 clk.Now(),
		ticksPerSecond:       tps,
		lastMouseCursor:      imgui.MouseCursorCount,
		wantUpdateHasGamepad: true,
		opts:                 opts,
		log:                  opts.Logger.With("component", opts.PlatformName),
	}

	io := s.io
	io.BackendFlags |= imgui.BackendHasMouseCursors
	io.BackendFlags |= imgui.BackendHasSetMousePos
	io.BackendPlatformName = opts.PlatformName

	for role, sym := range keyRoles {
		io.KeyMap[role] = int(dpy.KeysymToKeycode(sym))
	}

	s.mods = modifierKeys{
		ctrlL:  dpy.KeysymToKeycode(keysym.ControlL),
		ctrlR:  dpy.KeysymToKeycode(keysym.ControlR),
		shiftL: dpy.KeysymToKeycode(keysym.ShiftL),
		shiftR: dpy.KeysymToKeycode(keysym.ShiftR),
		altL:   dpy.KeysymToKeycode(keysym.AltL),
		altR:   dpy.KeysymToKeycode(keysym.AltR),
		superL: dpy.KeysymToKeycode(keysym.SuperL),
		superR: dpy.KeysymToKeycode(keysym.SuperR),
	}

	s.log.Info("platform session started",
		"window", fmt.Sprintf("%#x", uintptr(win)),
		"ticks_per_second", tps)
	s.log.Debug("platform capabilities",
		"backend_flags", fmt.Sprintf("%#x", uint32(io.BackendFlags)),
		"modifiers", opts.Modifiers,
		"warp_pointer", !opts.NoWarpPointer,
		"gamepad", opts.Gamepad && gamepadCompiled)
	return s, nil
}

// Shutdown forgets the borrowed handles. It is safe to call more than once
// and on a nil Session.
func (s *Session) Shutdown() {
	if !s.active() {
		return
	}
	s.log.Info("platform session stopped")
	s.ctx = nil
	s.io = nil
	s.dpy = nil
	s.win = 0
	s.clk = nil
}

// Active reports whether the session accepts input.
func (s *Session) Active() bool {
	return s.active()
}

func (s *Session) active() bool {
	return s != nil && s.dpy != nil && s.io != nil
}
