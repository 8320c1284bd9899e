package platform

import (
	"fmt"

	"github.com/tinyrange/imx11/internal/imgui"
	"github.com/tinyrange/imx11/internal/x11"
	"github.com/tinyrange/imx11/internal/x11/keysym"
)

// NotConsumed is returned by HandleEvent for every event: the adapter never
// claims an event exclusively, so the host should keep propagating it.
const NotConsumed = 0

// HandleEvent translates one X event into io state. It never blocks and never
// fails the host; the returned error only explains why an event contributed
// nothing.
func (s *Session) HandleEvent(ev *x11.Event) (int, error) {
	if !s.active() {
		return NotConsumed, ErrNoActiveContext
	}
	if ev == nil {
		return NotConsumed, nil
	}

	io := s.io
	switch ev.Type {
	case x11.ButtonPress, x11.ButtonRelease:
		pressed := ev.Type == x11.ButtonPress
		switch ev.Button {
		case x11.Button1:
			io.MouseDown[imgui.MouseButtonPrimary] = pressed
		case x11.Button2:
			io.MouseDown[imgui.MouseButtonMiddle] = pressed
		case x11.Button3:
			io.MouseDown[imgui.MouseButtonSecondary] = pressed
		case x11.Button4: // wheel up
			if pressed {
				io.MouseWheel += 1
			}
		case x11.Button5: // wheel down
			if pressed {
				io.MouseWheel -= 1
			}
		}

	case x11.KeyPress, x11.KeyRelease:
		sym, err := s.lookupKeysym(ev)
		if err != nil {
			s.log.Debug("dropping key event", "type", ev.Type, "error", err)
			return NotConsumed, err
		}
		pressed := ev.Type == x11.KeyPress
		switch {
		case IsSystemKey(sym):
			io.SetKeyDown(int(ev.Keycode), pressed)
		case pressed:
			io.AddInputCharacter(keysym.ToRune(sym))
		}
	}
	return NotConsumed, nil
}

// lookupKeysym resolves the event's keycode in group 0, at the shifted level
// when Shift is held. A keycode with nothing at that level falls back to its
// unshifted symbol.
func (s *Session) lookupKeysym(ev *x11.Event) (keysym.Keysym, error) {
	level := 0
	if ev.State&x11.ShiftMask != 0 {
		level = 1
	}

	sym := s.dpy.KeycodeToKeysym(ev.Keycode, 0, level)
	if sym == keysym.NoSymbol && level != 0 {
		sym = s.dpy.KeycodeToKeysym(ev.Keycode, 0, 0)
	}
	if sym == keysym.NoSymbol {
		return keysym.NoSymbol, fmt.Errorf("%w: keycode %d", ErrUnmappedKey, ev.Keycode)
	}
	return sym, nil
}
