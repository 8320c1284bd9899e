package platform

import (
	"math"

	"github.com/tinyrange/imx11/internal/imgui"
	"github.com/tinyrange/imx11/internal/x11"
)

// NewFrame refreshes display size, frame timing, modifier state and pointer
// position. Call it once per frame before the UI library starts the frame.
func (s *Session) NewFrame() error {
	if !s.active() {
		return ErrNoActiveContext
	}
	io := s.io

	// No DPI scaling: the display size is the window size in pixels.
	if w, h, err := s.dpy.GetGeometry(s.win); err != nil {
		s.log.Warn("window geometry unavailable", "error", err)
	} else {
		io.DisplaySize = imgui.Vec2{X: float32(w), Y: float32(h)}
	}

	io.DeltaTime = s.advanceClock()

	s.updateModifiers()
	s.updateMousePos()
	s.updateMouseCursor()
	s.updateGamepads()
	return nil
}

// advanceClock returns the seconds since the previous sample, clamped to a
// positive finite value no larger than MaxDeltaTime.
func (s *Session) advanceClock() float32 {
	now := s.clk.Now()
	prev := s.time
	s.time = now

	if now <= prev {
		if now < prev {
			s.log.Debug("clock stepped backwards", "ticks", prev-now)
		}
		return float32(s.opts.FallbackDeltaTime)
	}

	delta := float64(now-prev) / float64(s.ticksPerSecond)
	if math.IsInf(delta, 0) || math.IsNaN(delta) || delta > s.opts.MaxDeltaTime {
		s.log.Debug("frame delta clamped", "delta", delta, "max", s.opts.MaxDeltaTime)
		delta = s.opts.MaxDeltaTime
	}
	if float32(delta) <= 0 {
		// Below float32 resolution.
		return float32(s.opts.FallbackDeltaTime)
	}
	return float32(delta)
}

// updateModifiers samples modifier keys from the physical key state rather
// than from the event stream.
func (s *Session) updateModifiers() {
	io := s.io
	keys := s.dpy.QueryKeymap()
	m := &s.mods

	io.KeyCtrl = held(&keys, m.ctrlL)
	io.KeyShift = held(&keys, m.shiftL)
	io.KeyAlt = held(&keys, m.altL)
	io.KeySuper = false

	if s.opts.Modifiers == ModifiersBoth {
		io.KeyCtrl = io.KeyCtrl || held(&keys, m.ctrlR)
		io.KeyShift = io.KeyShift || held(&keys, m.shiftR)
		io.KeyAlt = io.KeyAlt || held(&keys, m.altR)
		io.KeySuper = held(&keys, m.superL) || held(&keys, m.superR)
	}
}

// held treats keycode 0 (no key produces the keysym) as released.
func held(keys *x11.Keymap, code x11.Keycode) bool {
	return code != 0 && keys.IsDown(code)
}

func (s *Session) updateMousePos() {
	io := s.io

	// Navigation asked us to move the OS pointer.
	if io.WantSetMousePos && !s.opts.NoWarpPointer && io.MousePos != imgui.UnavailableMousePos {
		s.dpy.WarpPointer(s.win, int32(io.MousePos.X), int32(io.MousePos.Y))
	}

	x, y, ok := s.dpy.QueryPointer(s.win)
	if !ok {
		io.MousePos = imgui.UnavailableMousePos
		return
	}
	io.MousePos = imgui.Vec2{X: float32(x), Y: float32(y)}
}

// updateMouseCursor tracks the requested cursor shape. Changing the X cursor
// is left to the host.
func (s *Session) updateMouseCursor() {
	io := s.io
	if io.ConfigFlags&imgui.ConfigNoMouseCursorChange != 0 {
		return
	}
	if io.MouseCursor == s.lastMouseCursor {
		return
	}
	s.log.Debug("mouse cursor changed", "from", s.lastMouseCursor, "to", io.MouseCursor)
	s.lastMouseCursor = io.MouseCursor
}
