package platform

import "github.com/tinyrange/imx11/internal/imgui"

// updateGamepads is the gamepad polling hook. No X11 gamepad source is
// implemented, so it only keeps BackendHasGamepad honest.
func (s *Session) updateGamepads() {
	io := s.io
	if !gamepadCompiled || !s.opts.Gamepad || io.ConfigFlags&imgui.ConfigNavEnableGamepad == 0 {
		return
	}

	if s.wantUpdateHasGamepad {
		s.hasGamepad = probeGamepad()
		s.wantUpdateHasGamepad = false
	}

	io.BackendFlags &^= imgui.BackendHasGamepad
	if !s.hasGamepad {
		return
	}
	io.BackendFlags |= imgui.BackendHasGamepad
	pollGamepad(io)
}

func probeGamepad() bool { return false }

func pollGamepad(*imgui.IO) {}
