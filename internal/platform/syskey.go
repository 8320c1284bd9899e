package platform

import "github.com/tinyrange/imx11/internal/x11/keysym"

// IsSystemKey reports whether sym is tracked as a held key in IO.KeysDown
// rather than delivered as text input.
func IsSystemKey(sym keysym.Keysym) bool {
	switch sym {
	case keysym.ShiftL, keysym.ShiftR,
		keysym.ControlL, keysym.ControlR,
		keysym.AltL, keysym.AltR,
		keysym.SuperL, keysym.SuperR,
		keysym.CapsLock, keysym.ShiftLock,
		keysym.BackSpace, keysym.Delete,
		keysym.Left, keysym.Right,
		keysym.Up, keysym.Down,
		keysym.Prior, keysym.Next,
		keysym.Home, keysym.End,
		keysym.Insert, keysym.Return:
		return true
	}
	return false
}
