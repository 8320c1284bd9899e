// Package x11 is the adapter's boundary with the X Window System.
//
// The types in this file are platform independent so that code and tests
// that only translate events do not need libX11. The library binding itself
// lives in xlib_linux.go.
package x11

import (
	"encoding/binary"
	"fmt"
)

// Window is an X11 window (or drawable) id.
type Window uintptr

// Keycode is a physical key code as reported by the server (8..255).
type Keycode uint8

// EventType is the type field of an XEvent.
type EventType int32

const (
	KeyPress        EventType = 2
	KeyRelease      EventType = 3
	ButtonPress     EventType = 4
	ButtonRelease   EventType = 5
	MotionNotify    EventType = 6
	Expose          EventType = 12
	ConfigureNotify EventType = 22
	ClientMessage   EventType = 33
)

func (t EventType) String() string {
	switch t {
	case KeyPress:
		return "KeyPress"
	case KeyRelease:
		return "KeyRelease"
	case ButtonPress:
		return "ButtonPress"
	case ButtonRelease:
		return "ButtonRelease"
	case MotionNotify:
		return "MotionNotify"
	case Expose:
		return "Expose"
	case ConfigureNotify:
		return "ConfigureNotify"
	case ClientMessage:
		return "ClientMessage"
	default:
		return fmt.Sprintf("EventType(%d)", int32(t))
	}
}

// ModMask is the modifier and button state carried by key and button events.
type ModMask uint32

const (
	ShiftMask   ModMask = 1 << 0
	LockMask    ModMask = 1 << 1
	ControlMask ModMask = 1 << 2
	Mod1Mask    ModMask = 1 << 3
	Mod2Mask    ModMask = 1 << 4
	Mod3Mask    ModMask = 1 << 5
	Mod4Mask    ModMask = 1 << 6
	Mod5Mask    ModMask = 1 << 7
)

// Pointer buttons as numbered by the core protocol.
const (
	Button1 uint32 = 1 // primary
	Button2 uint32 = 2 // middle
	Button3 uint32 = 3 // secondary
	Button4 uint32 = 4 // wheel up
	Button5 uint32 = 5 // wheel down
)

// EventMask selects which events a window receives.
type EventMask int64

const (
	KeyPressMask        EventMask = 1 << 0
	KeyReleaseMask      EventMask = 1 << 1
	ButtonPressMask     EventMask = 1 << 2
	ButtonReleaseMask   EventMask = 1 << 3
	PointerMotionMask   EventMask = 1 << 6
	ExposureMask        EventMask = 1 << 15
	StructureNotifyMask EventMask = 1 << 17
)

// Event is the decoded subset of an XEvent the adapter consumes.
type Event struct {
	Type   EventType
	Window Window
	Time   uint64

	// X and Y are window-relative pointer coordinates for key and button
	// events.
	X, Y int32

	State ModMask

	// Keycode is set for KeyPress/KeyRelease, Button for
	// ButtonPress/ButtonRelease.
	Keycode Keycode
	Button  uint32

	// Data0 is the first long of a ClientMessage payload.
	Data0 uint64
}

// RawEventSize is sizeof(XEvent) on LP64 platforms: a union padded to 24
// longs.
const RawEventSize = 24 * 8

// RawEvent is the memory of one XEvent as filled in by XNextEvent.
type RawEvent [RawEventSize]byte

// XKeyEvent and XButtonEvent share their layout up to the detail field.
const (
	offType    = 0
	offWindow  = 32
	offTime    = 56
	offX       = 64
	offY       = 68
	offState   = 80
	offDetail  = 84
	offMsgData = 56 // XClientMessageEvent.data.l[0]
)

// Decode extracts the fields the adapter uses. Fields that do not apply to
// the event's type are left zero.
func (r *RawEvent) Decode() Event {
	order := binary.NativeEndian
	ev := Event{
		Type:   EventType(int32(order.Uint32(r[offType:]))),
		Window: Window(order.Uint64(r[offWindow:])),
	}

	switch ev.Type {
	case KeyPress, KeyRelease, ButtonPress, ButtonRelease, MotionNotify:
		ev.Time = order.Uint64(r[offTime:])
		ev.X = int32(order.Uint32(r[offX:]))
		ev.Y = int32(order.Uint32(r[offY:]))
		ev.State = ModMask(order.Uint32(r[offState:]))
		detail := order.Uint32(r[offDetail:])
		switch ev.Type {
		case KeyPress, KeyRelease:
			ev.Keycode = Keycode(detail)
		case ButtonPress, ButtonRelease:
			ev.Button = detail
		}
	case ClientMessage:
		ev.Data0 = order.Uint64(r[offMsgData:])
	}
	return ev
}

// Keymap is the 256-bit key state vector returned by XQueryKeymap. Bit n is
// set while keycode n is held.
type Keymap [32]byte

// IsDown reports whether code is held in the snapshot.
func (k *Keymap) IsDown(code Keycode) bool {
	return k[code/8]&(1<<(code%8)) != 0
}

// Set marks code as held or released.
func (k *Keymap) Set(code Keycode, down bool) {
	if down {
		k[code/8] |= 1 << (code % 8)
	} else {
		k[code/8] &^= 1 << (code % 8)
	}
}
