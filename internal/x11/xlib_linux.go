//go:build linux

package x11

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/tinyrange/imx11/internal/x11/keysym"
)

var (
	xlibOnce sync.Once
	xlibErr  error

	xOpenDisplay        func(*byte) uintptr
	xCloseDisplay       func(uintptr) int32
	xDefaultScreen      func(uintptr) int32
	xRootWindow         func(uintptr, int32) uintptr
	xBlackPixel         func(uintptr, int32) uint64
	xWhitePixel         func(uintptr, int32) uint64
	xCreateSimpleWindow func(uintptr, uintptr, int32, int32, uint32, uint32, uint32, uint64, uint64) uintptr
	xDestroyWindow      func(uintptr, uintptr) int32
	xSelectInput        func(uintptr, uintptr, int64) int32
	xMapWindow          func(uintptr, uintptr) int32
	xStoreName          func(uintptr, uintptr, *byte) int32
	xInternAtom         func(uintptr, *byte, int32) uint64
	xSetWMProtocols     func(uintptr, uintptr, *uint64, int32) int32
	xFlush              func(uintptr) int32
	xPending            func(uintptr) int32
	xNextEvent          func(uintptr, unsafe.Pointer) int32
	xGetGeometry        func(uintptr, uintptr, *uintptr, *int32, *int32, *uint32, *uint32, *uint32, *uint32) int32
	xQueryPointer       func(uintptr, uintptr, *uintptr, *uintptr, *int32, *int32, *int32, *int32, *uint32) int32
	xWarpPointer        func(uintptr, uintptr, uintptr, int32, int32, uint32, uint32, int32, int32) int32
	xQueryKeymap        func(uintptr, *byte) int32
	xKeysymToKeycode    func(uintptr, uint64) uint8
	xkbKeycodeToKeysym  func(uintptr, uint32, int32, int32) uint64
)

// ErrNoDisplay is returned by Open when the server connection fails.
var ErrNoDisplay = errors.New("cannot open X display")

func loadXlib() error {
	xlibOnce.Do(func() {
		lib, err := purego.Dlopen("libX11.so.6", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			xlibErr = fmt.Errorf("load libX11: %w", err)
			return
		}

		purego.RegisterLibFunc(&xOpenDisplay, lib, "XOpenDisplay")
		purego.RegisterLibFunc(&xCloseDisplay, lib, "XCloseDisplay")
		purego.RegisterLibFunc(&xDefaultScreen, lib, "XDefaultScreen")
		purego.RegisterLibFunc(&xRootWindow, lib, "XRootWindow")
		purego.RegisterLibFunc(&xBlackPixel, lib, "XBlackPixel")
		purego.RegisterLibFunc(&xWhitePixel, lib, "XWhitePixel")
		purego.RegisterLibFunc(&xCreateSimpleWindow, lib, "XCreateSimpleWindow")
		purego.RegisterLibFunc(&xDestroyWindow, lib, "XDestroyWindow")
		purego.RegisterLibFunc(&xSelectInput, lib, "XSelectInput")
		purego.RegisterLibFunc(&xMapWindow, lib, "XMapWindow")
		purego.RegisterLibFunc(&xStoreName, lib, "XStoreName")
		purego.RegisterLibFunc(&xInternAtom, lib, "XInternAtom")
		purego.RegisterLibFunc(&xSetWMProtocols, lib, "XSetWMProtocols")
		purego.RegisterLibFunc(&xFlush, lib, "XFlush")
		purego.RegisterLibFunc(&xPending, lib, "XPending")
		purego.RegisterLibFunc(&xNextEvent, lib, "XNextEvent")
		purego.RegisterLibFunc(&xGetGeometry, lib, "XGetGeometry")
		purego.RegisterLibFunc(&xQueryPointer, lib, "XQueryPointer")
		purego.RegisterLibFunc(&xWarpPointer, lib, "XWarpPointer")
		purego.RegisterLibFunc(&xQueryKeymap, lib, "XQueryKeymap")
		purego.RegisterLibFunc(&xKeysymToKeycode, lib, "XKeysymToKeycode")
		// Xkb lives in libX11 itself.
		purego.RegisterLibFunc(&xkbKeycodeToKeysym, lib, "XkbKeycodeToKeysym")
	})
	return xlibErr
}

// Display is a connection to an X server. It is not safe for concurrent use
// and must stay on the thread that opened it.
type Display struct {
	ptr    uintptr
	screen int32
	root   Window

	wmProtocols    uint64
	wmDeleteWindow uint64
}

// Open connects to the named display, or to $DISPLAY when name is empty.
func Open(name string) (*Display, error) {
	if err := loadXlib(); err != nil {
		return nil, err
	}

	var cname *byte
	if name != "" {
		cname = cString(name)
	}
	ptr := xOpenDisplay(cname)
	if ptr == 0 {
		if name == "" {
			return nil, ErrNoDisplay
		}
		return nil, fmt.Errorf("%w %q", ErrNoDisplay, name)
	}

	screen := xDefaultScreen(ptr)
	d := &Display{
		ptr:    ptr,
		screen: screen,
		root:   Window(xRootWindow(ptr, screen)),
	}
	d.wmProtocols = xInternAtom(ptr, cString("WM_PROTOCOLS"), 0)
	d.wmDeleteWindow = xInternAtom(ptr, cString("WM_DELETE_WINDOW"), 0)
	return d, nil
}

// Close disconnects from the server. The Display must not be used afterwards.
func (d *Display) Close() {
	if d == nil || d.ptr == 0 {
		return
	}
	xCloseDisplay(d.ptr)
	d.ptr = 0
}

// CreateWindow creates and maps a top-level window that reports key, button,
// motion, exposure and structure events and asks the window manager to send
// WM_DELETE_WINDOW instead of killing the connection.
func (d *Display) CreateWindow(title string, width, height uint32) (Window, error) {
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("invalid window size %dx%d", width, height)
	}

	w := xCreateSimpleWindow(d.ptr, uintptr(d.root), 0, 0, width, height, 1,
		xBlackPixel(d.ptr, d.screen), xWhitePixel(d.ptr, d.screen))
	if w == 0 {
		return 0, errors.New("XCreateSimpleWindow failed")
	}

	mask := KeyPressMask | KeyReleaseMask | ButtonPressMask | ButtonReleaseMask |
		PointerMotionMask | ExposureMask | StructureNotifyMask
	xSelectInput(d.ptr, w, int64(mask))
	xStoreName(d.ptr, w, cString(title))

	protocols := d.wmDeleteWindow
	xSetWMProtocols(d.ptr, w, &protocols, 1)

	xMapWindow(d.ptr, w)
	xFlush(d.ptr)
	return Window(w), nil
}

// DestroyWindow destroys a window created with CreateWindow.
func (d *Display) DestroyWindow(w Window) {
	xDestroyWindow(d.ptr, uintptr(w))
	xFlush(d.ptr)
}

// IsCloseRequest reports whether ev is the window manager asking to close.
func (d *Display) IsCloseRequest(ev *Event) bool {
	return ev.Type == ClientMessage && ev.Data0 == d.wmDeleteWindow
}

// Pending returns the number of events that can be read without blocking.
func (d *Display) Pending() int {
	return int(xPending(d.ptr))
}

// NextEvent blocks until an event arrives and decodes it.
func (d *Display) NextEvent() Event {
	var raw RawEvent
	xNextEvent(d.ptr, unsafe.Pointer(&raw[0]))
	return raw.Decode()
}

// GetGeometry returns the size of w.
func (d *Display) GetGeometry(w Window) (width, height uint32, err error) {
	var root uintptr
	var x, y int32
	var border, depth uint32
	if xGetGeometry(d.ptr, uintptr(w), &root, &x, &y, &width, &height, &border, &depth) == 0 {
		return 0, 0, fmt.Errorf("XGetGeometry failed for window %#x", uintptr(w))
	}
	return width, height, nil
}

// QueryPointer returns the pointer position relative to w. ok is false when
// the pointer is on a different screen.
func (d *Display) QueryPointer(w Window) (x, y int32, ok bool) {
	var root, child uintptr
	var rootX, rootY int32
	var mask uint32
	same := xQueryPointer(d.ptr, uintptr(w), &root, &child, &rootX, &rootY, &x, &y, &mask)
	return x, y, same != 0
}

// WarpPointer moves the pointer to (x, y) relative to w.
func (d *Display) WarpPointer(w Window, x, y int32) {
	xWarpPointer(d.ptr, 0, uintptr(w), 0, 0, 0, 0, x, y)
	xFlush(d.ptr)
}

// QueryKeymap returns a snapshot of all physical key states.
func (d *Display) QueryKeymap() Keymap {
	var keys Keymap
	xQueryKeymap(d.ptr, &keys[0])
	return keys
}

// KeycodeToKeysym resolves code using the given group and shift level.
func (d *Display) KeycodeToKeysym(code Keycode, group, level int) keysym.Keysym {
	return keysym.Keysym(xkbKeycodeToKeysym(d.ptr, uint32(code), int32(group), int32(level)))
}

// KeysymToKeycode returns the keycode that produces sym in the current
// layout, or 0 if none does.
func (d *Display) KeysymToKeycode(sym keysym.Keysym) Keycode {
	return Keycode(xKeysymToKeycode(d.ptr, uint64(sym)))
}

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}
