// Package imgui models the input side of an immediate-mode UI library: the
// per-frame IO structure a platform backend fills in, and the flags and key
// roles the two sides agree on.
package imgui

import "math"

// Key is a logical key role the UI library looks up through IO.KeyMap.
type Key int

const (
	KeyTab Key = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA // for text edit CTRL+A: select all
	KeyC // for text edit CTRL+C: copy
	KeyV // for text edit CTRL+V: paste
	KeyX // for text edit CTRL+X: cut
	KeyY // for text edit CTRL+Y: redo
	KeyZ // for text edit CTRL+Z: undo
	KeyCount
)

var keyNames = [KeyCount]string{
	"Tab", "LeftArrow", "RightArrow", "UpArrow", "DownArrow", "PageUp",
	"PageDown", "Home", "End", "Insert", "Delete", "Backspace", "Space",
	"Enter", "Escape", "A", "C", "V", "X", "Y", "Z",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "Key(?)"
	}
	return keyNames[k]
}

// ConfigFlags are set by the application.
type ConfigFlags uint32

const (
	ConfigNavEnableKeyboard ConfigFlags = 1 << iota
	ConfigNavEnableGamepad
	ConfigNavEnableSetMousePos
	ConfigNavNoCaptureKeyboard
	ConfigNoMouse
	ConfigNoMouseCursorChange
)

// BackendFlags are set by the platform and renderer backends to declare
// what they support.
type BackendFlags uint32

const (
	BackendHasGamepad BackendFlags = 1 << iota
	BackendHasMouseCursors
	BackendHasSetMousePos
)

// MouseCursor is the cursor shape the UI library would like displayed.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorCount
)

// Mouse button slots in IO.MouseDown.
const (
	MouseButtonPrimary   = 0
	MouseButtonSecondary = 1
	MouseButtonMiddle    = 2
	MouseButtonCount     = 5
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// UnavailableMousePos is stored in IO.MousePos when the pointer position is
// unknown.
var UnavailableMousePos = Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32}

// IO is the communication structure between the application, its platform
// backend and the UI library. Backends write input into it; the library
// consumes it once per frame.
type IO struct {
	ConfigFlags         ConfigFlags
	BackendFlags        BackendFlags
	BackendPlatformName string

	// DisplaySize is the main display size in pixels.
	DisplaySize Vec2
	// DeltaTime is the time elapsed since the last frame, in seconds.
	DeltaTime float32

	// KeyMap maps each key role to an index into KeysDown.
	KeyMap [KeyCount]int
	// KeysDown holds the down state of keys, indexed by the platform's key
	// identifier. Absent entries are up.
	KeysDown map[int]bool

	KeyCtrl  bool
	KeyShift bool
	KeyAlt   bool
	KeySuper bool

	MousePos   Vec2
	MouseDown  [MouseButtonCount]bool
	MouseWheel float32

	// WantSetMousePos is set by the library when keyboard/gamepad navigation
	// moved the mouse; the backend should warp the OS pointer to MousePos.
	WantSetMousePos bool
	// MouseCursor is the shape requested for the current frame.
	MouseCursor MouseCursor

	// InputQueueCharacters holds text typed since the last frame.
	InputQueueCharacters []rune
}

// NewIO returns an IO with the library's defaults.
func NewIO() *IO {
	io := &IO{
		DisplaySize: Vec2{X: -1, Y: -1},
		DeltaTime:   1.0 / 60.0,
		KeysDown:    make(map[int]bool),
		MousePos:    UnavailableMousePos,
		MouseCursor: MouseCursorArrow,
	}
	for i := range io.KeyMap {
		io.KeyMap[i] = -1
	}
	return io
}

// AddInputCharacter queues a typed character. Zero is ignored.
func (io *IO) AddInputCharacter(c rune) {
	if c == 0 {
		return
	}
	io.InputQueueCharacters = append(io.InputQueueCharacters, c)
}

// SetKeyDown records the down state of the key with the given platform id.
func (io *IO) SetKeyDown(id int, down bool) {
	if io.KeysDown == nil {
		io.KeysDown = make(map[int]bool)
	}
	if down {
		io.KeysDown[id] = true
	} else {
		delete(io.KeysDown, id)
	}
}

// IsKeyDown reports whether the key bound to role k is held.
func (io *IO) IsKeyDown(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	id := io.KeyMap[k]
	if id < 0 {
		return false
	}
	return io.KeysDown[id]
}

// EndFrame discards per-frame accumulators once the library has consumed
// them.
func (io *IO) EndFrame() {
	io.MouseWheel = 0
	io.InputQueueCharacters = io.InputQueueCharacters[:0]
}

// Context owns the state of one UI instance.
type Context struct {
	IO *IO
}

// CreateContext returns a fresh context with default IO.
func CreateContext() *Context {
	return &Context{IO: NewIO()}
}
