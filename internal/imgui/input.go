package imgui

import "sort"

// Event is the base interface for discrete input events derived from IO.
type Event interface {
	isEvent()
}

// MouseMoveEvent represents cursor movement.
type MouseMoveEvent struct {
	X, Y float32
}

func (*MouseMoveEvent) isEvent() {}

// MouseButtonEvent represents a mouse button press/release.
type MouseButtonEvent struct {
	X, Y    float32
	Button  int
	Pressed bool
}

func (*MouseButtonEvent) isEvent() {}

// ScrollEvent represents a scroll wheel movement.
type ScrollEvent struct {
	X, Y   float32
	DeltaY float32
}

func (*ScrollEvent) isEvent() {}

// KeyEvent represents a down/up transition of a tracked key.
type KeyEvent struct {
	// ID is the platform key identifier (the KeysDown index).
	ID      int
	Pressed bool
}

func (*KeyEvent) isEvent() {}

// TextEvent represents text input.
type TextEvent struct {
	Text string
}

func (*TextEvent) isEvent() {}

// ResizeEvent reports a change of DisplaySize.
type ResizeEvent struct {
	Width, Height float32
}

func (*ResizeEvent) isEvent() {}

// InputProcessor converts consecutive IO snapshots to discrete events, for
// consumers that prefer events over polling.
type InputProcessor struct {
	prevMouse   Vec2
	prevButtons [MouseButtonCount]bool
	prevKeys    map[int]bool
	prevSize    Vec2
	initialized bool
}

// ProcessFrame compares io against the previous frame. Call it after the
// platform backend's NewFrame and before IO.EndFrame.
func (p *InputProcessor) ProcessFrame(io *IO) []Event {
	if !p.initialized {
		p.prevKeys = make(map[int]bool)
		p.prevMouse = UnavailableMousePos
		p.initialized = true
	}

	var events []Event

	if io.DisplaySize != p.prevSize {
		events = append(events, &ResizeEvent{Width: io.DisplaySize.X, Height: io.DisplaySize.Y})
		p.prevSize = io.DisplaySize
	}

	mx, my := io.MousePos.X, io.MousePos.Y
	if io.MousePos != p.prevMouse && io.MousePos != UnavailableMousePos {
		events = append(events, &MouseMoveEvent{X: mx, Y: my})
	}
	p.prevMouse = io.MousePos

	for btn, isDown := range io.MouseDown {
		if isDown != p.prevButtons[btn] {
			events = append(events, &MouseButtonEvent{
				X:       mx,
				Y:       my,
				Button:  btn,
				Pressed: isDown,
			})
			p.prevButtons[btn] = isDown
		}
	}

	if io.MouseWheel != 0 {
		events = append(events, &ScrollEvent{X: mx, Y: my, DeltaY: io.MouseWheel})
	}

	// Report key transitions in id order so output is stable.
	var ids []int
	for id, down := range io.KeysDown {
		if down && !p.prevKeys[id] {
			ids = append(ids, id)
		}
	}
	for id := range p.prevKeys {
		if !io.KeysDown[id] {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	for _, id := range ids {
		down := io.KeysDown[id]
		events = append(events, &KeyEvent{ID: id, Pressed: down})
		if down {
			p.prevKeys[id] = true
		} else {
			delete(p.prevKeys, id)
		}
	}

	if len(io.InputQueueCharacters) > 0 {
		events = append(events, &TextEvent{Text: string(io.InputQueueCharacters)})
	}

	return events
}
