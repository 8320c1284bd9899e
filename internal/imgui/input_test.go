package imgui

import "testing"

func TestProcessFrameTransitions(t *testing.T) {
	var p InputProcessor
	io := NewIO()
	io.DisplaySize = Vec2{X: 800, Y: 600}
	io.MousePos = Vec2{X: 10, Y: 20}

	events := p.ProcessFrame(io)
	if len(events) != 2 {
		t.Fatalf("expected resize and move on first frame, got %d events", len(events))
	}
	if _, ok := events[0].(*ResizeEvent); !ok {
		t.Errorf("expected *ResizeEvent first, got %T", events[0])
	}
	if mv, ok := events[1].(*MouseMoveEvent); !ok || mv.X != 10 || mv.Y != 20 {
		t.Errorf("expected move to (10, 20), got %#v", events[1])
	}

	// Nothing changed: no events.
	if events := p.ProcessFrame(io); len(events) != 0 {
		t.Fatalf("expected no events for an unchanged frame, got %d", len(events))
	}

	io.MouseDown[MouseButtonMiddle] = true
	io.MouseWheel = -2
	io.SetKeyDown(113, true)
	io.SetKeyDown(22, true)
	io.AddInputCharacter('h')
	io.AddInputCharacter('i')

	events = p.ProcessFrame(io)
	var sawButton, sawScroll, sawText bool
	var keyIDs []int
	for _, ev := range events {
		switch ev := ev.(type) {
		case *MouseButtonEvent:
			if ev.Button != MouseButtonMiddle || !ev.Pressed {
				t.Errorf("unexpected button event %+v", ev)
			}
			sawButton = true
		case *ScrollEvent:
			if ev.DeltaY != -2 {
				t.Errorf("expected wheel -2, got %f", ev.DeltaY)
			}
			sawScroll = true
		case *KeyEvent:
			if !ev.Pressed {
				t.Errorf("expected key press, got %+v", ev)
			}
			keyIDs = append(keyIDs, ev.ID)
		case *TextEvent:
			if ev.Text != "hi" {
				t.Errorf("expected text %q, got %q", "hi", ev.Text)
			}
			sawText = true
		default:
			t.Errorf("unexpected event %T", ev)
		}
	}
	if !sawButton || !sawScroll || !sawText {
		t.Errorf("missing events: button=%v scroll=%v text=%v", sawButton, sawScroll, sawText)
	}
	if len(keyIDs) != 2 || keyIDs[0] != 22 || keyIDs[1] != 113 {
		t.Errorf("expected key events for 22 then 113, got %v", keyIDs)
	}

	io.EndFrame()
	io.SetKeyDown(22, false)
	events = p.ProcessFrame(io)
	if len(events) != 1 {
		t.Fatalf("expected a single key release, got %d events", len(events))
	}
	if ke, ok := events[0].(*KeyEvent); !ok || ke.ID != 22 || ke.Pressed {
		t.Errorf("expected release of 22, got %#v", events[0])
	}
}

func TestProcessFrameIgnoresUnavailablePointer(t *testing.T) {
	var p InputProcessor
	io := NewIO()
	io.DisplaySize = Vec2{}

	if events := p.ProcessFrame(io); len(events) != 0 {
		t.Errorf("expected no events while the pointer is unavailable, got %d", len(events))
	}
}
