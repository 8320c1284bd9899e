package imgui

import "testing"

func TestNewIODefaults(t *testing.T) {
	io := NewIO()
	for k, id := range io.KeyMap {
		if id != -1 {
			t.Errorf("expected KeyMap[%s] = -1, got %d", Key(k), id)
		}
	}
	if io.MousePos != UnavailableMousePos {
		t.Errorf("expected unavailable mouse position, got %+v", io.MousePos)
	}
	if io.KeysDown == nil {
		t.Fatal("KeysDown is nil")
	}
}

func TestAddInputCharacterIgnoresZero(t *testing.T) {
	io := NewIO()
	io.AddInputCharacter('a')
	io.AddInputCharacter(0)
	io.AddInputCharacter('é')

	if got := string(io.InputQueueCharacters); got != "aé" {
		t.Errorf("expected %q, got %q", "aé", got)
	}
}

func TestIsKeyDownUsesKeyMap(t *testing.T) {
	io := NewIO()
	io.KeyMap[KeyEnter] = 36

	if io.IsKeyDown(KeyEnter) {
		t.Fatal("Enter down before any input")
	}
	io.SetKeyDown(36, true)
	if !io.IsKeyDown(KeyEnter) {
		t.Error("Enter not down after SetKeyDown")
	}
	io.SetKeyDown(36, false)
	if io.IsKeyDown(KeyEnter) {
		t.Error("Enter still down after release")
	}

	// Unmapped roles never report down.
	io.SetKeyDown(-1, true)
	if io.IsKeyDown(KeyTab) {
		t.Error("unmapped Tab reported down")
	}
}

func TestEndFrameResetsAccumulators(t *testing.T) {
	io := NewIO()
	io.MouseWheel = 3
	io.AddInputCharacter('x')
	io.MouseDown[MouseButtonPrimary] = true
	io.SetKeyDown(23, true)

	io.EndFrame()

	if io.MouseWheel != 0 {
		t.Errorf("expected wheel reset, got %f", io.MouseWheel)
	}
	if len(io.InputQueueCharacters) != 0 {
		t.Errorf("expected empty character queue, got %q", string(io.InputQueueCharacters))
	}
	if !io.MouseDown[MouseButtonPrimary] || !io.KeysDown[23] {
		t.Error("EndFrame must not clear held buttons or keys")
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyPageDown.String(); got != "PageDown" {
		t.Errorf("expected PageDown, got %s", got)
	}
	if got := KeyCount.String(); got != "Key(?)" {
		t.Errorf("expected Key(?), got %s", got)
	}
}
