//go:build linux

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tinyrange/imx11/internal/imgui"
	"golang.org/x/term"
)

// statusLine redraws a single terminal line with the current input state.
// It stays silent when stdout is not a terminal.
type statusLine struct {
	w       io.Writer
	fd      int
	enabled bool
}

func newStatusLine(f *os.File) *statusLine {
	fd := int(f.Fd())
	return &statusLine{w: f, fd: fd, enabled: term.IsTerminal(fd)}
}

func (s *statusLine) Update(state *imgui.IO) {
	if !s.enabled {
		return
	}
	line := formatStatus(state)
	if width, _, err := term.GetSize(s.fd); err == nil && width > 1 {
		line = ansi.Truncate(line, width-1, "…")
	}
	fmt.Fprint(s.w, "\r"+ansi.EraseEntireLine+line)
}

func (s *statusLine) Close() {
	if s.enabled {
		fmt.Fprint(s.w, "\r"+ansi.EraseEntireLine)
	}
}

func formatStatus(state *imgui.IO) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%gx%g dt=%.1fms", state.DisplaySize.X, state.DisplaySize.Y, state.DeltaTime*1000)

	if state.MousePos == imgui.UnavailableMousePos {
		b.WriteString(" mouse=(-)")
	} else {
		fmt.Fprintf(&b, " mouse=(%g,%g)", state.MousePos.X, state.MousePos.Y)
	}

	b.WriteString(" buttons=")
	for i, name := range []byte{'L', 'R', 'M'} {
		if state.MouseDown[i] {
			b.WriteByte(name)
		} else {
			b.WriteByte('-')
		}
	}
	if state.MouseWheel != 0 {
		fmt.Fprintf(&b, " wheel=%+g", state.MouseWheel)
	}

	b.WriteString(" mods=")
	for _, m := range []struct {
		on   bool
		name byte
	}{
		{state.KeyCtrl, 'C'},
		{state.KeyShift, 'S'},
		{state.KeyAlt, 'A'},
		{state.KeySuper, 'W'},
	} {
		if m.on {
			b.WriteByte(m.name)
		} else {
			b.WriteByte('-')
		}
	}

	var held []string
	for _, code := range slices.Sorted(maps.Keys(state.KeysDown)) {
		if state.KeysDown[code] {
			held = append(held, strconv.Itoa(code))
		}
	}
	if len(held) > 0 {
		fmt.Fprintf(&b, " keys=[%s]", strings.Join(held, " "))
	}

	if len(state.InputQueueCharacters) > 0 {
		fmt.Fprintf(&b, " text=%q", string(state.InputQueueCharacters))
	}
	return b.String()
}
