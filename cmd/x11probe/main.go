//go:build linux

// Command x11probe opens an X11 window and shows the input state the
// platform adapter produces for it, frame by frame.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/tinyrange/imx11/internal/clock"
	"github.com/tinyrange/imx11/internal/imgui"
	"github.com/tinyrange/imx11/internal/platform"
	"github.com/tinyrange/imx11/internal/x11"
)

func main() {
	if err := run(); err != nil {
		slog.Error("x11probe failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "", "YAML file with platform options")
	displayName := fs.String("display", "", "X display to connect to (default $DISPLAY)")
	width := fs.Uint("width", 640, "window width")
	height := fs.Uint("height", 480, "window height")
	title := fs.String("title", "x11probe", "window title")
	fps := fs.Int("fps", 60, "frames per second")
	verbose := fs.Bool("v", false, "log every input event")
	fs.Parse(os.Args[1:])

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *fps <= 0 {
		return fmt.Errorf("invalid -fps %d", *fps)
	}

	opts := platform.DefaultOptions()
	if *configPath != "" {
		var err error
		opts, err = platform.LoadOptions(*configPath)
		if err != nil {
			return err
		}
	}
	opts.Logger = logger

	// Xlib connections belong to the thread that opened them.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	dpy, err := x11.Open(*displayName)
	if err != nil {
		return err
	}
	defer dpy.Close()

	win, err := dpy.CreateWindow(*title, uint32(*width), uint32(*height))
	if err != nil {
		return err
	}
	defer dpy.DestroyWindow(win)

	clk, err := clock.New()
	if err != nil {
		return err
	}

	ui := imgui.CreateContext()
	ui.IO.ConfigFlags |= imgui.ConfigNavEnableKeyboard
	session, err := platform.Init(ui, dpy, win, clk, opts)
	if err != nil {
		return err
	}
	defer session.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	status := newStatusLine(os.Stdout)
	defer status.Close()

	slog.Info("probing input, type Escape or close the window to quit")

	var proc imgui.InputProcessor
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		for dpy.Pending() > 0 {
			ev := dpy.NextEvent()
			if dpy.IsCloseRequest(&ev) {
				return nil
			}
			if _, err := session.HandleEvent(&ev); err != nil && !errors.Is(err, platform.ErrUnmappedKey) {
				return err
			}
		}

		if err := session.NewFrame(); err != nil {
			return err
		}

		io := ui.IO
		for _, ev := range proc.ProcessFrame(io) {
			logEvent(ev)
		}
		status.Update(io)

		quit := slices.Contains(io.InputQueueCharacters, 0x1b)
		io.EndFrame()
		if quit {
			return nil
		}
	}
}

func logEvent(ev imgui.Event) {
	switch ev := ev.(type) {
	case *imgui.ResizeEvent:
		slog.Debug("resize", "width", ev.Width, "height", ev.Height)
	case *imgui.MouseMoveEvent:
		slog.Debug("mouse move", "x", ev.X, "y", ev.Y)
	case *imgui.MouseButtonEvent:
		slog.Debug("mouse button", "button", ev.Button, "pressed", ev.Pressed, "x", ev.X, "y", ev.Y)
	case *imgui.ScrollEvent:
		slog.Debug("scroll", "delta", ev.DeltaY)
	case *imgui.KeyEvent:
		slog.Debug("key", "keycode", ev.ID, "pressed", ev.Pressed)
	case *imgui.TextEvent:
		slog.Debug("text", "text", ev.Text)
	}
}
