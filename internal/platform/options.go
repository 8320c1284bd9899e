package platform

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPlatformName = "imgui_impl_x11"

// ModifierPolicy selects which physical keys feed IO.KeyCtrl, KeyShift,
// KeyAlt and KeySuper.
type ModifierPolicy string

const (
	// ModifiersLeft polls only the left-hand Ctrl, Shift and Alt keys and
	// never reports Super.
	ModifiersLeft ModifierPolicy = "left"
	// ModifiersBoth also polls the right-hand variants and both Super keys.
	ModifiersBoth ModifierPolicy = "both"
)

// Options tunes a Session. The zero value is completed with defaults.
type Options struct {
	PlatformName string         `yaml:"platformName,omitempty"`
	Modifiers    ModifierPolicy `yaml:"modifiers,omitempty"`

	// FallbackDeltaTime replaces a zero or negative frame delta, e.g. after
	// the clock stepped backwards.
	FallbackDeltaTime float64 `yaml:"fallbackDeltaTime,omitempty"`
	// MaxDeltaTime caps the frame delta after long stalls.
	MaxDeltaTime float64 `yaml:"maxDeltaTime,omitempty"`

	// NoWarpPointer ignores IO.WantSetMousePos.
	NoWarpPointer bool `yaml:"noWarpPointer,omitempty"`
	// Gamepad enables the gamepad polling hook.
	Gamepad bool `yaml:"gamepad,omitempty"`

	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	var o Options
	o.normalize()
	return o
}

func (o *Options) normalize() {
	if o.PlatformName == "" {
		o.PlatformName = DefaultPlatformName
	}
	if o.Modifiers == "" {
		o.Modifiers = ModifiersLeft
	}
	if o.FallbackDeltaTime == 0 {
		o.FallbackDeltaTime = 1.0 / 60.0
	}
	if o.MaxDeltaTime == 0 {
		o.MaxDeltaTime = 1.0
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Validate checks option values that normalize cannot repair.
func (o *Options) Validate() error {
	switch o.Modifiers {
	case ModifiersLeft, ModifiersBoth:
	default:
		return fmt.Errorf("unknown modifier policy %q", o.Modifiers)
	}
	if !finitePositive(o.FallbackDeltaTime) {
		return fmt.Errorf("fallbackDeltaTime must be positive, got %v", o.FallbackDeltaTime)
	}
	if !finitePositive(o.MaxDeltaTime) {
		return fmt.Errorf("maxDeltaTime must be positive, got %v", o.MaxDeltaTime)
	}
	if o.FallbackDeltaTime > o.MaxDeltaTime {
		return fmt.Errorf("fallbackDeltaTime %v exceeds maxDeltaTime %v", o.FallbackDeltaTime, o.MaxDeltaTime)
	}
	return nil
}

// LoadOptions reads a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read %s: %w", path, err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse %s: %w", path, err)
	}
	opts.normalize()
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
