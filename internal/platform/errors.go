package platform

import "errors"

// None of these errors is fatal: a failed Init leaves no session behind, and
// a dropped event or frame simply contributes no new input.
var (
	// ErrConfiguration is returned by Init for missing handles or invalid
	// options.
	ErrConfiguration = errors.New("invalid platform configuration")

	// ErrNoActiveContext is returned when input arrives before Init or
	// after Shutdown.
	ErrNoActiveContext = errors.New("no active platform session")

	// ErrUnmappedKey is returned when the server has no keysym for a
	// keycode in any shift level.
	ErrUnmappedKey = errors.New("keycode has no keysym")
)
