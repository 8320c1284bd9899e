//go:build !linux

package clock

import "time"

// New returns a clock backed by the runtime's monotonic reading with
// nanosecond ticks.
func New() (*Monotonic, error) {
	start := time.Now()
	return &Monotonic{
		now: func() (uint64, error) {
			return uint64(time.Since(start).Nanoseconds()), nil
		},
		ticksPerSecond: uint64(time.Second),
	}, nil
}
