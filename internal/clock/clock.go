// Package clock provides the monotonic tick source used for frame timing.
package clock

// Monotonic reads a monotonic clock as raw ticks. Divide a tick difference by
// TicksPerSecond to get seconds.
type Monotonic struct {
	now            func() (uint64, error)
	ticksPerSecond uint64
}

// Now returns the current tick count. A failed read returns 0 ticks, which
// callers treat like a backward clock step.
func (m *Monotonic) Now() uint64 {
	t, err := m.now()
	if err != nil {
		return 0
	}
	return t
}

// TicksPerSecond returns the clock's tick rate.
func (m *Monotonic) TicksPerSecond() uint64 {
	return m.ticksPerSecond
}
