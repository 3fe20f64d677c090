// Package timing holds the clock-driven helpers shared by the combat controllers:
// cooldown gates and cancellable timed routines.
package timing

// Cooldown gates an action until a point in simulation time.
// The zero value is ready immediately.
type Cooldown struct {
	ReadyAt float64
}

// Ready reports whether the action may run at now.
func (c Cooldown) Ready(now float64) bool {
	return now >= c.ReadyAt
}

// Arm blocks the action for duration seconds starting at now.
func (c *Cooldown) Arm(now, duration float64) {
	c.ReadyAt = now + duration
}

// Remaining returns the seconds left before Ready, never negative.
func (c Cooldown) Remaining(now float64) float64 {
	if c.ReadyAt <= now {
		return 0
	}
	return c.ReadyAt - now
}
