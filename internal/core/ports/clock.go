package ports

import "time"

// Tick intervals a Clock accepts.
const (
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = time.Minute
)

// Clock is a cancelable periodic tick source.
//
// Implementations must guarantee that:
//   - Start while running replaces the previous subscription, ticks never stack
//   - onTick is never invoked reentrantly
//   - Stop is idempotent, and no tick starts after Stop returns
type Clock interface {
	Start(interval time.Duration, onTick func()) error
	Stop()
}
