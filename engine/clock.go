package engine

import "time"

// Clock supplies frame timestamps
// The driver measures dt between frames with it and the ticker scheduler stamps each tick
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time, readings carry the monotonic component so dt survives wall clock jumps
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time {
	return time.Now()
}
