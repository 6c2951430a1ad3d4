package async

import (
	"sync"
	"time"
)

// throttle rate-limits progress emission to a minimum interval. Unlike a
// sleeping limiter it never blocks the transport goroutine; over-rate
// snapshots are simply dropped.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// allow reports whether an emission may happen now, reserving the next slot
// when it does.
func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
