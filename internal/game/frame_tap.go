package game

import (
	"sync"
	"time"
)

// frameTap records the interval between the last N presented frames into a
// ring buffer so the HUD can plot frame pacing.
type frameTap struct {
	buffer    []time.Duration
	nextIndex int
	count     int
	last      time.Time
	mu        sync.RWMutex
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{
		buffer: make([]time.Duration, ringSize),
	}
}

func (t *frameTap) record(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		t.buffer[t.nextIndex] = now.Sub(t.last)
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
		if t.count < len(t.buffer) {
			t.count++
		}
	}
	t.last = now
}

// snapshot returns up to the last n intervals, oldest first.
func (t *frameTap) snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.count {
		n = t.count
	}
	out := make([]time.Duration, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
