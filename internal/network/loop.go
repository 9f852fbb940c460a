package network

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iburimskiy/constellation/internal/config"
)

var ErrLoopRunning = errors.New("network: loop already running")

// Loop drives a Network at a fixed cadence on its own goroutine. Host events
// are queued and applied at the start of the next tick, so the Network only
// ever sees one goroutine.
type Loop struct {
	net      *Network
	interval time.Duration
	onFrame  func(*Network)

	mu      sync.Mutex
	pending []func(*Network)
	cancel  context.CancelFunc
	done    chan struct{}

	frames atomic.Uint64
}

// NewLoop returns a stopped loop. A non-positive interval means one tick per
// 1/config.TickRate seconds. onFrame, if set, runs on the loop goroutine
// after every tick.
func NewLoop(n *Network, interval time.Duration, onFrame func(*Network)) *Loop {
	if interval <= 0 {
		interval = time.Second / config.TickRate
	}
	return &Loop{
		net:      n,
		interval: interval,
		onFrame:  onFrame,
	}
}

// Start launches the tick goroutine. It runs until Stop is called or ctx is
// cancelled.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return ErrLoopRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	log.Printf("loop: starting at %v per tick", l.interval)
	go l.run(ctx, done)
	return nil
}

// Stop cancels the loop and waits for the in-flight tick to finish. Calling
// Stop on a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Printf("loop: stopped after %d frames", l.frames.Load())
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *Loop) Frames() uint64 { return l.frames.Load() }

func (l *Loop) PointerMove(x, y float64) {
	l.enqueue(func(n *Network) { n.PointerMove(x, y) })
}

func (l *Loop) PointerLeave() {
	l.enqueue(func(n *Network) { n.PointerLeave() })
}

func (l *Loop) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.enqueue(func(n *Network) { n.Resize(width, height) })
}

func (l *Loop) enqueue(ev func(*Network)) {
	l.mu.Lock()
	l.pending = append(l.pending, ev)
	l.mu.Unlock()
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer l.release(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.step()
		}
	}
}

// release forgets the run that owns done, unless Stop already did, so a
// loop whose context was cancelled reports stopped and can be restarted.
func (l *Loop) release(done chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != done {
		return
	}
	l.cancel()
	l.cancel, l.done = nil, nil
	log.Printf("loop: context done after %d frames", l.frames.Load())
}

func (l *Loop) step() {
	l.mu.Lock()
	events := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, ev := range events {
		ev(l.net)
	}

	l.net.Tick()
	l.frames.Add(1)

	if l.onFrame != nil {
		l.onFrame(l.net)
	}
}
