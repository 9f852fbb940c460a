package network

// PointerSink receives pointer events. Network and Loop implement it.
type PointerSink interface {
	PointerMove(x, y float64)
	PointerLeave()
}

// PointerTracker turns polled cursor samples into move and leave events.
// Hosts without enter/leave notifications sample the cursor every frame and
// treat positions outside the viewport as a leave.
type PointerTracker struct {
	inside bool
	x, y   int
}

// Track emits PointerMove when the cursor moved inside the w×h viewport (or
// just entered it) and a single PointerLeave when it exits.
func (t *PointerTracker) Track(x, y, w, h int, sink PointerSink) {
	in := x >= 0 && y >= 0 && x < w && y < h
	switch {
	case in && (!t.inside || x != t.x || y != t.y):
		sink.PointerMove(float64(x), float64(y))
	case !in && t.inside:
		sink.PointerLeave()
	}
	t.inside, t.x, t.y = in, x, y
}
