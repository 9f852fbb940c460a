package network

import (
	"fmt"
	"testing"
)

type eventLog []string

func (l *eventLog) PointerMove(x, y float64) { *l = append(*l, fmt.Sprintf("move %v,%v", x, y)) }
func (l *eventLog) PointerLeave()            { *l = append(*l, "leave") }

func TestPointerTracker(t *testing.T) {
	samples := []struct {
		x, y int
		want string
	}{
		{-1, 10, ""},
		{5, 10, "move 5,10"},
		{5, 10, ""},
		{6, 10, "move 6,10"},
		{100, 10, "leave"},
		{120, 10, ""},
		{99, 49, "move 99,49"},
		{99, 50, "leave"},
	}

	var tr PointerTracker
	var events eventLog
	for i, s := range samples {
		before := len(events)
		tr.Track(s.x, s.y, 100, 50, &events)

		got := ""
		if len(events) > before+1 {
			t.Fatalf("sample %d: Expected at most one event, got %v", i, events[before:])
		}
		if len(events) == before+1 {
			got = events[before]
		}
		if got != s.want {
			t.Errorf("sample %d (%d,%d): Expected %q, got %q", i, s.x, s.y, s.want, got)
		}
	}
}

func TestPointerTrackerDrivesNetwork(t *testing.T) {
	n, _ := newTestNetwork(t, 100, 100, 1, 1)
	var tr PointerTracker

	tr.Track(40, 60, 100, 100, n)
	if p := n.Pointer(); !p.Present || p.X != 40 || p.Y != 60 {
		t.Errorf("Expected pointer at (40, 60), got %+v", p)
	}

	tr.Track(-5, 60, 100, 100, n)
	if n.Pointer().Present {
		t.Error("Expected pointer absent after leaving viewport")
	}
}
