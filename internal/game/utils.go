package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// averageFPS converts frame intervals into frames per second.
func averageFPS(intervals []time.Duration) float64 {
	var total time.Duration
	for _, d := range intervals {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(len(intervals)) / total.Seconds()
}
