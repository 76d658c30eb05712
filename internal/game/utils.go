package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS.cc
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	centis := int(d.Milliseconds()/10) % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

func inRect(x, y, rx, ry, rw, rh int) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}
