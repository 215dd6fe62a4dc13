package game

import "fmt"

// formatElapsed formats simulated time as MM:SS.
func formatElapsed(ticks, tps int) string {
	if tps <= 0 {
		return "00:00"
	}
	secs := ticks / tps
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
