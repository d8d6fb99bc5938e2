package callcontrol

import (
	"fmt"
	"strconv"
	"time"
)

// CreateTimerKey returns the render key of a call timer started at ts.
// A new key restarts the timer widget.
func CreateTimerKey(ts int64) string {
	return "timer-" + strconv.FormatInt(ts, 10)
}

// FormatElapsed renders a call duration as MM:SS, or HH:MM:SS past one hour.
// Negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, (total%3600)/60, total%60 //nolint:mnd // Time unit arithmetic.
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
