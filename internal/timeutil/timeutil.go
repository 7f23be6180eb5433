// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToHoursMinsSecs splits a seconds value into whole hours, minutes and
// seconds. Fractions of a second are truncated and negative values are
// treated as zero.
func SecsToHoursMinsSecs(val float64) (hrs, mins, secs int) {
	if val <= 0 || math.IsNaN(val) {
		return 0, 0, 0
	}

	total := int(math.Floor(val))

	hrs = total / secondsInAnHour
	mins = (total % secondsInAnHour) / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// Seconds converts a floating point number of seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Minutes converts a duration to a floating point number of minutes.
func Minutes(d time.Duration) float64 {
	return d.Minutes()
}
