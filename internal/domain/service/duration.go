package service

import (
	"math"
	"strconv"
	"time"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

// zeroHours is what any unusable time window renders as
const zeroHours = "0.00"

// Duration returns the hours between two raw timestamps with two decimals.
// End before start, or either side unparseable, yields "0.00".
func Duration(start, end string) string {
	startAt, ok := valueobject.ParseTimestamp(start)
	if !ok {
		return zeroHours
	}
	endAt, ok := valueobject.ParseTimestamp(end)
	if !ok {
		return zeroHours
	}
	return FormatHours(endAt.Sub(startAt))
}

// TaskDuration is Duration over a task's own window
func TaskDuration(task *entity.Task) string {
	return Duration(task.StartTime(), task.EndTime())
}

// FormatHours renders a duration as hours with two decimals, clamping
// negatives to zero
func FormatHours(d time.Duration) string {
	if d <= 0 {
		return zeroHours
	}
	hours := float64(d.Milliseconds()) / float64(time.Hour/time.Millisecond)
	return FormatFixed(hours, 2)
}

// FormatFixed renders x with the given decimals, rounding halves away from
// zero
func FormatFixed(x float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(x*scale)/scale, 'f', decimals, 64)
}
