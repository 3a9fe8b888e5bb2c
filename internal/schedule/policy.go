// Package schedule implements the business-time arithmetic engine:
// normalizing a start instant to a valid working instant, advancing by
// whole business days, and advancing by business hours around a daily
// lunch break, all in a configured civil timezone.
package schedule

import (
	"fmt"
	"time"
)

// Hours defines the daily work window in whole local hours.
// Invariant: 0 <= Start < LunchStart < LunchEnd < End <= 24.
type Hours struct {
	Start      int
	End        int
	LunchStart int
	LunchEnd   int
}

// Validate checks the hour-ordering invariant.
func (h Hours) Validate() error {
	if h.Start < 0 || h.End > 24 {
		return fmt.Errorf("work hours out of range: start=%d end=%d", h.Start, h.End)
	}
	if !(h.Start < h.LunchStart && h.LunchStart < h.LunchEnd && h.LunchEnd < h.End) {
		return fmt.Errorf("work hours must satisfy start < lunchStart < lunchEnd < end, got %d < %d < %d < %d",
			h.Start, h.LunchStart, h.LunchEnd, h.End)
	}
	return nil
}

// IsWorkWeekday reports whether d is Monday through Friday.
func (h Hours) IsWorkWeekday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

// InWorkWindow reports whether the local hour falls inside
// [Start, LunchStart) or [LunchEnd, End).
func (h Hours) InWorkWindow(hour int) bool {
	return (hour >= h.Start && hour < h.LunchStart) ||
		(hour >= h.LunchEnd && hour < h.End)
}

// InLunch reports whether the local hour falls inside [LunchStart, LunchEnd).
func (h Hours) InLunch(hour int) bool {
	return hour >= h.LunchStart && hour < h.LunchEnd
}

// DailyWorkingMinutes returns the number of working minutes in one full day.
func (h Hours) DailyWorkingMinutes() int {
	return ((h.LunchStart - h.Start) + (h.End - h.LunchEnd)) * 60
}
