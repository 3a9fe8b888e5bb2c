package schedule

import (
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
)

// ToLocal expresses an absolute instant in the zone's wall clock.
// Exact inverse of ToUTC for any instant outside a timezone transition gap;
// transition ambiguity is a documented limitation, not handled.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// ToUTC converts a local instant back to an absolute UTC instant.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// DateKey returns the calendar date of t in loc as a YYYY-MM-DD holiday key.
func DateKey(t time.Time, loc *time.Location) holiday.Date {
	return holiday.Date(t.In(loc).Format("2006-01-02"))
}
