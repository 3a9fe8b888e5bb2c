package schedule

import (
	"errors"
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
)

// maxCalendarScan bounds every calendar walk. Each pass moves at least one
// calendar day, so exhausting it means a pathological run of consecutive
// non-working dates longer than a year.
const maxCalendarScan = 400

// ErrCalendarExhausted is returned when a calendar walk fails to reach a
// working date within maxCalendarScan steps.
var ErrCalendarExhausted = errors.New("no working date found within scan limit")

// Calendar couples the work-hour policy with a civil timezone and carries
// the full advancement rule set.
type Calendar struct {
	Loc   *time.Location
	Hours Hours
}

// Normalize maps an arbitrary instant to the latest working instant at or
// before it, applying these rules until stable:
//
//   - Saturday steps back one day, Sunday two, landing at End:00.
//   - A holiday steps back one more day to End:00; the weekend rule is
//     re-checked before the holiday rule on every pass, so a scan crossing
//     from a holiday into a weekend keeps walking back.
//   - On a working date: before-hours steps back a day to End:00 (and the
//     rules re-apply from the top), after-hours clamps to End:00, the lunch
//     window clamps to LunchStart:00, and an in-window instant keeps its
//     minute with seconds zeroed.
func (c Calendar) Normalize(t time.Time, holidays holiday.Set) (time.Time, error) {
	cur := t.In(c.Loc)

	for i := 0; i < maxCalendarScan; i++ {
		switch cur.Weekday() {
		case time.Saturday:
			cur = c.at(cur.AddDate(0, 0, -1), c.Hours.End, 0)
			continue
		case time.Sunday:
			cur = c.at(cur.AddDate(0, 0, -2), c.Hours.End, 0)
			continue
		}

		if c.isHoliday(cur, holidays) {
			cur = c.at(cur.AddDate(0, 0, -1), c.Hours.End, 0)
			continue
		}

		h := cur.Hour()
		switch {
		case h < c.Hours.Start:
			// The previous day may itself be a weekend or holiday; loop re-applies.
			cur = c.at(cur.AddDate(0, 0, -1), c.Hours.End, 0)
		case h >= c.Hours.End:
			return c.at(cur, c.Hours.End, 0), nil
		case c.Hours.InLunch(h):
			return c.at(cur, c.Hours.LunchStart, 0), nil
		default:
			return time.Date(cur.Year(), cur.Month(), cur.Day(), h, cur.Minute(), 0, 0, c.Loc), nil
		}
	}

	return time.Time{}, ErrCalendarExhausted
}

// at returns the same calendar date as t with the given wall-clock time and
// zero seconds.
func (c Calendar) at(t time.Time, hour, min int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, c.Loc)
}

func (c Calendar) isHoliday(t time.Time, holidays holiday.Set) bool {
	return holidays.Contains(DateKey(t, c.Loc))
}
