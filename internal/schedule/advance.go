package schedule

import (
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
)

// AddWorkingDays advances a local instant by n whole business days. Steps
// proceed one calendar day at a time and a step counts only when it lands on
// a work weekday that is not a holiday. Time-of-day is carried through
// unchanged; the clock belongs to the hour pass.
func (c Calendar) AddWorkingDays(t time.Time, n int, holidays holiday.Set) (time.Time, error) {
	cur := t
	idle := 0
	for remaining := n; remaining > 0; {
		cur = cur.AddDate(0, 0, 1)
		if c.Hours.IsWorkWeekday(cur.Weekday()) && !c.isHoliday(cur, holidays) {
			remaining--
			idle = 0
			continue
		}
		if idle++; idle >= maxCalendarScan {
			return time.Time{}, ErrCalendarExhausted
		}
	}
	return cur, nil
}

// AddWorkingHours advances a local instant by a whole number of business
// hours, consumed minute by minute between window boundaries:
//
//   - at or past End, jump to the next working day at Start:00;
//   - inside the lunch window, jump to LunchEnd:00 consuming nothing;
//   - otherwise advance by min(remaining, minutes until the sooner of lunch
//     start and day end), and if that lands exactly on LunchStart with
//     minutes still owed, hop over lunch to LunchEnd:00.
//
// The result always has zero seconds.
func (c Calendar) AddWorkingHours(t time.Time, hours int, holidays holiday.Set) (time.Time, error) {
	cur := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, c.Loc)
	remaining := hours * 60

	for remaining > 0 {
		h := cur.Hour()

		if h >= c.Hours.End {
			next, err := c.nextWorkingDay(cur, holidays)
			if err != nil {
				return time.Time{}, err
			}
			cur = next
			continue
		}

		if c.Hours.InLunch(h) {
			cur = c.at(cur, c.Hours.LunchEnd, 0)
			continue
		}

		minuteOfDay := h*60 + cur.Minute()
		boundary := c.Hours.End * 60
		if h < c.Hours.LunchStart {
			boundary = c.Hours.LunchStart * 60
		}

		step := boundary - minuteOfDay
		if remaining < step {
			step = remaining
		}
		cur = cur.Add(time.Duration(step) * time.Minute)
		remaining -= step

		if cur.Hour() == c.Hours.LunchStart && remaining > 0 {
			cur = c.at(cur, c.Hours.LunchEnd, 0)
		}
	}

	return cur, nil
}

// nextWorkingDay returns the first work weekday after t that is not a
// holiday, at Start:00.
func (c Calendar) nextWorkingDay(t time.Time, holidays holiday.Set) (time.Time, error) {
	next := t
	for i := 0; i < maxCalendarScan; i++ {
		next = next.AddDate(0, 0, 1)
		if c.Hours.IsWorkWeekday(next.Weekday()) && !c.isHoliday(next, holidays) {
			return c.at(next, c.Hours.Start, 0), nil
		}
	}
	return time.Time{}, ErrCalendarExhausted
}
