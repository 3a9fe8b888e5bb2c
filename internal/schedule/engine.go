package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
)

// Query is a validated working-date request. Days and Hours are
// non-negative; callers reject queries where both are zero.
type Query struct {
	Days  int
	Hours int
	Start time.Time
}

// Engine composes the full computation: fetch holidays, convert the start
// instant to local time, normalize backward to a working instant, advance
// by days then by hours, and convert back to UTC.
type Engine struct {
	cal    Calendar
	source holiday.Source
}

// NewEngine creates an Engine over the given calendar and holiday source.
func NewEngine(loc *time.Location, hours Hours, source holiday.Source) *Engine {
	return &Engine{cal: Calendar{Loc: loc, Hours: hours}, source: source}
}

// Compute returns the absolute UTC instant reached by adding the query's
// business days and hours to its start instant.
func (e *Engine) Compute(ctx context.Context, q Query) (time.Time, error) {
	holidays, err := e.source.CurrentHolidays(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading holiday calendar: %w", err)
	}

	cur, err := e.cal.Normalize(ToLocal(q.Start, e.cal.Loc), holidays)
	if err != nil {
		return time.Time{}, err
	}

	if q.Days > 0 {
		if cur, err = e.cal.AddWorkingDays(cur, q.Days, holidays); err != nil {
			return time.Time{}, err
		}
	}

	if q.Hours > 0 {
		if cur, err = e.cal.AddWorkingHours(cur, q.Hours, holidays); err != nil {
			return time.Time{}, err
		}
	}

	return ToUTC(cur), nil
}
