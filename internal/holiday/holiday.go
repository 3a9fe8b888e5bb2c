// Package holiday supplies the set of holiday calendar dates used by the
// working-date engine. The set comes from a remote JSON calendar behind a
// refresh-on-expiry cache; the cache is a performance optimization, never a
// correctness mechanism, so an expired snapshot is refetched rather than served.
package holiday

import (
	"context"
	"fmt"
	"time"
)

// Date is a calendar date key in YYYY-MM-DD form. It identifies a
// non-working day regardless of weekday and is only ever used as a
// lookup key, never reparsed as a full instant.
type Date string

// ParseDate validates a YYYY-MM-DD string and returns it as a Date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", &InvalidDateError{Value: s}
	}
	return Date(s), nil
}

// Set is an immutable set of holiday dates. It is replaced wholesale on
// refresh and read-shared by concurrent requests, never mutated in place.
type Set map[Date]struct{}

// NewSet builds a Set from the given dates.
func NewSet(dates ...Date) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Contains reports whether d is a holiday.
func (s Set) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}

// Snapshot is an immutable holiday set plus the instant it was fetched.
type Snapshot struct {
	Dates     Set
	FetchedAt time.Time
}

// Source supplies the current set of holiday dates.
type Source interface {
	CurrentHolidays(ctx context.Context) (Set, error)
	Invalidate(ctx context.Context) error
}

// FetchError indicates the remote holiday calendar was unreachable or
// returned a payload of the wrong shape. The previous cached snapshot, if
// any, is left unchanged.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("holiday fetch failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("holiday fetch failed: %s", e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// InvalidDateError indicates the calendar payload contained a string that is
// not a well-formed YYYY-MM-DD date. It aborts the fetch that observed it.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid holiday date %q: expected YYYY-MM-DD", e.Value)
}
