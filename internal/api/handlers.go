package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
	"github.com/ignite/working-date-service/internal/pkg/httputil"
	"github.com/ignite/working-date-service/internal/schedule"
)

// Handlers holds the request handlers and their dependencies.
type Handlers struct {
	engine    *schedule.Engine
	source    holiday.Source
	now       func() time.Time
	startTime time.Time
}

// NewHandlers creates the handler set. The now function exists so tests can
// pin "default start = now"; nil means time.Now.
func NewHandlers(engine *schedule.Engine, source holiday.Source, now func() time.Time) *Handlers {
	if now == nil {
		now = time.Now
	}
	return &Handlers{engine: engine, source: source, now: now, startTime: time.Now()}
}

// WorkingDateResponse is the success body: a single ISO-8601 UTC instant.
type WorkingDateResponse struct {
	Date string `json:"date"`
}

// GetWorkingDate computes the instant reached by adding the requested
// business days and hours to the start instant.
//
//	GET /working-date?days=N&hours=M&date=RFC3339
func (h *Handlers) GetWorkingDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	daysRaw, hoursRaw := q.Get("days"), q.Get("hours")
	if daysRaw == "" && hoursRaw == "" {
		httputil.BadRequest(w, "at least one of 'days' or 'hours' must be provided")
		return
	}

	days, err := parseCount("days", daysRaw)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	hours, err := parseCount("hours", hoursRaw)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if days+hours == 0 {
		httputil.BadRequest(w, "the sum of 'days' and 'hours' must be greater than zero")
		return
	}

	start := h.now().UTC()
	if raw := q.Get("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httputil.BadRequest(w, "'date' must be a valid ISO-8601 instant, e.g. 2025-09-01T14:00:00Z")
			return
		}
		start = parsed
	}

	result, err := h.engine.Compute(r.Context(), schedule.Query{Days: days, Hours: hours, Start: start})
	if err != nil {
		writeComputeError(w, err)
		return
	}

	serialized := result.UTC().Format(time.RFC3339)
	if !strings.HasSuffix(serialized, "Z") {
		httputil.InternalError(w, fmt.Errorf("result %q not expressible in UTC", serialized))
		return
	}
	httputil.OK(w, WorkingDateResponse{Date: serialized})
}

// writeComputeError translates engine errors into the stable envelope.
// Fetch failures are a dependency outage (503); everything else is an
// internal fault that must not leak details.
func writeComputeError(w http.ResponseWriter, err error) {
	var fetchErr *holiday.FetchError
	if errors.As(err, &fetchErr) {
		httputil.ServiceUnavailable(w, "HolidayFetchError", fetchErr.Error())
		return
	}
	httputil.InternalError(w, err)
}

// parseCount parses a non-negative integer query parameter; empty means zero.
func parseCount(name, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("'%s' must be an integer", name)
	}
	if n < 0 {
		return 0, fmt.Errorf("'%s' must not be negative", name)
	}
	return n, nil
}
