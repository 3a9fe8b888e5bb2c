package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
	"github.com/ignite/working-date-service/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves a fixed holiday set, or a fixed error.
type staticSource struct {
	holidays holiday.Set
	err      error
}

func (s *staticSource) CurrentHolidays(ctx context.Context) (holiday.Set, error) {
	return s.holidays, s.err
}

func (s *staticSource) Invalidate(ctx context.Context) error { return nil }

// fixedNow pins "now" to Monday 2025-09-01 10:00 Bogota (15:00 UTC).
func fixedNow() time.Time {
	return time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)
}

func newTestRouter(t *testing.T, src holiday.Source) http.Handler {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	hours := schedule.Hours{Start: 8, End: 17, LunchStart: 12, LunchEnd: 13}
	engine := schedule.NewEngine(loc, hours, src)
	return SetupRoutes(NewHandlers(engine, src, fixedNow))
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetWorkingDateSuccess(t *testing.T) {
	router := newTestRouter(t, &staticSource{})

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			// Saturday 14:00 local + 1 hour = Monday 09:00 local.
			"saturday plus one hour",
			"/working-date?hours=1&date=2025-09-06T19:00:00Z",
			"2025-09-08T14:00:00Z",
		},
		{
			// Friday 17:00 local + 1 hour = Monday 09:00 local.
			"friday evening plus one hour",
			"/working-date?hours=1&date=2025-09-05T22:00:00Z",
			"2025-09-08T14:00:00Z",
		},
		{
			// Default start is "now": Monday 10:00 local + 1 working day.
			"default start",
			"/working-date?days=1",
			"2025-09-02T15:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := decodeBody(t, rec)
			assert.Equal(t, tt.want, body["date"])
		})
	}
}

func TestGetWorkingDateSkipsHoliday(t *testing.T) {
	router := newTestRouter(t, &staticSource{holidays: holiday.NewSet("2025-09-02")})

	rec := doGet(t, router, "/working-date?days=1&date=2025-09-01T15:00:00Z")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "2025-09-03T15:00:00Z", decodeBody(t, rec)["date"])
}

func TestGetWorkingDateValidation(t *testing.T) {
	router := newTestRouter(t, &staticSource{})

	tests := []struct {
		name   string
		target string
	}{
		{"both params missing", "/working-date"},
		{"zero advancement", "/working-date?days=0&hours=0"},
		{"negative days", "/working-date?days=-1"},
		{"negative hours", "/working-date?hours=-3"},
		{"non-integer days", "/working-date?days=two"},
		{"fractional hours", "/working-date?hours=1.5"},
		{"malformed date", "/working-date?days=1&date=tomorrow"},
		{"date without timezone", "/working-date?days=1&date=2025-09-01T10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, router, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "InvalidParameters", body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestGetWorkingDateHolidayFetchError(t *testing.T) {
	src := &staticSource{err: &holiday.FetchError{Reason: "calendar unreachable"}}
	router := newTestRouter(t, src)

	rec := doGet(t, router, "/working-date?days=1")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "HolidayFetchError", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(t, &staticSource{})

	rec := doGet(t, router, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "NotFound", body["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &staticSource{})

	req := httptest.NewRequest(http.MethodPost, "/working-date", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	fetcher := func(ctx context.Context) (holiday.Set, error) {
		return holiday.NewSet("2025-12-25"), nil
	}
	cache := holiday.NewCache(fetcher, 24*time.Hour, nil)
	router := newTestRouter(t, cache)

	// Cold before any computation touches the cache.
	rec := doGet(t, router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "cold", status.Checks["holiday_cache"].Status)

	// Warm after one request.
	rec = doGet(t, router, "/working-date?days=1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(t, router, "/health")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "up", status.Checks["holiday_cache"].Status)
}
