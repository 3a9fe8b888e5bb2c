package schedule

import (
	"testing"
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return loc
}

func TestToLocalToUTCRoundTrip(t *testing.T) {
	loc := bogota(t)
	instants := []time.Time{
		time.Date(2025, 9, 6, 19, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, x := range instants {
		assert.True(t, ToUTC(ToLocal(x, loc)).Equal(x))
	}
}

func TestToLocalWallClock(t *testing.T) {
	loc := bogota(t)
	// Bogota is UTC-5 year round
	local := ToLocal(time.Date(2025, 9, 6, 19, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, 14, local.Hour())
	assert.Equal(t, 6, local.Day())
}

func TestDateKey(t *testing.T) {
	loc := bogota(t)
	tests := []struct {
		name    string
		instant time.Time
		want    holiday.Date
	}{
		{"midday", time.Date(2025, 9, 6, 19, 0, 0, 0, time.UTC), "2025-09-06"},
		{"utc midnight is previous local day", time.Date(2025, 9, 6, 4, 0, 0, 0, time.UTC), "2025-09-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.instant, loc))
		})
	}
}
