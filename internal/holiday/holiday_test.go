package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2025-12-25", false},
		{"2025-01-01", false},
		{"2025-02-30", true}, // day out of range
		{"2025-1-1", true},   // missing zero padding
		{"25-12-2025", true},
		{"2025-12-25T00:00:00Z", true},
		{"not-a-date", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidDateError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Date(tt.in), d)
		})
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet("2025-12-25", "2025-01-01")
	assert.True(t, s.Contains("2025-12-25"))
	assert.True(t, s.Contains("2025-01-01"))
	assert.False(t, s.Contains("2025-07-20"))
	assert.False(t, Set(nil).Contains("2025-12-25"))
}
