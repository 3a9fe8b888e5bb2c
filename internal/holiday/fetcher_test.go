package holiday

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherSuccess(t *testing.T) {
	var gotAccept, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["2025-12-25","2025-01-01"]`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, srv.Client())
	set, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, set, 2)
	assert.True(t, set.Contains("2025-12-25"))
	assert.True(t, set.Contains("2025-01-01"))
	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotRequestID)
}

func TestFetcherEmptyCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	set, err := NewFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestFetcherErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		invalid bool // expect a wrapped InvalidDateError
	}{
		{"http error", http.StatusNotFound, `[]`, false},
		{"not an array", http.StatusOK, `{"dates":[]}`, false},
		{"not json", http.StatusOK, `holidays`, false},
		{"malformed entry", http.StatusOK, `["2025-12-25","soon"]`, true},
		{"non-string entry", http.StatusOK, `["2025-12-25",42]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewFetcher(srv.URL, srv.Client()).Fetch(context.Background())
			require.Error(t, err)

			var fetchErr *FetchError
			assert.ErrorAs(t, err, &fetchErr)

			var invalidErr *InvalidDateError
			assert.Equal(t, tt.invalid, errors.As(err, &invalidErr))
		})
	}
}

func TestFetcherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := NewFetcher(srv.URL, &http.Client{}).Fetch(context.Background())
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}
