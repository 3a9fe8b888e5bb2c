package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/ignite/working-date-service/internal/pkg/httpretry"
	"github.com/ignite/working-date-service/internal/pkg/logger"
)

// Fetcher retrieves the holiday calendar from a remote HTTP endpoint.
// The endpoint contract is a JSON array of YYYY-MM-DD strings; any other
// shape is a fetch error. Transient failures are retried by the underlying
// retry client, never by callers.
type Fetcher struct {
	url    string
	client httpretry.HTTPDoer
}

// NewFetcher creates a Fetcher for the given calendar URL.
// A nil client gets the default retrying HTTP client.
func NewFetcher(url string, client httpretry.HTTPDoer) *Fetcher {
	if client == nil {
		client = httpretry.NewRetryClient(nil, 3)
	}
	return &Fetcher{url: url, client: client}
}

// Fetch retrieves and parses the current holiday calendar.
func (f *Fetcher) Fetch(ctx context.Context) (Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{Reason: "building request", Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: "calendar unreachable", Err: err}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Reason: fmt.Sprintf("calendar returned HTTP %d", resp.StatusCode)}
	}

	var raw []string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &FetchError{Reason: "invalid response format, expected a JSON array of dates", Err: err}
	}

	set := make(Set, len(raw))
	for _, s := range raw {
		d, err := ParseDate(s)
		if err != nil {
			// A malformed entry aborts this fetch; any prior snapshot stays in effect.
			return nil, &FetchError{Reason: "malformed calendar entry", Err: err}
		}
		set[d] = struct{}{}
	}

	logger.Debug("holiday calendar fetched", "request_id", reqID, "count", len(set))
	return set, nil
}
