package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ignite/working-date-service/internal/holiday"
	"github.com/ignite/working-date-service/internal/pkg/httputil"
)

// HealthStatus reports overall service health.
type HealthStatus struct {
	Status string                    `json:"status"` // "healthy" or "degraded"
	Uptime string                    `json:"uptime"`
	Checks map[string]ComponentCheck `json:"checks"`
}

// ComponentCheck reports the state of a single dependency.
type ComponentCheck struct {
	Status  string `json:"status"` // "up", "cold", "not_configured"
	Message string `json:"message,omitempty"`
}

// snapshotter is implemented by cache backends that can expose their
// current snapshot (the in-memory cache does; the Redis cache does not).
type snapshotter interface {
	Snapshot() *holiday.Snapshot
}

// Health reports liveness plus the state of the holiday snapshot. Always
// returns 200; the body conveys degradation.
//
//	GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]ComponentCheck{}

	cacheCheck := ComponentCheck{Status: "not_configured"}
	if s, ok := h.source.(snapshotter); ok {
		if snap := s.Snapshot(); snap != nil {
			cacheCheck = ComponentCheck{
				Status:  "up",
				Message: fmt.Sprintf("%d holidays, fetched %s", len(snap.Dates), snap.FetchedAt.UTC().Format(time.RFC3339)),
			}
		} else {
			// Cold is normal before the first request hits the engine.
			cacheCheck = ComponentCheck{Status: "cold", Message: "no holiday snapshot loaded yet"}
		}
	}
	checks["holiday_cache"] = cacheCheck

	httputil.OK(w, HealthStatus{
		Status: "healthy",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
		Checks: checks,
	})
}
