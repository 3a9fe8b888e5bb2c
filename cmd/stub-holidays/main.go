// Command stub-holidays serves a hardcoded holiday calendar for local
// development, matching the remote contract: a JSON array of YYYY-MM-DD
// strings. Point HOLIDAYS_API_URL at it to work offline.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// Colombian national holidays, 2025. Edit freely; this is test data.
var holidays = []string{
	"2025-01-01", "2025-01-06", "2025-03-24", "2025-04-17", "2025-04-18",
	"2025-05-01", "2025-06-02", "2025-06-23", "2025-06-30", "2025-07-20",
	"2025-08-07", "2025-08-18", "2025-10-13", "2025-11-03", "2025-11-17",
	"2025-12-08", "2025-12-25",
}

func main() {
	addr := os.Getenv("STUB_ADDR")
	if addr == "" {
		addr = "localhost:9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /WorkingDays.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(holidays)
	})

	log.Printf("stub holiday calendar on http://%s/WorkingDays.json (STUB — hardcoded data)", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("stub server error: %v", err)
	}
}
