// internal/httpserver/routes_history.go
//
// HTTP routes for solve history.
// Exposes two endpoints under /history:
//   - GET /history/recent → latest finished sessions (?limit=, default 20)
//   - GET /history/stats  → played/solved counts and average attempts
//
// Both return 503 when the service runs without a database.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// mountHistory registers all /history routes.
func (s *Server) mountHistory(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/recent", s.handleHistoryRecent)
		r.Get("/stats", s.handleHistoryStats)
	})
}

func (s *Server) handleHistoryRecent(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		http.Error(w, `{"error":"history_disabled"}`, http.StatusServiceUnavailable)
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	results, err := s.hist.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("query recent history")
		http.Error(w, `{"error":"query_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
}

func (s *Server) handleHistoryStats(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		http.Error(w, `{"error":"history_disabled"}`, http.StatusServiceUnavailable)
		return
	}
	stats, err := s.hist.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("query history stats")
		http.Error(w, `{"error":"query_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
