// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Session endpoints: POST /session/new, POST /session/feedback,
//     GET /session/{id}/candidates (token-gated).
//   - History endpoints: mounted under /history.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - /session/new issues a JWT bound to the new session; feedback and
//     candidate routes verify it against the session being acted on.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
)

// Server bundles router, session store, dictionary, and history store.
type Server struct {
	r      *chi.Mux
	store  store.Store
	hist   *history.Store // nil disables persistence
	dict   []string
	secret []byte
}

// New constructs a Server, installs middleware, and registers routes.
// hist may be nil when the service runs without a database.
func New(st store.Store, hist *history.Store, dict []string) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		hist:   hist,
		dict:   dict,
		secret: []byte(getEnv("JWT_SECRET", "local_dev_secret")),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /session/new","POST /session/feedback","/history/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true,"dictionary":` + strconv.Itoa(len(dict)) + `}`))
	})

	// Session endpoints
	s.r.Post("/session/new", s.handleNewSession)
	s.r.With(s.requireSession()).Post("/session/feedback", s.handleFeedback)
	s.r.With(s.requireSession()).Get("/session/{id}/candidates", s.handleCandidates)

	// History
	s.mountHistory(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- sessions ------------------------------------

// newSessionReq/Res payloads for POST /session/new.
type newSessionReq struct {
	Words       []string `json:"words"`       // optional custom dictionary
	MaxAttempts int      `json:"maxAttempts"` // optional, default 6
	Mode        string   `json:"mode"`        // "wordle" | "hurdle", recorded in history
}
type newSessionRes struct {
	SessionID  string `json:"sessionId"`
	Token      string `json:"token"`
	Suggestion string `json:"suggestion"`
	Remaining  int    `json:"remaining"`
	WordLength int    `json:"wordLength"`
}

// handleNewSession creates a solving session over the request dictionary
// (or the server's default one) and issues its session token.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	dict := req.Words
	if len(dict) == 0 {
		dict = s.dict
	}
	sess, err := session.New(dict, req.MaxAttempts)
	if err != nil {
		http.Error(w, `{"error":"invalid_dictionary"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	if req.Mode == "hurdle" {
		sess.Mode = "hurdle"
	}

	token, err := s.signSessionToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		http.Error(w, `{"error":"token_failed"}`, http.StatusInternalServerError)
		return
	}
	suggestion, err := sess.Suggest()
	if err != nil {
		http.Error(w, `{"error":"no_candidates"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{
		SessionID:  sess.ID,
		Token:      token,
		Suggestion: suggestion,
		Remaining:  sess.Remaining(),
		WordLength: sess.WordLen(),
	})
}

// feedbackReq/Res payloads for POST /session/feedback.
type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Marks     string `json:"marks"` // G/Y/B per position
}
type feedbackRes struct {
	SessionID string `json:"sessionId"`
	session.Report
}

// handleFeedback applies one feedback round to a session and, when the
// session reaches a terminal state, persists a history row (best effort).
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if !s.tokenMatches(r, req.SessionID) {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	rep, err := sess.ApplyFeedback(req.Guess, req.Marks)
	switch {
	case errors.Is(err, session.ErrFinished):
		http.Error(w, `{"error":"session_finished"}`, http.StatusConflict)
		return
	case errors.Is(err, solver.ErrInvalidFeedback):
		http.Error(w, `{"error":"invalid_feedback"}`, http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	if rep.State != session.StateSolving {
		s.recordResult(r, sess, req.Guess, rep)
	}
	_ = json.NewEncoder(w).Encode(feedbackRes{SessionID: sess.ID, Report: rep})
}

// handleCandidates lists the remaining candidates for a session, capped
// to keep responses small on fresh pools.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.tokenMatches(r, id) {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	words := sess.Candidates()
	const maxListed = 100
	truncated := false
	if len(words) > maxListed {
		words, truncated = words[:maxListed], true
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sessionId": id,
		"remaining": sess.Remaining(),
		"words":     words,
		"truncated": truncated,
	})
}

// recordResult persists a finished session to history. Failures are
// logged, never surfaced: the solve already happened.
func (s *Server) recordResult(r *http.Request, sess *session.Session, lastGuess string, rep session.Report) {
	if s.hist == nil {
		return
	}
	answer := ""
	if rep.State == session.StateSolved {
		answer = lastGuess
	}
	res := history.Result{
		SessionID:  sess.ID,
		Mode:       sess.Mode,
		Date:       history.DateKey(time.Now()),
		WordLength: sess.WordLen(),
		Attempts:   rep.Attempts,
		Solved:     rep.State == session.StateSolved,
		Answer:     answer,
		ElapsedMs:  sess.Elapsed().Milliseconds(),
	}
	if err := s.hist.Insert(r.Context(), res); err != nil {
		log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert solve result")
	}
}

// getEnv reads an env var with a default.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
