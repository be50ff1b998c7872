// internal/history/store.go
//
// Persistence for finished solve sessions. One row per session: mode
// (wordle/hurdle), UTC date key, attempts used, whether the puzzle fell,
// and wall time. Read back as a recent listing or aggregate stats.

package history

import (
	"context"
	"database/sql"
	"time"
)

// Result is one finished solve session.
type Result struct {
	SessionID  string `json:"sessionId"`
	Mode       string `json:"mode"` // "wordle" | "hurdle"
	Date       string `json:"date"` // YYYY-MM-DD (UTC)
	WordLength int    `json:"wordLength"`
	Attempts   int    `json:"attempts"`
	Solved     bool   `json:"solved"`
	Answer     string `json:"answer,omitempty"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Stats aggregates the whole history table.
type Stats struct {
	Played      int     `json:"played"`
	Solved      int     `json:"solved"`
	AvgAttempts float64 `json:"avgAttempts"` // over solved sessions only
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Store reads and writes solve results.
type Store struct{ db *sql.DB }

// NewStore wraps an open history database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records a finished session.
func (s *Store) Insert(ctx context.Context, r Result) error {
	solved := 0
	if r.Solved {
		solved = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solve_results(session_id, mode, date, word_length, attempts, solved, answer, elapsed_ms)
		 VALUES(?,?,?,?,?,?,?,?)`,
		r.SessionID, r.Mode, r.Date, r.WordLength, r.Attempts, solved, r.Answer, r.ElapsedMs,
	)
	return err
}

// Recent returns the most recent results, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, mode, date, word_length, attempts, solved, answer, elapsed_ms
		 FROM solve_results
		 ORDER BY id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		var solved int
		if err := rows.Scan(&r.SessionID, &r.Mode, &r.Date, &r.WordLength, &r.Attempts, &solved, &r.Answer, &r.ElapsedMs); err != nil {
			return nil, err
		}
		r.Solved = solved == 1
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates played/solved counts and the average attempts across
// solved sessions.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(solved), 0),
		        AVG(CASE WHEN solved = 1 THEN attempts END)
		 FROM solve_results`,
	).Scan(&st.Played, &st.Solved, &avg)
	if err != nil {
		return Stats{}, err
	}
	if avg.Valid {
		st.AvgAttempts = avg.Float64
	}
	return st, nil
}
