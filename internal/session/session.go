// internal/session/session.go
//
// Solving session for a single puzzle.
// Responsibilities:
//   - Own the candidate pool for one puzzle and shrink it per feedback.
//   - Track state transitions: solving → solved/exhausted.
//   - Cap attempts (6 by default, the classic board height).
//
// Notes:
//   - The pool itself is immutable; the session swaps in the filtered pool
//     after each accepted feedback record. Rejected feedback leaves the
//     session untouched.
//   - randomID() is a compact hex identifier for correlating server state.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

const defaultMaxAttempts = 6

// Session states.
const (
	StateSolving   = "solving"
	StateSolved    = "solved"
	StateExhausted = "exhausted"
)

// ErrFinished reports feedback applied to an already terminal session.
var ErrFinished = errors.New("session: already finished")

// Session is one puzzle-solving run over a fixed dictionary.
type Session struct {
	ID          string
	Mode        string // "wordle" | "hurdle", informational
	MaxAttempts int

	dictionary *solver.Pool
	pool       *solver.Pool
	attempts   int
	state      string
	forced     string // first guess forced by a Hurdle chain, if any
	started    time.Time
}

// Report summarizes a session after one feedback round.
type Report struct {
	State      string `json:"state"`      // "solving" | "solved" | "exhausted"
	Attempts   int    `json:"attempts"`   // feedback rounds applied so far
	Remaining  int    `json:"remaining"`  // candidates left in the pool
	Suggestion string `json:"suggestion"` // next guess, empty when terminal or pool empty
}

// New builds a session from a dictionary. maxAttempts <= 0 selects the
// default of 6. Dictionary validation errors come from the pool.
func New(words []string, maxAttempts int) (*Session, error) {
	p, err := solver.NewPool(words)
	if err != nil {
		return nil, err
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Session{
		ID:          randomID(),
		Mode:        "wordle",
		MaxAttempts: maxAttempts,
		dictionary:  p,
		pool:        p,
		state:       StateSolving,
		started:     time.Now().UTC(),
	}, nil
}

// Suggest returns the next guess to try. The first suggestion honors a
// forced opener when one is set (Hurdle chains); afterwards it is the
// best-ranked word of the current pool.
func (s *Session) Suggest() (string, error) {
	if s.attempts == 0 && s.forced != "" {
		return s.forced, nil
	}
	return solver.Suggest(s.pool)
}

// ApplyFeedback records one round: parses the G/Y/B marks for guess,
// filters the pool, bumps the attempt counter, and transitions state.
//
// Invalid guesses or marks leave the session completely unchanged.
// All-green marks finish the session as solved; hitting the attempt cap
// without solving finishes it as exhausted.
func (s *Session) ApplyFeedback(guess, marks string) (Report, error) {
	if s.state != StateSolving {
		return s.report(), ErrFinished
	}
	fb, err := solver.ParseFeedback(marks, s.pool.WordLen())
	if err != nil {
		return s.report(), err
	}
	next, err := s.pool.Filter(guess, fb)
	if err != nil {
		return s.report(), err
	}

	s.attempts++
	if fb.AllGreen() {
		s.state = StateSolved
		// Pin the pool to the answer for consistent reporting.
		s.pool = next
		return s.report(), nil
	}
	s.pool = next
	if s.attempts >= s.MaxAttempts {
		s.state = StateExhausted
	}
	return s.report(), nil
}

// report builds the externally visible summary of the session.
func (s *Session) report() Report {
	r := Report{
		State:     s.state,
		Attempts:  s.attempts,
		Remaining: s.pool.Size(),
	}
	if s.state == StateSolving {
		if g, err := s.Suggest(); err == nil {
			r.Suggestion = g
		}
	}
	return r
}

// State returns the current state string.
func (s *Session) State() string { return s.state }

// Attempts returns the number of feedback rounds applied.
func (s *Session) Attempts() int { return s.attempts }

// Remaining returns the current pool size.
func (s *Session) Remaining() int { return s.pool.Size() }

// Candidates returns the remaining candidate words in dictionary order.
func (s *Session) Candidates() []string { return s.pool.Words() }

// WordLen returns the session's fixed word length.
func (s *Session) WordLen() int { return s.pool.WordLen() }

// Started returns the session start time (UTC).
func (s *Session) Started() time.Time { return s.started }

// Elapsed returns wall time since the session started.
func (s *Session) Elapsed() time.Duration { return time.Since(s.started) }

// setForced installs a forced first guess, validated against word length.
func (s *Session) setForced(guess string) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != s.pool.WordLen() {
		return fmt.Errorf("%w: forced guess %q", solver.ErrInvalidFeedback, guess)
	}
	s.forced = guess
	return nil
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
