// internal/session/hurdle.go
//
// Hurdle mode: a chain of sequential puzzles over the same dictionary,
// where each solved answer becomes the forced first guess of the next
// puzzle. The chain hands out fresh Sessions and records answers as
// puzzles are solved.

package session

import "errors"

// ErrChainDone reports a request for a puzzle past the end of the chain.
var ErrChainDone = errors.New("session: hurdle chain complete")

// Chain runs N sequential puzzles with carried-over openers.
type Chain struct {
	words      []string
	total      int
	solved     int
	lastAnswer string
}

// NewChain builds a Hurdle chain of puzzles over the dictionary.
// puzzles <= 0 selects the classic run of 4.
func NewChain(words []string, puzzles int) *Chain {
	if puzzles <= 0 {
		puzzles = 4
	}
	return &Chain{words: words, total: puzzles}
}

// Next creates the session for the upcoming puzzle. From the second
// puzzle on, the previous answer is forced as the opening guess.
func (c *Chain) Next() (*Session, error) {
	if c.Done() {
		return nil, ErrChainDone
	}
	s, err := New(c.words, 0)
	if err != nil {
		return nil, err
	}
	s.Mode = "hurdle"
	if c.lastAnswer != "" {
		if err := s.setForced(c.lastAnswer); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Advance records a solved puzzle's answer as the next forced opener.
func (c *Chain) Advance(answer string) {
	c.solved++
	c.lastAnswer = answer
}

// Puzzle returns the 1-based number of the upcoming puzzle.
func (c *Chain) Puzzle() int { return c.solved + 1 }

// Total returns the number of puzzles in the chain.
func (c *Chain) Total() int { return c.total }

// Done reports whether every puzzle in the chain has been solved.
func (c *Chain) Done() bool { return c.solved >= c.total }
