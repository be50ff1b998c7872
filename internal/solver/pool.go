// internal/solver/pool.go
//
// Candidate pool for a single solving session.
// Responsibilities:
//   - Hold the set of dictionary words still consistent with all feedback so far.
//   - Validate dictionaries (non-empty, uniform length, a–z only).
//   - Filter to a new, smaller pool given one (guess, feedback) pair.
//
// Notes:
//   - Pools are immutable: Filter returns a fresh pool and never touches the
//     receiver or the original dictionary slice.
//   - Word order is preserved from the dictionary, which makes ranking ties
//     deterministic.

package solver

import (
	"fmt"
	"strings"
)

// Pool is the set of words still possibly equal to the answer.
type Pool struct {
	words   []string
	wordLen int
}

// NewPool builds a pool from a dictionary. Words are lowercased; the
// dictionary must be non-empty with every word the same length and
// strictly a–z, otherwise ErrInvalidDictionary.
func NewPool(dictionary []string) (*Pool, error) {
	if len(dictionary) == 0 {
		return nil, fmt.Errorf("%w: empty word list", ErrInvalidDictionary)
	}
	words := make([]string, len(dictionary))
	wordLen := len(dictionary[0])
	for i, w := range dictionary {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != wordLen {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidDictionary, w, len(w), wordLen)
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("%w: %q is not a–z", ErrInvalidDictionary, w)
		}
		words[i] = w
	}
	return &Pool{words: words, wordLen: wordLen}, nil
}

// Filter returns a new pool holding exactly the words that would have
// produced fb if they were the answer to guess. The receiver is unchanged.
//
// Checking "would this word produce the observed feedback" via ScoreGuess
// covers every constraint at once, including the repeated-letter rule: a
// black mark on a letter that is green/yellow elsewhere in the guess only
// caps that letter's count, it does not ban it outright.
func (p *Pool) Filter(guess string, fb Feedback) (*Pool, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != p.wordLen || !isAlpha(guess) {
		return nil, fmt.Errorf("%w: guess %q does not fit word length %d", ErrInvalidFeedback, guess, p.wordLen)
	}
	if len(fb) != p.wordLen || !fb.valid() {
		return nil, fmt.Errorf("%w: marks %v", ErrInvalidFeedback, fb)
	}
	kept := make([]string, 0, len(p.words))
	for _, w := range p.words {
		if ScoreGuess(w, guess).Equal(fb) {
			kept = append(kept, w)
		}
	}
	return &Pool{words: kept, wordLen: p.wordLen}, nil
}

// Words returns a copy of the remaining candidates in dictionary order.
func (p *Pool) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// Size returns the number of remaining candidates.
func (p *Pool) Size() int { return len(p.words) }

// Empty reports whether no candidates remain.
func (p *Pool) Empty() bool { return len(p.words) == 0 }

// WordLen returns the fixed word length for this pool.
func (p *Pool) WordLen() int { return p.wordLen }

// ScoreGuess computes the feedback guess would receive against answer,
// using the standard two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as green.
//   - Count remaining (non-green) answer letters.
//
// Pass 2:
//   - For each non-green guess letter: if there is remaining count for that
//     letter, mark yellow and decrement; otherwise mark black.
//
// This is what makes repeated letters in either word come out right.
func ScoreGuess(answer, guess string) Feedback {
	n := len(guess)
	fb := make(Feedback, n)

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			fb[i] = MarkGreen
		} else {
			counts[idx(answer[i])]++
		}
	}
	for i := 0; i < n; i++ {
		if fb[i] == MarkGreen {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			fb[i] = MarkYellow
			counts[j]--
		} else {
			fb[i] = MarkBlack
		}
	}
	return fb
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
