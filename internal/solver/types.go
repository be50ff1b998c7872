// internal/solver/types.go
//
// Core type definitions for the solver.
// Defines:
//   - Mark: per-letter feedback for a guess (green/yellow/black).
//   - Feedback: ordered marks, one per position.
//   - Sentinel errors shared across the package.

package solver

import "errors"

// Mark represents the feedback for a single letter position.
// Possible values:
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the answer but in a different position.
//   - "black":  letter has no (further) occurrence in the answer.
type Mark string

const (
	MarkGreen  Mark = "green"
	MarkYellow Mark = "yellow"
	MarkBlack  Mark = "black"
)

// Feedback is the per-position feedback for one guess.
type Feedback []Mark

var (
	// ErrInvalidDictionary reports an empty dictionary or one with
	// mixed-length or non-alphabetic words.
	ErrInvalidDictionary = errors.New("solver: invalid dictionary")

	// ErrInvalidFeedback reports a feedback record whose length does not
	// match the session word length or that contains an unknown mark.
	ErrInvalidFeedback = errors.New("solver: invalid feedback")

	// ErrNoCandidates reports a suggestion request against an empty pool,
	// which means earlier feedback was contradictory.
	ErrNoCandidates = errors.New("solver: no candidates remain")
)

// ParseFeedback converts a G/Y/B string (case-insensitive) into Feedback.
// wantLen is the session word length; a mismatch is ErrInvalidFeedback.
func ParseFeedback(s string, wantLen int) (Feedback, error) {
	if len(s) != wantLen {
		return nil, ErrInvalidFeedback
	}
	fb := make(Feedback, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g', 'G':
			fb[i] = MarkGreen
		case 'y', 'Y':
			fb[i] = MarkYellow
		case 'b', 'B':
			fb[i] = MarkBlack
		default:
			return nil, ErrInvalidFeedback
		}
	}
	return fb, nil
}

// String renders feedback as a compact G/Y/B string.
func (f Feedback) String() string {
	b := make([]byte, len(f))
	for i, m := range f {
		switch m {
		case MarkGreen:
			b[i] = 'G'
		case MarkYellow:
			b[i] = 'Y'
		default:
			b[i] = 'B'
		}
	}
	return string(b)
}

// AllGreen reports whether every position is MarkGreen.
func (f Feedback) AllGreen() bool {
	for _, m := range f {
		if m != MarkGreen {
			return false
		}
	}
	return len(f) > 0
}

// Equal reports position-wise equality with other.
func (f Feedback) Equal(other Feedback) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// valid reports whether every mark is one of the three known values.
func (f Feedback) valid() bool {
	for _, m := range f {
		switch m {
		case MarkGreen, MarkYellow, MarkBlack:
		default:
			return false
		}
	}
	return true
}
