package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPool(t *testing.T, words ...string) *Pool {
	t.Helper()
	p, err := NewPool(words)
	require.NoError(t, err)
	return p
}

func mustFeedback(t *testing.T, s string) Feedback {
	t.Helper()
	fb, err := ParseFeedback(s, len(s))
	require.NoError(t, err)
	return fb
}

func TestNewPoolValidation(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewPool(nil)
		assert.ErrorIs(t, err, ErrInvalidDictionary)
	})
	t.Run("mixed lengths", func(t *testing.T) {
		_, err := NewPool([]string{"crane", "slat"})
		assert.ErrorIs(t, err, ErrInvalidDictionary)
	})
	t.Run("non alphabetic", func(t *testing.T) {
		_, err := NewPool([]string{"cran3"})
		assert.ErrorIs(t, err, ErrInvalidDictionary)
	})
	t.Run("normalizes case", func(t *testing.T) {
		p, err := NewPool([]string{"CRANE", " Slate "})
		require.NoError(t, err)
		assert.Equal(t, []string{"crane", "slate"}, p.Words())
		assert.Equal(t, 5, p.WordLen())
	})
}

func TestScoreGuess(t *testing.T) {
	tests := []struct {
		answer, guess, want string
	}{
		{"crane", "crane", "GGGGG"},
		{"crane", "slate", "BBGBG"},
		{"erase", "speed", "YBYYB"},
		{"crane", "speed", "BBYBB"},
		{"abbey", "babes", "YYGGB"},
		{"abbey", "keeps", "BYBBB"},
	}
	for _, tc := range tests {
		t.Run(tc.guess+" vs "+tc.answer, func(t *testing.T) {
			assert.Equal(t, tc.want, ScoreGuess(tc.answer, tc.guess).String())
		})
	}
}

func TestFilterGreenYellowBlack(t *testing.T) {
	p := mustPool(t, "crane", "crabs", "slate", "track")

	// Green pins the position, yellow requires elsewhere, black excludes.
	got, err := p.Filter("crane", mustFeedback(t, "GGGBB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crabs"}, got.Words())
	// Input pool untouched.
	assert.Equal(t, 4, p.Size())
}

func TestFilterAllBlackContradiction(t *testing.T) {
	// Every word shares a letter with the guess, so an all-black result
	// leaves nothing. That is an empty pool, not an error.
	p := mustPool(t, "crane", "slate", "trace")
	got, err := p.Filter("crane", mustFeedback(t, "BBBBB"))
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Equal(t, 0, got.Size())
}

func TestFilterRepeatedLetters(t *testing.T) {
	// Guessing "speed" against "crane" yields one yellow E and one black E.
	// Words with a single E in a fresh position must survive.
	p := mustPool(t, "crane", "erase", "slate")
	got, err := p.Filter("speed", mustFeedback(t, "BBYBB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane"}, got.Words())

	// Same guess against "erase": both E's marked, double-E words survive.
	p = mustPool(t, "erase", "crane", "binge")
	got, err = p.Filter("speed", mustFeedback(t, "YBYYB"))
	require.NoError(t, err)
	assert.Equal(t, []string{"erase"}, got.Words())
}

func TestFilterKeepsTrueAnswer(t *testing.T) {
	words := []string{"crane", "slate", "trace", "brick", "pouty", "gawky"}
	p := mustPool(t, words...)
	for _, answer := range words {
		current := p
		for _, guess := range words {
			next, err := current.Filter(guess, ScoreGuess(answer, guess))
			require.NoError(t, err)
			assert.LessOrEqual(t, next.Size(), current.Size())
			assert.Contains(t, next.Words(), answer,
				"answer %q dropped after guessing %q", answer, guess)
			current = next
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	p := mustPool(t, "crane", "slate", "trace", "brick")
	fb := mustFeedback(t, "BYBBG")
	once, err := p.Filter("slate", fb)
	require.NoError(t, err)
	twice, err := once.Filter("slate", fb)
	require.NoError(t, err)
	assert.Equal(t, once.Words(), twice.Words())
}

func TestFilterRejectsBadInput(t *testing.T) {
	p := mustPool(t, "crane", "slate")

	_, err := p.Filter("toolong", mustFeedback(t, "BBBBB"))
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	_, err = p.Filter("crane", Feedback{MarkGreen, MarkGreen})
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	_, err = p.Filter("crane", Feedback{MarkGreen, MarkGreen, MarkGreen, MarkGreen, Mark("grey")})
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	// Pool unchanged after rejected input.
	assert.Equal(t, 2, p.Size())
}

func TestParseFeedback(t *testing.T) {
	fb, err := ParseFeedback("gYbGy", 5)
	require.NoError(t, err)
	assert.Equal(t, Feedback{MarkGreen, MarkYellow, MarkBlack, MarkGreen, MarkYellow}, fb)
	assert.Equal(t, "GYBGY", fb.String())
	assert.False(t, fb.AllGreen())

	_, err = ParseFeedback("GGGG", 5)
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	_, err = ParseFeedback("GGXGG", 5)
	assert.ErrorIs(t, err, ErrInvalidFeedback)

	all, err := ParseFeedback("ggggg", 5)
	require.NoError(t, err)
	assert.True(t, all.AllGreen())
}
