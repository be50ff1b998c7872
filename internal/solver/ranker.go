// internal/solver/ranker.go
//
// Positional-frequency ranking.
// Responsibilities:
//   - Build a per-position letter count table over the current pool.
//   - Score words by summed positional frequency.
//   - Rank the pool and pick the best next guess.
//
// The table is rebuilt from scratch whenever the pool changes; pools are a
// few thousand words at most, so there is nothing to gain from incremental
// bookkeeping.

package solver

import "sort"

// Table holds, for each position, the count of every letter at that
// position across the pool.
type Table [][26]int

// BuildTable counts letter occurrences by position over the pool.
// The counts at any position sum to the pool size.
func BuildTable(p *Pool) Table {
	t := make(Table, p.wordLen)
	for _, w := range p.words {
		for i := 0; i < len(w); i++ {
			t[i][idx(w[i])]++
		}
	}
	return t
}

// ScoreWord sums the positional count of each letter in word.
// Repeated letters contribute each of their own positions' counts.
func ScoreWord(t Table, word string) int {
	score := 0
	for i := 0; i < len(word) && i < len(t); i++ {
		j := idx(word[i])
		if j >= 0 && j < 26 {
			score += t[i][j]
		}
	}
	return score
}

// Rank returns the pool's words sorted by score descending. The sort is
// stable, so ties keep their dictionary order and output is deterministic.
func Rank(p *Pool, t Table) []string {
	ranked := p.Words()
	sort.SliceStable(ranked, func(a, b int) bool {
		return ScoreWord(t, ranked[a]) > ScoreWord(t, ranked[b])
	})
	return ranked
}

// Suggest returns the best next guess for the pool, recomputing
// frequencies first. ErrNoCandidates if the pool is empty.
func Suggest(p *Pool) (string, error) {
	if p.Empty() {
		return "", ErrNoCandidates
	}
	return Rank(p, BuildTable(p))[0], nil
}
