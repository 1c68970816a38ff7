package suggest

import (
	"github.com/bastiangx/wordhint/pkg/corpus"
	"github.com/bastiangx/wordhint/pkg/feedback"
)

// Admissible reports whether w is consistent with every record and satisfies
// every rule.
func Admissible(w corpus.Word, records []feedback.Record, rules []Rule) bool {
	for _, r := range rules {
		if !r.Match(w) {
			return false
		}
	}
	return feedback.MatchesAll(w, records)
}

// Filter returns the corpus indexes of admissible entries in ascending order.
// Only entries carrying every letter pinned by a Here verdict are tested.
func Filter(c *corpus.Corpus, records []feedback.Record, rules []Rule) []int {
	fixed, ok := feedback.FixedLetters(records)
	if !ok {
		return nil
	}

	candidates := c.Candidates(fixed)
	out := make([]int, 0, candidates.Count())
	for i, found := candidates.NextSet(0); found; i, found = candidates.NextSet(i + 1) {
		if Admissible(c.Entry(int(i)).Word, records, rules) {
			out = append(out, int(i))
		}
	}
	return out
}
