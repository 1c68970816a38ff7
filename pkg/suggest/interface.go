// Package suggest is the core: it filters the corpus by accumulated feedback
// and rules, ranks what survives, and hands results out lazily.
package suggest

import (
	"github.com/bastiangx/wordhint/pkg/corpus"
	"github.com/bastiangx/wordhint/pkg/feedback"
)

// ISuggester defines the interface front-ends query.
type ISuggester interface {
	// Suggestions returns the ranked selection for q
	Suggestions(q Query) *Selection

	// EffectiveRules returns the rules q will run with
	EffectiveRules(q Query) []Rule

	// UnknownGuesses lists guessed words missing from the corpus
	UnknownGuesses(records []feedback.Record) []string

	// Corpus returns the corpus being queried
	Corpus() *corpus.Corpus

	// Stats returns statistics about the corpus and caches
	Stats() map[string]int
}

var _ ISuggester = (*Suggester)(nil)
