package suggest

import (
	"slices"

	"github.com/bastiangx/wordhint/pkg/corpus"
	"github.com/bastiangx/wordhint/pkg/feedback"
	"github.com/charmbracelet/log"
)

// RandomOption requests a random ordering. A nil Seed draws a fresh one.
type RandomOption struct {
	Seed *uint64
}

// Query is everything a suggestion request depends on.
type Query struct {
	Records []feedback.Record
	// Rules asked for explicitly; see DefaultRules.
	Rules []Rule
	// Limit caps the results, nil for all of them.
	Limit *int
	// Random replaces weight ranking with a random permutation when set.
	Random *RandomOption
}

// Top is a convenience for building a Query limit.
func Top(n int) *int {
	return &n
}

// Suggester answers queries against one corpus. It keeps no per-query state
// and is safe for concurrent use.
type Suggester struct {
	corpus *corpus.Corpus
	logger *log.Logger
	cache  *FilterCache
}

type Option func(*Suggester)

// WithCache keeps up to n admissible sets in a FilterCache. n <= 0 disables
// caching.
func WithCache(n int) Option {
	return func(s *Suggester) {
		if n > 0 {
			s.cache = NewFilterCache(n)
		} else {
			s.cache = nil
		}
	}
}

func New(c *corpus.Corpus, logger *log.Logger, opts ...Option) *Suggester {
	if logger == nil {
		logger = log.Default()
	}
	s := &Suggester{corpus: c, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Suggester) Corpus() *corpus.Corpus {
	return s.corpus
}

// EffectiveRules returns the rules q runs with, so front-ends can show them
// before running the query.
func (s *Suggester) EffectiveRules(q Query) []Rule {
	return DefaultRules(q.Rules, len(q.Records))
}

// Admissible returns the entries consistent with q, in corpus order.
func (s *Suggester) Admissible(q Query) []corpus.Entry {
	idxs := s.filter(q.Records, s.EffectiveRules(q))
	entries := make([]corpus.Entry, len(idxs))
	for i, idx := range idxs {
		entries[i] = s.corpus.Entry(idx)
	}
	return entries
}

// Suggestions ranks the admissible entries of q and returns a selection
// producing at most q.Limit of them, best first.
func (s *Suggester) Suggestions(q Query) *Selection {
	entries := s.Admissible(q)

	var strategy KeyStrategy = WeightStrategy{}
	if q.Random != nil {
		strategy = NewRandomStrategy(q.Random.Seed)
	}

	s.logger.Debug("Ranking suggestions",
		"records", len(q.Records),
		"rules", RuleNames(s.EffectiveRules(q)),
		"admissible", len(entries),
		"random", q.Random != nil)

	return Rank(entries, strategy, q.Limit)
}

// UnknownGuesses lists the guesses of records that are not corpus words, in
// order and without repeats. Such feedback is still applied.
func (s *Suggester) UnknownGuesses(records []feedback.Record) []string {
	var unknown []string
	for _, r := range records {
		w := r.Guess()
		if s.corpus.Contains(w) || slices.Contains(unknown, w.String()) {
			continue
		}
		unknown = append(unknown, w.String())
	}
	return unknown
}

func (s *Suggester) filter(records []feedback.Record, rules []Rule) []int {
	if s.cache == nil {
		return Filter(s.corpus, records, rules)
	}

	key := cacheKey(records, rules)
	if idxs, ok := s.cache.Get(key); ok {
		return idxs
	}
	idxs := Filter(s.corpus, records, rules)
	s.cache.Put(key, idxs)
	return idxs
}

// Stats reports corpus and cache counters.
func (s *Suggester) Stats() map[string]int {
	cs := s.corpus.Stats()
	stats := map[string]int{
		"totalWords":  cs.TotalWords,
		"commonWords": cs.CommonWords,
		"maxWeight":   int(cs.MaxWeight),
	}
	if s.cache != nil {
		for k, v := range s.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}
