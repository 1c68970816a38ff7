/*
Package corpus holds the static word pool the suggestion engine ranks.

A Corpus is built once, from a word list and an optional list of everyday
words, and is read-only afterwards. Every entry carries a weight derived from
letter-position frequencies across the whole list:

	weight(w) = sum over i of |{ v in corpus : v[i] == w[i] }|

Words whose letters sit where letters usually sit score higher. The common flag
marks words from the everyday list; rankers use it ahead of the weight.

Two indexes are kept next to the entries. A patricia trie maps words to their
entry for lookups and prefix walks, and a positional bitset index records, for
every (position, letter) pair, which entries carry that letter there. The
filter pipeline intersects the latter to skip words that cannot satisfy known
letter positions.

A Corpus is safe for concurrent readers.
*/
package corpus

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a corpus word with its precomputed ranking data.
type Entry struct {
	Word   Word
	Weight uint32
	Common bool
}

// Stats summarizes a corpus.
type Stats struct {
	TotalWords  int
	CommonWords int
	MaxWeight   uint32
}

// Corpus is an immutable, indexed list of entries.
type Corpus struct {
	entries []Entry
	trie    *patricia.Trie
	// letters[pos][letter] is the set of entry indexes with letter at pos.
	letters [WordLen][26]*bitset.BitSet
	stats   Stats
}

// New indexes entries as given. Weights are taken verbatim, which is what the
// binary loader needs; use Build or a Builder to derive them from a word list.
// Duplicate words keep their first entry; words holding anything but a-z are
// skipped.
func New(entries []Entry) *Corpus {
	c := &Corpus{
		entries: make([]Entry, 0, len(entries)),
		trie:    patricia.NewTrie(),
	}

	for _, e := range entries {
		if !isLowerAlpha(e.Word.String()) {
			log.Warnf("Skipping invalid corpus word %q", e.Word.String())
			continue
		}
		if !c.trie.Insert(patricia.Prefix(e.Word[:]), len(c.entries)) {
			log.Debugf("Skipping duplicate corpus word %s", e.Word)
			continue
		}
		c.entries = append(c.entries, e)
	}

	n := uint(len(c.entries))
	for idx, e := range c.entries {
		for pos, ch := range e.Word {
			set := c.letters[pos][ch-'a']
			if set == nil {
				set = bitset.New(n)
				c.letters[pos][ch-'a'] = set
			}
			set.Set(uint(idx))
		}

		c.stats.TotalWords++
		if e.Common {
			c.stats.CommonWords++
		}
		if e.Weight > c.stats.MaxWeight {
			c.stats.MaxWeight = e.Weight
		}
	}
	return c
}

// Build creates a corpus from a word list, computing letter-position weights
// over the deduplicated list. Words also present in common are flagged.
func Build(words, common []Word) *Corpus {
	b := NewBuilder()
	for _, w := range words {
		b.Add(w)
	}
	for _, w := range common {
		b.MarkCommon(w)
	}
	return b.Build()
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i, in corpus order.
func (c *Corpus) Entry(i int) Entry {
	return c.entries[i]
}

// Lookup finds the entry for w.
func (c *Corpus) Lookup(w Word) (Entry, bool) {
	item := c.trie.Get(patricia.Prefix(w[:]))
	if item == nil {
		return Entry{}, false
	}
	return c.entries[item.(int)], true
}

// Contains reports whether w is in the corpus.
func (c *Corpus) Contains(w Word) bool {
	_, ok := c.Lookup(w)
	return ok
}

// WithPrefix returns the entries whose word starts with prefix, in corpus order.
func (c *Corpus) WithPrefix(prefix string) []Entry {
	var idxs []int
	err := c.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		idxs = append(idxs, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting corpus subtree: %v", err)
		return nil
	}

	slices.Sort(idxs)
	out := make([]Entry, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.entries[i])
	}
	return out
}

// Candidates returns the set of entry indexes compatible with the fixed
// letters. A zero byte in fixed leaves that position unconstrained. The
// returned set is owned by the caller.
func (c *Corpus) Candidates(fixed [WordLen]byte) *bitset.BitSet {
	n := uint(len(c.entries))
	set := bitset.New(n).FlipRange(0, n)
	for pos, ch := range fixed {
		if ch == 0 {
			continue
		}
		if !IsLetter(ch) {
			return bitset.New(n)
		}
		idx := c.letters[pos][ch-'a']
		if idx == nil {
			return bitset.New(n)
		}
		set.InPlaceIntersection(idx)
	}
	return set
}

// Stats returns summary counts for the corpus.
func (c *Corpus) Stats() Stats {
	return c.stats
}
