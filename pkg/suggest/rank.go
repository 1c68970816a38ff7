package suggest

import (
	"math/rand/v2"

	"github.com/bastiangx/wordhint/pkg/corpus"
)

// Key is the sort key of a ranked candidate. Common keys rank first, then
// higher values.
type Key struct {
	Common bool
	Value  uint64
}

// KeyStrategy assigns ranking keys. Rank calls Key once per entry, in the
// order the entries were given.
type KeyStrategy interface {
	Key(e corpus.Entry) Key
}

// WeightStrategy ranks common words first, then by letter-position weight.
type WeightStrategy struct{}

func (WeightStrategy) Key(e corpus.Entry) Key {
	return Key{Common: e.Common, Value: uint64(e.Weight)}
}

// RandomStrategy gives every entry a uniformly random key and treats all of
// them as common, producing a random permutation. It is not safe for
// concurrent use; build one per query.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy returns a strategy seeded from seed, or from a
// non-deterministic source when seed is nil. Equal seeds over equal inputs
// produce equal orders.
func NewRandomStrategy(seed *uint64) *RandomStrategy {
	var hi, lo uint64
	if seed != nil {
		hi, lo = *seed, *seed^0x9e3779b97f4a7c15
	} else {
		hi, lo = rand.Uint64(), rand.Uint64()
	}
	return &RandomStrategy{rng: rand.New(rand.NewPCG(hi, lo))}
}

func (s *RandomStrategy) Key(corpus.Entry) Key {
	return Key{Common: true, Value: s.rng.Uint64()}
}

// Rank keys entries with strategy and returns a selection producing them best
// first, at most limit of them. A nil limit produces all. Equal keys keep the
// order of entries.
func Rank(entries []corpus.Entry, strategy KeyStrategy, limit *int) *Selection {
	items := make(rankHeap, len(entries))
	for i, e := range entries {
		items[i] = ranked{entry: e, key: strategy.Key(e), index: i}
	}
	return newSelection(items, limit)
}
