package suggest

import (
	"container/heap"
	"iter"

	"github.com/bastiangx/wordhint/pkg/corpus"
)

type ranked struct {
	entry corpus.Entry
	key   Key
	index int
}

// rankHeap is a max-heap over keys, lower index first on ties.
type rankHeap []ranked

func (h rankHeap) Len() int { return len(h) }

func (h rankHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.key.Common != b.key.Common {
		return a.key.Common
	}
	if a.key.Value != b.key.Value {
		return a.key.Value > b.key.Value
	}
	return a.index < b.index
}

func (h rankHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankHeap) Push(x any) { *h = append(*h, x.(ranked)) }

func (h *rankHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Selection lazily produces ranked entries, best first. Building it heapifies
// the candidates in linear time; every Next pops one in logarithmic time, so
// asking for a few results never sorts the rest.
//
// A Selection is single-use: once drained, or once its limit is reached, it
// stays exhausted.
type Selection struct {
	items     rankHeap
	remaining int
	unlimited bool
}

func newSelection(items rankHeap, limit *int) *Selection {
	heap.Init(&items)
	s := &Selection{items: items, unlimited: limit == nil}
	if limit != nil {
		s.remaining = max(*limit, 0)
	}
	return s
}

// Next returns the next best entry, or false when the selection is done.
func (s *Selection) Next() (corpus.Entry, bool) {
	if len(s.items) == 0 || (!s.unlimited && s.remaining == 0) {
		return corpus.Entry{}, false
	}
	if !s.unlimited {
		s.remaining--
	}
	return heap.Pop(&s.items).(ranked).entry, true
}

// Len returns how many more entries Next will produce.
func (s *Selection) Len() int {
	if s.unlimited {
		return len(s.items)
	}
	return min(s.remaining, len(s.items))
}

// Entries adapts the selection to a range-over-func iterator. Stopping the
// loop early leaves the remaining entries in the selection.
func (s *Selection) Entries() iter.Seq[corpus.Entry] {
	return func(yield func(corpus.Entry) bool) {
		for {
			e, ok := s.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// All yields the remaining words.
func (s *Selection) All() iter.Seq[corpus.Word] {
	return func(yield func(corpus.Word) bool) {
		for e := range s.Entries() {
			if !yield(e.Word) {
				return
			}
		}
	}
}

// Collect drains the selection into a slice of words.
func (s *Selection) Collect() []corpus.Word {
	out := make([]corpus.Word, 0, s.Len())
	for w := range s.All() {
		out = append(out, w)
	}
	return out
}

// CollectEntries drains the selection into a slice of entries.
func (s *Selection) CollectEntries() []corpus.Entry {
	out := make([]corpus.Entry, 0, s.Len())
	for e := range s.Entries() {
		out = append(out, e)
	}
	return out
}
