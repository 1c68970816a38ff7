package corpus

// Builder accumulates words and derives corpus weights when Build is called.
// It is the one place weights are computed; queries never recompute them.
type Builder struct {
	words  []Word
	seen   map[Word]struct{}
	common map[Word]struct{}
	// freq[letter][pos] counts words with letter at pos.
	freq [26][WordLen]uint32
}

func NewBuilder() *Builder {
	return &Builder{
		seen:   make(map[Word]struct{}),
		common: make(map[Word]struct{}),
	}
}

// Add appends w unless it was already added. It reports whether w was new.
func (b *Builder) Add(w Word) bool {
	if _, ok := b.seen[w]; ok {
		return false
	}
	b.seen[w] = struct{}{}
	b.words = append(b.words, w)
	for pos, ch := range w {
		b.freq[ch-'a'][pos]++
	}
	return true
}

// MarkCommon flags w as an everyday word. Words never added are ignored.
func (b *Builder) MarkCommon(w Word) {
	b.common[w] = struct{}{}
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int {
	return len(b.words)
}

// Weight returns the letter-position weight of w against the words added so far.
func (b *Builder) Weight(w Word) uint32 {
	var weight uint32
	for pos, ch := range w {
		weight += b.freq[ch-'a'][pos]
	}
	return weight
}

// Build freezes the accumulated words into a Corpus.
func (b *Builder) Build() *Corpus {
	entries := make([]Entry, len(b.words))
	for i, w := range b.words {
		_, common := b.common[w]
		entries[i] = Entry{
			Word:   w,
			Weight: b.Weight(w),
			Common: common,
		}
	}
	return New(entries)
}
