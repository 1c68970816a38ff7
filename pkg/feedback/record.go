/*
Package feedback models the game's answer to a guess and decides which words
are still possible given it.

A Record holds one Verdict per letter of the guess:

	Here(c)       c is in the solution at this position
	Elsewhere(c)  c is in the solution, not at this position
	Absent(c)     c is not at this position, and the solution has no more
	              copies of c than the guess got Here/Elsewhere marks for

The last rule is how the game treats repeated letters: it hands out at most as
many Here/Elsewhere marks for a letter as the solution contains, so a guess
with two l's against a solution with one gets a single mark and one Absent.
Matches therefore reasons about letter counts across the whole record rather
than one position at a time.

Records are written as five letters, each optionally followed by a marker,
"^" for Here and "?" or "~" for Elsewhere:

	cabi^n?    c, a, b absent; i here; n elsewhere
*/
package feedback

import (
	"strings"

	"github.com/bastiangx/wordhint/pkg/corpus"
)

// Kind is the verdict the game gave a single letter.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindElsewhere
	KindHere
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindElsewhere:
		return "elsewhere"
	case KindHere:
		return "here"
	}
	return "unknown"
}

// Marker is the suffix that denotes k in the text syntax.
func (k Kind) Marker() string {
	switch k {
	case KindElsewhere:
		return "?"
	case KindHere:
		return "^"
	}
	return ""
}

// Verdict is the feedback for one letter position.
type Verdict struct {
	Kind   Kind
	Letter byte
}

func Here(c byte) Verdict      { return Verdict{KindHere, c} }
func Elsewhere(c byte) Verdict { return Verdict{KindElsewhere, c} }
func Absent(c byte) Verdict    { return Verdict{KindAbsent, c} }

func (v Verdict) String() string {
	return string(v.Letter) + v.Kind.Marker()
}

// Record is the feedback for one guess, one verdict per position.
type Record [corpus.WordLen]Verdict

// NewRecord pairs a guess with the kinds the game returned for it.
func NewRecord(guess corpus.Word, kinds [corpus.WordLen]Kind) Record {
	var r Record
	for i := range r {
		r[i] = Verdict{Kind: kinds[i], Letter: guess[i]}
	}
	return r
}

// Guess returns the guessed word the record was produced for.
func (r Record) Guess() corpus.Word {
	var w corpus.Word
	for i, v := range r {
		w[i] = v.Letter
	}
	return w
}

// Solved reports whether every letter is Here.
func (r Record) Solved() bool {
	for _, v := range r {
		if v.Kind != KindHere {
			return false
		}
	}
	return true
}

// String renders r in the syntax ParseRecord accepts.
func (r Record) String() string {
	var b strings.Builder
	for _, v := range r {
		b.WriteString(v.String())
	}
	return b.String()
}
