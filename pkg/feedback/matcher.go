package feedback

import "github.com/bastiangx/wordhint/pkg/corpus"

// letterCounts is indexed by the letter byte itself so that records holding
// unexpected bytes are still matched without panicking.
type letterCounts [256]uint8

// Matches reports whether w could be the solution that produced r.
//
// Position rules:
//
//	Here(c) at i       w[i] == c
//	Elsewhere(c) at i  w[i] != c
//	Absent(c) at i     w[i] != c
//
// Count rules, where claimed(c) is the number of Here and Elsewhere marks c
// got in r:
//
//	c marked Absent or Elsewhere anywhere  count(w, c) == claimed(c)
//	c marked only Here                     no count check
func Matches(w corpus.Word, r Record) bool {
	var claimed letterCounts
	var counted [256]bool

	for i, v := range r {
		c := v.Letter
		switch v.Kind {
		case KindHere:
			if w[i] != c {
				return false
			}
			claimed[c]++
		case KindElsewhere:
			if w[i] == c {
				return false
			}
			claimed[c]++
			counted[c] = true
		case KindAbsent:
			if w[i] == c {
				return false
			}
			counted[c] = true
		}
	}

	var actual letterCounts
	for _, c := range w {
		actual[c]++
	}

	for _, v := range r {
		if c := v.Letter; counted[c] && actual[c] != claimed[c] {
			return false
		}
	}
	return true
}

// MatchesAll reports whether w is consistent with every record.
func MatchesAll(w corpus.Word, records []Record) bool {
	for _, r := range records {
		if !Matches(w, r) {
			return false
		}
	}
	return true
}

// FixedLetters collects the letters pinned by Here verdicts across records.
// Positions nobody pinned are zero. ok is false when two records pin
// different letters to the same position, in which case no word can match.
func FixedLetters(records []Record) (fixed [corpus.WordLen]byte, ok bool) {
	for _, r := range records {
		for i, v := range r {
			if v.Kind != KindHere {
				continue
			}
			if fixed[i] != 0 && fixed[i] != v.Letter {
				return fixed, false
			}
			fixed[i] = v.Letter
		}
	}
	return fixed, true
}
