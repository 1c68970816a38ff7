package feedback

import "github.com/bastiangx/wordhint/pkg/corpus"

// Score computes the record the game returns for guess when the solution is
// answer, using the usual two passes:
//
//  1. letters in the right spot are Here; the remaining answer letters are
//     counted,
//  2. every other guess letter is Elsewhere while unmatched copies of it are
//     left in the answer, and Absent once they run out.
func Score(guess, answer corpus.Word) Record {
	var r Record
	var remaining letterCounts

	for i := range guess {
		if guess[i] == answer[i] {
			r[i] = Here(guess[i])
		} else {
			remaining[answer[i]]++
		}
	}

	for i, c := range guess {
		if c == answer[i] {
			continue
		}
		if remaining[c] > 0 {
			r[i] = Elsewhere(c)
			remaining[c]--
		} else {
			r[i] = Absent(c)
		}
	}
	return r
}
