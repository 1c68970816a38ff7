package feedback

import (
	"testing"

	"github.com/bastiangx/wordhint/pkg/corpus"
)

func rec(t *testing.T, s string) Record {
	t.Helper()
	r, err := ParseRecord(s)
	if err != nil {
		t.Fatalf("ParseRecord(%q): %v", s, err)
	}
	return r
}

func TestMatches(t *testing.T) {
	testCases := []struct {
		description string
		record      string
		word        string
		want        bool
	}{
		{"elsewhere and here", "ic?i^ng", "crimp", true},
		{"absent letter present", "ic?i^ng", "crust", false},

		// one l Here, the other Absent: exactly one l
		{"repeat second copy in place", "sil^ly", "hello", false},
		{"repeat exact count", "sil^ly", "molar", true},
		{"repeat zero copies", "sil^ly", "hoard", false},
		{"repeat two copies", "sil^ly", "allow", false},

		// Elsewhere plus Absent on the same letter pins the count
		{"elsewhere plus absent", "l?evel", "holly", false},
		{"elsewhere plus absent ok", "l?evel", "cloud", true},

		// l Here at 2, Elsewhere at 3, Absent at 0: exactly two l,
		// one at 2, the other not at 0 or 3
		{"here elsewhere none", "lil^l?y", "bulla", false},
		{"here elsewhere none ok", "lil^l?y", "palol", true},
		{"here elsewhere none three copies", "lil^l?y", "ollal", false},
		{"here elsewhere none wrong spot", "lil^l?y", "aalll", false},

		// Elsewhere pins the count too: exactly one e not at 2, one r not at 3
		{"elsewhere only extra copies", "ale?r?t", "eerie", false},
		{"elsewhere only two copies", "ale?r?t", "merge", false},
		{"elsewhere only exact count", "ale?r?t", "cried", true},
		{"elsewhere only missing", "ale?r?t", "crimp", false},

		{"all here", "c^r^i^m^p^", "crimp", true},
		{"all here mismatch", "c^r^i^m^p^", "crime", false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Matches(corpus.MustWord(tc.word), rec(t, tc.record))
			if got != tc.want {
				t.Errorf("Matches(%s, %s) = %v, want %v", tc.word, tc.record, got, tc.want)
			}
		})
	}
}

// underCounted reports whether answer holds more copies of some guessed
// letter than guess does. Feedback for such pairs claims fewer copies than the
// answer has, so exact counting rejects the answer.
func underCounted(guess, answer corpus.Word) bool {
	for _, c := range guess {
		if guess.Count(c) < answer.Count(c) {
			return true
		}
	}
	return false
}

// Guess/answer pairs sampled from the corpus: the answer must satisfy the
// feedback it produced whenever that feedback counts every copy.
func TestScoreIsConsistentWithMatches(t *testing.T) {
	c := corpus.Default()
	step := max(c.Len()/60, 1)

	for gi := 0; gi < c.Len(); gi += step {
		guess := c.Entry(gi).Word
		for ai := 0; ai < c.Len(); ai++ {
			answer := c.Entry(ai).Word
			if underCounted(guess, answer) {
				continue
			}
			r := Score(guess, answer)
			if !Matches(answer, r) {
				t.Fatalf("answer %s rejected by its own feedback %s for guess %s", answer, r, guess)
			}
		}
	}
}

func TestScore(t *testing.T) {
	testCases := []struct {
		guess, answer, want string
	}{
		{"crane", "crane", "c^r^a^n^e^"},
		{"silly", "holds", "s?il^ly"},
		{"eerie", "crane", "eer?ie^"},
		{"llama", "hello", "l?l?ama"},
		{"alert", "eerie", "ale?r?t"},
		{"geese", "eerie", "ge^e?se^"},
		{"speed", "abide", "spe?ed?"},
	}

	for _, tc := range testCases {
		t.Run(tc.guess+"/"+tc.answer, func(t *testing.T) {
			got := Score(corpus.MustWord(tc.guess), corpus.MustWord(tc.answer)).String()
			if got != tc.want {
				t.Errorf("Score(%s, %s) = %s, want %s", tc.guess, tc.answer, got, tc.want)
			}
		})
	}
}

func TestAllHereAlwaysMatches(t *testing.T) {
	for _, e := range corpus.Default().WithPrefix("s") {
		var kinds [corpus.WordLen]Kind
		for i := range kinds {
			kinds[i] = KindHere
		}
		r := NewRecord(e.Word, kinds)
		if !r.Solved() {
			t.Fatalf("record %s should be solved", r)
		}
		if !Matches(e.Word, r) {
			t.Errorf("%s does not match its own all-here record", e.Word)
		}
	}
}

// A letter absent everywhere in the guess rules out exactly the words that
// contain it.
func TestAbsentEverywhere(t *testing.T) {
	r := rec(t, "sissy")
	c := corpus.Default()
	for i := range c.Len() {
		e := c.Entry(i)
		want := !e.Word.Contains('s') && !e.Word.Contains('i') && !e.Word.Contains('y')
		if got := Matches(e.Word, r); got != want {
			t.Errorf("Matches(%s, %s) = %v, want %v", e.Word, r, got, want)
		}
	}
}

func TestMatchesAll(t *testing.T) {
	records := []Record{rec(t, "mon?ey"), rec(t, "cabi^n?")}
	if !MatchesAll(corpus.MustWord("unzip"), records) {
		t.Error("unzip should satisfy both records")
	}
	if MatchesAll(corpus.MustWord("money"), records) {
		t.Error("money should be rejected")
	}
	if !MatchesAll(corpus.MustWord("money"), nil) {
		t.Error("no records should admit everything")
	}
}

func TestFixedLetters(t *testing.T) {
	fixed, ok := FixedLetters([]Record{rec(t, "c^rane"), rec(t, "cl^oak^")})
	if !ok {
		t.Fatal("records do not conflict")
	}
	if fixed != [corpus.WordLen]byte{'c', 'l', 0, 0, 'k'} {
		t.Errorf("FixedLetters = %q", fixed)
	}

	if _, ok := FixedLetters([]Record{rec(t, "c^rane"), rec(t, "b^loke")}); ok {
		t.Error("c and b both pinned to position 0 should conflict")
	}
}

func BenchmarkMatches(b *testing.B) {
	c := corpus.Default()
	r, _ := ParseRecord("lil^l?y")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Matches(c.Entry(i%c.Len()).Word, r)
	}
}
