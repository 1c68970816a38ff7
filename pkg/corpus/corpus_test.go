package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func words(ss ...string) []Word {
	out := make([]Word, len(ss))
	for i, s := range ss {
		out[i] = MustWord(s)
	}
	return out
}

func TestParseWord(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"crane", "crane", nil},
		{"CRANE", "crane", nil},
		{"cran", "", ErrWordLength},
		{"cranes", "", ErrWordLength},
		{"cr4ne", "", ErrWordChar},
		{"cr ne", "", ErrWordChar},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			w, err := ParseWord(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ParseWord(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if err == nil && w.String() != tc.want {
				t.Errorf("ParseWord(%q) = %s, want %s", tc.input, w, tc.want)
			}
		})
	}
}

func TestWordHelpers(t *testing.T) {
	w := MustWord("silly")
	if got := w.Count('l'); got != 2 {
		t.Errorf("Count('l') = %d, want 2", got)
	}
	if w.Contains('z') {
		t.Error("silly should not contain z")
	}
	if w.Unique() {
		t.Error("silly has repeated letters")
	}
	if !MustWord("crimp").Unique() {
		t.Error("crimp has unique letters")
	}
}

// Weights sum, per position, how many words share the letter at that position.
func TestBuildWeights(t *testing.T) {
	c := Build(words("crane", "crime", "bloke"), words("crime"))

	want := map[string]uint32{
		// c:2 r:2 a:1 n:1 e:3
		"crane": 2 + 2 + 1 + 1 + 3,
		// c:2 r:2 i:1 m:1 e:3
		"crime": 2 + 2 + 1 + 1 + 3,
		// b:1 l:1 o:1 k:1 e:3
		"bloke": 1 + 1 + 1 + 1 + 3,
	}

	for _, e := range c.entries {
		if e.Weight != want[e.Word.String()] {
			t.Errorf("weight(%s) = %d, want %d", e.Word, e.Weight, want[e.Word.String()])
		}
		if e.Common != (e.Word.String() == "crime") {
			t.Errorf("common(%s) = %v", e.Word, e.Common)
		}
	}

	stats := c.Stats()
	if stats.TotalWords != 3 || stats.CommonWords != 1 || stats.MaxWeight != 9 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestBuildDeduplicates(t *testing.T) {
	c := Build(words("crane", "crane", "bloke"), nil)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	// the duplicate must not inflate weights: c1 r1 a1 n1 e2
	e, _ := c.Lookup(MustWord("crane"))
	if e.Weight != 6 {
		t.Errorf("weight(crane) = %d, want 6", e.Weight)
	}
}

func TestNewSkipsInvalidWords(t *testing.T) {
	c := New([]Entry{
		{Word: MustWord("crane"), Weight: 3},
		{Word: Word{'c', 'r', 'A', 'n', 'e'}, Weight: 9},
		{Word: Word{'b', 'l', 'o', 'k', 0}, Weight: 9},
		{Word: MustWord("bloke"), Weight: 2},
	})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Entry(0).Word.String() != "crane" || c.Entry(1).Word.String() != "bloke" {
		t.Errorf("entries = %v, %v", c.Entry(0), c.Entry(1))
	}
	if c.Stats().MaxWeight != 3 {
		t.Errorf("MaxWeight = %d, want 3", c.Stats().MaxWeight)
	}
}

func TestLookupAndPrefix(t *testing.T) {
	c := Build(words("crane", "bloke", "crate", "crimp"), nil)

	if !c.Contains(MustWord("crate")) {
		t.Error("crate should be in the corpus")
	}
	if c.Contains(MustWord("zebra")) {
		t.Error("zebra should not be in the corpus")
	}

	got := c.WithPrefix("cra")
	if len(got) != 2 || got[0].Word.String() != "crane" || got[1].Word.String() != "crate" {
		t.Errorf("WithPrefix(cra) = %v", got)
	}
	if got := c.WithPrefix("x"); len(got) != 0 {
		t.Errorf("WithPrefix(x) = %v, want empty", got)
	}
}

func TestCandidates(t *testing.T) {
	c := Build(words("crane", "bloke", "crate", "crimp"), nil)

	var fixed [WordLen]byte
	if got := c.Candidates(fixed).Count(); got != 4 {
		t.Errorf("unconstrained candidates = %d, want 4", got)
	}

	fixed[0], fixed[2] = 'c', 'a'
	set := c.Candidates(fixed)
	if set.Count() != 2 || !set.Test(0) || !set.Test(2) {
		t.Errorf("candidates for c?a?? = %v", set)
	}

	fixed[4] = 'z'
	if got := c.Candidates(fixed).Count(); got != 0 {
		t.Errorf("candidates with impossible letter = %d, want 0", got)
	}
}

func TestReadWordsSkipsInvalidLines(t *testing.T) {
	input := "crane\nCrane\nbad\ntoolong\ncr4ne\n\n  bloke  \n"
	got, err := ReadWords(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].String() != "crane" || got[1].String() != "bloke" {
		t.Errorf("ReadWords = %v", got)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	c := Build(words("crane", "bloke", "crate", "crimp"), words("crimp"))

	var buf bytes.Buffer
	if err := WriteBinary(&buf, c); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != headerSize+4*entrySize {
		t.Fatalf("encoded size = %d", buf.Len())
	}

	got, err := ReadBinary(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != c.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), c.Len())
	}
	for i := range c.Len() {
		if got.Entry(i) != c.Entry(i) {
			t.Errorf("entry %d = %+v, want %+v", i, got.Entry(i), c.Entry(i))
		}
	}
}

func TestReadBinaryRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"negative count", []byte{0xff, 0xff, 0xff, 0xff}},
		{"truncated entry", []byte{1, 0, 0, 0, 'c', 'r'}},
		{"non letter", []byte{1, 0, 0, 0, 'c', 'r', '4', 'n', 'e', 1, 0, 0, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadBinary(bytes.NewReader(tc.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "words.txt")
	commonPath := filepath.Join(dir, "common.txt")
	if err := os.WriteFile(textPath, []byte("crane\nbloke\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(commonPath, []byte("bloke\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(textPath, commonPath)
	if err != nil {
		t.Fatal(err)
	}
	if e, ok := c.Lookup(MustWord("bloke")); !ok || !e.Common {
		t.Errorf("bloke should be a common corpus word, got %+v", e)
	}

	binPath := filepath.Join(dir, "corpus.bin")
	f, err := os.Create(binPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteBinary(f, c); err != nil {
		t.Fatal(err)
	}
	f.Close()

	fromBin, err := Load(binPath, "")
	if err != nil {
		t.Fatal(err)
	}
	if fromBin.Len() != 2 {
		t.Errorf("binary corpus Len() = %d, want 2", fromBin.Len())
	}

	if _, err := Load(filepath.Join(dir, "corpus.json"), ""); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestValidateBinaryFormatChecksSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	// header claims two entries, body holds none
	if err := os.WriteFile(path, []byte{2, 0, 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	err := ValidateFileFormat(path, FormatBinary)
	if !errors.Is(err, ErrBadHeader) {
		t.Errorf("ValidateFileFormat error = %v, want ErrBadHeader", err)
	}
}

func TestDefaultCorpus(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default corpus is empty")
	}
	if c != Default() {
		t.Error("Default should return the shared corpus")
	}
	e, ok := c.Lookup(MustWord("money"))
	if !ok || !e.Common {
		t.Errorf("money should be a common word, got %+v", e)
	}
}
