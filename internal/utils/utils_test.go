package utils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.in); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitFields(t *testing.T) {
	got := SplitFields(" crane,  s?late\tmon?ey ,")
	want := []string{"crane", "s?late", "mon?ey"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitFields = %q, want %q", got, want)
	}
}

func TestExtract(t *testing.T) {
	data := map[string]any{
		"section": map[string]any{"n": int64(3), "s": "x", "b": true},
		"flat":    "y",
	}

	section, ok := ExtractSection(data, "section")
	if !ok {
		t.Fatal("section not found")
	}
	if _, ok := ExtractSection(data, "flat"); ok {
		t.Error("a string is not a section")
	}
	if n, ok := ExtractInt(section, "n"); !ok || n != 3 {
		t.Errorf("ExtractInt = %d, %v", n, ok)
	}
	if _, ok := ExtractInt(section, "s"); ok {
		t.Error("string extracted as int")
	}
	if b, ok := Extract[bool](section, "b"); !ok || !b {
		t.Errorf("Extract[bool] = %v, %v", b, ok)
	}

	str, n := "keep", 7
	Assign(section, "s", &str)
	Assign(section, "missing", &str)
	AssignInt(section, "s", &n)
	if str != "x" || n != 7 {
		t.Errorf("Assign: got %q and %d", str, n)
	}
}

func TestSaveTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	in := struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	}{"crane", 5}

	if err := SaveTOMLFile(in, path); err != nil {
		t.Fatal(err)
	}

	out := in
	out.Name, out.Count = "", 0
	if err := LoadTOMLFile(path, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestResolveDataFile(t *testing.T) {
	dir := t.TempDir()
	name := "resolve-test-words.txt"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("crane\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := ResolveDataFile(name, dir); got != filepath.Join(dir, name) {
		t.Errorf("ResolveDataFile = %s", got)
	}
	if got := ResolveDataFile(StdinPath); got != StdinPath {
		t.Errorf("stdin path changed to %s", got)
	}
	abs := filepath.Join(dir, "missing.txt")
	if got := ResolveDataFile(abs); got != abs {
		t.Errorf("absolute path changed to %s", got)
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	res := CheckDirStatus(dir)
	if !res.Exists || !res.Writable || res.Error != nil {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestWriteFileAtomicFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.bin")
	boom := errors.New("boom")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("left files behind: %v", entries)
	}
}
