package corpus

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Binary layout: an int32 entry count, then per entry the five word bytes, a
// uint32 weight and a flags byte. All integers are little endian.
const (
	headerSize = 4
	entrySize  = WordLen + 4 + 1

	flagCommon = 1 << 0

	// Sanity check: more than 1M five letter words is not a word list.
	maxEntries = 1_000_000
)

var ErrBadHeader = errors.New("invalid corpus header")

func checkCount(count int32) error {
	if count < 0 {
		return fmt.Errorf("%w: negative word count %d", ErrBadHeader, count)
	}
	if count > maxEntries {
		return fmt.Errorf("%w: suspicious word count %d", ErrBadHeader, count)
	}
	return nil
}

// ReadWords reads a newline separated word list. Lines that are not five
// lowercase letters are skipped, so generic dictionaries like
// /usr/share/dict/words can be used as is.
func ReadWords(r io.Reader) ([]Word, error) {
	var words []Word
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) != WordLen || !isLowerAlpha(line) {
			if line != "" {
				skipped++
			}
			continue
		}
		words = append(words, Word([]byte(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	log.Debugf("Read %d words, skipped %d lines", len(words), skipped)
	return words, nil
}

// ReadWordsFile is ReadWords over a file.
func ReadWordsFile(path string) ([]Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadWords(bufio.NewReader(file))
}

// LoadText builds a corpus from a word list file and an optional common list.
func LoadText(wordsPath, commonPath string) (*Corpus, error) {
	words, err := ReadWordsFile(wordsPath)
	if err != nil {
		return nil, err
	}

	var common []Word
	if commonPath != "" {
		common, err = ReadWordsFile(commonPath)
		if err != nil {
			return nil, err
		}
	}
	return Build(words, common), nil
}

// ReadBinary decodes a corpus written by WriteBinary.
func ReadBinary(r io.Reader) (*Corpus, error) {
	reader := bufio.NewReader(r)

	var count int32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}
	if err := checkCount(count); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, count)
	buf := make([]byte, entrySize)
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("failed to read entry %d of %d: %w", i+1, count, err)
		}

		var w Word
		copy(w[:], buf[:WordLen])
		if !isLowerAlpha(w.String()) {
			return nil, fmt.Errorf("entry %d: %q: %w", i+1, w.String(), ErrWordChar)
		}

		entries = append(entries, Entry{
			Word:   w,
			Weight: binary.LittleEndian.Uint32(buf[WordLen : WordLen+4]),
			Common: buf[WordLen+4]&flagCommon != 0,
		})
	}

	return New(entries), nil
}

// LoadBinary reads a binary corpus file.
func LoadBinary(path string) (*Corpus, error) {
	if err := ValidateFileFormat(path, FormatBinary); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadBinary(file)
}

// WriteBinary encodes c so that ReadBinary restores the same entries in the
// same order.
func WriteBinary(w io.Writer, c *Corpus) error {
	writer := bufio.NewWriter(w)

	if err := binary.Write(writer, binary.LittleEndian, int32(c.Len())); err != nil {
		return fmt.Errorf("failed to write corpus header: %w", err)
	}

	buf := make([]byte, entrySize)
	for _, e := range c.entries {
		copy(buf, e.Word[:])
		binary.LittleEndian.PutUint32(buf[WordLen:], e.Weight)
		buf[WordLen+4] = 0
		if e.Common {
			buf[WordLen+4] |= flagCommon
		}
		if _, err := writer.Write(buf); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", e.Word, err)
		}
	}
	return writer.Flush()
}

// Load opens a corpus file in whichever format its extension names.
// commonPath only applies to text word lists.
func Load(path, commonPath string) (*Corpus, error) {
	switch format := DetectFileFormat(path); format {
	case FormatBinary:
		if commonPath != "" {
			log.Warnf("Ignoring common word list %s: binary corpus %s carries its own flags", commonPath, path)
		}
		return LoadBinary(path)
	case FormatText:
		return LoadText(path, commonPath)
	default:
		return nil, fmt.Errorf("unable to detect corpus format for file %s", path)
	}
}

func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsLetter(s[i]) {
			return false
		}
	}
	return true
}
