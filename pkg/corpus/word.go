package corpus

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the number of letters in every word of the game.
const WordLen = 5

var (
	ErrWordLength = errors.New("word must be exactly 5 letters")
	ErrWordChar   = errors.New("word must only contain letters a-z")
)

// Word is a five letter lowercase ASCII word.
type Word [WordLen]byte

// ParseWord validates s and converts it into a Word.
// Upper case letters are folded, anything outside a-z is rejected.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != WordLen {
		return w, fmt.Errorf("%q: %w", s, ErrWordLength)
	}
	s = strings.ToLower(s)
	for i := 0; i < WordLen; i++ {
		if !IsLetter(s[i]) {
			return w, fmt.Errorf("%q: %w", s, ErrWordChar)
		}
		w[i] = s[i]
	}
	return w, nil
}

// MustWord is ParseWord for literals known to be valid. It panics otherwise.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// IsLetter reports whether c is a lowercase ASCII letter.
func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func (w Word) String() string {
	return string(w[:])
}

// Count returns how many times c occurs in w.
func (w Word) Count(c byte) int {
	n := 0
	for _, x := range w {
		if x == c {
			n++
		}
	}
	return n
}

// Contains reports whether c occurs anywhere in w.
func (w Word) Contains(c byte) bool {
	for _, x := range w {
		if x == c {
			return true
		}
	}
	return false
}

// Unique reports whether all letters of w are distinct.
func (w Word) Unique() bool {
	var seen uint32
	for _, x := range w {
		bit := uint32(1) << (x - 'a')
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}
