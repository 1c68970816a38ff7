package feedback

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordhint/pkg/corpus"
)

// SyntaxError reports a feedback line that does not decode into a record.
// Line is 1-based and zero when the input did not come from a multi-line
// source.
type SyntaxError struct {
	Line   int
	Input  string
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Parse error on line %d: %q: %s", e.Line, e.Input, e.Msg)
	}
	return fmt.Sprintf("Parse error: %q: %s", e.Input, e.Msg)
}

// ParseRecord decodes one line of feedback such as "mon?ey" or "cabi^n?".
// Letters are case folded and surrounding whitespace is ignored.
func ParseRecord(s string) (Record, error) {
	input := strings.TrimSpace(s)
	var r Record

	pos := 0
	for n := range corpus.WordLen {
		if pos >= len(input) {
			return r, syntaxErr(input, pos, fmt.Sprintf("expected %d letters, got %d", corpus.WordLen, n))
		}

		c := input[pos]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if !corpus.IsLetter(c) {
			return r, syntaxErr(input, pos, fmt.Sprintf("unexpected character %q", input[pos]))
		}
		pos++

		kind := KindAbsent
		if pos < len(input) {
			switch input[pos] {
			case '^':
				kind = KindHere
				pos++
			case '?', '~':
				kind = KindElsewhere
				pos++
			}
		}
		r[n] = Verdict{Kind: kind, Letter: c}
	}

	if pos < len(input) {
		return r, syntaxErr(input, pos, fmt.Sprintf("unexpected trailing input %q", input[pos:]))
	}
	return r, nil
}

func syntaxErr(input string, pos int, msg string) *SyntaxError {
	return &SyntaxError{
		Input:  input,
		Column: pos + 1,
		Msg:    fmt.Sprintf("%s at column %d", msg, pos+1),
	}
}

// ParseLines decodes every line, numbering them from 1. Blank lines and lines
// starting with '#' are skipped but still counted. Either every line parses or
// an error naming the first bad line is returned.
func ParseLines(lines []string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		r, err := ParseRecord(trimmed)
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.Line = i + 1
			}
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// ParseRecords reads feedback lines from rd, see ParseLines.
func ParseRecords(rd io.Reader) ([]Record, error) {
	var lines []string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}
	return ParseLines(lines)
}
