package suggest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/wordhint/pkg/corpus"
)

// Rule is a feedback-independent predicate over candidate words.
type Rule uint8

const (
	// RuleUnique admits words without repeated letters.
	RuleUnique Rule = iota
	// RuleSingular rejects plural-looking words: a trailing "s" unless the
	// word ends in "ss".
	RuleSingular
)

var ErrUnknownRule = errors.New("unknown rule")

var ruleAliases = map[string]Rule{
	"unique":    RuleUnique,
	"norepeats": RuleUnique,
	"nr":        RuleUnique,
	"singular":  RuleSingular,
	"noplurals": RuleSingular,
	"np":        RuleSingular,
}

// ParseRule resolves a rule by name or alias, case-insensitively.
func ParseRule(name string) (Rule, error) {
	r, ok := ruleAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return r, nil
}

// ParseRules resolves every name, dropping repeats while keeping order.
func ParseRules(names []string) ([]Rule, error) {
	var rules []Rule
	for _, name := range names {
		r, err := ParseRule(name)
		if err != nil {
			return nil, err
		}
		rules = appendRule(rules, r)
	}
	return rules, nil
}

func appendRule(rules []Rule, r Rule) []Rule {
	for _, have := range rules {
		if have == r {
			return rules
		}
	}
	return append(rules, r)
}

func (r Rule) String() string {
	switch r {
	case RuleUnique:
		return "unique"
	case RuleSingular:
		return "singular"
	}
	return fmt.Sprintf("rule(%d)", uint8(r))
}

// Match reports whether w satisfies r.
func (r Rule) Match(w corpus.Word) bool {
	switch r {
	case RuleUnique:
		return w.Unique()
	case RuleSingular:
		last := corpus.WordLen - 1
		return w[last] != 's' || w[last-1] == 's'
	}
	return false
}

// RuleNames returns the canonical names of rules, for display.
func RuleNames(rules []Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.String()
	}
	return names
}

// DefaultRules returns the rules a query actually runs with. Before any
// feedback exists, and when nothing was asked for explicitly, openers are
// restricted to words without repeated letters. Otherwise explicit is
// returned unchanged.
func DefaultRules(explicit []Rule, recordsSoFar int) []Rule {
	if recordsSoFar == 0 && len(explicit) == 0 {
		return []Rule{RuleUnique}
	}
	return explicit
}
