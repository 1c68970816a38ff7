package suggest

import (
	"fmt"

	"github.com/bastiangx/wordhint/pkg/feedback"
)

// Request is a query as front-ends receive it: feedback lines and rule names
// still in text form.
type Request struct {
	Hints []string
	Rules []string
	// Limit caps the results, nil for all of them.
	Limit  *int
	Random bool
	// Seed implies Random.
	Seed *uint64
}

// Query parses the hints and rules of r. Hint errors are *feedback.SyntaxError
// values numbered by hint position; rule errors wrap ErrUnknownRule.
func (r Request) Query() (Query, error) {
	records, err := feedback.ParseLines(r.Hints)
	if err != nil {
		return Query{}, err
	}

	rules, err := ParseRules(r.Rules)
	if err != nil {
		return Query{}, fmt.Errorf("invalid rules: %w", err)
	}

	q := Query{Records: records, Rules: rules, Limit: r.Limit}
	if r.Random || r.Seed != nil {
		q.Random = &RandomOption{Seed: r.Seed}
	}
	return q, nil
}
