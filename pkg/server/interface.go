/*
Package server implements msgpack IPC for wordhint suggestions.

Clients write a stream of msgpack maps to stdin and read one response map per
request from stdout. Requests are handled one at a time in arrival order. The
server keeps no game state: every request carries all feedback so far.

A suggestion request lists feedback lines as hints, optional rule names and a
limit:

	{"id": "req_001", "h": ["cra?ne", "s^l?ate"], "r": ["np"], "l": 5}

The response carries the ranked words with their weight and common flag, the
rules that were applied and the time taken in microseconds:

	{"id": "req_001", "s": [{"w": "sloth", "wt": 211, "c": true}], "c": 1, "t": 84, "rules": ["singular"]}

Guesses that are not corpus words are listed under "u"; their feedback still
applies:

	{"id": "req_001", "s": [...], "c": 5, "t": 84, "rules": [], "u": ["slate"]}

A limit of 0 uses the configured default and -1 asks for every admissible
word; both are capped by the configured maximum. "rand" switches to a random
order, and "seed" makes it reproducible.

Other actions:

	{"id": "info_1", "action": "info"}
	{"id": "rules_1", "action": "rules", "h": []}

"info" reports corpus statistics and limits. "rules" previews the rules a
suggestion request with the same hints would run with.

Bad feedback or unknown rules produce an ErrorResponse with code 400; the
stream continues. A stream that no longer decodes as msgpack ends the server.
*/
package server

// Actions understood besides the default suggestion request.
const (
	ActionSuggest = "suggest"
	ActionInfo    = "info"
	ActionRules   = "rules"
)

// Request is any IPC request. Action selects the operation, empty meaning
// ActionSuggest.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action,omitempty"`
	Hints  []string `msgpack:"h,omitempty"`
	Rules  []string `msgpack:"r,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
	Random bool     `msgpack:"rand,omitempty"`
	Seed   *uint64  `msgpack:"seed,omitempty"`
}

// Suggestion - minimal suggestion entry
type Suggestion struct {
	Word   string `msgpack:"w"`
	Weight uint32 `msgpack:"wt"`
	Common bool   `msgpack:"c"`
}

// SuggestResponse - suggestion response, TimeTaken in microseconds
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
	Rules       []string     `msgpack:"rules"`
	// Unknown lists guessed words that are not in the corpus.
	Unknown     []string     `msgpack:"u,omitempty"`
}

// InfoResponse - corpus and limit information
type InfoResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	TotalWords   int    `msgpack:"total_words"`
	CommonWords  int    `msgpack:"common_words"`
	MaxWeight    int    `msgpack:"max_weight"`
	DefaultLimit int    `msgpack:"default_limit"`
	MaxLimit     int    `msgpack:"max_limit"`
}

// RulesResponse - effective rules preview
type RulesResponse struct {
	ID    string   `msgpack:"id"`
	Rules []string `msgpack:"rules"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
