package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bastiangx/wordhint/internal/metrics"
	"github.com/bastiangx/wordhint/pkg/suggest"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// suggestReq is the POST /suggest payload. Limit and All are exclusive.
type suggestReq struct {
	Hints  []string `json:"hints"`
	Rules  []string `json:"rules"`
	Limit  *int     `json:"limit"`
	All    bool     `json:"all"`
	Random bool     `json:"random"`
	Seed   *uint64  `json:"seed"`
}

type suggestion struct {
	Word   string `json:"word"`
	Weight uint32 `json:"weight"`
	Common bool   `json:"common"`
}

type suggestRes struct {
	ID          string       `json:"id,omitempty"`
	Suggestions []suggestion `json:"suggestions"`
	Count       int          `json:"count"`
	Rules       []string     `json:"rules"`
	TimeUS      int64        `json:"time_us"`
	Unknown     []string     `json:"unknown,omitempty"`
}

type rulesRes struct {
	Rules []string `json:"rules"`
}

type infoRes struct {
	TotalWords   int `json:"total_words"`
	CommonWords  int `json:"common_words"`
	MaxWeight    int `json:"max_weight"`
	DefaultLimit int `json:"default_limit"`
	MaxLimit     int `json:"max_limit"`
}

type errorRes struct {
	Error string `json:"error"`
}

// limit resolves the requested limit against config. all is capped by
// max_limit like any explicit limit.
func (s *Server) limit(req suggestReq) *int {
	if req.All {
		if s.config.Suggest.MaxLimit > 0 {
			return suggest.Top(s.config.Suggest.MaxLimit)
		}
		return nil
	}
	return suggest.Top(s.config.ClampLimit(req.Limit))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req suggestReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.metrics.IncrementParseErrors(metrics.SourceHTTP)
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}
	if req.All && req.Limit != nil {
		s.metrics.IncrementParseErrors(metrics.SourceHTTP)
		writeError(w, http.StatusBadRequest, "the argument 'all' cannot be used with 'limit'")
		return
	}

	q, err := suggest.Request{
		Hints:  req.Hints,
		Rules:  req.Rules,
		Limit:  s.limit(req),
		Random: req.Random,
		Seed:   req.Seed,
	}.Query()
	if err != nil {
		s.metrics.IncrementParseErrors(metrics.SourceHTTP)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries := s.suggester.Suggestions(q).CollectEntries()
	out := make([]suggestion, len(entries))
	for i, e := range entries {
		out[i] = suggestion{Word: e.Word.String(), Weight: e.Weight, Common: e.Common}
	}
	elapsed := time.Since(start)

	s.metrics.ObserveQuery(metrics.SourceHTTP, start, len(out))
	s.logger.Debug("Served suggestions", "id", chimw.GetReqID(r.Context()), "count", len(out), "took", elapsed)

	writeJSON(w, http.StatusOK, suggestRes{
		ID:          chimw.GetReqID(r.Context()),
		Suggestions: out,
		Count:       len(out),
		Rules:       suggest.RuleNames(s.suggester.EffectiveRules(q)),
		TimeUS:      elapsed.Microseconds(),
		Unknown:     s.suggester.UnknownGuesses(q.Records),
	})
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q, err := suggest.Request{Hints: values["hint"], Rules: values["rule"]}.Query()
	if err != nil {
		s.metrics.IncrementParseErrors(metrics.SourceHTTP)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rulesRes{Rules: suggest.RuleNames(s.suggester.EffectiveRules(q))})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	stats := s.suggester.Corpus().Stats()
	writeJSON(w, http.StatusOK, infoRes{
		TotalWords:   stats.TotalWords,
		CommonWords:  stats.CommonWords,
		MaxWeight:    int(stats.MaxWeight),
		DefaultLimit: s.config.Suggest.DefaultLimit,
		MaxLimit:     s.config.Suggest.MaxLimit,
	})
}
