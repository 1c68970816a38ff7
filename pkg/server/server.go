package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/metrics"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for suggestions
type Server struct {
	suggester suggest.ISuggester
	config    *config.Config
	metrics   *metrics.Metrics
	logger    *log.Logger
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
}

// NewServer creates a server using stdin/stdout for IPC. m may be nil.
func NewServer(s suggest.ISuggester, cfg *config.Config, m *metrics.Metrics) *Server {
	return NewServerWithIO(s, cfg, m, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(s suggest.ISuggester, cfg *config.Config, m *metrics.Metrics, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		suggester: s,
		config:    cfg,
		metrics:   m,
		logger:    logger.New("ipc"),
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start processes requests until the input ends. A clean end of input
// returns nil.
func (s *Server) Start() error {
	s.logger.Debug("Starting IPC server")

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, stopping IPC server")
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches one request. Only write failures are returned.
func (s *Server) handleRequest(req Request) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	switch req.Action {
	case "", ActionSuggest:
		return s.handleSuggest(req)
	case ActionInfo:
		return s.handleInfo(req)
	case ActionRules:
		return s.handleRules(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) query(req Request) (suggest.Query, error) {
	return suggest.Request{
		Hints:  req.Hints,
		Rules:  req.Rules,
		Limit:  s.limit(req.Limit),
		Random: req.Random,
		Seed:   req.Seed,
	}.Query()
}

// limit maps the wire limit onto a query limit: 0 is the configured default,
// negative is everything, and both are capped by max_limit.
func (s *Server) limit(l int) *int {
	if l < 0 {
		if s.config.Suggest.MaxLimit > 0 {
			return suggest.Top(s.config.Suggest.MaxLimit)
		}
		return nil
	}
	if l == 0 {
		return suggest.Top(s.config.ClampLimit(nil))
	}
	return suggest.Top(s.config.ClampLimit(&l))
}

func (s *Server) handleSuggest(req Request) error {
	start := time.Now()

	q, err := s.query(req)
	if err != nil {
		s.metrics.IncrementParseErrors(metrics.SourceIPC)
		s.logger.Debug("Rejected request", "id", req.ID, "err", err)
		return s.sendError(req.ID, err.Error(), 400)
	}

	entries := s.suggester.Suggestions(q).CollectEntries()
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(entries))
	for i, e := range entries {
		suggestions[i] = Suggestion{Word: e.Word.String(), Weight: e.Weight, Common: e.Common}
	}

	s.metrics.ObserveQuery(metrics.SourceIPC, start, len(suggestions))
	s.logger.Debugf("Took [ %v ] for request %s", elapsed, req.ID)

	return s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
		Rules:       suggest.RuleNames(s.suggester.EffectiveRules(q)),
		Unknown:     s.suggester.UnknownGuesses(q.Records),
	})
}

func (s *Server) handleInfo(req Request) error {
	stats := s.suggester.Corpus().Stats()
	return s.send(InfoResponse{
		ID:           req.ID,
		Status:       "ok",
		TotalWords:   stats.TotalWords,
		CommonWords:  stats.CommonWords,
		MaxWeight:    int(stats.MaxWeight),
		DefaultLimit: s.config.Suggest.DefaultLimit,
		MaxLimit:     s.config.Suggest.MaxLimit,
	})
}

func (s *Server) handleRules(req Request) error {
	q, err := s.query(req)
	if err != nil {
		s.metrics.IncrementParseErrors(metrics.SourceIPC)
		return s.sendError(req.ID, err.Error(), 400)
	}
	return s.send(RulesResponse{
		ID:    req.ID,
		Rules: suggest.RuleNames(s.suggester.EffectiveRules(q)),
	})
}

func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
