// Package cli runs the interactive wordhint session: type the feedback for
// each guess and get fresh suggestions after every line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/metrics"
	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/feedback"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/log"
)

const helpText = `Enter feedback for a guess, e.g. "cra?ne" or "s^l~ate".
Several hints may go on one line separated by spaces or commas.
Commands:
  :undo            drop the last hint
  :reset           start a new game
  :hints           list the hints so far
  :words prefix    list corpus words starting with prefix
  :rules [names]   set rules (unique, singular), no names clears them
  :limit n|all     change how many suggestions are shown
  :random [seed]   random order, :weight to switch back
  :help            show this text
  :quit            leave`

// InputHandler keeps the hints of one game and prints suggestions after
// every change. Rules and ordering persist across :reset.
type InputHandler struct {
	suggester suggest.ISuggester
	metrics   *metrics.Metrics
	in        io.Reader
	out       *log.Logger

	records []feedback.Record
	rules   []suggest.Rule
	limit   *int
	random  *suggest.RandomOption
}

// NewInputHandler creates a handler reading from in and printing to out.
// A nil limit shows every admissible word.
func NewInputHandler(s suggest.ISuggester, m *metrics.Metrics, limit *int, rules []suggest.Rule, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		suggester: s,
		metrics:   m,
		in:        in,
		out:       logger.NewWithWriter(out, ""),
		rules:     rules,
		limit:     limit,
	}
}

// SetRandom switches to random ordering, seeded when seed is non-nil.
func (h *InputHandler) SetRandom(seed *uint64) {
	h.random = &suggest.RandomOption{Seed: seed}
}

// Start runs the loop until :quit or end of input. It prints the opening
// suggestions first.
func (h *InputHandler) Start() error {
	h.out.Print("wordhint interactive mode, :help for commands")
	h.show()

	scanner := bufio.NewScanner(h.in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := h.handleInput(line); quit {
			return nil
		}
	}
}

// handleInput applies one line and reports whether the session should end.
func (h *InputHandler) handleInput(line string) bool {
	if strings.HasPrefix(line, ":") {
		return h.handleCommand(line)
	}

	hints := utils.SplitFields(line)
	records := make([]feedback.Record, 0, len(hints))
	for _, hint := range hints {
		r, err := feedback.ParseRecord(hint)
		if err != nil {
			h.metrics.IncrementParseErrors(metrics.SourceCLI)
			h.out.Errorf("%v", err)
			return false
		}
		records = append(records, r)
	}
	h.records = append(h.records, records...)
	for _, w := range h.suggester.UnknownGuesses(records) {
		h.out.Warnf("%s is not in the word list", w)
	}

	for _, r := range records {
		if r.Solved() {
			h.out.Printf("Solved: %s", r.Guess())
			h.records = nil
			return false
		}
	}
	h.show()
	return false
}

func (h *InputHandler) handleCommand(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		h.out.Print(helpText)
		return false
	case ":undo":
		if len(h.records) == 0 {
			h.out.Warn("Nothing to undo")
			return false
		}
		h.records = h.records[:len(h.records)-1]
	case ":reset":
		h.records = nil
	case ":hints":
		if len(h.records) == 0 {
			h.out.Print("No hints yet")
		}
		for i, r := range h.records {
			h.out.Printf("%2d. %s", i+1, r)
		}
		return false
	case ":words":
		if len(args) != 1 {
			h.out.Error("Usage: :words prefix")
			return false
		}
		entries := h.suggester.Corpus().WithPrefix(strings.ToLower(args[0]))
		if len(entries) == 0 {
			h.out.Warnf("No words start with %s", args[0])
			return false
		}
		words := make([]string, len(entries))
		for i, e := range entries {
			words[i] = e.Word.String()
		}
		h.out.Printf("%d words: %s", len(words), strings.Join(words, " "))
		return false
	case ":rules":
		rules, err := suggest.ParseRules(args)
		if err != nil {
			h.out.Errorf("%v", err)
			return false
		}
		h.rules = rules
	case ":limit":
		if len(args) != 1 {
			h.out.Error("Usage: :limit n|all")
			return false
		}
		if args[0] == "all" {
			h.limit = nil
			break
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			h.out.Errorf("Invalid limit: %s", args[0])
			return false
		}
		h.limit = suggest.Top(n)
	case ":random":
		var seed *uint64
		if len(args) > 0 {
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				h.out.Errorf("Invalid seed: %s", args[0])
				return false
			}
			seed = &v
		}
		h.SetRandom(seed)
	case ":weight":
		h.random = nil
	default:
		h.out.Errorf("Unknown command %s, :help lists them", cmd)
		return false
	}

	h.show()
	return false
}

// show prints the current suggestions.
func (h *InputHandler) show() {
	q := suggest.Query{
		Records: h.records,
		Rules:   h.rules,
		Limit:   h.limit,
		Random:  h.random,
	}

	start := time.Now()
	entries := h.suggester.Suggestions(q).CollectEntries()
	h.metrics.ObserveQuery(metrics.SourceCLI, start, len(entries))
	log.Debugf("Took [ %v ] for %d hints", time.Since(start), len(h.records))

	if len(entries) == 0 {
		h.out.Warn("No words match the hints so far")
		return
	}

	rules := suggest.RuleNames(h.suggester.EffectiveRules(q))
	header := fmt.Sprintf("%d suggestions", len(entries))
	if len(rules) > 0 {
		header += " (rules: " + strings.Join(rules, ", ") + ")"
	}
	h.out.Print(header + ":")
	for i, e := range entries {
		common := ""
		if e.Common {
			common = "common"
		}
		h.out.Printf("%3d. %s  (weight: %5s) %s", i+1, e.Word, utils.FormatWithCommas(int(e.Weight)), common)
	}
}
