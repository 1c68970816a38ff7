// Copyright 2025 The WordHint Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordhint command, a suggestion engine for
five-letter word guessing games.

Given the feedback from earlier guesses it prints the dictionary words that
are still possible, best first. Words score by how often their letters sit in
the same position across the dictionary, and everyday words rank above rare
ones.

# Feedback

Each guess is written as its five letters, with "^" after a letter that is in
the right spot and "?" (or "~") after a letter that is in the word but
elsewhere:

	cra?ne      a is in the word, not third; c, r, n, e are not
	s^l?ate     s is first, l is elsewhere

# Usage

Best opening words:

	wordhint

After two guesses, showing five suggestions:

	wordhint -H cra?ne -H s^l?ate -n 5

Reading guesses from a file, or from stdin with "-":

	wordhint -f guesses.txt -a

Before any feedback only words without repeated letters are suggested; add
-unique to keep that restriction later, or -singular to skip plurals.

# Modes

	-c            interactive session, one feedback line at a time
	-s            msgpack IPC over stdin/stdout (see package server)
	-http :8080   JSON over HTTP with Prometheus metrics

# Configuration

Defaults come from config.toml in the user config directory, created on first
use, and can be overridden by WORDHINT_* environment variables or a .env file:

	[suggest]
	default_limit = 10
	max_limit = 500
	cache_size = 64

	[corpus]
	path = ""
	common_path = ""

	[server]
	http_addr = "127.0.0.1:8080"
	timeout_seconds = 10

	[log]
	level = "warn"
*/
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/wordhint/internal/cli"
	"github.com/bastiangx/wordhint/internal/httpserver"
	"github.com/bastiangx/wordhint/internal/logger"
	"github.com/bastiangx/wordhint/internal/metrics"
	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/corpus"
	"github.com/bastiangx/wordhint/pkg/server"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	Version = "0.3.0"
	AppName = "wordhint"
	gh      = "https://github.com/bastiangx/wordhint"
)

// sigHandler is a simple handler for OS signals to exit normally. The HTTP
// server installs its own handler for a graceful shutdown instead.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; the work happens in run.
func main() {
	opts, err := parseOptions(os.Args[1:], config.DefaultConfig().Suggest.DefaultLimit, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if opts.version {
		showVersion()
		os.Exit(0)
	}

	if err := logger.SetupDefault("", opts.debug); err != nil {
		log.Warn(err)
	}

	if opts.httpAddr == "" {
		sigHandler()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads config and corpus, then dispatches to the selected mode.
func run(ctx context.Context, opts *options, stdin io.Reader, stdout io.Writer) error {
	config.LoadEnvFiles()
	cfg, configPath, _ := config.LoadConfigWithPriority(opts.configPath)
	if !opts.debug {
		if err := logger.SetupDefault(cfg.Log.Level, false); err != nil {
			log.Warn(err)
		}
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	c, err := loadCorpus(opts, cfg, configPath)
	if err != nil {
		return err
	}
	stats := c.Stats()
	log.Debug("Corpus loaded", "words", stats.TotalWords, "common", stats.CommonWords, "maxWeight", stats.MaxWeight)

	suggester := suggest.New(c, logger.New("suggest"), suggest.WithCache(cfg.Suggest.CacheSize))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	switch {
	case opts.ipc:
		showStartupInfo("ipc", stats)
		return server.NewServerWithIO(suggester, cfg, m, stdin, stdout).Start()

	case opts.httpAddr != "":
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		showStartupInfo(opts.httpAddr, stats)
		return httpserver.New(suggester, cfg, m, reg).ListenAndServe(ctx, opts.httpAddr)

	case opts.interact:
		rules, err := suggest.ParseRules(opts.ruleNames())
		if err != nil {
			return err
		}
		h := cli.NewInputHandler(suggester, m, limitFor(opts, cfg), rules, stdin, stdout)
		if opts.random.enabled {
			h.SetRandom(opts.random.seed)
		}
		return h.Start()
	}

	return printSuggestions(opts, cfg, suggester, stdin, stdout)
}

func limitFor(opts *options, cfg *config.Config) *int {
	switch {
	case opts.all:
		return nil
	case opts.limitSet:
		return suggest.Top(opts.limit)
	}
	return suggest.Top(cfg.Suggest.DefaultLimit)
}

// loadCorpus picks the corpus from -w, then config, then the embedded list.
func loadCorpus(opts *options, cfg *config.Config, configPath string) (*corpus.Corpus, error) {
	path, common := opts.wordsFile, opts.commonFile
	if path == "" {
		path, common = cfg.Corpus.Path, cfg.Corpus.CommonPath
	}
	if path == "" {
		log.Debug("Using embedded corpus")
		return corpus.Default(), nil
	}

	var extra []string
	if configPath != "" {
		extra = append(extra, filepath.Dir(configPath))
	}
	path = utils.ResolveDataFile(path, extra...)
	if common != "" {
		common = utils.ResolveDataFile(common, extra...)
	}
	log.Debugf("Using corpus at: %s", path)

	c, err := corpus.Load(path, common)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	return c, nil
}

// readHints gathers feedback lines from -f, then -H, in that order.
func readHints(opts *options, stdin io.Reader) ([]string, error) {
	var lines []string
	if opts.hintsFile != "" {
		rd := stdin
		if opts.hintsFile != utils.StdinPath {
			f, err := utils.OpenInput(opts.hintsFile)
			if err != nil {
				return nil, fmt.Errorf("failed to open hints file: %w", err)
			}
			defer f.Close()
			rd = f
		}

		scanner := bufio.NewScanner(rd)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read hints file: %w", err)
		}
	}
	return append(lines, opts.hints...), nil
}

func printSuggestions(opts *options, cfg *config.Config, s *suggest.Suggester, stdin io.Reader, stdout io.Writer) error {
	hints, err := readHints(opts, stdin)
	if err != nil {
		return err
	}

	req := suggest.Request{
		Hints:  hints,
		Rules:  opts.ruleNames(),
		Limit:  limitFor(opts, cfg),
		Random: opts.random.enabled,
		Seed:   opts.random.seed,
	}
	q, err := req.Query()
	if err != nil {
		return err
	}
	log.Debug("Query", "hints", len(q.Records), "rules", suggest.RuleNames(s.EffectiveRules(q)))

	for w := range s.Suggestions(q).All() {
		if _, err := fmt.Fprintln(stdout, w); err != nil {
			return err
		}
	}
	return nil
}

func showVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ wordhint ] Next-guess suggestions for five-letter word games")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the server init.
func showStartupInfo(mode string, stats corpus.Stats) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("corpus: %s words, %s common", utils.FormatWithCommas(stats.TotalWords), utils.FormatWithCommas(stats.CommonWords))
	log.Infof("serving: ( %s )", mode)
	log.Info("status: ready")
}
