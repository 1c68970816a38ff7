package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errAllWithLimit = errors.New("the argument '-a' cannot be used with '-n'")

// listFlag collects every occurrence of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// randomFlag is a boolean flag that optionally takes a seed: -r or -r=42.
type randomFlag struct {
	enabled bool
	seed    *uint64
}

func (f *randomFlag) String() string {
	switch {
	case f == nil || !f.enabled:
		return "false"
	case f.seed != nil:
		return strconv.FormatUint(*f.seed, 10)
	}
	return "true"
}

func (f *randomFlag) Set(v string) error {
	switch v {
	case "true":
		f.enabled, f.seed = true, nil
		return nil
	case "false":
		f.enabled, f.seed = false, nil
		return nil
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("seed must be a non-negative integer: %q", v)
	}
	f.enabled, f.seed = true, &seed
	return nil
}

func (f *randomFlag) IsBoolFlag() bool { return true }

type options struct {
	wordsFile  string
	commonFile string
	hintsFile  string
	hints      listFlag
	limit      int
	limitSet   bool
	all        bool
	random     randomFlag
	unique     bool
	singular   bool
	rules      listFlag
	interact   bool
	ipc        bool
	httpAddr   string
	configPath string
	debug      bool
	version    bool
}

// parseOptions parses args (without the program name). defaultLimit is the
// -n default shown in usage.
func parseOptions(args []string, defaultLimit int, output io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.wordsFile, "w", "", "Corpus file, a word list or a .bin built by corpusgen (default: embedded list)")
	fs.StringVar(&opts.commonFile, "common", "", "Common words list used with a text corpus")
	fs.StringVar(&opts.hintsFile, "f", "", "File with one feedback line per guess, '-' for stdin")
	fs.Var(&opts.hints, "H", "Feedback line, e.g. cra?ne (repeatable)")
	fs.IntVar(&opts.limit, "n", defaultLimit, "Number of suggestions to print")
	fs.BoolVar(&opts.all, "a", false, "Print every admissible word")
	fs.Var(&opts.random, "r", "Random order instead of ranking, -r=SEED for a reproducible one")
	fs.BoolVar(&opts.unique, "unique", false, "Only words without repeated letters")
	fs.BoolVar(&opts.singular, "singular", false, "Skip plural-looking words")
	fs.Var(&opts.rules, "rule", "Rule by name: unique|norepeats|nr, singular|noplurals|np (repeatable)")
	fs.BoolVar(&opts.interact, "c", false, "Interactive mode")
	fs.BoolVar(&opts.ipc, "s", false, "Serve msgpack IPC on stdin/stdout")
	fs.StringVar(&opts.httpAddr, "http", "", "Serve HTTP on this address, e.g. :8080")
	fs.StringVar(&opts.configPath, "config", "", "Path to config.toml")
	fs.BoolVar(&opts.debug, "d", false, "Toggle debug mode")
	fs.BoolVar(&opts.version, "version", false, "Show current version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "n" {
			opts.limitSet = true
		}
	})
	if opts.all && opts.limitSet {
		return nil, errAllWithLimit
	}
	if opts.limitSet && opts.limit < 0 {
		return nil, fmt.Errorf("-n must not be negative: %d", opts.limit)
	}

	modes := 0
	for _, on := range []bool{opts.interact, opts.ipc, opts.httpAddr != ""} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return nil, errors.New("only one of -c, -s and -http can be used")
	}
	return opts, nil
}

// ruleNames merges the rule shorthands with -rule values.
func (o *options) ruleNames() []string {
	names := append([]string(nil), o.rules...)
	if o.unique {
		names = append(names, "unique")
	}
	if o.singular {
		names = append(names, "singular")
	}
	return names
}
