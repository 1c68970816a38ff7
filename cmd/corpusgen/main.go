// Copyright 2025 The WordHint Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command corpusgen turns a plain word list into the binary corpus format
// read by wordhint -w. Weights are computed once here instead of on every
// startup.
//
//	corpusgen -words words.txt -common common.txt -out data/corpus.bin
//	grep -E '^[a-z]{5}$' /usr/share/dict/words | corpusgen -words - -out dict.bin
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/corpus"
	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
)

type options struct {
	wordsPath  string
	commonPath string
	outPath    string
	quiet      bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.wordsPath, "words", "", "Word list, one word per line, '-' for stdin")
	flag.StringVar(&opts.commonPath, "common", "", "Optional list of everyday words to rank first")
	flag.StringVar(&opts.outPath, "out", "corpus.bin", "Output file")
	flag.BoolVar(&opts.quiet, "q", false, "No progress bar")
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stderr); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, progress io.Writer) error {
	if opts.wordsPath == "" {
		return errors.New("-words is required")
	}
	if opts.quiet {
		progress = io.Discard
	}
	// wordhint picks the loader by extension.
	if corpus.DetectFileFormat(opts.outPath) != corpus.FormatBinary {
		info, _ := corpus.GetFormatInfo(corpus.FormatBinary)
		return fmt.Errorf("output %s is not a %s file, use one of %v", opts.outPath, info.Description, info.Extensions)
	}

	words, err := readList(opts.wordsPath, stdin)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("no five letter words in %s", opts.wordsPath)
	}

	var common []corpus.Word
	if opts.commonPath != "" {
		if common, err = readList(opts.commonPath, stdin); err != nil {
			return err
		}
	}

	bar := progressbar.NewOptions(len(words),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("building corpus"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	b := corpus.NewBuilder()
	for _, w := range words {
		b.Add(w)
		_ = bar.Add(1)
	}
	for _, w := range common {
		b.MarkCommon(w)
	}
	_ = bar.Finish()
	c := b.Build()

	if err := writeCorpus(opts.outPath, c); err != nil {
		return err
	}

	stats := c.Stats()
	log.Infof("Wrote %s words (%s common, %d duplicates dropped) to %s",
		utils.FormatWithCommas(stats.TotalWords),
		utils.FormatWithCommas(stats.CommonWords),
		len(words)-stats.TotalWords,
		utils.GetAbsolutePath(opts.outPath))
	return nil
}

func readList(path string, stdin io.Reader) ([]corpus.Word, error) {
	if path == utils.StdinPath {
		return corpus.ReadWords(stdin)
	}
	words, err := corpus.ReadWordsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return words, nil
}

func writeCorpus(path string, c *corpus.Corpus) error {
	dir := filepath.Dir(path)
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		return corpus.WriteBinary(w, c)
	})
}
