package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/wordhint/pkg/feedback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*options, error) {
	t.Helper()
	return parseOptions(args, 10, io.Discard)
}

func TestParseOptions(t *testing.T) {
	opts, err := parse(t, "-H", "cra?ne", "-H", "s^l?ate", "-n", "3", "-rule", "np", "-unique")
	require.NoError(t, err)
	assert.Equal(t, []string{"cra?ne", "s^l?ate"}, []string(opts.hints))
	assert.Equal(t, 3, opts.limit)
	assert.True(t, opts.limitSet)
	assert.Equal(t, []string{"np", "unique"}, opts.ruleNames())
	assert.False(t, opts.random.enabled)
}

func TestParseOptionsAllWithLimit(t *testing.T) {
	_, err := parse(t, "-a", "-n", "5")
	require.Error(t, err)
	assert.Equal(t, "the argument '-a' cannot be used with '-n'", err.Error())

	opts, err := parse(t, "-a")
	require.NoError(t, err)
	assert.True(t, opts.all)
	assert.False(t, opts.limitSet)
}

func TestParseOptionsRandom(t *testing.T) {
	opts, err := parse(t, "-r")
	require.NoError(t, err)
	assert.True(t, opts.random.enabled)
	assert.Nil(t, opts.random.seed)

	opts, err = parse(t, "-r=42")
	require.NoError(t, err)
	require.NotNil(t, opts.random.seed)
	assert.Equal(t, uint64(42), *opts.random.seed)

	_, err = parse(t, "-r=lucky")
	assert.Error(t, err)
}

func TestParseOptionsModes(t *testing.T) {
	_, err := parse(t, "-c", "-s")
	assert.Error(t, err)

	_, err = parse(t, "-n", "-1")
	assert.Error(t, err)

	_, err = parse(t, "crane")
	assert.Error(t, err)
}

// runOneShot runs the default mode against a throwaway config file.
func runOneShot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[suggest]\ndefault_limit = 4\n"), 0644))

	opts, err := parse(t, append([]string{"-config", cfgPath}, args...)...)
	require.NoError(t, err)

	var out bytes.Buffer
	err = run(context.Background(), opts, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRunOpeners(t *testing.T) {
	out, err := runOneShot(t, "")
	require.NoError(t, err)
	assert.Equal(t, "price\nwrite\nnoise\nphone\n", out)
}

func TestRunHintsFromStdinAndFlags(t *testing.T) {
	viaFile, err := runOneShot(t, "cra?ne\ns^l?ate\n", "-f", "-", "-a")
	require.NoError(t, err)

	viaFlags, err := runOneShot(t, "", "-H", "cra?ne", "-H", "s^l?ate", "-a")
	require.NoError(t, err)

	assert.Equal(t, viaFlags, viaFile)
	for _, w := range strings.Fields(viaFile) {
		assert.Equal(t, byte('s'), w[0], "%s should start with s", w)
		assert.Contains(t, w, "l")
		assert.Contains(t, w, "a")
	}
}

func TestRunSyntaxError(t *testing.T) {
	out, err := runOneShot(t, "sales\nmon!ey\n", "-f", "-")
	require.Error(t, err)
	assert.Empty(t, out)

	var se *feedback.SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, `Parse error on line 2: "mon!ey": unexpected character '!' at column 4`, err.Error())
}

func TestRunMissingHintsFile(t *testing.T) {
	_, err := runOneShot(t, "", "-f", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCustomCorpus(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("abbey\ncrane\nflock\nglass\n"), 0644))

	out, err := runOneShot(t, "", "-w", words, "-a", "-rule", "singular")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"abbey", "crane", "flock", "glass"}, strings.Fields(out))

	out, err = runOneShot(t, "", "-w", words, "-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"crane", "flock"}, strings.Fields(out))
}

func TestRunSeededRandom(t *testing.T) {
	a, err := runOneShot(t, "", "-r=5", "-n", "30")
	require.NoError(t, err)
	b, err := runOneShot(t, "", "-r=5", "-n", "30")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, strings.Fields(a), 30)
}

func TestRunInteractive(t *testing.T) {
	out, err := runOneShot(t, "cra?ne\n:quit\n", "-c", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2 suggestions")
}
