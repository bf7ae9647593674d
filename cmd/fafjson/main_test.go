package main

import (
	"bytes"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/fafjson/clock"
	"github.com/weiihann/fafjson/harness"
	"github.com/weiihann/fafjson/payload"
	"github.com/weiihann/fafjson/strategy"
)

var linePattern = regexp.MustCompile(`^\S.{25} +[0-9,]+ bytes/sec$`)

func testDeps(list func(names []string) ([]strategy.Strategy, error)) deps {
	return deps{
		newClock: func(string) (clock.Clock, error) {
			return clock.NewStepped(uint64(10 * time.Millisecond)), nil
		},
		strategies: list,
	}
}

func execute(t *testing.T, d deps, args ...string) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := newRootCmd(logger, new(slog.LevelVar), d)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func outputLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}

	return strings.Split(out, "\n")
}

func TestRunAllStrategies(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select), "-d", "1")
	require.NoError(t, err)

	lines := outputLines(out)
	names := strategy.Names()
	require.Len(t, lines, len(names))

	for i, line := range lines {
		assert.Regexp(t, linePattern, line)
		assert.True(t, strings.HasPrefix(line, names[i]),
			"line %d = %q, want prefix %q", i, line, names[i])
		assert.True(t, strings.HasSuffix(line, " 2,600 bytes/sec"),
			"line %d = %q", i, line)
	}
}

func TestRunSelectedStrategies(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select),
		"-d", "2", "-s", "go-json Marshal,encoding/json Marshal")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "encoding/json Marshal"))
	assert.True(t, strings.HasPrefix(lines[1], "go-json Marshal"))
}

func TestAbout(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select), "--about")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], projectName)
	assert.Contains(t, lines[0], "v"+version)
	assert.NotContains(t, out, "bytes/sec")
}

func TestAboutBeforeClear(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select), "-a", "--clear")
	require.NoError(t, err)
	assert.Equal(t, aboutLine()+"\n", out)
}

func TestClear(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select), "--clear")
	require.NoError(t, err)
	assert.Equal(t, "Stats Cleared.\n", out)
}

func TestCorruptStrategyAborts(t *testing.T) {
	corrupt := strategy.Strategy{
		Name: "corrupt",
		New: func() strategy.Serializer {
			return strategy.SerializerFunc(
				func(*payload.Record) ([]byte, error) {
					return []byte(`{"message":"Hello Word!"}`), nil
				},
			)
		},
	}

	list := func([]string) ([]strategy.Strategy, error) {
		all := strategy.All()
		return []strategy.Strategy{all[0], corrupt, all[1]}, nil
	}

	out, err := execute(t, testDeps(list), "-d", "1")
	require.ErrorIs(t, err, harness.ErrMismatch)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "encoding/json Marshal"))
	assert.NotContains(t, out, "corrupt")
}

func TestZeroDuration(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select),
		"-d", "0", "-s", "sonic Marshal")
	require.NoError(t, err)
	assert.Regexp(t, `^sonic Marshal +0 bytes/sec\n$`, out)
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, testDeps(strategy.Select), "--clock", "sundial")
	assert.Error(t, err)

	_, err = execute(t, testDeps(strategy.Select), "-d", "-1")
	assert.Error(t, err)

	_, err = execute(t, testDeps(strategy.Select), "extra")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, testDeps(strategy.Select), "list")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, len(strategy.Names()))

	for i, name := range strategy.Names() {
		assert.True(t, strings.HasPrefix(lines[i], name), lines[i])
	}
}
