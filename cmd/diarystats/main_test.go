package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "The cat sat on the mat. A dog ate food."

// run executes the root command in-process and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStatsFromStdin(t *testing.T) {
	stdout, _, err := run(t, sampleText, "stats")
	require.NoError(t, err)

	var got statsJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 39, got.Counts.Characters)
	assert.Equal(t, 10, got.Counts.Words)
	assert.Equal(t, 9, got.Counts.UniqueWords)
	assert.Equal(t, 2, got.Counts.Sentences)
	assert.Equal(t, 117.2, got.Readability.FleschReadingEase)
	assert.Contains(t, stdout, "\n  \"counts\"")
}

func TestStatsFromFileCompact(t *testing.T) {
	path := writeFile(t, "entry.txt", "One line.\nAnother line.\n")
	stdout, _, err := run(t, "", "--pretty=false", "stats", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))

	var got statsJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 2, got.Counts.Paragraphs)
	assert.Equal(t, 4, got.Counts.Words)
}

func TestStatsMissingFile(t *testing.T) {
	_, _, err := run(t, "", "stats", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ")
}

func TestRate(t *testing.T) {
	cfg := writeFile(t, "rating.yml", `
max_score: 20
words: {min: 12, penalty: 5}
sentences: {max: 1, penalty: 10}
common_errors:
  - {pattern: cat, literal: true, penalty: 5}
`)
	stdout, stderr, err := run(t, sampleText, "--log-level", "info", "rate", "-c", cfg)
	require.NoError(t, err)

	var got ratingJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 25, got.TotalPenalty)
	assert.Equal(t, 15.0, got.FinalRating)
	require.Len(t, got.Thresholds, 4)
	assert.Equal(t, "characters", got.Thresholds[0].Dimension)
	assert.Equal(t, "words", got.Thresholds[1].Dimension)
	require.Len(t, got.CommonErrors, 1)
	assert.Equal(t, []string{"cat"}, got.CommonErrors[0].Matches)
	assert.Len(t, got.Explanations, 3)

	assert.Contains(t, stderr, "loaded rating config")
}

func TestRateWithoutViolations(t *testing.T) {
	cfg := writeFile(t, "rating.yml", "max_score: 8\n")
	stdout, _, err := run(t, sampleText, "rate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"explanations": []`)
	assert.Contains(t, stdout, `"common_errors": []`)
	assert.Contains(t, stdout, `"final_rating": 8`)
}

func TestRateErrors(t *testing.T) {
	_, _, err := run(t, sampleText, "rate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"config"`)

	bad := writeFile(t, "bad.yml", "common_errors:\n  - pattern: \"(\"\n")
	_, stderr, err := run(t, sampleText, "--log-json", "rate", "-c", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid common error pattern")
	assert.Contains(t, stderr, "rating failed")
	assert.True(t, strings.HasPrefix(stderr, "{"), stderr)
}

func TestSyllables(t *testing.T) {
	stdout, _, err := run(t, "", "syllables", "people", "beautiful", "the")
	require.NoError(t, err)

	var got []syllablesJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []syllablesJSON{
		{Word: "people", Syllables: 2},
		{Word: "beautiful", Syllables: 3},
		{Word: "the", Syllables: 1},
	}, got)
}

func TestSyllablesTrace(t *testing.T) {
	stdout, _, err := run(t, "", "syllables", "--trace", "beautiful")
	require.NoError(t, err)

	var got []syllablesJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	require.NotEmpty(t, got[0].Trace)
	assert.Equal(t, "clean", got[0].Trace[0].Label)
	assert.Equal(t, traceStepJSON{Label: "result", Detail: "3", Count: 3}, got[0].Trace[len(got[0].Trace)-1])
}

func TestInflect(t *testing.T) {
	stdout, _, err := run(t, "", "inflect", "child", "cities", "sheep")
	require.NoError(t, err)

	var got []inflectionJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []inflectionJSON{
		{Word: "child", Singular: "child", Plural: "children"},
		{Word: "cities", Singular: "city", Plural: "cities"},
		{Word: "sheep", Singular: "sheep", Plural: "sheep"},
	}, got)
}

func TestArgumentValidation(t *testing.T) {
	_, _, err := run(t, "", "syllables")
	require.Error(t, err)

	_, _, err = run(t, "", "inflect")
	require.Error(t, err)

	_, _, err = run(t, "", "stats", "a.txt", "b.txt")
	require.Error(t, err)

	_, _, err = run(t, "", "--log-level", "loud", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}
