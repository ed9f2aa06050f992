package diarystats

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
max_score: 20
words:
  min: 12
  penalty: 5
sentences:
  max: 1
  penalty: 10
drop_nested_matches: true
common_errors:
  - pattern: cat
    literal: true
    penalty: 5
  - pattern: "a\\s?lot"
    whole_word: true
    case_sensitive: true
    ignore_line_breaks: true
    penalty: 2
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, RatingConfig{
		MaxScore:  20,
		Words:     ThresholdConfig{Min: 12, Penalty: 5},
		Sentences: ThresholdConfig{Max: 1, Penalty: 10},
		CommonErrors: []CommonErrorRule{
			{Pattern: "cat", Literal: true, Penalty: 5},
			{Pattern: `a\s?lot`, WholeWord: true, CaseSensitive: true, IgnoreLineBreaks: true, Penalty: 2},
		},
		DropNestedMatches: true,
	}, cfg)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("words: {min: 3}\n"))
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultMaxScore), cfg.MaxScore)
	assert.Equal(t, 3, cfg.Words.Min)

	cfg, err = ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, RatingConfig{MaxScore: DefaultMaxScore}, cfg)
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := ParseConfig([]byte("words: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rating config")

	_, err = ParseConfig([]byte("words:\n  min: many\n"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rating.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	res, err := Rate(sampleText, cfg)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.FinalRating)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "reading rating config")
}
