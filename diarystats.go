// Package diarystats computes text statistics, readability scores and
// penalty-based auto ratings for free-form English text such as diary
// entries. Syllable estimation and singular/plural inflection are driven
// by rule tables kept as data files and compiled once.
package diarystats

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

//go:embed data/*.txt
var dataFS embed.FS

// matcherCacheSize bounds the number of compiled common-error patterns
// kept per Engine.
const matcherCacheSize = 256

// Engine holds the compiled rule tables and provides the public API.
// All tables are read-only after New returns, so an Engine is safe for
// concurrent use.
type Engine struct {
	// plurals and singulars are tried in file order; first match wins.
	plurals   []inflectionRule
	singulars []inflectionRule

	// irregulars keeps file order; lookups are suffix matches.
	irregulars []irregularForm

	// uncountable maps a lowercase word to true.
	uncountable map[string]bool

	// problemWords maps a normalised word to its fixed syllable count.
	problemWords map[string]int

	// affixes are removed before counting vowel clusters.
	affixes affixTables

	// subSyllables and addSyllables adjust the vowel-cluster count.
	subSyllables []syllablePattern
	addSyllables []syllablePattern

	// matchers caches compiled common-error patterns by options and expression.
	matchers *lru.Cache[string, *regexp2.Regexp]
}

// New loads the rule tables from fsys (files at its root, see data/)
// and returns a ready-to-use Engine.
func New(fsys fs.FS) (*Engine, error) {
	matchers, err := lru.New[string, *regexp2.Regexp](matcherCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create matcher cache: %w", err)
	}
	e := &Engine{
		uncountable:  make(map[string]bool),
		problemWords: make(map[string]int),
		matchers:     matchers,
	}

	if e.plurals, err = loadInflections(fsys, pluralsFile); err != nil {
		return nil, err
	}
	if e.singulars, err = loadInflections(fsys, singularsFile); err != nil {
		return nil, err
	}
	if err := e.loadIrregulars(fsys); err != nil {
		return nil, err
	}
	if err := e.loadUncountables(fsys); err != nil {
		return nil, err
	}
	if err := e.loadProblemWords(fsys); err != nil {
		return nil, err
	}
	if err := e.loadAffixes(fsys); err != nil {
		return nil, err
	}
	if err := e.loadSyllablePatterns(fsys); err != nil {
		return nil, err
	}
	return e, nil
}

// Tables returns the embedded rule tables, suitable for New.
func Tables() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New(Tables())
	if err != nil {
		panic(fmt.Sprintf("diarystats: embedded rule tables: %v", err))
	}
	return e
})

// Default returns the process-wide Engine built from the embedded tables.
func Default() *Engine {
	return defaultEngine()
}

// Singular returns the singular form of word using the default Engine.
func Singular(word string) string {
	return Default().Singular(word)
}

// Plural returns the plural form of word using the default Engine.
func Plural(word string) string {
	return Default().Plural(word)
}

// CountSyllables estimates the syllables in word using the default Engine.
func CountSyllables(word string) int {
	return Default().CountSyllables(word)
}

// Analyze computes counts and readability scores using the default Engine.
func Analyze(text string) Stats {
	return Default().Analyze(text)
}

// Rate computes the auto rating of text using the default Engine.
func Rate(text string, cfg RatingConfig) (*RatingResult, error) {
	return Default().Rate(text, cfg)
}
