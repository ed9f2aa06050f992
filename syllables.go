package diarystats

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// vowelClusterRe splits a word into vowel groups.
var vowelClusterRe = regexp2.MustCompile(`[^aeiouy]+`, regexp2.None)

// TraceStep records one pass of the syllable pipeline.
type TraceStep struct {
	// Label names the pass, e.g. "affixes" or "subtract".
	Label string
	// Detail is the working string or the pattern that fired.
	Detail string
	// Count is the syllable count after the pass.
	Count int
}

// CountSyllables estimates the number of syllables in word. The result
// is always at least 1.
func (e *Engine) CountSyllables(word string) int {
	return e.countSyllables(word, nil)
}

// CountTrace is CountSyllables that also returns the passes that
// produced the count.
func (e *Engine) CountTrace(word string) (int, []TraceStep) {
	var trace []TraceStep
	n := e.countSyllables(word, &trace)
	return n, trace
}

func (e *Engine) countSyllables(word string, trace *[]TraceStep) int {
	record := func(label, detail string, count int) {
		if trace != nil {
			*trace = append(*trace, TraceStep{Label: label, Detail: detail, Count: count})
		}
	}

	word = NormalizeWord(word)
	record("clean", word, 0)

	// 1. exceptions, for the word and then for its singular
	if n, ok := e.problemWords[word]; ok {
		record("problem word", word, n)
		return n
	}
	if singular := e.Singular(word); singular != word {
		if n, ok := e.problemWords[singular]; ok {
			record("problem word", singular, n)
			return n
		}
	}

	// 2. affixes, each removal worth its table's weight
	var affixCount int
	for i, table := range e.affixes {
		weight := i + 1
		for _, re := range table {
			var n int
			word, n = replaceCount(re, word, "")
			affixCount += n * weight
		}
	}
	if affixCount > 0 {
		record("affixes", word, affixCount)
	}

	// 3. vowel clusters
	clusters := 0
	for _, part := range splitRegexp2(vowelClusterRe, word) {
		if part != "" {
			clusters++
		}
	}

	// 4. combine
	count := clusters + affixCount
	record("vowel clusters", word, count)

	// 5. adjustments, all against the same stripped word
	for _, p := range e.subSyllables {
		if matches(p.re, word) {
			count--
			record("subtract", p.Source, count)
		}
	}
	for _, p := range e.addSyllables {
		if matches(p.re, word) {
			count++
			record("add", p.Source, count)
		}
	}

	// 6. every word has a syllable
	if count <= 0 {
		count = 1
	}
	record("result", fmt.Sprint(count), count)
	return count
}
