package diarystats

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/rivo/uniseg"
)

// sentenceBoundaryRe matches a run of terminal punctuation that is not
// followed by a digit, so "3.14" stays in one sentence.
var sentenceBoundaryRe = regexp2.MustCompile(`[!?.]+(?![0-9])`, regexp2.None)

// splitWords returns the word tokens of text in order. Boundaries come
// from Unicode word segmentation (UAX #29) after prepareWords; segments
// without a letter or digit are dropped.
func splitWords(text string) []string {
	text = prepareWords(text)
	var words []string
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if hasWordContent(word) {
			words = append(words, word)
		}
	}
	return words
}

// splitSentences splits text at sentenceBoundaryRe and keeps the
// fragments holding a letter or digit.
func splitSentences(text string) []string {
	var out []string
	for _, frag := range splitRegexp2(sentenceBoundaryRe, text) {
		if hasWordContent(frag) {
			out = append(out, frag)
		}
	}
	return out
}

// splitParagraphs splits text at line breaks and keeps non-blank lines.
func splitParagraphs(text string) []string {
	var out []string
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitRegexp2 splits s around the matches of re, like regexp.Split
// with n < 0. regexp2 reports offsets in runes.
func splitRegexp2(re *regexp2.Regexp, s string) []string {
	rs := []rune(s)
	var out []string
	prev := 0
	m, _ := re.FindRunesMatch(rs)
	for m != nil {
		out = append(out, string(rs[prev:m.Index]))
		prev = m.Index + m.Length
		m, _ = re.FindNextMatch(m)
	}
	return append(out, string(rs[prev:]))
}
