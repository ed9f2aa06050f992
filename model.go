package diarystats

import "github.com/dlclark/regexp2"

// inflectionRule is one ordered pattern/replacement pair from
// plurals.txt or singulars.txt.
type inflectionRule struct {
	// Source is the pattern as written in the data file.
	Source string
	// Replacement uses $1-style group references.
	Replacement string
	re          *regexp2.Regexp
}

// irregularForm pairs a singular with its plural. Both directions are
// matched as case-insensitive suffixes.
type irregularForm struct {
	Singular string
	Plural   string
	// singularRe matches Singular at the end of a word.
	singularRe *regexp2.Regexp
	// pluralRe matches Plural at the end of a word.
	pluralRe *regexp2.Regexp
}

// syllablePattern is one adjustment from syllables.txt.
type syllablePattern struct {
	Source string
	re     *regexp2.Regexp
}

// affixTables holds the affix patterns grouped by syllable weight.
// Index 0 holds weight-1 affixes, index 2 weight-3 affixes.
type affixTables [3][]*regexp2.Regexp

// matches reports whether re matches s. Rule-table patterns carry no
// match timeout, so the error return is always nil.
func matches(re *regexp2.Regexp, s string) bool {
	ok, _ := re.MatchString(s)
	return ok
}

// countMatches returns the number of non-overlapping matches of re in s.
func countMatches(re *regexp2.Regexp, s string) int {
	n := 0
	m, _ := re.FindStringMatch(s)
	for m != nil {
		n++
		m, _ = re.FindNextMatch(m)
	}
	return n
}

// replaceCount replaces every match of re in s with repl and returns the
// result together with the number of replacements made.
func replaceCount(re *regexp2.Regexp, s, repl string) (string, int) {
	n := countMatches(re, s)
	if n == 0 {
		return s, 0
	}
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s, 0
	}
	return out, n
}
