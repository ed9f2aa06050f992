package diarystats

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// lineEndingReplacer folds CRLF and lone CR into LF so every rule sees
// the same offsets.
var lineEndingReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
)

// NormalizeLineEndings converts CRLF and CR line endings to LF.
func NormalizeLineEndings(s string) string {
	return lineEndingReplacer.Replace(s)
}

// lineBreakReplacer turns each LF into a single space. Offsets are kept.
var lineBreakReplacer = strings.NewReplacer("\n", " ")

// wordJoinReplacer prepares text for word segmentation: underscores
// separate words, while apostrophes, quotes and hyphens join them
// ("don't" and "well-known" are one word each).
var wordJoinReplacer = strings.NewReplacer(
	"_", " ",
	"'", "",
	"\"", "",
	"\u2019", "",
	"-", "",
)

// numberSeparatorRe matches a dot or comma between two digits.
var numberSeparatorRe = regexp.MustCompile(`([0-9])[.,]([0-9])`)

// prepareWords applies wordJoinReplacer and drops separators inside numbers.
func prepareWords(text string) string {
	text = wordJoinReplacer.Replace(text)
	return numberSeparatorRe.ReplaceAllString(text, "${1}${2}")
}

// foldAccents strips combining marks after canonical decomposition,
// so "café" becomes "cafe".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeWord prepares a word for syllable counting: accents are
// folded, letters lowercased and everything outside a-z removed.
func NormalizeWord(word string) string {
	word = strings.ToLower(foldAccents(word))
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, word)
}

// hasWordContent reports whether s holds at least one letter or digit.
func hasWordContent(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}
