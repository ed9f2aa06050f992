package diarystats

import "strings"

// Plural returns the plural form of word.
// Uncountable words come back unchanged; irregular singulars are matched
// as case-insensitive suffixes; otherwise the first matching rule of
// plurals.txt applies. The last rule appends "s", so every word gets a form.
func (e *Engine) Plural(word string) string {
	if e.uncountable[strings.ToLower(word)] {
		return word
	}
	for _, irr := range e.irregulars {
		if matches(irr.singularRe, word) {
			out, _ := replaceCount(irr.singularRe, word, irr.Plural)
			return out
		}
	}
	return applyInflections(e.plurals, word)
}

// Singular returns the singular form of word, the mirror of Plural.
// Words matching no rule come back unchanged.
func (e *Engine) Singular(word string) string {
	if e.uncountable[strings.ToLower(word)] {
		return word
	}
	for _, irr := range e.irregulars {
		if matches(irr.pluralRe, word) {
			out, _ := replaceCount(irr.pluralRe, word, irr.Singular)
			return out
		}
	}
	return applyInflections(e.singulars, word)
}

// applyInflections rewrites word with the first rule whose pattern matches.
func applyInflections(rules []inflectionRule, word string) string {
	for _, r := range rules {
		if !matches(r.re, word) {
			continue
		}
		out, _ := replaceCount(r.re, word, r.Replacement)
		return out
	}
	return word
}

// inflectUnit picks the singular or plural of a counting unit for n.
func (e *Engine) inflectUnit(unit string, n int) string {
	if n == 1 || n == -1 {
		return unit
	}
	return e.Plural(unit)
}
