package diarystats

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout caps the time one common-error pattern may spend on a text.
// It is applied when a pattern is compiled.
var matchTimeout = 2 * time.Second

// CommonErrorRule is one glossary entry to look for in a text.
type CommonErrorRule struct {
	// Pattern is a regular expression, or plain text when Literal is set.
	Pattern string `yaml:"pattern"`
	Literal bool   `yaml:"literal"`
	// CaseSensitive disables the default case-insensitive matching.
	CaseSensitive bool `yaml:"case_sensitive"`
	// WholeWord anchors the pattern at word boundaries.
	WholeWord bool `yaml:"whole_word"`
	// IgnoreLineBreaks matches as if every line break were a space.
	IgnoreLineBreaks bool `yaml:"ignore_line_breaks"`
	// Penalty is charged per match, in percentage points.
	Penalty int `yaml:"penalty"`
}

// expression returns the pattern the rule compiles to.
func (r CommonErrorRule) expression() string {
	expr := r.Pattern
	if r.Literal {
		expr = regexp2.Escape(expr)
	}
	if r.WholeWord {
		expr = `\b(?:` + expr + `)\b`
	}
	return expr
}

func (r CommonErrorRule) options() regexp2.RegexOptions {
	if r.CaseSensitive {
		return regexp2.None
	}
	return regexp2.IgnoreCase
}

// ScanOptions tunes ScanCommonErrors.
type ScanOptions struct {
	// DropNestedMatches discards a match lying inside a longer match of
	// any rule before counting.
	DropNestedMatches bool
}

// span is one match, in rune offsets of the line-ending-normalised text.
type span struct {
	rule       int
	start, end int
	text       string
}

// ScanCommonErrors finds the matches of every rule in text and returns
// one ErrorMatch per rule that matched, in rule order. Matches do not
// overlap within a rule; empty matches are ignored. A rule that does not
// compile or times out yields a *ConfigurationError.
func (e *Engine) ScanCommonErrors(text string, rules []CommonErrorRule, opts ScanOptions) ([]ErrorMatch, error) {
	text = NormalizeLineEndings(text)
	flat := lineBreakReplacer.Replace(text)

	var spans []span
	for i, rule := range rules {
		if rule.Pattern == "" {
			continue
		}
		re, err := e.matcher(rule)
		if err != nil {
			return nil, &ConfigurationError{Index: i, Rule: rule, Kind: ErrInvalidPattern, Err: err}
		}
		subject := text
		if rule.IgnoreLineBreaks {
			subject = flat
		}
		found, err := findSpans(re, subject, i)
		if err != nil {
			return nil, &ConfigurationError{Index: i, Rule: rule, Kind: ErrMatchTimeout, Err: err}
		}
		spans = append(spans, found...)
	}
	if opts.DropNestedMatches {
		spans = dropNested(spans)
	}

	byRule := make(map[int]int)
	var out []ErrorMatch
	for _, s := range spans {
		idx, ok := byRule[s.rule]
		if !ok {
			idx = len(out)
			byRule[s.rule] = idx
			out = append(out, ErrorMatch{Index: s.rule, Rule: rules[s.rule]})
		}
		out[idx].Count++
		out[idx].Matches = append(out[idx].Matches, s.text)
	}
	for i := range out {
		m := &out[i]
		m.Penalty = m.Count * m.Rule.Penalty
		m.Explanation = e.explainError(m)
	}
	return out, nil
}

// matcher compiles rule, reusing cached expressions.
func (e *Engine) matcher(rule CommonErrorRule) (*regexp2.Regexp, error) {
	expr := rule.expression()
	opt := rule.options()
	key := fmt.Sprintf("%d:%s", opt, expr)
	if re, ok := e.matchers.Get(key); ok {
		return re, nil
	}
	re, err := regexp2.Compile(expr, opt)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = matchTimeout
	e.matchers.Add(key, re)
	return re, nil
}

// findSpans collects the non-empty matches of re in s.
func findSpans(re *regexp2.Regexp, s string, rule int) ([]span, error) {
	var out []span
	m, err := re.FindStringMatch(s)
	for m != nil {
		if m.Length > 0 {
			out = append(out, span{
				rule:  rule,
				start: m.Index,
				end:   m.Index + m.Length,
				text:  m.String(),
			})
		}
		m, err = re.FindNextMatch(m)
	}
	return out, err
}

// dropNested removes spans contained in a strictly longer span.
// Spans are swept in start order, longest first on ties, tracking the
// furthest end seen so far and the earliest start reaching it. The
// survivors keep their original order.
func dropNested(spans []span) []span {
	order := make([]int, len(spans))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(spans[a].start, spans[b].start); c != 0 {
			return c
		}
		return cmp.Compare(spans[b].end, spans[a].end)
	})

	nested := make([]bool, len(spans))
	maxEnd, maxStart := -1, 0
	for _, i := range order {
		s := spans[i]
		if maxEnd > s.end || (maxEnd == s.end && maxStart < s.start) {
			nested[i] = true
		}
		if s.end > maxEnd {
			maxEnd, maxStart = s.end, s.start
		}
	}

	kept := spans[:0:0]
	for i, s := range spans {
		if !nested[i] {
			kept = append(kept, s)
		}
	}
	return kept
}

// explainError describes one matched rule.
func (e *Engine) explainError(m *ErrorMatch) string {
	quoted := make([]string, len(m.Matches))
	for i, s := range m.Matches {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("Common error %q: found %d %s (%s), potential penalty %d%%",
		m.Rule.Pattern, m.Count, e.inflectUnit("time", m.Count),
		strings.Join(quoted, ", "), m.Penalty)
}

// IsConfigurationError reports whether err came from a caller-supplied rule.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
