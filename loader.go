package diarystats

import (
	"bufio"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Rule table file names inside the tables filesystem.
const (
	pluralsFile      = "plurals.txt"
	singularsFile    = "singulars.txt"
	irregularsFile   = "irregulars.txt"
	uncountablesFile = "uncountables.txt"
	problemWordsFile = "problemwords.txt"
	affixesFile      = "affixes.txt"
	syllablesFile    = "syllables.txt"
)

// readLines calls fn for every non-blank, non-comment line of name.
// Comment lines start with "!".
func readLines(fsys fs.FS, name string, fn func(line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	return sc.Err()
}

// compileRule compiles a rule-table pattern, tagging failures with ErrRuleTable.
func compileRule(expr string, opt regexp2.RegexOptions) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, opt)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrRuleTable, expr, err)
	}
	return re, nil
}

// loadInflections reads an ordered pattern:replacement file. The
// replacement is everything after the last colon, so patterns may
// contain "(?:" groups.
func loadInflections(fsys fs.FS, name string) ([]inflectionRule, error) {
	var rules []inflectionRule
	err := readLines(fsys, name, func(line string) error {
		idx := strings.LastIndex(line, ":")
		if idx < 0 {
			return fmt.Errorf("%w: missing replacement in %q", ErrRuleTable, line)
		}
		re, err := compileRule(line[:idx], regexp2.IgnoreCase)
		if err != nil {
			return err
		}
		rules = append(rules, inflectionRule{
			Source:      line[:idx],
			Replacement: line[idx+1:],
			re:          re,
		})
		return nil
	})
	return rules, err
}

// loadIrregulars reads singular:plural pairs.
func (e *Engine) loadIrregulars(fsys fs.FS) error {
	return readLines(fsys, irregularsFile, func(line string) error {
		singular, plural, ok := strings.Cut(line, ":")
		if !ok || singular == "" || plural == "" {
			return fmt.Errorf("%w: bad irregular entry %q", ErrRuleTable, line)
		}
		sre, err := compileRule(regexp2.Escape(singular)+"$", regexp2.IgnoreCase)
		if err != nil {
			return err
		}
		pre, err := compileRule(regexp2.Escape(plural)+"$", regexp2.IgnoreCase)
		if err != nil {
			return err
		}
		e.irregulars = append(e.irregulars, irregularForm{
			Singular:   singular,
			Plural:     plural,
			singularRe: sre,
			pluralRe:   pre,
		})
		return nil
	})
}

// loadUncountables reads one word per line.
func (e *Engine) loadUncountables(fsys fs.FS) error {
	return readLines(fsys, uncountablesFile, func(line string) error {
		e.uncountable[strings.ToLower(line)] = true
		return nil
	})
}

// loadProblemWords reads word:count exceptions.
func (e *Engine) loadProblemWords(fsys fs.FS) error {
	return readLines(fsys, problemWordsFile, func(line string) error {
		word, count, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: bad problem word %q", ErrRuleTable, line)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return fmt.Errorf("%w: bad syllable count in %q", ErrRuleTable, line)
		}
		e.problemWords[word] = n
		return nil
	})
}

// loadAffixes reads weight:pattern lines into the weight-indexed tables.
func (e *Engine) loadAffixes(fsys fs.FS) error {
	return readLines(fsys, affixesFile, func(line string) error {
		w, expr, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: bad affix %q", ErrRuleTable, line)
		}
		weight, err := strconv.Atoi(w)
		if err != nil || weight < 1 || weight > len(e.affixes) {
			return fmt.Errorf("%w: bad affix weight in %q", ErrRuleTable, line)
		}
		re, err := compileRule(expr, regexp2.None)
		if err != nil {
			return err
		}
		e.affixes[weight-1] = append(e.affixes[weight-1], re)
		return nil
	})
}

// loadSyllablePatterns reads sub:pattern and add:pattern lines.
func (e *Engine) loadSyllablePatterns(fsys fs.FS) error {
	return readLines(fsys, syllablesFile, func(line string) error {
		kind, expr, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: bad syllable pattern %q", ErrRuleTable, line)
		}
		re, err := compileRule(expr, regexp2.None)
		if err != nil {
			return err
		}
		p := syllablePattern{Source: expr, re: re}
		switch kind {
		case "sub":
			e.subSyllables = append(e.subSyllables, p)
		case "add":
			e.addSyllables = append(e.addSyllables, p)
		default:
			return fmt.Errorf("%w: unknown adjustment %q", ErrRuleTable, kind)
		}
		return nil
	})
}
