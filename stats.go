package diarystats

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// CharacterCount returns the number of Unicode code points in text.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	return len(splitWords(text))
}

// SentenceCount returns the number of sentences in text. Text without
// terminal punctuation is one sentence; empty text has none.
func SentenceCount(text string) int {
	return len(splitSentences(text))
}

// ParagraphCount returns the number of non-blank lines in text.
func ParagraphCount(text string) int {
	return len(splitParagraphs(text))
}

// UniqueWordCount returns the number of distinct case-folded word tokens.
func UniqueWordCount(text string) int {
	return uniqueWords(splitWords(text))
}

func uniqueWords(words []string) int {
	fold := cases.Fold()
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[fold.String(w)] = true
	}
	return len(seen)
}

// Analyze computes the counts and readability scores of text.
func (e *Engine) Analyze(text string) Stats {
	words := splitWords(text)
	c := TextCounts{
		Characters:  CharacterCount(text),
		Words:       len(words),
		UniqueWords: uniqueWords(words),
		Sentences:   SentenceCount(text),
		Paragraphs:  ParagraphCount(text),
	}
	for _, w := range words {
		c.Letters += utf8.RuneCountInString(w)
		n := e.CountSyllables(w)
		c.Syllables += n
		switch {
		case n > 2:
			c.LongWords++
		case n > 1:
			c.MediumWords++
		default:
			c.ShortWords++
		}
	}
	return Stats{Counts: c, Readability: ComputeReadability(c)}
}

// ComputeReadability derives the readability scores from c.
func ComputeReadability(c TextCounts) Readability {
	words := float64(c.Words)
	sentences := float64(c.Sentences)

	wordsPerSentence := ratio(words, sentences)
	syllablesPerWord := ratio(float64(c.Syllables), words)

	r := Readability{
		AvgSyllablesPerWord:      round1(syllablesPerWord),
		AvgWordLength:            round1(ratio(float64(c.Letters), words)),
		AvgWordsPerSentence:      round1(wordsPerSentence),
		AvgSentencesPerParagraph: round1(ratio(sentences, float64(c.Paragraphs))),
		CharsPerSentence:         round1(ratio(float64(c.Characters), sentences)),
		LongWordsPerSentence:     round1(ratio(float64(c.LongWords), sentences)),
		LexicalDensity:           round1(100 * ratio(float64(c.UniqueWords), words)),
	}
	if c.Words == 0 || c.Sentences == 0 {
		return r
	}
	r.FleschReadingEase = round1(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord)
	r.FleschKincaidGrade = round1(0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59)
	r.GunningFog = round1(0.4 * (wordsPerSentence + 100*ratio(float64(c.LongWords), words)))
	return r
}
