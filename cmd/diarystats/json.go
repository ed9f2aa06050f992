package main

import "github.com/cours-de-latin/diarystats"

// ---- JSON output types --------------------------------------------------

type countsJSON struct {
	Characters  int `json:"characters"`
	Letters     int `json:"letters"`
	Words       int `json:"words"`
	UniqueWords int `json:"unique_words"`
	Sentences   int `json:"sentences"`
	Paragraphs  int `json:"paragraphs"`
	Syllables   int `json:"syllables"`
	ShortWords  int `json:"short_words"`
	MediumWords int `json:"medium_words"`
	LongWords   int `json:"long_words"`
}

type readabilityJSON struct {
	AvgSyllablesPerWord      float64 `json:"avg_syllables_per_word"`
	AvgWordLength            float64 `json:"avg_word_length"`
	AvgWordsPerSentence      float64 `json:"avg_words_per_sentence"`
	AvgSentencesPerParagraph float64 `json:"avg_sentences_per_paragraph"`
	CharsPerSentence         float64 `json:"chars_per_sentence"`
	LongWordsPerSentence     float64 `json:"long_words_per_sentence"`
	FleschReadingEase        float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade       float64 `json:"flesch_kincaid_grade"`
	GunningFog               float64 `json:"gunning_fog"`
	LexicalDensity           float64 `json:"lexical_density"`
}

type statsJSON struct {
	Counts      countsJSON      `json:"counts"`
	Readability readabilityJSON `json:"readability"`
}

type thresholdJSON struct {
	Dimension   string `json:"dimension"`
	Actual      int    `json:"actual"`
	Deviation   int    `json:"deviation"`
	Penalty     int    `json:"penalty"`
	Explanation string `json:"explanation,omitempty"`
}

type errorMatchJSON struct {
	Pattern     string   `json:"pattern"`
	Count       int      `json:"count"`
	Matches     []string `json:"matches"`
	Penalty     int      `json:"penalty"`
	Explanation string   `json:"explanation"`
}

type ratingJSON struct {
	Stats        statsJSON        `json:"stats"`
	Thresholds   []thresholdJSON  `json:"thresholds"`
	CommonErrors []errorMatchJSON `json:"common_errors"`
	TotalPenalty int              `json:"total_penalty"`
	FinalRating  float64          `json:"final_rating"`
	Explanations []string         `json:"explanations"`
}

type traceStepJSON struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Count  int    `json:"count"`
}

type syllablesJSON struct {
	Word      string          `json:"word"`
	Syllables int             `json:"syllables"`
	Trace     []traceStepJSON `json:"trace,omitempty"`
}

type inflectionJSON struct {
	Word     string `json:"word"`
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// ---- conversions --------------------------------------------------------

func toStatsJSON(st diarystats.Stats) statsJSON {
	c, r := st.Counts, st.Readability
	return statsJSON{
		Counts: countsJSON{
			Characters:  c.Characters,
			Letters:     c.Letters,
			Words:       c.Words,
			UniqueWords: c.UniqueWords,
			Sentences:   c.Sentences,
			Paragraphs:  c.Paragraphs,
			Syllables:   c.Syllables,
			ShortWords:  c.ShortWords,
			MediumWords: c.MediumWords,
			LongWords:   c.LongWords,
		},
		Readability: readabilityJSON{
			AvgSyllablesPerWord:      r.AvgSyllablesPerWord,
			AvgWordLength:            r.AvgWordLength,
			AvgWordsPerSentence:      r.AvgWordsPerSentence,
			AvgSentencesPerParagraph: r.AvgSentencesPerParagraph,
			CharsPerSentence:         r.CharsPerSentence,
			LongWordsPerSentence:     r.LongWordsPerSentence,
			FleschReadingEase:        r.FleschReadingEase,
			FleschKincaidGrade:       r.FleschKincaidGrade,
			GunningFog:               r.GunningFog,
			LexicalDensity:           r.LexicalDensity,
		},
	}
}

func toRatingJSON(res *diarystats.RatingResult) ratingJSON {
	out := ratingJSON{
		Stats:        toStatsJSON(res.Stats),
		Thresholds:   make([]thresholdJSON, 0, len(res.Thresholds)),
		CommonErrors: make([]errorMatchJSON, 0, len(res.CommonErrors)),
		TotalPenalty: res.TotalPenalty,
		FinalRating:  res.FinalRating,
		Explanations: res.Explanations,
	}
	if out.Explanations == nil {
		out.Explanations = []string{}
	}
	for _, t := range res.Thresholds {
		out.Thresholds = append(out.Thresholds, thresholdJSON{
			Dimension:   diarystats.Plural(t.Dimension.Unit()),
			Actual:      t.Actual,
			Deviation:   t.Deviation,
			Penalty:     t.Penalty,
			Explanation: t.Explanation,
		})
	}
	for _, m := range res.CommonErrors {
		out.CommonErrors = append(out.CommonErrors, errorMatchJSON{
			Pattern:     m.Rule.Pattern,
			Count:       m.Count,
			Matches:     m.Matches,
			Penalty:     m.Penalty,
			Explanation: m.Explanation,
		})
	}
	return out
}

func toTraceJSON(steps []diarystats.TraceStep) []traceStepJSON {
	out := make([]traceStepJSON, 0, len(steps))
	for _, s := range steps {
		out = append(out, traceStepJSON{Label: s.Label, Detail: s.Detail, Count: s.Count})
	}
	return out
}
