package diarystats

// TextCounts holds the raw counts for one text.
type TextCounts struct {
	// Characters counts Unicode code points of the unmodified text.
	Characters int
	// Letters counts the code points inside word tokens.
	Letters int
	// Words counts word tokens.
	Words int
	// UniqueWords counts distinct case-folded word tokens.
	UniqueWords int
	Sentences   int
	Paragraphs  int
	// Syllables is the sum of CountSyllables over all word tokens.
	Syllables int
	// ShortWords have one syllable, MediumWords two, LongWords three or more.
	ShortWords  int
	MediumWords int
	LongWords   int
}

// Readability holds the derived scores, each rounded to one decimal.
// A score whose denominator is zero is reported as 0.
type Readability struct {
	AvgSyllablesPerWord      float64
	AvgWordLength            float64
	AvgWordsPerSentence      float64
	AvgSentencesPerParagraph float64
	CharsPerSentence         float64
	LongWordsPerSentence     float64
	FleschReadingEase        float64
	FleschKincaidGrade       float64
	GunningFog               float64
	// LexicalDensity is the percentage of unique words.
	LexicalDensity float64
}

// Stats bundles counts and readability scores for one text.
type Stats struct {
	Counts      TextCounts
	Readability Readability
}

// ThresholdResult is the outcome of checking one dimension against its
// configured bounds.
type ThresholdResult struct {
	Dimension Dimension
	Actual    int
	// Deviation is how far Actual lies outside the bounds, 0 when inside.
	Deviation int
	// Penalty is Deviation times the configured percent, in percentage points.
	Penalty int
	Below   bool
	Above   bool
	// Explanation is empty when the dimension is within bounds.
	Explanation string
}

// ErrorMatch reports the matches of one common-error rule.
type ErrorMatch struct {
	// Index is the position of the rule in the supplied list.
	Index int
	Rule  CommonErrorRule
	Count int
	// Matches holds the matched substrings in text order.
	Matches []string
	// Penalty is Count times the rule's percent, in percentage points.
	Penalty     int
	Explanation string
}

// RatingResult is the outcome of Rate.
type RatingResult struct {
	Stats Stats
	// Thresholds has one entry per dimension in evaluation order.
	Thresholds   []ThresholdResult
	CommonErrors []ErrorMatch
	// TotalPenalty is the summed penalty clamped to [0, 100].
	TotalPenalty int
	// FinalRating is MaxScore reduced by TotalPenalty percent, one decimal.
	FinalRating float64
	// Explanations lists one line per violated dimension, then one per
	// matched common error.
	Explanations []string
}
