package diarystats

import (
	"math"

	"github.com/shopspring/decimal"
)

// RatingConfig is everything Rate needs besides the text.
type RatingConfig struct {
	// MaxScore is the rating of a text without penalties.
	MaxScore   float64         `yaml:"max_score"`
	Characters ThresholdConfig `yaml:"characters"`
	Words      ThresholdConfig `yaml:"words"`
	Sentences  ThresholdConfig `yaml:"sentences"`
	Paragraphs ThresholdConfig `yaml:"paragraphs"`
	// CommonErrors is the glossary of phrases to penalise.
	CommonErrors      []CommonErrorRule `yaml:"common_errors"`
	DropNestedMatches bool              `yaml:"drop_nested_matches"`
}

// Threshold returns the bounds configured for d.
func (c RatingConfig) Threshold(d Dimension) ThresholdConfig {
	switch d {
	case Characters:
		return c.Characters
	case Words:
		return c.Words
	case Sentences:
		return c.Sentences
	case Paragraphs:
		return c.Paragraphs
	default:
		return ThresholdConfig{}
	}
}

// Rate analyses text once, checks every dimension against its bounds in
// the order of Dimensions, scans for common errors and reduces MaxScore
// by the summed penalty. Penalties add up without limit per dimension;
// only the total is clamped to [0, 100]. The only error is a
// *ConfigurationError for an unusable common-error rule.
func (e *Engine) Rate(text string, cfg RatingConfig) (*RatingResult, error) {
	res := &RatingResult{Stats: e.Analyze(text)}

	total := 0
	for _, d := range Dimensions {
		tr := e.EvaluateThreshold(d, d.count(res.Stats.Counts), cfg.Threshold(d))
		res.Thresholds = append(res.Thresholds, tr)
		total += tr.Penalty
		if tr.Explanation != "" {
			res.Explanations = append(res.Explanations, tr.Explanation)
		}
	}

	errs, err := e.ScanCommonErrors(text, cfg.CommonErrors, ScanOptions{
		DropNestedMatches: cfg.DropNestedMatches,
	})
	if err != nil {
		return nil, err
	}
	res.CommonErrors = errs
	for _, m := range errs {
		total += m.Penalty
		res.Explanations = append(res.Explanations, m.Explanation)
	}

	res.TotalPenalty = clampPercent(total)
	res.FinalRating = finalRating(cfg.MaxScore, res.TotalPenalty)
	return res, nil
}

func clampPercent(p int) int {
	return min(max(p, 0), 100)
}

// finalRating computes maxScore * (100 - penalty) / 100 in decimal
// arithmetic and rounds it to one place.
func finalRating(maxScore float64, penalty int) float64 {
	if math.IsNaN(maxScore) || math.IsInf(maxScore, 0) {
		return maxScore
	}
	r := decimal.NewFromFloat(maxScore).
		Mul(decimal.NewFromInt(int64(100 - penalty))).
		Div(decimal.NewFromInt(100)).
		Round(1)
	f, _ := r.Float64()
	return f
}
