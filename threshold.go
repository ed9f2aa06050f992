package diarystats

import "fmt"

// Dimension is one of the countable properties a rating checks.
type Dimension int

const (
	Characters Dimension = iota
	Words
	Sentences
	Paragraphs
)

// Dimensions lists the dimensions in evaluation order.
var Dimensions = []Dimension{Characters, Words, Sentences, Paragraphs}

// Unit returns the singular counting unit, e.g. "word".
func (d Dimension) Unit() string {
	switch d {
	case Characters:
		return "character"
	case Words:
		return "word"
	case Sentences:
		return "sentence"
	case Paragraphs:
		return "paragraph"
	default:
		return "item"
	}
}

// String returns the capitalised dimension name, e.g. "Words".
func (d Dimension) String() string {
	switch d {
	case Characters:
		return "Characters"
	case Words:
		return "Words"
	case Sentences:
		return "Sentences"
	case Paragraphs:
		return "Paragraphs"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// count picks the value of d from c.
func (d Dimension) count(c TextCounts) int {
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
		return 0
	}
}

// ThresholdConfig bounds one dimension. A Min or Max of 0 disables that
// bound. Penalty is the percentage points charged per unit outside a bound.
type ThresholdConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Penalty int `yaml:"penalty"`
}

// Deviation returns how far actual lies outside t and the resulting
// penalty. The minimum is checked first.
func (t ThresholdConfig) Deviation(actual int) (deviation, penalty int, below, above bool) {
	switch {
	case t.Min != 0 && actual < t.Min:
		deviation = t.Min - actual
		below = true
	case t.Max != 0 && actual > t.Max:
		deviation = actual - t.Max
		above = true
	default:
		return 0, 0, false, false
	}
	return deviation, deviation * t.Penalty, below, above
}

// EvaluateThreshold checks actual against t and explains any violation.
func (e *Engine) EvaluateThreshold(d Dimension, actual int, t ThresholdConfig) ThresholdResult {
	dev, penalty, below, above := t.Deviation(actual)
	res := ThresholdResult{
		Dimension: d,
		Actual:    actual,
		Deviation: dev,
		Penalty:   penalty,
		Below:     below,
		Above:     above,
	}
	unit := e.inflectUnit(d.Unit(), dev)
	switch {
	case below:
		res.Explanation = fmt.Sprintf("%s: needs %d more %s (minimum %d), potential penalty %d%%",
			d, dev, unit, t.Min, penalty)
	case above:
		res.Explanation = fmt.Sprintf("%s: %d %s over maximum (%d), potential penalty %d%%",
			d, dev, unit, t.Max, penalty)
	}
	return res
}
