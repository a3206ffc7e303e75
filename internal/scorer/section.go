package scorer

import (
	"math"

	"github.com/julienpequegnot/tagdesk/internal/summary"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

// SectionResult is the outcome of scoring one section against one category's rules.
type SectionResult struct {
	Section taxonomy.Section
	// ActiveRuleCount counts rules not disabled for the section.
	ActiveRuleCount int
	// ScoredRuleCount counts active rules with a non-negative boost; only those
	// feed the aggregate score.
	ScoredRuleCount        int
	UniqueHitCount         int
	WeightedFrequencyTotal float64
	WeightTotal            float64
	AggregateScore         float64
	BoostTotal             float64

	AverageFrequency float64
	MaxFrequency     int
	UniqueTermCount  int
}

// ScoreSection evaluates the active rules of a category against the tokens of one section.
func (s *Scorer) ScoreSection(tokens []string, rules []taxonomy.KeywordRule, section taxonomy.Section, code string) SectionResult {
	sum := summary.Summarize(tokens)
	res := SectionResult{
		Section:          section,
		AverageFrequency: sum.AverageFrequency,
		MaxFrequency:     sum.MaxFrequency,
		UniqueTermCount:  sum.UniqueTermCount,
	}

	for _, rule := range rules {
		if !rule.ActiveIn(section) {
			continue
		}
		res.ActiveRuleCount++

		count := s.counter.CountFrequencies(rule.Hooks(), tokens, code)
		boost := rule.BoostIn(section)

		if boost >= 0 {
			res.ScoredRuleCount++
			if count > 0 {
				weight := rule.WeightIn(section)
				z := math.Min(1, float64(count)/sum.AverageFrequency)
				res.UniqueHitCount++
				res.WeightedFrequencyTotal += z * weight
				res.WeightTotal += weight
			}
		}
		if count > 0 {
			res.BoostTotal += boost
		}
	}

	// Zero denominators yield NaN here.
	breadth := float64(res.UniqueHitCount) / float64(res.ScoredRuleCount)
	depth := res.WeightedFrequencyTotal / res.WeightTotal
	res.AggregateScore = (breadth + depth) / 2

	if s.strict && math.IsNaN(res.AggregateScore) {
		res.AggregateScore = 0
	}
	return res
}
