package scorer

import (
	"math"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/summary"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

const MaxScore = 10.0

// Breakdown explains how a category score was reached.
type Breakdown struct {
	CategoryKey string
	TitleWeight float64
	BodyWeight  float64
	Title       SectionResult
	Body        SectionResult
	// Raw is the weighted sum before normalization and clamping.
	Raw   float64
	Final float64
}

// Explain scores a category against an article and keeps the intermediate results.
// Categories without rules score 0.
func (s *Scorer) Explain(a article.Article, c taxonomy.Category) Breakdown {
	b := Breakdown{
		CategoryKey: c.Key,
		TitleWeight: c.SectionWeight(taxonomy.SectionTitle, s.defaults),
		BodyWeight:  c.SectionWeight(taxonomy.SectionBody, s.defaults),
	}
	if len(c.Rules) == 0 {
		return b
	}

	b.Title = s.ScoreSection(summary.Tokenize(a.Title), c.Rules, taxonomy.SectionTitle, a.Language)
	b.Body = s.ScoreSection(summary.Tokenize(a.Body), c.Rules, taxonomy.SectionBody, a.Language)

	// A section adds nothing, boost included, unless its aggregate is positive.
	if b.Title.AggregateScore > 0 {
		b.Raw += b.TitleWeight*(b.Title.AggregateScore+1) + b.Title.BoostTotal
	}
	if b.Body.AggregateScore > 0 {
		b.Raw += b.BodyWeight*(b.Body.AggregateScore+1) + b.Body.BoostTotal
	}

	final := b.Raw / (b.TitleWeight + b.BodyWeight) * MaxScore
	b.Final = round1(clamp(final, 0, MaxScore))
	if s.strict && math.IsNaN(b.Final) {
		b.Final = 0
	}
	return b
}

// ScoreCategory returns the 0-10 score of category c for article a.
func (s *Scorer) ScoreCategory(a article.Article, c taxonomy.Category) float64 {
	return s.Explain(a, c).Final
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
