// Package scorer turns keyword rules into bounded 0-10 category scores.
//
// A section (title or body) is scored per category by combining the share of
// rules that hit at all with their frequency-weighted intensity. Section scores
// are then weighted into one category score. The arithmetic is permissive:
// degenerate input yields 0 or NaN instead of an error, unless strict mode is on.
package scorer

import (
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

// FrequencyCounter counts hook occurrences in a token sequence.
type FrequencyCounter interface {
	CountFrequencies(hooks, tokens []string, code string) int
}

// Scorer is safe for concurrent use as long as its FrequencyCounter is.
type Scorer struct {
	counter  FrequencyCounter
	defaults taxonomy.SectionWeights
	strict   bool
}

type Option func(*Scorer)

// WithStrict makes NaN section and category results collapse to 0.
func WithStrict(strict bool) Option {
	return func(s *Scorer) { s.strict = strict }
}

// WithSectionWeights sets the section weights used when a category has none.
func WithSectionWeights(w taxonomy.SectionWeights) Option {
	return func(s *Scorer) { s.defaults = w }
}

func New(counter FrequencyCounter, opts ...Option) *Scorer {
	s := &Scorer{
		counter: counter,
		defaults: taxonomy.SectionWeights{
			Title: taxonomy.DefaultTitleWeight,
			Body:  taxonomy.DefaultBodyWeight,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scorer) Strict() bool {
	return s.strict
}
