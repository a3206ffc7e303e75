// Package summary computes per-section word-frequency statistics used to
// normalize rule hit counts.
package summary

import (
	"math"
	"strings"
)

type Summary struct {
	Frequencies      map[string]int
	MaxFrequency     int
	MaxFrequencyTerm string
	TotalTokens      int
	UniqueTermCount  int
	// AverageFrequency is the mean of Frequencies values, NaN for no tokens.
	AverageFrequency float64
}

// Tokenize splits processed section text into whitespace-separated tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Summarize counts tokens by exact string equality. MaxFrequency starts at 1
// with an empty term, so only repeated words become the max term.
func Summarize(tokens []string) Summary {
	s := Summary{
		Frequencies:  make(map[string]int),
		MaxFrequency: 1,
		TotalTokens:  len(tokens),
	}
	for _, tok := range tokens {
		s.Frequencies[tok]++
		if n := s.Frequencies[tok]; n > s.MaxFrequency {
			s.MaxFrequency = n
			s.MaxFrequencyTerm = tok
		}
	}
	s.UniqueTermCount = len(s.Frequencies)

	if s.UniqueTermCount == 0 {
		s.AverageFrequency = math.NaN()
		return s
	}
	total := 0
	for _, n := range s.Frequencies {
		total += n
	}
	s.AverageFrequency = float64(total) / float64(s.UniqueTermCount)
	return s
}
