// Package article holds the scored news items: the processed title and body
// sections fed to the scoring engine plus the metadata shown around them.
package article

import (
	"maps"
	"time"
)

type Article struct {
	ID         int64
	SourceID   int64
	SourceName string
	ExternalID string
	URL        string
	// Headline is the title as published. Title and Body are the processed,
	// whitespace-tokenizable sections used for scoring.
	Headline    string
	Title       string
	Body        string
	Language    string
	Publisher   string
	PublishedAt *time.Time
	FetchedAt   time.Time

	// LegacyScores are relevance scores carried over from the upstream classifier.
	LegacyScores map[string]float64
	// Classification is the computed category score map.
	Classification map[string]float64
}

// DisplayTitle returns the published headline, falling back to the processed title.
func (a Article) DisplayTitle() string {
	if a.Headline != "" {
		return a.Headline
	}
	return a.Title
}

// Clone returns a copy that shares no maps with a.
func (a Article) Clone() Article {
	c := a
	c.LegacyScores = maps.Clone(a.LegacyScores)
	c.Classification = maps.Clone(a.Classification)
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		c.PublishedAt = &t
	}
	return c
}
