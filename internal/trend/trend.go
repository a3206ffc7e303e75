// Package trend ranks categories by how many recent articles they classify.
package trend

import (
	"sort"
	"time"
)

type Trend struct {
	CategoryKey    string
	Count          int
	Score          float64
	RecentArticles []int64
}

type Analyzer struct {
	now     time.Time
	entries map[int64]entry
}

type entry struct {
	categories []string
	timestamp  time.Time
}

// NewAnalyzer measures recency against now.
func NewAnalyzer(now time.Time) *Analyzer {
	return &Analyzer{now: now, entries: make(map[int64]entry)}
}

// Add records the categories an article was classified into.
func (a *Analyzer) Add(articleID int64, categories []string, publishedAt time.Time) {
	if len(categories) == 0 {
		return
	}
	a.entries[articleID] = entry{categories: categories, timestamp: publishedAt}
}

// Trends returns the top categories over the last days. Recent articles count
// twice, and a category whose latest article is fresher gets a larger boost.
func (a *Analyzer) Trends(days, limit int) []Trend {
	cutoff := a.now.AddDate(0, 0, -days)

	counts := make(map[string]int)
	recent := make(map[string][]int64)
	latest := make(map[string]time.Time)

	for id, e := range a.entries {
		for _, key := range e.categories {
			counts[key]++
			if e.timestamp.After(cutoff) {
				recent[key] = append(recent[key], id)
			}
			if t, ok := latest[key]; !ok || e.timestamp.After(t) {
				latest[key] = e.timestamp
			}
		}
	}

	trends := make([]Trend, 0, len(counts))
	for key, count := range counts {
		boost := 1.0
		daysSince := a.now.Sub(latest[key]).Hours() / 24
		if daysSince < float64(days) {
			boost = 1.0 + (float64(days)-daysSince)/float64(days)
		}

		ids := recent[key]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		trends = append(trends, Trend{
			CategoryKey:    key,
			Count:          count,
			Score:          (float64(len(ids))*2 + float64(count)) * boost,
			RecentArticles: ids,
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Score != trends[j].Score {
			return trends[i].Score > trends[j].Score
		}
		return trends[i].CategoryKey < trends[j].CategoryKey
	})

	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
