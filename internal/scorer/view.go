package scorer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

// DisplaySource selects which score of an article is shown for a category.
type DisplaySource string

const (
	// SourceAuto shows the computed score, falling back to the legacy one.
	SourceAuto     DisplaySource = "auto"
	SourceLegacy   DisplaySource = "legacy"
	SourceComputed DisplaySource = "computed"
	SourceDelta    DisplaySource = "delta"
)

func ParseDisplaySource(s string) (DisplaySource, error) {
	switch DisplaySource(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceAuto:
		return SourceAuto, nil
	case SourceLegacy:
		return SourceLegacy, nil
	case SourceComputed:
		return SourceComputed, nil
	case SourceDelta:
		return SourceDelta, nil
	}
	return "", fmt.Errorf("unknown display source %q (want auto, legacy, computed or delta)", s)
}

// LegacyScore returns the upstream score of c, looked up by its legacy key.
// Categories without a legacy key have no legacy score. Zero counts as missing.
func LegacyScore(a article.Article, c taxonomy.Category) (float64, bool) {
	if c.LegacyKey == "" {
		return 0, false
	}
	return present(a.LegacyScores[c.LegacyKey])
}

// ComputedScore returns the classification score of c. NaN and zero count as missing.
func ComputedScore(a article.Article, c taxonomy.Category) (float64, bool) {
	return present(a.Classification[c.Key])
}

func present(v float64) (float64, bool) {
	if v == 0 || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// DisplayScore resolves the score shown for c. The delta is computed minus
// legacy and is undefined when either side is missing.
func DisplayScore(a article.Article, c taxonomy.Category, src DisplaySource) (float64, bool) {
	switch src {
	case SourceLegacy:
		return LegacyScore(a, c)
	case SourceComputed:
		return ComputedScore(a, c)
	case SourceDelta:
		computed, ok := ComputedScore(a, c)
		if !ok {
			return 0, false
		}
		legacy, ok := LegacyScore(a, c)
		if !ok {
			return 0, false
		}
		return round1(computed - legacy), true
	}
	if v, ok := ComputedScore(a, c); ok {
		return v, true
	}
	return LegacyScore(a, c)
}

// PassesThreshold reports whether score is strictly above threshold.
func PassesThreshold(score, threshold float64) bool {
	return score > threshold
}

// QuickKeywords holds the compiled quick-keyword patterns of one category.
// Keywords are patterns; invalid ones match literally.
type QuickKeywords struct {
	patterns []*regexp.Regexp
}

func NewQuickKeywords(c taxonomy.Category) *QuickKeywords {
	q := &QuickKeywords{}
	for _, kw := range c.QuickKeywords {
		if kw == "" {
			continue
		}
		re, err := regexp.Compile(kw)
		if err != nil {
			re = regexp.MustCompile(regexp.QuoteMeta(kw))
		}
		q.patterns = append(q.patterns, re)
	}
	return q
}

// Count sums case-sensitive occurrences in the title and body. The bool is
// false when nothing matched.
func (q *QuickKeywords) Count(a article.Article) (int, bool) {
	total := 0
	for _, re := range q.patterns {
		total += len(re.FindAllStringIndex(a.Title, -1))
		total += len(re.FindAllStringIndex(a.Body, -1))
	}
	return total, total > 0
}

// CountQuickKeywords is NewQuickKeywords(c).Count(a) for one-off lookups.
func CountQuickKeywords(a article.Article, c taxonomy.Category) (int, bool) {
	return NewQuickKeywords(c).Count(a)
}

// Ranked pairs an article with its displayed score for one category.
type Ranked struct {
	Article article.Article
	Score   float64
}

// RankByCategory keeps the articles whose displayed score for c is defined and
// passes threshold, best first.
func RankByCategory(articles []article.Article, c taxonomy.Category, src DisplaySource, threshold float64) []Ranked {
	var ranked []Ranked
	for _, a := range articles {
		v, ok := DisplayScore(a, c, src)
		if !ok || !PassesThreshold(v, threshold) {
			continue
		}
		ranked = append(ranked, Ranked{Article: a, Score: v})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopCategory returns the category with the highest displayed score for a.
func TopCategory(a article.Article, categories []taxonomy.Category, src DisplaySource) (string, float64, bool) {
	var key string
	best, found := 0.0, false
	for _, c := range categories {
		v, ok := DisplayScore(a, c, src)
		if !ok {
			continue
		}
		if !found || v > best {
			key, best, found = c.Key, v, true
		}
	}
	return key, best, found
}
