package scorer

import (
	"context"
	"runtime"
	"sync"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

// ScoreArticle scores every category for a, keyed by category key.
func (s *Scorer) ScoreArticle(a article.Article, categories []taxonomy.Category) map[string]float64 {
	scores := make(map[string]float64, len(categories))
	for _, c := range categories {
		scores[c.Key] = s.ScoreCategory(a, c)
	}
	return scores
}

// ScoringContext is the snapshot a batch is scored against.
type ScoringContext struct {
	Scorer     *Scorer
	Categories []taxonomy.Category
	// Workers bounds concurrent scoring; 0 means GOMAXPROCS.
	Workers int
}

// ScoreArticleSet returns copies of articles carrying their classification map.
// The inputs are left untouched. Results are returned only once the whole set is
// scored; a cancelled context discards them.
func ScoreArticleSet(ctx context.Context, sc ScoringContext, articles []article.Article) ([]article.Article, error) {
	workers := sc.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]article.Article, len(articles))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

loop:
	for i := range articles {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			out := articles[i].Clone()
			out.Classification = sc.Scorer.ScoreArticle(articles[i], sc.Categories)
			results[i] = out
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
