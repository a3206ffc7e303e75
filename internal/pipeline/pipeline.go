// Package pipeline runs the ingest and rescore cycle shared by the fetch,
// score and daemon commands.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/category"
	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/database"
	"github.com/julienpequegnot/tagdesk/internal/feed"
	"github.com/julienpequegnot/tagdesk/internal/score"
	"github.com/julienpequegnot/tagdesk/internal/scorer"
	"github.com/julienpequegnot/tagdesk/internal/source"
)

// minFeedBody is the length under which a feed summary is replaced by the page text.
const minFeedBody = 200

type Pipeline struct {
	cfg        *config.Config
	engine     *Engine
	fetcher    *feed.Fetcher
	sources    *source.Repository
	articles   *article.Repository
	categories *category.Repository
	scores     *score.Repository
}

func New(db *database.DB, cfg *config.Config, engine *Engine) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		engine:     engine,
		fetcher:    feed.NewFetcher(time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second, cfg.Fetch.UserAgent),
		sources:    source.NewRepository(db),
		articles:   article.NewRepository(db),
		categories: category.NewRepository(db),
		scores:     score.NewRepository(db),
	}
}

type FetchStats struct {
	Sources  int
	Failed   int
	Articles int
}

// Fetch pulls every active source with a feed URL and stores unseen items.
func (p *Pipeline) Fetch(ctx context.Context) (FetchStats, error) {
	var stats FetchStats
	sources, err := p.sources.List()
	if err != nil {
		return stats, err
	}

	concurrency := p.cfg.Fetch.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	var mu sync.Mutex

	for _, src := range sources {
		if src.FeedURL == "" {
			slog.Debug("skipping source without feed", "source", src.Name)
			continue
		}

		wg.Add(1)
		go func(s source.Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			n, err := p.fetchSource(ctx, s)

			mu.Lock()
			defer mu.Unlock()
			stats.Sources++
			if err != nil {
				stats.Failed++
				slog.Warn("fetch failed", "source", s.Name, "error", err)
				return
			}
			stats.Articles += n
			slog.Info("fetched source", "source", s.Name, "new", n)
		}(src)
	}

	wg.Wait()
	return stats, ctx.Err()
}

func (p *Pipeline) fetchSource(ctx context.Context, s source.Source) (int, error) {
	items, err := p.fetcher.FetchFeed(ctx, s.FeedURL)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		exists, err := p.articles.Exists(item.URL)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}

		body := feed.HTMLToText(item.Content)
		if p.cfg.Fetch.FullContent || len(body) < minFeedBody {
			if text, err := p.fetcher.FetchFullContent(ctx, item.URL); err == nil && text != "" {
				body = text
			} else if err != nil {
				slog.Debug("full content unavailable", "url", item.URL, "error", err)
			}
		}

		a := feed.ToArticle(item, s.ID, body)
		if a.Publisher == "" {
			a.Publisher = s.Name
		}
		if _, err := p.articles.Add(a); err != nil {
			slog.Warn("failed to save article", "url", item.URL, "error", err)
			continue
		}
		added++
	}

	if err := p.sources.UpdateLastFetched(s.ID); err != nil {
		return added, err
	}
	return added, nil
}

type ScoreStats struct {
	Articles   int
	Categories int
	// Undefined counts NaN scores; they are stored as NULL.
	Undefined int
	Elapsed   time.Duration
}

// Score classifies articles against the stored taxonomy. With all set, every
// article is rescored; otherwise only articles without a classification.
func (p *Pipeline) Score(ctx context.Context, all bool, workers int) (ScoreStats, error) {
	start := time.Now()
	var stats ScoreStats

	categories, err := p.categories.List()
	if err != nil {
		return stats, err
	}
	if len(categories) == 0 {
		return stats, fmt.Errorf("no categories configured, import a taxonomy first")
	}

	var articles []article.Article
	if all {
		articles, err = p.articles.ListAll()
	} else {
		articles, err = p.articles.ListUnscored(-1)
	}
	if err != nil {
		return stats, err
	}
	stats.Categories = len(categories)
	if len(articles) == 0 {
		return stats, nil
	}

	if workers <= 0 {
		workers = p.cfg.Scoring.Workers
	}
	scored, err := scorer.ScoreArticleSet(ctx, scorer.ScoringContext{
		Scorer:     p.engine.Scorer,
		Categories: categories,
		Workers:    workers,
	}, articles)
	if err != nil {
		return stats, err
	}

	classifications := make(map[int64]map[string]float64, len(scored))
	for _, a := range scored {
		classifications[a.ID] = a.Classification
		for _, v := range a.Classification {
			if math.IsNaN(v) {
				stats.Undefined++
			}
		}
	}
	if err := p.scores.Save(classifications); err != nil {
		return stats, err
	}

	stats.Articles = len(scored)
	stats.Elapsed = time.Since(start)
	slog.Info("scored articles",
		"articles", stats.Articles,
		"categories", stats.Categories,
		"undefined", stats.Undefined,
		"elapsed", stats.Elapsed)
	return stats, nil
}

// Run fetches new articles and scores them.
func (p *Pipeline) Run(ctx context.Context) error {
	fs, err := p.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if fs.Articles == 0 {
		slog.Info("no new articles")
		return nil
	}
	if _, err := p.Score(ctx, false, 0); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	return nil
}
