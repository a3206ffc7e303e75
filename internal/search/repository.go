package search

import (
	"time"

	"github.com/julienpequegnot/tagdesk/internal/database"
)

type SearchResult struct {
	ArticleID   int64
	Title       string
	SourceName  string
	PublishedAt *time.Time
	Snippet     string
	Rank        float64
	// Score is the article's classification score in the ranking category, if any.
	Score float64
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Search(query string, limit int) ([]SearchResult, error) {
	rows, err := r.db.Query(`
		SELECT
			a.id,
			CASE WHEN a.headline != '' THEN a.headline ELSE a.title END,
			COALESCE(s.name, a.publisher),
			a.published_at,
			snippet(articles_fts, -1, '<b>', '</b>', '...', 32) as snippet,
			bm25(articles_fts) as rank,
			0
		FROM articles_fts
		JOIN articles a ON articles_fts.rowid = a.id
		LEFT JOIN sources s ON a.source_id = s.id
		WHERE articles_fts MATCH ?
		ORDER BY bm25(articles_fts)
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	return scanResults(rows)
}

// SearchInCategory ranks matches by a blend of text relevance and the stored
// score of the given category.
func (r *Repository) SearchInCategory(query, categoryKey string, limit int) ([]SearchResult, error) {
	rows, err := r.db.Query(`
		SELECT
			a.id,
			CASE WHEN a.headline != '' THEN a.headline ELSE a.title END,
			COALESCE(s.name, a.publisher),
			a.published_at,
			snippet(articles_fts, -1, '<b>', '</b>', '...', 32) as snippet,
			bm25(articles_fts) as rank,
			COALESCE(c.score, 0) as score
		FROM articles_fts
		JOIN articles a ON articles_fts.rowid = a.id
		LEFT JOIN sources s ON a.source_id = s.id
		LEFT JOIN classifications c ON c.article_id = a.id AND c.category_key = ?
		WHERE articles_fts MATCH ?
		ORDER BY (COALESCE(c.score, 0) * 0.3 - bm25(articles_fts) * 0.7) DESC
		LIMIT ?
	`, categoryKey, query, limit)
	if err != nil {
		return nil, err
	}
	return scanResults(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

func scanResults(rows rowScanner) ([]SearchResult, error) {
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var sr SearchResult
		if err := rows.Scan(&sr.ArticleID, &sr.Title, &sr.SourceName, &sr.PublishedAt, &sr.Snippet, &sr.Rank, &sr.Score); err != nil {
			return nil, err
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}

func (r *Repository) RebuildIndex() error {
	// Delete all existing FTS entries
	_, err := r.db.Exec("DELETE FROM articles_fts")
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO articles_fts(rowid, title, body)
		SELECT id, title, body FROM articles
	`)
	return err
}
