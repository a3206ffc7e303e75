package score

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/julienpequegnot/tagdesk/internal/database"
)

// Entry is one stored category score. NaN scores are stored as NULL.
type Entry struct {
	ArticleID   int64
	CategoryKey string
	Score       float64
	ScoredAt    time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save replaces the classification of each article with its score map.
func (r *Repository) Save(classifications map[int64]map[string]float64) error {
	return r.db.WithTx(func(tx *sql.Tx) error {
		for articleID, scores := range classifications {
			if _, err := tx.Exec(`DELETE FROM classifications WHERE article_id = ?`, articleID); err != nil {
				return fmt.Errorf("failed to clear classification of article %d: %w", articleID, err)
			}
			for key, v := range scores {
				if _, err := tx.Exec(
					`INSERT INTO classifications (article_id, category_key, score, scored_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
					articleID, key, nullScore(v),
				); err != nil {
					return fmt.Errorf("failed to store score %s of article %d: %w", key, articleID, err)
				}
			}
		}
		return nil
	})
}

// ForArticle returns the stored score map of an article, empty when unscored.
func (r *Repository) ForArticle(articleID int64) (map[string]float64, error) {
	rows, err := r.db.Query(`SELECT category_key, score FROM classifications WHERE article_id = ?`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var key string
		var v sql.NullFloat64
		if err := rows.Scan(&key, &v); err != nil {
			return nil, err
		}
		scores[key] = fromNull(v)
	}
	return scores, rows.Err()
}

// All returns every stored score map keyed by article id.
func (r *Repository) All() (map[int64]map[string]float64, error) {
	rows, err := r.db.Query(`SELECT article_id, category_key, score FROM classifications`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := make(map[int64]map[string]float64)
	for rows.Next() {
		var id int64
		var key string
		var v sql.NullFloat64
		if err := rows.Scan(&id, &key, &v); err != nil {
			return nil, err
		}
		if all[id] == nil {
			all[id] = make(map[string]float64)
		}
		all[id][key] = fromNull(v)
	}
	return all, rows.Err()
}

// Top returns the best scored articles of a category, skipping NaN scores.
func (r *Repository) Top(categoryKey string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT article_id, category_key, score, scored_at
		FROM classifications
		WHERE category_key = ? AND score IS NOT NULL
		ORDER BY score DESC, article_id
		LIMIT ?
	`, categoryKey, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ArticleID, &e.CategoryKey, &e.Score, &e.ScoredAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountNaN reports how many stored scores are undefined.
func (r *Repository) CountNaN() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM classifications WHERE score IS NULL`).Scan(&n)
	return n, err
}

func (r *Repository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM classifications`)
	return err
}

func nullScore(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

func fromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
