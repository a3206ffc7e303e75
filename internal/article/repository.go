package article

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julienpequegnot/tagdesk/internal/database"
)

var ErrNotFound = errors.New("article not found")

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `
	SELECT a.id, COALESCE(a.source_id, 0), COALESCE(s.name, ''), COALESCE(a.external_id, ''), a.url,
	       a.headline, a.title, a.body, a.language, a.publisher, a.published_at, a.fetched_at, a.legacy_scores
	FROM articles a
	LEFT JOIN sources s ON a.source_id = s.id`

// Add stores a and returns it with its assigned ID.
func (r *Repository) Add(a Article) (*Article, error) {
	legacy, err := encodeScores(a.LegacyScores)
	if err != nil {
		return nil, err
	}

	result, err := r.db.Exec(
		`INSERT INTO articles (source_id, external_id, url, headline, title, body, language, publisher, published_at, legacy_scores)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullInt(a.SourceID), nullString(a.ExternalID), a.URL, a.Headline, a.Title, a.Body,
		a.Language, a.Publisher, a.PublishedAt, legacy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	stored := a.Clone()
	stored.ID = id
	return &stored, nil
}

func (r *Repository) Exists(url string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles WHERE url = ?`, url).Scan(&count)
	return count > 0, err
}

func (r *Repository) Get(id int64) (*Article, error) {
	row := r.db.QueryRow(selectColumns+` WHERE a.id = ?`, id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns articles newest first.
func (r *Repository) List(limit, offset int) ([]Article, error) {
	return r.query(selectColumns+`
		ORDER BY COALESCE(a.published_at, a.fetched_at) DESC
		LIMIT ? OFFSET ?`, limit, offset)
}

func (r *Repository) ListAll() ([]Article, error) {
	return r.query(selectColumns + ` ORDER BY a.id`)
}

// ListByIDs returns the articles with the given ids, in id order.
func (r *Repository) ListByIDs(ids []int64) ([]Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]byte, 0, len(ids)*2)
	args := make([]any, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
		args[i] = id
	}
	return r.query(selectColumns+` WHERE a.id IN (`+string(placeholders)+`) ORDER BY a.id`, args...)
}

// ListUnscored returns articles that have no stored classification yet.
func (r *Repository) ListUnscored(limit int) ([]Article, error) {
	return r.query(selectColumns+`
		WHERE NOT EXISTS (SELECT 1 FROM classifications c WHERE c.article_id = a.id)
		ORDER BY a.id
		LIMIT ?`, limit)
}

func (r *Repository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}

func (r *Repository) query(q string, args ...any) ([]Article, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*Article, error) {
	var a Article
	var legacy sql.NullString
	if err := s.Scan(&a.ID, &a.SourceID, &a.SourceName, &a.ExternalID, &a.URL,
		&a.Headline, &a.Title, &a.Body, &a.Language, &a.Publisher, &a.PublishedAt, &a.FetchedAt, &legacy); err != nil {
		return nil, err
	}
	if legacy.Valid && legacy.String != "" {
		if err := json.Unmarshal([]byte(legacy.String), &a.LegacyScores); err != nil {
			return nil, fmt.Errorf("article %d: failed to decode legacy scores: %w", a.ID, err)
		}
	}
	return &a, nil
}

func encodeScores(scores map[string]float64) (any, error) {
	if len(scores) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("failed to encode legacy scores: %w", err)
	}
	return string(data), nil
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
