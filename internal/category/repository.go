package category

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/julienpequegnot/tagdesk/internal/database"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

var ErrNotFound = errors.New("category not found")

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// ReplaceAll swaps the stored taxonomy for categories, keeping their order.
func (r *Repository) ReplaceAll(categories []taxonomy.Category) error {
	return r.db.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
			return fmt.Errorf("failed to clear categories: %w", err)
		}
		for i, c := range categories {
			if err := upsert(tx, c, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// Upsert stores c, keyed by its key. A missing ID is generated.
func (r *Repository) Upsert(c taxonomy.Category) error {
	var position int
	if err := r.db.QueryRow(`SELECT COALESCE(MAX(position), -1) + 1 FROM categories`).Scan(&position); err != nil {
		return err
	}
	return upsert(r.db, c, position)
}

func upsert(db execer, c taxonomy.Category, position int) error {
	if c.Key == "" {
		return fmt.Errorf("category %q has no key", c.Name)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Name == "" {
		c.Name = c.Key
	}

	doc := taxonomy.CategoryToDoc(c)
	rules, err := json.Marshal(doc.Rules)
	if err != nil {
		return fmt.Errorf("failed to encode rules of %s: %w", c.Key, err)
	}
	var quick any
	if len(c.QuickKeywords) > 0 {
		data, err := json.Marshal(c.QuickKeywords)
		if err != nil {
			return err
		}
		quick = string(data)
	}

	_, err = db.Exec(`
		INSERT INTO categories (id, key, name, parent_id, color, legacy_key, title_weight, body_weight, rules, quick_keywords, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			parent_id = excluded.parent_id,
			color = excluded.color,
			legacy_key = excluded.legacy_key,
			title_weight = excluded.title_weight,
			body_weight = excluded.body_weight,
			rules = excluded.rules,
			quick_keywords = excluded.quick_keywords
	`, c.ID, c.Key, c.Name, c.ParentID, c.Color, c.LegacyKey, c.Weights.Title, c.Weights.Body,
		string(rules), quick, position)
	if err != nil {
		return fmt.Errorf("failed to store category %s: %w", c.Key, err)
	}
	return nil
}

const selectColumns = `
	SELECT id, key, name, COALESCE(parent_id, ''), COALESCE(color, ''), COALESCE(legacy_key, ''),
	       COALESCE(title_weight, 0), COALESCE(body_weight, 0), rules, quick_keywords
	FROM categories`

func (r *Repository) List() ([]taxonomy.Category, error) {
	rows, err := r.db.Query(selectColumns + ` ORDER BY position, key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []taxonomy.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *Repository) Get(key string) (*taxonomy.Category, error) {
	c, err := scanCategory(r.db.QueryRow(selectColumns+` WHERE key = ?`, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (r *Repository) Delete(key string) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE key = ?`, key)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*taxonomy.Category, error) {
	var doc taxonomy.CategoryDoc
	var weights taxonomy.WeightsDoc
	var rules string
	var quick sql.NullString
	if err := s.Scan(&doc.ID, &doc.Key, &doc.Name, &doc.ParentID, &doc.Color, &doc.LegacyKey,
		&weights.Title, &weights.Body, &rules, &quick); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rules), &doc.Rules); err != nil {
		return nil, fmt.Errorf("category %s: failed to decode rules: %w", doc.Key, err)
	}
	if quick.Valid && quick.String != "" {
		if err := json.Unmarshal([]byte(quick.String), &doc.QuickKeywords); err != nil {
			return nil, fmt.Errorf("category %s: failed to decode quick keywords: %w", doc.Key, err)
		}
	}
	if weights != (taxonomy.WeightsDoc{}) {
		doc.SectionsWeights = &weights
	}
	c := doc.Category()
	return &c, nil
}
