package source

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julienpequegnot/tagdesk/internal/database"
)

var ErrNotFound = errors.New("source not found")

type Source struct {
	ID          int64
	URL         string
	Name        string
	FeedURL     string
	LastFetched *time.Time
	Active      bool
	CreatedAt   time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(url, name, feedURL string) (*Source, error) {
	result, err := r.db.Exec(
		`INSERT INTO sources (url, name, feed_url, active) VALUES (?, ?, ?, TRUE)`,
		url, name, feedURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Source{
		ID:      id,
		URL:     url,
		Name:    name,
		FeedURL: feedURL,
		Active:  true,
	}, nil
}

func (r *Repository) List() ([]Source, error) {
	rows, err := r.db.Query(`SELECT id, url, COALESCE(name, ''), COALESCE(feed_url, ''), last_fetched, active, created_at FROM sources WHERE active = TRUE ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var s Source
		if err := rows.Scan(&s.ID, &s.URL, &s.Name, &s.FeedURL, &s.LastFetched, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// FindOrCreate returns the source registered under url, adding it when missing.
// Imported articles use it to attach to a publisher pseudo-source.
func (r *Repository) FindOrCreate(url, name string) (*Source, error) {
	var s Source
	err := r.db.QueryRow(
		`SELECT id, url, COALESCE(name, ''), COALESCE(feed_url, ''), active FROM sources WHERE url = ?`, url,
	).Scan(&s.ID, &s.URL, &s.Name, &s.FeedURL, &s.Active)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up source: %w", err)
	}
	return r.Add(url, name, "")
}

func (r *Repository) Deactivate(id int64) error {
	result, err := r.db.Exec(`UPDATE sources SET active = FALSE WHERE id = ?`, id)
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

func (r *Repository) UpdateLastFetched(id int64) error {
	_, err := r.db.Exec(`UPDATE sources SET last_fetched = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}

func (r *Repository) SetFeedURL(id int64, feedURL string) error {
	result, err := r.db.Exec(`UPDATE sources SET feed_url = ? WHERE id = ?`, feedURL, id)
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
