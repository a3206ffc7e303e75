package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_fts5=true")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (db *DB) WithTx(fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sources (
		id INTEGER PRIMARY KEY,
		url TEXT NOT NULL UNIQUE,
		name TEXT,
		feed_url TEXT,
		last_fetched DATETIME,
		active BOOLEAN DEFAULT TRUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY,
		source_id INTEGER REFERENCES sources(id),
		external_id TEXT UNIQUE,
		url TEXT NOT NULL UNIQUE,
		headline TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT '',
		publisher TEXT NOT NULL DEFAULT '',
		published_at DATETIME,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		legacy_scores TEXT
	);

	CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		parent_id TEXT,
		color TEXT,
		legacy_key TEXT,
		title_weight REAL DEFAULT 0,
		body_weight REAL DEFAULT 0,
		rules TEXT NOT NULL DEFAULT '[]',
		quick_keywords TEXT,
		position INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS classifications (
		article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
		category_key TEXT NOT NULL,
		score REAL,
		scored_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (article_id, category_key)
	);

	CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source_id);
	CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at);
	CREATE INDEX IF NOT EXISTS idx_classifications_category ON classifications(category_key, score DESC);

	CREATE VIRTUAL TABLE IF NOT EXISTS articles_fts USING fts5(
		title,
		body
	);

	CREATE TRIGGER IF NOT EXISTS articles_ai AFTER INSERT ON articles BEGIN
		INSERT INTO articles_fts(rowid, title, body) VALUES (new.id, new.title, new.body);
	END;

	CREATE TRIGGER IF NOT EXISTS articles_ad AFTER DELETE ON articles BEGIN
		DELETE FROM articles_fts WHERE rowid = old.id;
	END;

	CREATE TRIGGER IF NOT EXISTS articles_au AFTER UPDATE ON articles BEGIN
		DELETE FROM articles_fts WHERE rowid = old.id;
		INSERT INTO articles_fts(rowid, title, body) VALUES (new.id, new.title, new.body);
	END;
	`

	_, err := db.conn.Exec(schema)
	return err
}
