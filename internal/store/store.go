// Package store provides SQLite-backed persistence for sources, the
// interest profile, the scored article pool and small key-value state such
// as the theme trend history.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"signal/internal/core"
	"signal/internal/profile"
)

// Store wraps the SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "signal.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	sourcesTable := `
	CREATE TABLE IF NOT EXISTS sources (
		url TEXT PRIMARY KEY,
		name TEXT,
		category TEXT,
		priority INTEGER,
		credibility REAL,
		digest_type TEXT,
		enabled INTEGER
	);`

	articlesTable := `
	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		url TEXT,
		data TEXT,
		relevance_score REAL,
		scored_at DATETIME
	);`

	kvTable := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB,
		updated_at DATETIME
	);`

	for _, table := range []string{sourcesTable, articlesTable, kvTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSources replaces the stored source list.
func (s *Store) SaveSources(sources []core.Source) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sources"); err != nil {
		return fmt.Errorf("failed to clear sources: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO sources (url, name, category, priority, credibility, digest_type, enabled)
	VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, src := range sources {
		enabled := 0
		if src.Enabled {
			enabled = 1
		}
		if _, err := stmt.Exec(src.URL, src.Name, src.Category, src.Priority, src.Credibility, string(src.DigestType), enabled); err != nil {
			return fmt.Errorf("failed to insert source %q: %w", src.Name, err)
		}
	}
	return tx.Commit()
}

// LoadSources returns the stored source list, empty when none saved yet.
func (s *Store) LoadSources() ([]core.Source, error) {
	rows, err := s.db.Query(`
	SELECT url, name, category, priority, credibility, digest_type, enabled
	FROM sources ORDER BY category, priority, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	var sources []core.Source
	for rows.Next() {
		var src core.Source
		var digestType string
		var enabled int
		if err := rows.Scan(&src.URL, &src.Name, &src.Category, &src.Priority, &src.Credibility, &digestType, &enabled); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		src.DigestType = core.DigestType(digestType)
		src.Enabled = enabled != 0
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// SaveArticles replaces the stored scored-article pool. Articles are stored
// as JSON blobs: the pool is recomputed wholesale every refresh, so there is
// nothing to query column-by-column.
func (s *Store) SaveArticles(articles []core.Article) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM articles"); err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO articles (id, url, data, relevance_score, scored_at)
	VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, a := range articles {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal article %q: %w", a.ID, err)
		}
		if _, err := stmt.Exec(a.ID, a.URL, string(data), a.RelevanceScore, now); err != nil {
			return fmt.Errorf("failed to insert article %q: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// LoadArticles returns the stored pool ordered by relevance descending.
func (s *Store) LoadArticles() ([]core.Article, error) {
	rows, err := s.db.Query("SELECT data FROM articles ORDER BY relevance_score DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []core.Article
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		var a core.Article
		if err := json.Unmarshal([]byte(data), &a); err != nil {
			// A corrupt row is skipped, not fatal.
			continue
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// SaveProfile stores the interest profile as a single JSON document.
func (s *Store) SaveProfile(p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return s.SetKV("profile", data)
}

// LoadProfile returns the stored profile, or nil when none saved yet.
func (s *Store) LoadProfile() (*profile.Profile, error) {
	data, err := s.GetKV("profile")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &p, nil
}

// GetKV reads a key-value entry. A missing key returns nil, nil.
func (s *Store) GetKV(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read kv %q: %w", key, err)
	}
	return value, nil
}

// SetKV writes a key-value entry.
func (s *Store) SetKV(key string, value []byte) error {
	_, err := s.db.Exec(`
	INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write kv %q: %w", key, err)
	}
	return nil
}
