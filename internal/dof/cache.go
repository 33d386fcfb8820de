package dof

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Cache stores fetched publications in an embedded sqlite database with a
// full-text index, so previously retrieved gazette content stays
// searchable offline.
type Cache struct {
	db *sql.DB
	mu sync.RWMutex
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS publications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	url TEXT UNIQUE NOT NULL,
	title TEXT NOT NULL,
	pub_date TEXT,
	doc_type TEXT,
	summary TEXT,
	content TEXT,
	fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_publications_url ON publications(url);
CREATE INDEX IF NOT EXISTS idx_publications_doc_type ON publications(doc_type);

CREATE VIRTUAL TABLE IF NOT EXISTS publications_fts USING fts5(
	title, summary, content,
	content=publications,
	content_rowid=id
);

CREATE TRIGGER IF NOT EXISTS publications_ai AFTER INSERT ON publications BEGIN
	INSERT INTO publications_fts(rowid, title, summary, content)
	VALUES (NEW.id, NEW.title, NEW.summary, NEW.content);
END;

CREATE TRIGGER IF NOT EXISTS publications_ad AFTER DELETE ON publications BEGIN
	INSERT INTO publications_fts(publications_fts, rowid, title, summary, content)
	VALUES ('delete', OLD.id, OLD.title, OLD.summary, OLD.content);
END;

CREATE TRIGGER IF NOT EXISTS publications_au AFTER UPDATE ON publications BEGIN
	INSERT INTO publications_fts(publications_fts, rowid, title, summary, content)
	VALUES ('delete', OLD.id, OLD.title, OLD.summary, OLD.content);
	INSERT INTO publications_fts(rowid, title, summary, content)
	VALUES (NEW.id, NEW.title, NEW.summary, NEW.content);
END;
`

func NewCache(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, err
	}

	cache := &Cache{db: db}
	if err := cache.initSchema(); err != nil {
		return nil, err
	}

	return cache, nil
}

func (c *Cache) initSchema() error {
	if _, err := c.db.Exec(cacheSchema); err != nil {
		return fmt.Errorf("init cache schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Upsert stores or refreshes a publication keyed by URL.
func (c *Cache) Upsert(pub *Publication) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	_, err := c.db.Exec(`
		INSERT INTO publications (url, title, pub_date, doc_type, summary, content, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			pub_date = excluded.pub_date,
			doc_type = excluded.doc_type,
			summary = excluded.summary,
			content = excluded.content,
			fetched_at = excluded.fetched_at
	`, pub.URL, pub.Title, pub.PubDate, pub.DocType, pub.Summary, pub.Content, now)

	if err != nil {
		return fmt.Errorf("upsert publication: %w", err)
	}
	return nil
}

// GetByURL returns the cached publication, or nil when absent.
func (c *Cache) GetByURL(url string) (*Publication, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pub := &Publication{}
	var fetchedAt sql.NullTime

	err := c.db.QueryRow(`
		SELECT id, url, title, pub_date, doc_type, summary, content, fetched_at
		FROM publications WHERE url = ?
	`, url).Scan(&pub.ID, &pub.URL, &pub.Title, &pub.PubDate, &pub.DocType,
		&pub.Summary, &pub.Content, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get publication: %w", err)
	}

	if fetchedAt.Valid {
		pub.FetchedAt = fetchedAt.Time
	}
	return pub, nil
}

// Search runs a full-text query over cached titles, summaries and
// content.
func (c *Cache) Search(query string, limit int) ([]Publication, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rows, err := c.db.Query(`
		SELECT p.id, p.url, p.title, p.pub_date, p.doc_type, p.summary, p.content, p.fetched_at
		FROM publications_fts f
		JOIN publications p ON p.id = f.rowid
		WHERE publications_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, ftsQuery(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}
	defer rows.Close()

	var results []Publication
	for rows.Next() {
		var pub Publication
		var fetchedAt sql.NullTime
		if err := rows.Scan(&pub.ID, &pub.URL, &pub.Title, &pub.PubDate, &pub.DocType,
			&pub.Summary, &pub.Content, &fetchedAt); err != nil {
			return nil, err
		}
		if fetchedAt.Valid {
			pub.FetchedAt = fetchedAt.Time
		}
		results = append(results, pub)
	}

	return results, rows.Err()
}

// Stats counts cached publications.
func (c *Cache) Stats() (*CacheStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := &CacheStats{}
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM publications`).Scan(&stats.Publications); err != nil {
		return nil, err
	}
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM publications WHERE content != ''`).Scan(&stats.WithContent); err != nil {
		return nil, err
	}
	return stats, nil
}

// ftsQuery quotes each term so user input cannot inject FTS5 operators.
func ftsQuery(query string) string {
	terms := strings.Fields(query)
	for i, term := range terms {
		terms[i] = `"` + strings.ReplaceAll(term, `"`, ``) + `"`
	}
	return strings.Join(terms, " ")
}
