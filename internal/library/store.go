// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library keeps a SQLite record of every article the CLI has
// acquired, so downloads can be listed and inspected later.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-cli/pkg/types"
)

// ErrNotFound is returned by Get when no record has the given id.
var ErrNotFound = errors.New("article not in library")

const defaultLimit = 50

// timeLayout has a fixed width so acquired_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the library database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the library database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating library directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			title TEXT,
			authors TEXT,
			category TEXT,
			published TEXT,
			pdf_url TEXT,
			pdf_path TEXT,
			meta_path TEXT,
			acquired_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_acquired ON articles(acquired_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a, or replaces the existing record with the same id.
func (s *Store) Record(ctx context.Context, a types.Article) error {
	if a.ID == "" {
		return errors.New("recording article: empty id")
	}
	authorsJSON, _ := json.Marshal(a.Authors)
	acquired := a.AcquiredAt
	if acquired.IsZero() {
		acquired = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (id, url, title, authors, category, published, pdf_url, pdf_path, meta_path, acquired_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			url=excluded.url, title=excluded.title, authors=excluded.authors,
			category=excluded.category, published=excluded.published,
			pdf_url=COALESCE(NULLIF(excluded.pdf_url, ''), articles.pdf_url),
			pdf_path=COALESCE(NULLIF(excluded.pdf_path, ''), articles.pdf_path),
			meta_path=COALESCE(NULLIF(excluded.meta_path, ''), articles.meta_path),
			acquired_at=excluded.acquired_at`,
		a.ID, a.URL, a.Title, string(authorsJSON), a.Category, a.Published,
		a.PDFURL, a.PDFPath, a.MetaPath, acquired.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting article %s: %w", a.ID, err)
	}
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*types.Article, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", id, err)
	}
	return a, nil
}

const selectColumns = `SELECT id, url, title, authors, category, published, pdf_url, pdf_path, meta_path, acquired_at FROM articles`

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (*types.Article, error) {
	var (
		a                                    types.Article
		title, authorsJSON, category, pub    sql.NullString
		pdfURL, pdfPath, metaPath, acquiredS sql.NullString
	)
	if err := row.Scan(&a.ID, &a.URL, &title, &authorsJSON, &category, &pub,
		&pdfURL, &pdfPath, &metaPath, &acquiredS); err != nil {
		return nil, err
	}
	a.Title = title.String
	a.Category = category.String
	a.Published = pub.String
	a.PDFURL = pdfURL.String
	a.PDFPath = pdfPath.String
	a.MetaPath = metaPath.String
	if authorsJSON.Valid {
		json.Unmarshal([]byte(authorsJSON.String), &a.Authors)
	}
	if acquiredS.Valid {
		if t, err := time.Parse(timeLayout, acquiredS.String); err == nil {
			a.AcquiredAt = t
		}
	}
	return &a, nil
}
