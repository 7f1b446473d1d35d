// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists saved paper records in a local SQLite
// database and exports them as CSV or BibTeX.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ubonasm/edustudy/pkg/types"
)

const dbFile = "library.db"

// Store manages the saved-paper SQLite database.
type Store struct {
	db *sql.DB
}

// SavedPaper is a PaperRecord together with its save-time provenance.
type SavedPaper struct {
	types.PaperRecord `yaml:",inline"`

	// SearchQuery is the raw query that produced the record.
	SearchQuery string `json:"search_query" yaml:"search_query"`

	// SavedAt is when the record entered the library.
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
}

// Open opens or creates the library database at
// LibraryDir/library.db, creating the schema if needed.
func Open(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LibraryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LibraryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	// Titles are unique: saving the same paper twice is a silent skip.
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS saved_papers (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL UNIQUE,
		authors TEXT NOT NULL,
		year INTEGER NOT NULL,
		abstract TEXT NOT NULL,
		venue TEXT NOT NULL,
		citation_count INTEGER NOT NULL,
		url TEXT,
		publication_date TEXT,
		search_query TEXT,
		saved_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save inserts records into the library, skipping titles already
// present. It returns the number of records actually added.
func (s *Store) Save(ctx context.Context, records []types.PaperRecord, searchQuery string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO saved_papers
		 (title, authors, year, abstract, venue, citation_count, url, publication_date, search_query, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	savedAt := time.Now().UTC().Format(time.RFC3339)
	added := 0
	for _, r := range records {
		res, err := stmt.ExecContext(ctx,
			r.Title, r.Authors, r.Year, r.Abstract, r.Venue,
			r.CitationCount, r.URL, r.PublicationDate, searchQuery, savedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", r.Title, err)
		}
		n, _ := res.RowsAffected()
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return added, nil
}

// List returns saved papers in save order. A non-empty filter keeps
// only papers whose title or abstract contains it, case-insensitively.
func (s *Store) List(ctx context.Context, filter string) ([]SavedPaper, error) {
	query := `SELECT title, authors, year, abstract, venue, citation_count,
	          url, publication_date, search_query, saved_at
	          FROM saved_papers`
	var args []any
	if filter != "" {
		query += ` WHERE lower(title || ' ' || abstract) LIKE ?`
		args = append(args, "%"+strings.ToLower(filter)+"%")
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying library: %w", err)
	}
	defer rows.Close()

	var papers []SavedPaper
	for rows.Next() {
		var p SavedPaper
		var savedAt string
		if err := rows.Scan(&p.Title, &p.Authors, &p.Year, &p.Abstract, &p.Venue,
			&p.CitationCount, &p.URL, &p.PublicationDate, &p.SearchQuery, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, savedAt); parseErr == nil {
			p.SavedAt = t
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// Count returns the number of saved papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM saved_papers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

// Clear removes all saved papers and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_papers`)
	if err != nil {
		return 0, fmt.Errorf("clearing library: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
