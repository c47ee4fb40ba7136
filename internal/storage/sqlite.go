// Package storage persists reference records in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mhoffert/refstyle/internal/reference"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectFields is the standard field list for SELECT queries.
const selectFields = `key, type, title, short_title, short_title_manual,
	year, journal, venue, doi, url, abstract, notes, authors`

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS refs (
			key TEXT PRIMARY KEY,
			type TEXT,
			title TEXT NOT NULL,
			short_title TEXT,
			short_title_manual INTEGER NOT NULL DEFAULT 0,
			year TEXT,
			journal TEXT,
			venue TEXT,
			doi TEXT,
			url TEXT,
			abstract TEXT,
			notes TEXT,
			authors TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_refs_doi ON refs(doi) WHERE doi IS NOT NULL AND doi != '';
		CREATE INDEX IF NOT EXISTS idx_refs_year ON refs(year);
	`
	_, err := db.Exec(schema)
	return err
}

// Upsert inserts or replaces a record under the given citation key.
func (d *DB) Upsert(key string, rec *reference.Record) error {
	manual := 0
	if rec.ShortTitleManual {
		manual = 1
	}
	_, err := d.db.Exec(`
		INSERT OR REPLACE INTO refs (`+selectFields+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key, rec.Type, rec.Title, rec.ShortTitle, manual,
		rec.Year, rec.Journal, rec.Venue, rec.DOI, rec.URL,
		rec.Abstract, rec.Notes, rec.AuthorField,
	)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

// GetByKey returns the record stored under a citation key, or nil when
// absent.
func (d *DB) GetByKey(key string) (*reference.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectFields+` FROM refs WHERE key = ?`, key)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// GetByDOI returns the first record with the given DOI, or nil.
func (d *DB) GetByDOI(doi string) (*reference.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectFields+` FROM refs WHERE doi = ?`, doi)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// Delete removes the record stored under a citation key.
func (d *DB) Delete(key string) error {
	_, err := d.db.Exec(`DELETE FROM refs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// List returns all records ordered by citation key.
func (d *DB) List() ([]*reference.Record, error) {
	rows, err := d.db.Query(`SELECT ` + selectFields + ` FROM refs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// Search returns records whose title, authors or journal contain the
// query, case-insensitively, ordered by citation key.
func (d *DB) Search(query string) ([]*reference.Record, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := d.db.Query(`
		SELECT `+selectFields+` FROM refs
		WHERE lower(title) LIKE ? OR lower(authors) LIKE ? OR lower(journal) LIKE ?
		ORDER BY key`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// Count returns the number of stored records.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM refs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*reference.Record, error) {
	var rec reference.Record
	var manual int
	err := s.Scan(
		&rec.Key, &rec.Type, &rec.Title, &rec.ShortTitle, &manual,
		&rec.Year, &rec.Journal, &rec.Venue, &rec.DOI, &rec.URL,
		&rec.Abstract, &rec.Notes, &rec.AuthorField,
	)
	if err != nil {
		return nil, err
	}
	rec.ShortTitleManual = manual != 0

	if rec.AuthorField != "" {
		if err := rec.SetAuthors(rec.AuthorField); err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.Key, err)
		}
	}
	return &rec, nil
}

func collectRecords(rows *sql.Rows) ([]*reference.Record, error) {
	var recs []*reference.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
