// Package storage keeps an SQLite index of the MEP datasets for
// load-once, query-many serving.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/euncover/euncover/internal/dataset"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Metadata keys.
const (
	metaFingerprint = "fingerprint"
	metaBuiltAt     = "built_at"
)

// ErrNotBuilt is returned when the index has never been rebuilt.
var ErrNotBuilt = errors.New("catalog index has not been built")

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// OpenExisting opens an index that must already exist on disk.
// A missing file is reported as dataset.ErrMissing.
func OpenExisting(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &dataset.LoadError{Path: path, Kind: dataset.ErrMissing, Err: err}
	}
	return OpenDB(path)
}

// OpenBuilt opens an index that a rebuild has populated. A missing file is
// reported as dataset.ErrMissing and an empty index as ErrNotBuilt.
func OpenBuilt(ctx context.Context, path string) (*DB, error) {
	db, err := OpenExisting(path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Fingerprint(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Biographies in table order; position keeps "first match" semantics
		CREATE TABLE IF NOT EXISTS biographies (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			country TEXT,
			party TEXT,
			eu_group TEXT,
			committees_json TEXT NOT NULL,
			delegations_json TEXT NOT NULL,
			wikipedia_url TEXT,
			list_error TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_biographies_name ON biographies(name);

		CREATE TABLE IF NOT EXISTS declarations (
			name TEXT PRIMARY KEY,
			declaration_json TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS networks (
			name TEXT PRIMARY KEY,
			network_json TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS articles (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			title TEXT NOT NULL,
			link TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_name ON articles(name);

		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildCounts reports how many records each table received.
type RebuildCounts struct {
	Biographies  int `json:"biographies"`
	Declarations int `json:"declarations"`
	Networks     int `json:"networks"`
	Articles     int `json:"articles"`
}

// Rebuild replaces the index contents with snap and records fingerprint.
func (d *DB) Rebuild(ctx context.Context, snap *dataset.Snapshot, fingerprint string) (RebuildCounts, error) {
	var counts RebuildCounts

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"biographies", "declarations", "networks", "articles", "metadata"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return counts, fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	for i, row := range snap.Biographies {
		committees, err := json.Marshal(nonNil(row.Committees))
		if err != nil {
			return counts, fmt.Errorf("marshaling committees for %s: %w", row.FullName, err)
		}
		delegations, err := json.Marshal(nonNil(row.Delegations))
		if err != nil {
			return counts, fmt.Errorf("marshaling delegations for %s: %w", row.FullName, err)
		}
		var listErr sql.NullString
		if row.Err != nil {
			listErr = sql.NullString{String: row.Err.Error(), Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO biographies (position, name, country, party, eu_group,
				committees_json, delegations_json, wikipedia_url, list_error)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, row.FullName, row.Country, row.Party, row.EUGroup,
			string(committees), string(delegations), row.WikipediaURL, listErr,
		)
		if err != nil {
			return counts, fmt.Errorf("inserting biography %s: %w", row.FullName, err)
		}
		counts.Biographies++
	}

	for _, name := range dataset.SortedKeys(snap.Declarations) {
		data, err := json.Marshal(snap.Declarations[name])
		if err != nil {
			return counts, fmt.Errorf("marshaling declaration for %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO declarations (name, declaration_json) VALUES (?, ?)`, name, string(data)); err != nil {
			return counts, fmt.Errorf("inserting declaration %s: %w", name, err)
		}
		counts.Declarations++
	}

	for _, name := range dataset.SortedKeys(snap.Networks) {
		data, err := json.Marshal(snap.Networks[name])
		if err != nil {
			return counts, fmt.Errorf("marshaling network for %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO networks (name, network_json) VALUES (?, ?)`, name, string(data)); err != nil {
			return counts, fmt.Errorf("inserting network %s: %w", name, err)
		}
		counts.Networks++
	}

	for i, a := range snap.Articles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (position, name, title, link) VALUES (?, ?, ?, ?)`,
			i, a.FullName, a.Title, a.Link); err != nil {
			return counts, fmt.Errorf("inserting article %d: %w", i, err)
		}
		counts.Articles++
	}

	meta := map[string]string{
		metaFingerprint: fingerprint,
		metaBuiltAt:     time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES (?, ?)`, k, v); err != nil {
			return counts, fmt.Errorf("writing metadata %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return counts, fmt.Errorf("committing rebuild: %w", err)
	}
	return counts, nil
}

// Fingerprint returns the fixture fingerprint recorded by the last rebuild.
func (d *DB) Fingerprint(ctx context.Context) (string, error) {
	var value string
	err := d.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, metaFingerprint).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotBuilt
	}
	if err != nil {
		return "", fmt.Errorf("reading fingerprint: %w", err)
	}
	return value, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
