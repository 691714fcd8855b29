package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/euncover/euncover/internal/dataset"
	"github.com/euncover/euncover/internal/mep"
)

var _ dataset.Catalog = (*DB)(nil)

// Biography returns the first biography row for name.
func (d *DB) Biography(ctx context.Context, name string) (mep.Biography, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT name, country, party, eu_group, committees_json, delegations_json,
			wikipedia_url, list_error
		FROM biographies WHERE name = ? ORDER BY position LIMIT 1`, name)

	var (
		bio                             mep.Biography
		committeesJSON, delegationsJSON string
		country, party, group, wiki     sql.NullString
		listErr                         sql.NullString
	)
	err := row.Scan(&bio.FullName, &country, &party, &group,
		&committeesJSON, &delegationsJSON, &wiki, &listErr)
	if errors.Is(err, sql.ErrNoRows) {
		return mep.Biography{}, fmt.Errorf("%w in biographies: %s", dataset.ErrNotFound, name)
	}
	if err != nil {
		return mep.Biography{}, fmt.Errorf("querying biography: %w", err)
	}

	bio.Country = country.String
	bio.Party = party.String
	bio.EUGroup = group.String
	bio.WikipediaURL = wiki.String
	if err := json.Unmarshal([]byte(committeesJSON), &bio.Committees); err != nil {
		return mep.Biography{}, fmt.Errorf("decoding committees: %w", err)
	}
	if err := json.Unmarshal([]byte(delegationsJSON), &bio.Delegations); err != nil {
		return mep.Biography{}, fmt.Errorf("decoding delegations: %w", err)
	}

	if listErr.Valid {
		return bio, storedListError(listErr.String)
	}
	return bio, nil
}

// Declaration returns the declaration of name.
func (d *DB) Declaration(ctx context.Context, name string) (mep.Declaration, error) {
	var decl mep.Declaration
	if err := d.getJSON(ctx, "declarations", "declaration_json", name, &decl); err != nil {
		return mep.Declaration{}, err
	}
	return decl, nil
}

// Network returns the relationship network of name.
func (d *DB) Network(ctx context.Context, name string) (mep.Network, error) {
	var n mep.Network
	if err := d.getJSON(ctx, "networks", "network_json", name, &n); err != nil {
		return mep.Network{}, err
	}
	return n, nil
}

// Articles returns the articles mentioning name in source order.
func (d *DB) Articles(ctx context.Context, name string) ([]mep.Article, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT name, title, link FROM articles WHERE name = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	articles := make([]mep.Article, 0)
	for rows.Next() {
		var a mep.Article
		if err := rows.Scan(&a.FullName, &a.Title, &a.Link); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}
	return articles, nil
}

// getJSON loads and decodes a JSON column keyed by name.
func (d *DB) getJSON(ctx context.Context, table, column, name string, v any) error {
	var data string
	err := d.db.QueryRowContext(ctx,
		`SELECT `+column+` FROM `+table+` WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w in %s: %s", dataset.ErrNotFound, table, name)
	}
	if err != nil {
		return fmt.Errorf("querying %s: %w", table, err)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decoding %s for %s: %w", table, name, err)
	}
	return nil
}

// storedListError is a list decode failure recorded at rebuild time.
type storedListError string

func (e storedListError) Error() string { return string(e) }

// Is matches mep.ErrMalformedList.
func (e storedListError) Is(target error) bool { return target == mep.ErrMalformedList }
