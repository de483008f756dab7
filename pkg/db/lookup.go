package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// CachedLookup is one stored lookup result. Found distinguishes a
// cached miss from a cached hit; both are valid cache entries.
type CachedLookup struct {
	ExternalID  string
	Found       bool
	Poster      string
	Description string
	Countries   []string
}

// GetLookup returns the cached lookup for an external id, or
// (nil, nil) on a cache miss.
func (db *DB) GetLookup(externalID string) (*CachedLookup, error) {
	row := db.QueryRow(
		"SELECT found, poster, description, countries_json FROM lookup_cache WHERE external_id = ?",
		externalID,
	)

	var found int
	var poster, description, countriesJSON string
	err := row.Scan(&found, &poster, &description, &countriesJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup cache: %w", err)
	}

	var countries []string
	if err := json.Unmarshal([]byte(countriesJSON), &countries); err != nil {
		return nil, fmt.Errorf("corrupt countries for %s: %w", externalID, err)
	}

	return &CachedLookup{
		ExternalID:  externalID,
		Found:       found != 0,
		Poster:      poster,
		Description: description,
		Countries:   countries,
	}, nil
}

// PutLookup stores a lookup result. Write-once: an existing row for
// the same external id is left untouched, which makes concurrent
// population of the same key safe and idempotent.
func (db *DB) PutLookup(lookup CachedLookup) error {
	countries := lookup.Countries
	if countries == nil {
		countries = []string{}
	}
	countriesJSON, err := json.Marshal(countries)
	if err != nil {
		return fmt.Errorf("failed to encode countries: %w", err)
	}

	foundInt := 0
	if lookup.Found {
		foundInt = 1
	}

	_, err = db.Exec(
		"INSERT OR IGNORE INTO lookup_cache (external_id, found, poster, description, countries_json) VALUES (?, ?, ?, ?, ?)",
		lookup.ExternalID, foundInt, lookup.Poster, lookup.Description, string(countriesJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to write lookup cache: %w", err)
	}
	return nil
}

// CountLookups returns the number of cached entries.
func (db *DB) CountLookups() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM lookup_cache").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lookup cache: %w", err)
	}
	return count, nil
}
