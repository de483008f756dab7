package db

// schema defines the lookup cache and run bookkeeping tables.
//
// lookup_cache is write-once per external id: a row records the result
// of one metadata lookup, including misses (found = 0), so reruns
// never re-ask the collaborator for a known answer.
const schema = `
CREATE TABLE IF NOT EXISTS lookup_cache (
    external_id    TEXT PRIMARY KEY,
    found          INTEGER NOT NULL DEFAULT 0,
    poster         TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    countries_json TEXT NOT NULL DEFAULT '[]',
    fetched_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS runs (
    run_id        INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    input_path    TEXT NOT NULL,
    row_count     INTEGER NOT NULL DEFAULT 0,
    unique_titles INTEGER NOT NULL DEFAULT 0,
    cell_count    INTEGER NOT NULL DEFAULT 0,
    error_count   INTEGER NOT NULL DEFAULT 0
);
`
