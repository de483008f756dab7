package db

import "fmt"

// Run summarizes one build of the cell dataset.
type Run struct {
	InputPath    string
	RowCount     int
	UniqueTitles int
	CellCount    int
	ErrorCount   int
}

// InsertRun records a build and returns its id.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(
		"INSERT INTO runs (input_path, row_count, unique_titles, cell_count, error_count) VALUES (?, ?, ?, ?, ?)",
		run.InputPath, run.RowCount, run.UniqueTitles, run.CellCount, run.ErrorCount,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}
