package build

// Stats provides summary statistics for one build run.
type Stats struct {
	TotalRows        int     `json:"total_rows"`
	RowErrors        int     `json:"row_errors"`
	MatchedTitles    int     `json:"matched_titles"`
	UniqueTitles     int     `json:"unique_titles"`
	Cells            int     `json:"cells"`
	CacheHits        int     `json:"cache_hits"`
	Fetched          int     `json:"fetched"`
	Missing          int     `json:"missing"`
	LookupErrors     int     `json:"lookup_errors"`
	TotalTimeSeconds float64 `json:"total_time_seconds"`
}

// FinalOutput is the structured stdout output for the build command.
type FinalOutput struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset"`
	RunID   int64  `json:"run_id,omitempty"`
	Stats   Stats  `json:"stats"`
}
