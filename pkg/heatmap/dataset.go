package heatmap

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Dataset is the build artifact the query commands read back: the full
// cell grid plus the sentiment range that scales the legend.
type Dataset struct {
	GeneratedAt    time.Time       `json:"generated_at"`
	Stats          DatasetStats    `json:"stats"`
	SentimentRange *SentimentRange `json:"sentiment_range,omitempty"`
	Cells          []Cell          `json:"cells"`
}

// DatasetStats summarizes the build that produced the dataset.
type DatasetStats struct {
	TotalRows     int `json:"total_rows"`
	RowErrors     int `json:"row_errors"`
	MatchedTitles int `json:"matched_titles"`
	UniqueTitles  int `json:"unique_titles"`
	LookupErrors  int `json:"lookup_errors"`
}

// SentimentRange is the observed score extremes across all scored
// text, used to map raw scores onto legend percentages.
type SentimentRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// WriteDataset saves the artifact as indented JSON.
func WriteDataset(path string, ds *Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

// LoadDataset reads an artifact written by WriteDataset.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return &ds, nil
}
