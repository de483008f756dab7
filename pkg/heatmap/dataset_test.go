package heatmap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDatasetWriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	ds := &Dataset{
		GeneratedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Stats:          DatasetStats{TotalRows: 10, UniqueTitles: 8},
		SentimentRange: &SentimentRange{Min: -3, Max: 4},
		Cells: []Cell{
			{Bucket: 90, Word: "man", AverageViews: 100, Movies: []Movie{
				movie("Good Man", 100, "tt1", "man"),
			}},
		},
	}

	if err := WriteDataset(path, ds); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}
	loaded, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	if !loaded.GeneratedAt.Equal(ds.GeneratedAt) {
		t.Errorf("GeneratedAt = %v", loaded.GeneratedAt)
	}
	if loaded.SentimentRange == nil || loaded.SentimentRange.Max != 4 {
		t.Errorf("SentimentRange = %+v", loaded.SentimentRange)
	}
	if len(loaded.Cells) != 1 || loaded.Cells[0].Word != "man" {
		t.Fatalf("Cells = %+v", loaded.Cells)
	}
	if loaded.Cells[0].Movies[0].ID != "tt1" {
		t.Errorf("movie ID = %q", loaded.Cells[0].Movies[0].ID)
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing artifact")
	}
}

func TestLoadDatasetMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadDataset(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
