// Package dataset loads the input title table and applies the
// row-level filters the pipeline depends on.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pemistahl/lingua-go"

	"titleheat/models"
	"titleheat/pkg/buckets"
	"titleheat/pkg/words"
)

// Required input columns. Their absence is the one structurally fatal
// input condition; everything else degrades per row.
var requiredColumns = []string{"Title", "Runtime", "Views", "tconst"}

// RowError records one rejected input row. The pipeline continues
// without it.
type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoadResult carries the parsed rows plus whatever was rejected.
type LoadResult struct {
	Records   []models.TitleRecord
	RowErrors []RowError
	TotalRows int
}

// Loader reads the CSV title table. The language detector is optional;
// when present, non-English title variants get tagged with their
// detected language.
type Loader struct {
	detector lingua.LanguageDetector
}

// NewLoader builds a Loader without language detection.
func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithDetection builds a Loader that tags the language of
// "//"-joined title variants.
func NewLoaderWithDetection() *Loader {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllSpokenLanguages().
		Build()
	return &Loader{detector: detector}
}

// LoadFile opens and loads a CSV file.
func (l *Loader) LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads the table from r. Malformed Runtime or Views values
// reject the row with a recorded error; a header missing any required
// column fails the whole load.
func (l *Loader) Load(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("input table missing required column %q", name)
		}
	}

	result := &LoadResult{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Field: "", Message: err.Error()})
			continue
		}
		result.TotalRows++

		record, rowErr := l.parseRow(row, columns, line)
		if rowErr != nil {
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

func (l *Loader) parseRow(row []string, columns map[string]int, line int) (models.TitleRecord, *RowError) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	title := field("Title")
	if strings.TrimSpace(title) == "" {
		return models.TitleRecord{}, &RowError{Line: line, Field: "Title", Message: "empty title"}
	}

	minutes, err := buckets.Minutes(field("Runtime"))
	if err != nil {
		return models.TitleRecord{}, &RowError{Line: line, Field: "Runtime", Message: err.Error()}
	}

	views, err := parseViews(field("Views"))
	if err != nil {
		return models.TitleRecord{}, &RowError{Line: line, Field: "Views", Message: err.Error()}
	}

	return models.TitleRecord{
		Title:      title,
		Runtime:    minutes,
		Views:      views,
		ExternalID: strings.TrimSpace(field("tconst")),
		Language:   l.variantLanguage(title),
	}, nil
}

// parseViews parses a thousands-separated numeral like "1,000,000".
func parseViews(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty views value")
	}
	views, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("bad views value %q", raw)
	}
	if views < 0 {
		return 0, fmt.Errorf("negative views value %q", raw)
	}
	return views, nil
}

// variantLanguage detects the language of the second "//"-joined title
// variant, when one exists and a detector is configured.
func (l *Loader) variantLanguage(title string) string {
	if l.detector == nil {
		return ""
	}
	_, rest, found := strings.Cut(title, "//")
	if !found || strings.TrimSpace(rest) == "" {
		return ""
	}
	lang, ok := l.detector.DetectLanguageOf(strings.TrimSpace(rest))
	if !ok {
		return ""
	}
	return lang.String()
}

// FilterByVocabulary keeps rows whose title contains at least one
// vocabulary word within the title-length cap. Done before enrichment
// so external calls are bounded by matching titles only.
func FilterByVocabulary(records []models.TitleRecord, vocab *words.Vocabulary) []models.TitleRecord {
	filtered := make([]models.TitleRecord, 0, len(records))
	for _, rec := range records {
		if len(vocab.ExtractTitleWords(rec.Title)) > 0 {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// DedupeByTitle collapses rows that normalize to the same title key.
// Highest views wins; ties keep the first-seen row. Output order
// follows first occurrence of each key.
func DedupeByTitle(records []models.TitleRecord) []models.TitleRecord {
	index := make(map[string]int, len(records))
	deduped := make([]models.TitleRecord, 0, len(records))
	for _, rec := range records {
		key := words.TitleKey(rec.Title)
		if i, seen := index[key]; seen {
			if rec.Views > deduped[i].Views {
				deduped[i] = rec
			}
			continue
		}
		index[key] = len(deduped)
		deduped = append(deduped, rec)
	}
	return deduped
}
