// Package query implements the read side: the cells, category and
// range commands all load a dataset artifact produced by build and
// print a JSON view of it. Nothing here mutates the artifact.
package query

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"titleheat/models"
	"titleheat/pkg/heatmap"
	"titleheat/pkg/sentiment"
	"titleheat/pkg/words"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func loadDataset(c *cli.Context, logger *slog.Logger) *heatmap.Dataset {
	path := c.String("dataset")
	ds, err := heatmap.LoadDataset(path)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "path", path)
		os.Exit(2)
	}
	return ds
}

func printJSON(logger *slog.Logger, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(data))
	return nil
}

// CellsOutput is the structured output for the cells command.
type CellsOutput struct {
	Count          int                     `json:"count"`
	SentimentRange *heatmap.SentimentRange `json:"sentiment_range,omitempty"`
	Cells          []heatmap.Cell          `json:"cells"`
}

// CellsAction prints the cell grid, optionally narrowed to one word
// row or one runtime bucket. The word filter accepts surface forms;
// "men" finds the "man" row.
func CellsAction(c *cli.Context) error {
	logger := newLogger(c)
	ds := loadDataset(c, logger)

	cells := ds.Cells
	if c.IsSet("bucket") {
		bucket := c.Int("bucket")
		var kept []heatmap.Cell
		for _, cell := range cells {
			if cell.Bucket == bucket {
				kept = append(kept, cell)
			}
		}
		cells = kept
	}
	if c.IsSet("word") {
		canonical := words.Normalize(strings.ToLower(strings.TrimSpace(c.String("word"))))
		var kept []heatmap.Cell
		for _, cell := range cells {
			if cell.Word == canonical {
				kept = append(kept, cell)
			}
		}
		cells = kept
	}

	if c.IsSet("highlight") {
		var targets []string
		for _, raw := range strings.Split(c.String("highlight"), ",") {
			if w := strings.TrimSpace(raw); w != "" {
				targets = append(targets, words.Normalize(strings.ToLower(w)))
			}
		}
		target := models.HighlightWords(targets)
		for i := range cells {
			highlightMovies(cells[i].Movies, target)
		}
	}

	// The stored range scales raw scores for the legend.
	if ds.SentimentRange != nil {
		r := sentiment.NewRange(ds.SentimentRange.Min, ds.SentimentRange.Max)
		for i := range cells {
			for j := range cells[i].Movies {
				m := &cells[i].Movies[j]
				m.SentimentPercent = r.Percent(m.OverallSentiment)
			}
		}
	}

	return printJSON(logger, CellsOutput{
		Count:          len(cells),
		SentimentRange: ds.SentimentRange,
		Cells:          cells,
	})
}

// highlightMovies rewrites movie titles in place with the matched
// words emphasised. The dataset is already a private copy loaded from
// disk.
func highlightMovies(movies []heatmap.Movie, target models.HighlightTarget) {
	if target.IsNone() {
		return
	}
	for i := range movies {
		movies[i].Title = words.HighlightTitle(movies[i].Title, target)
	}
}

// CategoryAction prints the flattened view of one named category, with
// any --priority ids pinned to the front.
func CategoryAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	name := c.String("name")
	category, ok := config.Category(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", name)
		fmt.Fprintln(os.Stderr, "Available categories:")
		for _, cat := range config.Categories {
			fmt.Fprintf(os.Stderr, "  - %s\n", cat.Name)
		}
		os.Exit(1)
	}

	var priority []string
	if c.IsSet("priority") {
		for _, raw := range strings.Split(c.String("priority"), ",") {
			if id := strings.TrimSpace(raw); id != "" {
				priority = append(priority, id)
			}
		}
	}

	ds := loadDataset(c, logger)
	view := heatmap.AggregateByCategory(ds.Cells, category, priority)
	if c.Bool("highlight") {
		highlightMovies(view.Movies, models.HighlightWords(category.Words))
	}
	return printJSON(logger, view)
}

// RangeOutput is the structured output for the range command.
type RangeOutput struct {
	Value     float64         `json:"value"`
	Tolerance float64         `json:"tolerance"`
	Count     int             `json:"count"`
	Movies    []heatmap.Movie `json:"movies"`
}

// RangeAction prints the movies from every cell whose average views
// sits within tolerance of --value. Without an explicit --tolerance
// the window is five percent of the spread of cell averages.
func RangeAction(c *cli.Context) error {
	logger := newLogger(c)
	ds := loadDataset(c, logger)

	value := c.Float64("value")
	tolerance := heatmap.DefaultTolerance(ds.Cells)
	if c.IsSet("tolerance") {
		tolerance = c.Float64("tolerance")
		if tolerance < 0 {
			fmt.Fprintln(os.Stderr, "Error: --tolerance must not be negative")
			os.Exit(1)
		}
	}

	movies := heatmap.FilterByValueRange(ds.Cells, value, tolerance)
	return printJSON(logger, RangeOutput{
		Value:     value,
		Tolerance: tolerance,
		Count:     len(movies),
		Movies:    movies,
	})
}
