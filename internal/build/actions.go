package build

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"titleheat/models"
	"titleheat/pkg/dataset"
	"titleheat/pkg/db"
	"titleheat/pkg/enrich"
	"titleheat/pkg/heatmap"
	"titleheat/pkg/sentiment"
	"titleheat/pkg/tmdb"
	"titleheat/pkg/words"
)

// BuildAction runs the full pipeline: load the CSV, reduce it to the
// titles the vocabulary matches, enrich through the metadata
// collaborator, aggregate into cells and write the dataset artifact.
func BuildAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	loader := dataset.NewLoader()
	if c.Bool("detect-language") {
		loader = dataset.NewLoaderWithDetection()
	}

	inputPath := c.String("input")
	loaded, err := loader.LoadFile(inputPath)
	if err != nil {
		logger.Error("failed to load input", "error", err, "path", inputPath)
		os.Exit(2)
	}
	for _, re := range loaded.RowErrors {
		logger.Warn("row rejected", "line", re.Line, "field", re.Field, "reason", re.Message)
	}

	vocab := words.NewVocabulary(config.Vocabulary)
	matched := dataset.FilterByVocabulary(loaded.Records, vocab)
	unique := dataset.DedupeByTitle(matched)
	logger.Info("input reduced",
		"rows", loaded.TotalRows,
		"matched", len(matched),
		"unique", len(unique))

	enricher := &enrich.Enricher{
		Cache:   database,
		Scorer:  sentiment.NewLexiconScorer(),
		Logger:  logger,
		Workers: config.Enrichment.Workers,
	}
	token := c.String("tmdb-token")
	switch {
	case c.Bool("skip-enrich"):
		logger.Info("enrichment skipped")
	case token == "":
		logger.Warn("no TMDB token provided, building without metadata")
	default:
		enricher.Lookup = tmdb.NewClient(token, config.Enrichment.Timeout)
		enricher.Limiter = rate.NewLimiter(rate.Limit(config.Enrichment.RequestsPerSec), 1)
	}

	result, err := enricher.Enrich(c.Context, unique)
	if err != nil {
		logger.Error("enrichment failed", "error", err)
		os.Exit(2)
	}
	for _, le := range result.LookupErrors {
		logger.Warn("lookup failed", "external_id", le.ExternalID, "reason", le.Message)
	}

	cells := heatmap.Aggregate(result.Records, vocab, config)

	ds := &heatmap.Dataset{
		GeneratedAt: time.Now().UTC(),
		Stats: heatmap.DatasetStats{
			TotalRows:     loaded.TotalRows,
			RowErrors:     len(loaded.RowErrors),
			MatchedTitles: len(matched),
			UniqueTitles:  len(unique),
			LookupErrors:  len(result.LookupErrors),
		},
		Cells: cells,
	}
	if !result.Range.Empty() {
		ds.SentimentRange = &heatmap.SentimentRange{
			Min: result.Range.Min,
			Max: result.Range.Max,
		}
	}

	outputPath := c.String("output")
	if err := heatmap.WriteDataset(outputPath, ds); err != nil {
		logger.Error("failed to write dataset", "error", err, "path", outputPath)
		os.Exit(2)
	}

	runID, err := database.InsertRun(db.Run{
		InputPath:    inputPath,
		RowCount:     loaded.TotalRows,
		UniqueTitles: len(unique),
		CellCount:    len(cells),
		ErrorCount:   len(loaded.RowErrors) + len(result.LookupErrors),
	})
	if err != nil {
		logger.Warn("failed to record run", "error", err)
	}

	finalOutput := FinalOutput{
		Status:  "success",
		Dataset: outputPath,
		RunID:   runID,
		Stats: Stats{
			TotalRows:        loaded.TotalRows,
			RowErrors:        len(loaded.RowErrors),
			MatchedTitles:    len(matched),
			UniqueTitles:     len(unique),
			Cells:            len(cells),
			CacheHits:        result.CacheHits,
			Fetched:          result.Fetched,
			Missing:          result.Missing,
			LookupErrors:     len(result.LookupErrors),
			TotalTimeSeconds: time.Since(startTime).Seconds(),
		},
	}
	if len(result.LookupErrors) > 0 {
		finalOutput.Status = "partial_failure"
	}

	outputData, err := json.MarshalIndent(finalOutput, "", "  ")
	if err != nil {
		logger.Error("failed to marshal final output", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	if len(result.LookupErrors) > 0 {
		os.Exit(1)
	}
	return nil
}
