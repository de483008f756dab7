package enrich

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"titleheat/models"
	"titleheat/pkg/db"
	"titleheat/pkg/tmdb"
)

// stubScorer counts "good" as +1 and "bad" as -1 per occurrence.
type stubScorer struct{}

func (stubScorer) Score(text string) float64 {
	var score float64
	for _, field := range strings.Fields(strings.ToLower(text)) {
		switch strings.Trim(field, ".!?,") {
		case "good":
			score++
		case "bad":
			score--
		}
	}
	return score
}

type fakeLookup struct {
	mu    sync.Mutex
	calls map[string]int
	meta  map[string]*tmdb.Metadata
	fail  map[string]bool
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		calls: make(map[string]int),
		meta:  make(map[string]*tmdb.Metadata),
		fail:  make(map[string]bool),
	}
}

func (f *fakeLookup) Lookup(_ context.Context, externalID string) (*tmdb.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[externalID]++
	if f.fail[externalID] {
		return nil, fmt.Errorf("lookup exploded for %s", externalID)
	}
	if meta, ok := f.meta[externalID]; ok {
		return meta, nil
	}
	return nil, tmdb.ErrNotFound
}

func TestEnrichAttachesAndScoresMetadata(t *testing.T) {
	lookup := newFakeLookup()
	lookup.meta["tt1"] = &tmdb.Metadata{
		Poster:      "/p.jpg",
		Description: "Good good. Bad.",
		Countries:   []string{"US"},
	}

	enricher := &Enricher{Lookup: lookup, Scorer: stubScorer{}}
	result, err := enricher.Enrich(context.Background(), []models.TitleRecord{
		{Title: "The Good Man", ExternalID: "tt1", Views: 100, Runtime: 90},
	})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}

	meta := result.Records[0].Metadata
	if !meta.Found {
		t.Fatal("metadata should be marked found")
	}
	if meta.Poster != "/p.jpg" {
		t.Errorf("poster = %q", meta.Poster)
	}
	if len(meta.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(meta.Sentences))
	}
	// title "The Good Man" scores +1; segments score +2 and -1.
	if meta.TitleSentiment != 1 {
		t.Errorf("title sentiment = %v, want 1", meta.TitleSentiment)
	}
	if meta.DescriptionSentiment != 0.5 {
		t.Errorf("description sentiment = %v, want 0.5", meta.DescriptionSentiment)
	}
	if meta.OverallSentiment != 0.75 {
		t.Errorf("overall sentiment = %v, want 0.75", meta.OverallSentiment)
	}
	// Range spans every scored value: segments +2 and -1, title +1.
	if result.Range.Min != -1 || result.Range.Max != 2 {
		t.Errorf("range = [%v, %v], want [-1, 2]", result.Range.Min, result.Range.Max)
	}
}

func TestEnrichToleratesPartialFailure(t *testing.T) {
	lookup := newFakeLookup()
	lookup.meta["tt1"] = &tmdb.Metadata{Description: "Good."}
	lookup.fail["tt2"] = true
	lookup.meta["tt3"] = &tmdb.Metadata{Description: "Bad."}

	enricher := &Enricher{Lookup: lookup, Scorer: stubScorer{}}
	result, err := enricher.Enrich(context.Background(), []models.TitleRecord{
		{Title: "One", ExternalID: "tt1"},
		{Title: "Two", ExternalID: "tt2"},
		{Title: "Three", ExternalID: "tt3"},
	})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}

	if len(result.LookupErrors) != 1 || result.LookupErrors[0].ExternalID != "tt2" {
		t.Fatalf("lookup errors = %+v, want one for tt2", result.LookupErrors)
	}
	if result.Records[1].Metadata.Found {
		t.Error("failed lookup should leave empty metadata")
	}
	if !result.Records[0].Metadata.Found || !result.Records[2].Metadata.Found {
		t.Error("other records must still be enriched")
	}
	// Range still reflects every successfully scored item.
	if result.Range.Min != -1 || result.Range.Max != 1 {
		t.Errorf("range = [%v, %v], want [-1, 1]", result.Range.Min, result.Range.Max)
	}
}

func TestEnrichNotFoundIsNotAnError(t *testing.T) {
	lookup := newFakeLookup()
	enricher := &Enricher{Lookup: lookup, Scorer: stubScorer{}}

	result, err := enricher.Enrich(context.Background(), []models.TitleRecord{
		{Title: "Unknown Movie", ExternalID: "tt404"},
	})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if len(result.LookupErrors) != 0 {
		t.Errorf("not-found must not be a lookup error, got %+v", result.LookupErrors)
	}
	if result.Records[0].Metadata.Found {
		t.Error("not-found record should have empty metadata")
	}
	if result.Missing != 1 {
		t.Errorf("Missing = %d, want 1", result.Missing)
	}
}

func TestEnrichUsesCacheAcrossRuns(t *testing.T) {
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	lookup := newFakeLookup()
	lookup.meta["tt1"] = &tmdb.Metadata{Description: "Good."}

	enricher := &Enricher{Lookup: lookup, Cache: database, Scorer: stubScorer{}}
	records := []models.TitleRecord{
		{Title: "One", ExternalID: "tt1"},
		{Title: "Gone", ExternalID: "tt404"}, // miss, cached too
	}

	first, err := enricher.Enrich(context.Background(), records)
	if err != nil {
		t.Fatalf("first Enrich failed: %v", err)
	}
	if first.Fetched != 2 || first.CacheHits != 0 {
		t.Errorf("first run fetched=%d hits=%d, want 2/0", first.Fetched, first.CacheHits)
	}

	second, err := enricher.Enrich(context.Background(), records)
	if err != nil {
		t.Fatalf("second Enrich failed: %v", err)
	}
	if second.Fetched != 0 || second.CacheHits != 2 {
		t.Errorf("second run fetched=%d hits=%d, want 0/2", second.Fetched, second.CacheHits)
	}
	if lookup.calls["tt1"] != 1 || lookup.calls["tt404"] != 1 {
		t.Errorf("collaborator called more than once per id: %+v", lookup.calls)
	}

	// Cached and fresh runs must score identically.
	if second.Range != first.Range {
		t.Errorf("range differs between runs: %+v vs %+v", second.Range, first.Range)
	}
	if second.Records[0].Metadata.DescriptionSentiment != first.Records[0].Metadata.DescriptionSentiment {
		t.Error("cached run scored differently")
	}
}

func TestEnrichWithoutLookup(t *testing.T) {
	enricher := &Enricher{Scorer: stubScorer{}}
	result, err := enricher.Enrich(context.Background(), []models.TitleRecord{
		{Title: "Anything", ExternalID: "tt1", Views: 10},
	})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if result.Records[0].Metadata.Found {
		t.Error("no collaborator means empty metadata")
	}
	if !result.Range.Empty() {
		t.Error("nothing scored, range must stay empty")
	}
	if result.Records[0].Views != 10 {
		t.Error("record fields must carry through untouched")
	}
}

func TestEnrichSkipsEmptyExternalID(t *testing.T) {
	lookup := newFakeLookup()
	enricher := &Enricher{Lookup: lookup, Scorer: stubScorer{}}

	result, err := enricher.Enrich(context.Background(), []models.TitleRecord{
		{Title: "No ID Here"},
	})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if len(lookup.calls) != 0 {
		t.Errorf("collaborator should not be called for empty ids: %+v", lookup.calls)
	}
	if result.Records[0].Metadata.Found {
		t.Error("record without id gets empty metadata")
	}
}
