// Package enrich attaches external metadata and sentiment scores to
// title records, tracking the corpus-wide sentiment range as it goes.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"titleheat/models"
	"titleheat/pkg/db"
	"titleheat/pkg/sentiment"
	"titleheat/pkg/tmdb"
	"titleheat/pkg/words"
)

// Lookup is the external metadata collaborator.
type Lookup interface {
	Lookup(ctx context.Context, externalID string) (*tmdb.Metadata, error)
}

// Cache stores lookup results once per external id.
type Cache interface {
	GetLookup(externalID string) (*db.CachedLookup, error)
	PutLookup(lookup db.CachedLookup) error
}

// LookupError records one failed lookup. The affected record still
// proceeds to aggregation with empty metadata.
type LookupError struct {
	ExternalID string `json:"external_id"`
	Message    string `json:"message"`
}

// Result carries the enriched records in input order, the observed
// sentiment range and whatever went wrong along the way.
type Result struct {
	Records      []models.EnrichedRecord
	Range        sentiment.Range
	LookupErrors []LookupError
	CacheHits    int
	Fetched      int
	Missing      int
}

// Enricher runs the lookup-and-score phase. Lookup and Cache may be
// nil: without a Lookup every record degrades to empty metadata,
// without a Cache every id is fetched fresh.
type Enricher struct {
	Lookup  Lookup
	Cache   Cache
	Scorer  sentiment.Scorer
	Logger  *slog.Logger
	Workers int
	Limiter *rate.Limiter
}

type job struct {
	index int
	id    string
}

type outcome struct {
	index  int
	cached bool
	data   *db.CachedLookup // nil when the lookup failed outright
	err    error
}

// Enrich resolves metadata for every record, scores sentiment on what
// was found, and returns new enriched records without touching the
// input. Input should already be deduplicated by title; Enrich is
// idempotent per external id either way.
func (e *Enricher) Enrich(ctx context.Context, records []models.TitleRecord) (*Result, error) {
	if e.Scorer == nil {
		return nil, fmt.Errorf("enricher has no sentiment scorer")
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lookups := make([]*db.CachedLookup, len(records))
	result := &Result{}

	if e.Lookup != nil {
		workers := e.Workers
		if workers <= 0 {
			workers = 4
		}

		jobs := make(chan job, len(records))
		outcomes := make(chan outcome, len(records))

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go e.worker(ctx, logger, &wg, jobs, outcomes)
		}

		queued := 0
		for i, rec := range records {
			if rec.ExternalID == "" {
				continue
			}
			jobs <- job{index: i, id: rec.ExternalID}
			queued++
		}
		close(jobs)
		wg.Wait()
		close(outcomes)

		for out := range outcomes {
			if out.err != nil {
				result.LookupErrors = append(result.LookupErrors, LookupError{
					ExternalID: records[out.index].ExternalID,
					Message:    out.err.Error(),
				})
				continue
			}
			lookups[out.index] = out.data
			if out.cached {
				result.CacheHits++
			} else {
				result.Fetched++
			}
		}
		logger.Info("enrichment lookups finished",
			"queued", queued, "cache_hits", result.CacheHits,
			"fetched", result.Fetched, "failed", len(result.LookupErrors))
	}

	result.Records = make([]models.EnrichedRecord, len(records))
	for i, rec := range records {
		result.Records[i] = models.EnrichedRecord{
			TitleRecord: rec,
			Metadata:    e.score(lookups[i], rec.Title, &result.Range),
		}
		if !result.Records[i].Metadata.Found {
			result.Missing++
		}
	}
	return result, nil
}

// worker drains jobs, answering from cache before going to the
// collaborator. A single failed lookup never stops the batch.
func (e *Enricher) worker(ctx context.Context, logger *slog.Logger, wg *sync.WaitGroup, jobs <-chan job, outcomes chan<- outcome) {
	defer wg.Done()
	for j := range jobs {
		if e.Cache != nil {
			cached, err := e.Cache.GetLookup(j.id)
			if err != nil {
				logger.Warn("cache read failed, fetching fresh", "external_id", j.id, "error", err)
			} else if cached != nil {
				outcomes <- outcome{index: j.index, cached: true, data: cached}
				continue
			}
		}

		if e.Limiter != nil {
			if err := e.Limiter.Wait(ctx); err != nil {
				outcomes <- outcome{index: j.index, err: err}
				continue
			}
		}

		meta, err := e.Lookup.Lookup(ctx, j.id)
		var entry db.CachedLookup
		switch {
		case errors.Is(err, tmdb.ErrNotFound):
			entry = db.CachedLookup{ExternalID: j.id}
		case err != nil:
			logger.Warn("lookup failed", "external_id", j.id, "error", err)
			outcomes <- outcome{index: j.index, err: err}
			continue
		default:
			entry = db.CachedLookup{
				ExternalID:  j.id,
				Found:       true,
				Poster:      meta.Poster,
				Description: meta.Description,
				Countries:   meta.Countries,
			}
		}

		// Definitive answers are cached, including misses; transient
		// failures above are not, so the next run retries them.
		if e.Cache != nil {
			if err := e.Cache.PutLookup(entry); err != nil {
				logger.Warn("cache write failed", "external_id", j.id, "error", err)
			}
		}
		outcomes <- outcome{index: j.index, data: &entry}
	}
}

// score turns a lookup payload into scored metadata. Every segment and
// title score feeds the shared range; empty payloads contribute
// nothing.
func (e *Enricher) score(lookup *db.CachedLookup, title string, r *sentiment.Range) models.Metadata {
	if lookup == nil || !lookup.Found {
		return models.Metadata{}
	}

	titleScore := e.Scorer.Score(words.EnglishTitle(title))
	r.Observe(titleScore)

	segments := sentiment.SplitSentences(lookup.Description)
	sentences := make([]models.ScoredSentence, 0, len(segments))
	var segmentTotal float64
	for _, segment := range segments {
		score := e.Scorer.Score(segment)
		r.Observe(score)
		segmentTotal += score
		sentences = append(sentences, models.ScoredSentence{Text: segment, Score: score})
	}

	var descriptionScore float64
	if len(sentences) > 0 {
		descriptionScore = segmentTotal / float64(len(sentences))
	}

	return models.Metadata{
		Found:                true,
		Poster:               lookup.Poster,
		Sentences:            sentences,
		TitleSentiment:       titleScore,
		DescriptionSentiment: descriptionScore,
		OverallSentiment:     (titleScore + descriptionScore) / 2,
		Countries:            lookup.Countries,
	}
}
