package models

// TitleRecord is one validated input row. Parsing happens once at load
// time; records are never mutated after that.
type TitleRecord struct {
	Title      string `json:"title"`
	Runtime    int    `json:"runtime"` // minutes
	Views      int    `json:"views"`
	ExternalID string `json:"external_id"`
	Language   string `json:"language,omitempty"` // detected language of a non-English variant, if any
}

// ScoredSentence is one description sentence with its sentiment score.
type ScoredSentence struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Metadata holds the optional fields attached by the external lookup.
// A failed or empty lookup leaves the zero value; the record still
// flows through aggregation.
type Metadata struct {
	Found                bool             `json:"found"`
	Poster               string           `json:"poster,omitempty"`
	Sentences            []ScoredSentence `json:"sentences,omitempty"`
	TitleSentiment       float64          `json:"title_sentiment"`
	DescriptionSentiment float64          `json:"description_sentiment"`
	OverallSentiment     float64          `json:"overall_sentiment"`
	Countries            []string         `json:"countries,omitempty"`
}

// EnrichedRecord pairs an input row with its lookup metadata.
type EnrichedRecord struct {
	TitleRecord
	Metadata Metadata `json:"metadata"`
}
