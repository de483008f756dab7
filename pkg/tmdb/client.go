// Package tmdb implements the metadata lookup collaborator against
// the TMDB API: resolve an IMDb-style external id to a movie or TV
// entry, then fetch its details.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// ErrNotFound reports an external id with no movie or TV match.
var ErrNotFound = errors.New("no match for external id")

// Metadata is the lookup result the pipeline consumes.
type Metadata struct {
	Poster      string
	Description string
	Countries   []string
}

type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewClient builds a Client with an explicit per-request timeout.
func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
		token:   token,
	}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(token string, timeout time.Duration, baseURL string) *Client {
	c := NewClient(token, timeout)
	c.baseURL = baseURL
	return c
}

type findResponse struct {
	MovieResults []struct {
		ID int64 `json:"id"`
	} `json:"movie_results"`
	TVResults []struct {
		ID int64 `json:"id"`
	} `json:"tv_results"`
}

type detailsResponse struct {
	PosterPath          string `json:"poster_path"`
	Overview            string `json:"overview"`
	ProductionCountries []struct {
		ISO  string `json:"iso_3166_1"`
		Name string `json:"name"`
	} `json:"production_countries"`
}

// Lookup resolves an external id to metadata. Movie results win over
// TV results when both exist; ErrNotFound when neither does.
func (c *Client) Lookup(ctx context.Context, externalID string) (*Metadata, error) {
	var find findResponse
	findURL := fmt.Sprintf("%s/find/%s?external_source=imdb_id", c.baseURL, externalID)
	if err := c.getJSON(ctx, findURL, &find); err != nil {
		return nil, fmt.Errorf("find request for %s: %w", externalID, err)
	}

	var mediaType string
	var id int64
	switch {
	case len(find.MovieResults) > 0:
		mediaType = "movie"
		id = find.MovieResults[0].ID
	case len(find.TVResults) > 0:
		mediaType = "tv"
		id = find.TVResults[0].ID
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, externalID)
	}

	var details detailsResponse
	detailsURL := fmt.Sprintf("%s/%s/%d", c.baseURL, mediaType, id)
	if err := c.getJSON(ctx, detailsURL, &details); err != nil {
		return nil, fmt.Errorf("details request for %s: %w", externalID, err)
	}

	countries := make([]string, 0, len(details.ProductionCountries))
	for _, pc := range details.ProductionCountries {
		countries = append(countries, pc.ISO)
	}

	return &Metadata{
		Poster:      details.PosterPath,
		Description: details.Overview,
		Countries:   countries,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
