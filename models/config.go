// Package models defines the configuration and data structures shared
// across the pipeline.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CategoryDefinition names a fixed set of canonical vocabulary words
// grouped for higher-level aggregation. Categories are configuration,
// never derived from data; a word may belong to any number of them.
type CategoryDefinition struct {
	Name  string   `yaml:"name" json:"name"`
	Words []string `yaml:"words" json:"words"`
}

// Contains reports whether word is a member of the category.
func (c CategoryDefinition) Contains(word string) bool {
	for _, w := range c.Words {
		if w == word {
			return true
		}
	}
	return false
}

// BucketRange describes the fixed runtime-bucket axis of the heatmap.
type BucketRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether bucket lies on the configured axis. A zero
// Max means no axis was configured and nothing is excluded.
func (b BucketRange) Contains(bucket int) bool {
	if b.Max == 0 {
		return true
	}
	return bucket >= b.Min && bucket <= b.Max
}

// EnrichmentConfig tunes the external lookup phase.
type EnrichmentConfig struct {
	Workers        int           `yaml:"workers"`
	RequestsPerSec float64       `yaml:"requests_per_sec"`
	Timeout        time.Duration `yaml:"timeout"`
}

// Config is the full pipeline configuration loaded from words.yaml.
// The vocabulary and categories are constants of the system, supplied
// here rather than computed from the dataset.
type Config struct {
	Vocabulary []string             `yaml:"vocabulary"`
	Categories []CategoryDefinition `yaml:"categories"`
	Buckets    BucketRange          `yaml:"buckets"`
	Enrichment EnrichmentConfig     `yaml:"enrichment"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

// Validate checks the structural requirements the pipeline depends on.
func (c *Config) Validate() error {
	if len(c.Vocabulary) == 0 {
		return fmt.Errorf("config has no vocabulary words")
	}
	seen := make(map[string]bool, len(c.Vocabulary))
	for _, w := range c.Vocabulary {
		if seen[w] {
			return fmt.Errorf("duplicate vocabulary word: %q", w)
		}
		seen[w] = true
	}
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		for _, w := range cat.Words {
			if !seen[w] {
				return fmt.Errorf("category %q references unknown word %q", cat.Name, w)
			}
		}
	}
	if c.Buckets.Min < 0 || c.Buckets.Max < c.Buckets.Min {
		return fmt.Errorf("invalid bucket range [%d, %d]", c.Buckets.Min, c.Buckets.Max)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Buckets.Max == 0 {
		c.Buckets.Min = 20
		c.Buckets.Max = 190
	}
	if c.Enrichment.Workers <= 0 {
		c.Enrichment.Workers = 4
	}
	if c.Enrichment.RequestsPerSec <= 0 {
		c.Enrichment.RequestsPerSec = 40
	}
	if c.Enrichment.Timeout <= 0 {
		c.Enrichment.Timeout = 10 * time.Second
	}
}

// CategoriesForWord returns the names of every category the word
// belongs to, in config order.
func (c *Config) CategoriesForWord(word string) []string {
	var names []string
	for _, cat := range c.Categories {
		if cat.Contains(word) {
			names = append(names, cat.Name)
		}
	}
	return names
}

// Category looks up a category definition by name.
func (c *Config) Category(name string) (CategoryDefinition, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return CategoryDefinition{}, false
}
