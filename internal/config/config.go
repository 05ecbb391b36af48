// Package config loads the matcher tunables from a JSON file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/keywords"
	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// EnvPrefix prefixes every environment override, e.g. JOBMATCH_SKILL_WEIGHT.
const EnvPrefix = "JOBMATCH_"

var validate = validator.New()

// Config holds the tunable parameters of the matching engine.
// All fields are optional in a config file; zero values take the defaults.
type Config struct {
	// Scoring
	SkillWeight   float64 `json:"skill_weight,omitempty" env:"SKILL_WEIGHT" validate:"gte=0,lte=1"`
	KeywordWeight float64 `json:"keyword_weight,omitempty" env:"KEYWORD_WEIGHT" validate:"gte=0,lte=1"`

	// Extraction
	Boost              float64 `json:"boost,omitempty" env:"BOOST" validate:"gte=0"`
	KeywordLimit       int     `json:"keyword_limit,omitempty" env:"KEYWORD_LIMIT" validate:"gte=0,lte=200"`
	MinBigramFrequency int     `json:"min_bigram_frequency,omitempty" env:"MIN_BIGRAM_FREQUENCY" validate:"gte=0"`
	CacheEntries       int     `json:"cache_entries,omitempty" env:"CACHE_ENTRIES" validate:"gte=0"`
	Vocabulary         string  `json:"vocabulary,omitempty" env:"VOCABULARY"` // Path to a vocabulary YAML file

	// Ranking
	Workers int `json:"workers,omitempty" env:"WORKERS" validate:"gte=0"`

	// Behavior
	InferSkills bool `json:"infer_skills,omitempty" env:"INFER_SKILLS"` // Fill empty posting skills from keywords
	UseBrowser  bool `json:"use_browser,omitempty" env:"USE_BROWSER"`   // Render short posting pages in headless Chrome
	Verbose     bool `json:"verbose,omitempty" env:"VERBOSE"`           // Debug logging
}

// Default returns the default engine parameters.
func Default() Config {
	opts := keywords.DefaultOptions()
	return Config{
		SkillWeight:        matching.DefaultSkillWeight,
		KeywordWeight:      matching.DefaultKeywordWeight,
		Boost:              opts.Boost,
		KeywordLimit:       types.DefaultKeywordLimit,
		MinBigramFrequency: opts.MinBigramFrequency,
		CacheEntries:       keywords.DefaultCacheEntries,
	}
}

// Load builds the effective configuration: defaults, overlaid by the JSON
// file at path (when path is not empty), overlaid by JOBMATCH_* variables.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		fromFile, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = *fromFile
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg = cfg.MergeWithDefaults(Default())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overwrites the fields whose JOBMATCH_* variable is set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Validate checks value ranges, that the weights sum to 1, and that a
// configured vocabulary file exists.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Weights().Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// Bool fields cannot distinguish unset from false, so they are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SkillWeight == 0 && result.KeywordWeight == 0 {
		result.SkillWeight = defaults.SkillWeight
		result.KeywordWeight = defaults.KeywordWeight
	}
	if result.Boost == 0 {
		result.Boost = defaults.Boost
	}
	if result.KeywordLimit == 0 {
		result.KeywordLimit = defaults.KeywordLimit
	}
	if result.MinBigramFrequency == 0 {
		result.MinBigramFrequency = defaults.MinBigramFrequency
	}
	if result.CacheEntries == 0 {
		result.CacheEntries = defaults.CacheEntries
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}

	return result
}

// Weights returns the scoring weights.
func (c *Config) Weights() matching.Weights {
	return matching.Weights{Skill: c.SkillWeight, Keyword: c.KeywordWeight}
}

// ExtractorOptions returns the keyword extraction parameters.
func (c *Config) ExtractorOptions() keywords.Options {
	return keywords.Options{
		Boost:              c.Boost,
		Limit:              c.KeywordLimit,
		MinBigramFrequency: c.MinBigramFrequency,
	}
}

// RankingOptions returns the ranker parameters.
func (c *Config) RankingOptions() ranking.Options {
	return ranking.Options{Workers: c.Workers}
}

// LoadVocabulary returns the configured vocabulary, or the embedded default.
func (c *Config) LoadVocabulary() (*vocabulary.Vocabulary, error) {
	if c.Vocabulary == "" {
		return vocabulary.Default(), nil
	}
	return vocabulary.LoadFile(c.Vocabulary)
}
