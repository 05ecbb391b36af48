package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/keywords"
	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/vocabulary"
)

// engine holds the components every command shares, built once from config.
type engine struct {
	cfg       config.Config
	vocab     *vocabulary.Vocabulary
	extractor *keywords.Cache
	scorer    *matching.Scorer
	ranker    *ranking.Ranker
	logger    *slog.Logger
	printer   *observability.Printer
}

var eng *engine

func newEngine(cmd *cobra.Command, path string, verboseFlag bool) (*engine, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verboseFlag {
		cfg.Verbose = true
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	vocab, err := cfg.LoadVocabulary()
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	scorer, err := matching.NewScorer(vocab, cfg.Weights())
	if err != nil {
		return nil, err
	}

	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	logger.Debug("engine ready",
		"skills", len(vocab.Skills()),
		"stop_words", vocab.StopWordCount(),
		"skill_weight", cfg.SkillWeight,
		"keyword_weight", cfg.KeywordWeight,
		"keyword_limit", cfg.KeywordLimit,
		"workers", cfg.Workers)

	return &engine{
		cfg:       cfg,
		vocab:     vocab,
		extractor: keywords.NewCache(keywords.NewExtractor(vocab, cfg.ExtractorOptions()), cfg.CacheEntries),
		scorer:    scorer,
		ranker:    ranking.NewRanker(scorer, cfg.RankingOptions()),
		logger:    logger,
		printer:   observability.NewPrinter(cmd.ErrOrStderr()),
	}, nil
}

func (e *engine) ingestor() *ingestion.Ingestor {
	return ingestion.NewIngestor(e.extractor, e.vocab, ingestion.Options{InferSkills: e.cfg.InferSkills})
}
