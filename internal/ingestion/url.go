package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonathan/job-matcher/internal/fetch"
)

// URLOptions configures FetchPosting.
type URLOptions struct {
	// Fetch overrides the HTTP options
	Fetch *fetch.Options
	// UseBrowser re-renders pages whose plain HTTP text is too short
	UseBrowser bool
	// BrowserTimeout bounds headless rendering
	BrowserTimeout time.Duration
	Logger         *slog.Logger
}

// FetchPosting downloads a posting page and returns it ready for Ingest. The
// job board is detected from the URL to pick description selectors. Title
// comes from the page; company, skills and the rest are left to the caller.
func FetchPosting(ctx context.Context, urlStr string, opts URLOptions) (NewPosting, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("fetching posting", "url", urlStr, "platform", platform)

	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return NewPosting{}, fmt.Errorf("failed to fetch posting: %w", err)
	}
	html := result.HTML

	text, err := fetch.ExtractMainText(html, platform.ContentSelectors(), platform.NoiseSelectors()...)
	if err != nil {
		return NewPosting{}, fmt.Errorf("failed to extract posting text: %w", err)
	}
	logger.Debug("extracted posting text", "url", urlStr, "chars", len(text))

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		logger.Info("posting text too short, rendering in browser",
			"url", urlStr, "chars", len(text), "min", fetch.MinContentLength)

		rendered, renderErr := fetch.Render(ctx, urlStr, opts.BrowserTimeout, logger)
		if renderErr != nil {
			// keep the HTTP text
			logger.Warn("browser rendering failed", "url", urlStr, "error", renderErr)
		} else if renderedText, extractErr := fetch.ExtractMainText(rendered, platform.ContentSelectors(), platform.NoiseSelectors()...); extractErr == nil {
			html, text = rendered, renderedText
		}
	}

	return NewPosting{
		Title:       fetch.ExtractTitle(html),
		Description: text,
		Format:      FormatText,
		URL:         urlStr,
	}, nil
}
