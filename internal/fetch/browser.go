package fetch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest extracted description accepted from a plain
// HTTP fetch. Shorter text usually means a JavaScript-rendered page.
const MinContentLength = 500

// renderSettle is how long a rendered page is given to populate after load.
const renderSettle = 2 * time.Second

// ShouldUseBrowser reports whether extractedText is too short to be a real description.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// Render loads urlStr in headless Chrome and returns the rendered HTML.
// Requires Chrome or Chromium on the host.
func Render(ctx context.Context, urlStr string, timeout time.Duration, logger *slog.Logger) (string, error) {
	if err := ValidateURL(urlStr); err != nil {
		return "", err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("rendering page in headless browser", "url", urlStr)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	logger.Debug("rendered page", "url", urlStr, "bytes", len(html))
	return html, nil
}
