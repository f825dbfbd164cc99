// Package summarizer fetches an article and condenses it through an external summarization service.
package summarizer

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/errors"
	"regexp"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// socialPostPattern is checked against the raw URL text, not a parsed host.
var socialPostPattern = regexp.MustCompile(`twitter\.com|facebook\.com|instagram\.com`)

var _ contract.Summarizer = (*Adapter)(nil)

type Config struct {
	FetchTimeout   time.Duration
	SummaryTimeout time.Duration
	Options        domain.SummaryOptions
	// Limiter throttles calls to the summarization service, nil disables throttling.
	Limiter *rate.Limiter
}

type Adapter struct {
	log      *slog.Logger
	fetcher  contract.PageFetcher
	service  contract.SummaryService
	cache    contract.SummaryCache
	config   Config
	inflight singleflight.Group
}

// NewAdapter wires the fetch and summarize pipeline. cache may be nil.
func NewAdapter(log *slog.Logger, fetcher contract.PageFetcher, service contract.SummaryService,
	cache contract.SummaryCache, config Config) *Adapter {
	if config.Options == (domain.SummaryOptions{}) {
		config.Options = domain.DefaultSummaryOptions
	}
	return &Adapter{
		log:     log,
		fetcher: fetcher,
		service: service,
		cache:   cache,
		config:  config,
	}
}

// IsSocialPost reports whether url points at a social media post that cannot be summarized.
func IsSocialPost(url string) bool {
	return socialPostPattern.MatchString(url)
}

// Summarize never panics and always returns a value: failures come back as a SummaryFailed result.
func (a *Adapter) Summarize(ctx context.Context, url string) (summary domain.Summary) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("Summarization panicked", "url", url, "panic", r)
			summary = domain.Failed(url, fmt.Errorf("%w: %v", errors.ErrSummaryFailed, r))
		}
	}()

	if IsSocialPost(url) {
		return domain.Rejected(url)
	}

	if a.cache != nil {
		text, err := a.cache.Get(url)
		switch {
		case err == nil:
			a.log.Debug("Summary served from cache", "url", url)
			return domain.Summarized(url, text, true)
		case !stderrors.Is(err, errors.ErrCacheMiss):
			a.log.Warn("Summary cache lookup failed", "url", url, "error", err)
		}
	}

	// Concurrent requests for the same article share a single fetch and service call
	v, err, shared := a.inflight.Do(url, func() (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				a.log.Error("Summarization panicked", "url", url, "panic", r)
				err = fmt.Errorf("%w: %v", errors.ErrSummaryFailed, r)
			}
		}()
		return a.summarize(ctx, url)
	})
	if err != nil {
		a.log.Warn("Summarization failed", "url", url, "error", err)
		return domain.Failed(url, err)
	}
	if shared {
		a.log.Debug("Summary shared with a concurrent request", "url", url)
	}
	return domain.Summarized(url, v.(string), false)
}

func (a *Adapter) summarize(ctx context.Context, url string) (string, error) {
	text, err := a.extract(ctx, url)
	if err != nil {
		return "", err
	}

	summaryCtx, cancel := withOptionalTimeout(ctx, a.config.SummaryTimeout)
	defer cancel()

	if a.config.Limiter != nil {
		if err := a.config.Limiter.Wait(summaryCtx); err != nil {
			if stderrors.Is(err, context.Canceled) {
				return "", fmt.Errorf("waiting for summarization budget: %w", err)
			}
			return "", fmt.Errorf("waiting for summarization budget: %w: %w", errors.ErrTimeout, err)
		}
	}

	start := time.Now()
	summary, err := a.service.Summarize(summaryCtx, text, a.config.Options)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("summarizing %s: %w after %s", url, errors.ErrTimeout, a.config.SummaryTimeout)
		}
		if stderrors.Is(err, errors.ErrSummaryFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", errors.ErrSummaryFailed, err)
	}
	a.log.Info("Article summarized", "url", url,
		"input_chars", len([]rune(text)), "summary_chars", len([]rune(summary)),
		"latency_ms", time.Since(start).Milliseconds())

	if a.cache != nil {
		if err := a.cache.Put(url, summary); err != nil {
			a.log.Warn("Failed to cache summary", "url", url, "error", err)
		}
	}
	return summary, nil
}

// extract fetches the page and reduces it to the bounded service input.
// An empty extraction is not an error: the service decides what to do with it.
func (a *Adapter) extract(ctx context.Context, url string) (string, error) {
	fetchCtx, cancel := withOptionalTimeout(ctx, a.config.FetchTimeout)
	defer cancel()

	page, err := a.fetcher.Fetch(fetchCtx, url)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("fetching %s: %w after %s", url, errors.ErrTimeout, a.config.FetchTimeout)
		}
		return "", err
	}

	text, err := ExtractBlocks(page.Body, page.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %w", errors.ErrUnsupportedContent, url, err)
	}
	if text == "" {
		a.log.Debug("No text blocks found", "url", url, "content_type", page.ContentType)
	}
	return Truncate(text, MaxInputLength), nil
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
