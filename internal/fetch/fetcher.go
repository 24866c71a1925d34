// Package fetch implements the rate-limited page fetcher used by every
// source adapter. It deduplicates URLs within a run, enforces a global
// minimum inter-request delay and a concurrency ceiling, and downgrades
// HTTP and transport failures to "no content" results so adapters can move
// on to their next URL or curated fallback.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/thingvallatech/community-assist/internal/metrics"
)

// Config controls per-source fetcher behavior. Process-wide limits live in
// Throttle, not here.
type Config struct {
	// Source labels log lines and metrics; typically the adapter name.
	Source        string
	UserAgent     string
	Timeout       time.Duration
	RespectRobots bool
}

// Throttle holds the politeness limits shared by every fetcher in the
// process: one interval gate and one concurrency ceiling regardless of how
// many sources are fetching.
type Throttle struct {
	gate  *rate.Limiter
	slots *semaphore.Weighted
}

// NewThrottle builds the shared limits. delay is the minimum interval
// between any two outbound requests, across all fetchers sharing the
// Throttle; maxConcurrent caps outstanding requests the same way.
func NewThrottle(delay time.Duration, maxConcurrent int) *Throttle {
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Throttle{
		gate:  rate.NewLimiter(limit, 1),
		slots: semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Fetcher retrieves pages politely. Zero-value is not usable; construct
// with New.
type Fetcher struct {
	cfg      Config
	visits   *VisitSet
	throttle *Throttle
	base     *colly.Collector
	logger   *zap.Logger
}

// New builds a Fetcher around a per-run VisitSet and a shared Throttle.
// Both are injected so the orchestrator decides their scope and lifetime,
// not the fetcher.
func New(cfg Config, throttle *Throttle, visits *VisitSet, logger *zap.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	base := colly.NewCollector(colly.Async(false))
	if cfg.UserAgent != "" {
		base.UserAgent = cfg.UserAgent
	}
	base.IgnoreRobotsTxt = !cfg.RespectRobots
	base.SetRequestTimeout(cfg.Timeout)

	return &Fetcher{
		cfg:      cfg,
		visits:   visits,
		throttle: throttle,
		base:     base,
		logger:   logger,
	}
}

// Fetch retrieves one page. An empty body means the URL produced no usable
// content: already visited this run, HTTP status >= 400, or a transport
// failure. Only context cancellation is surfaced as an error. A URL is
// marked visited before the request goes out, so a failed URL will not be
// retried by this fetcher unless the caller clears it from the VisitSet.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if !f.visits.MarkIfNew(url) {
		f.logger.Debug("already visited", zap.String("url", url))
		metrics.ObserveFetch(f.cfg.Source, "deduped")
		return "", nil
	}

	if err := f.throttle.slots.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquire fetch slot: %w", err)
	}
	defer f.throttle.slots.Release(1)

	if err := f.throttle.gate.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	f.logger.Info("fetching", zap.String("url", url))
	body, status, err := f.visit(ctx, url)
	switch {
	case err != nil && ctx.Err() != nil:
		return "", fmt.Errorf("fetch canceled: %w", ctx.Err())
	case status >= 400:
		f.logger.Warn("http error",
			zap.String("url", url),
			zap.Int("status_code", status),
		)
		metrics.ObserveFetch(f.cfg.Source, "http_error")
		return "", nil
	case err != nil:
		f.logger.Error("request error", zap.String("url", url), zap.Error(err))
		metrics.ObserveFetch(f.cfg.Source, "transport_error")
		return "", nil
	}

	metrics.ObserveFetch(f.cfg.Source, "ok")
	return body, nil
}

// visit runs a single-shot collector clone and captures the response.
func (f *Fetcher) visit(ctx context.Context, url string) (body string, status int, err error) {
	collector := f.base.Clone()

	var fetchErr error
	collector.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = string(r.Body)
	})
	collector.OnError(func(r *colly.Response, e error) {
		fetchErr = e
		if r != nil {
			status = r.StatusCode
		}
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return "", 0, fmt.Errorf("fetch canceled: %w", ctx.Err())
	case visitErr := <-done:
		if visitErr != nil {
			return "", status, visitErr
		}
		if fetchErr != nil {
			return "", status, fetchErr
		}
		return body, status, nil
	}
}
