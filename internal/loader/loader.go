// Package loader fetches the site configuration and content lists.
package loader

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// SiteConfigPath is the path of the site configuration document.
const SiteConfigPath = "site.config.json"

// RetryPolicy bounds how often a failed network fetch is repeated.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultRetryPolicy returns three attempts with 200ms doubling backoff capped at 2s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, BaseDelay: 200 * time.Millisecond, MaxDelay: 2 * time.Second}
}

// delay returns the wait before the attempt following the given one (1-based).
func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.BaseDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Loader decodes site documents fetched from a Source.
type Loader struct {
	src    Source
	retry  RetryPolicy
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithRetry sets the retry policy.
func WithRetry(p RetryPolicy) Option {
	return func(l *Loader) { l.retry = p }
}

// WithLogger sets the logger used for retry and failure messages.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader reading from src.
func New(src Source, opts ...Option) *Loader {
	l := &Loader{
		src:    src,
		retry:  DefaultRetryPolicy(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadConfig fetches and decodes site.config.json.
func (l *Loader) LoadConfig(ctx context.Context) (content.SiteConfig, error) {
	var cfg content.SiteConfig
	if err := l.load(ctx, SiteConfigPath, false, &cfg); err != nil {
		return content.SiteConfig{}, err
	}
	return cfg, nil
}

// LoadPosts fetches posts/index.json, bypassing caches.
func (l *Loader) LoadPosts(ctx context.Context) ([]content.Post, error) {
	var posts []content.Post
	if err := l.load(ctx, content.VariantPosts.DataPath(), true, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// LoadTools fetches tools.json, bypassing caches.
func (l *Loader) LoadTools(ctx context.Context) ([]content.Tool, error) {
	var tools []content.Tool
	if err := l.load(ctx, content.VariantTools.DataPath(), true, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// LoadDocument fetches a raw site document such as a post page, bypassing caches.
func (l *Loader) LoadDocument(ctx context.Context, path string) ([]byte, error) {
	return l.fetch(ctx, path, true)
}

func (l *Loader) load(ctx context.Context, path string, bust bool, v any) error {
	body, err := l.fetch(ctx, path, bust)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		l.logger.Error("decoding site document", zap.String("path", path), zap.Error(err))
		return &FetchError{Path: path, Kind: ErrParse, Err: err}
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context, path string, bust bool) ([]byte, error) {
	attempts := l.retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; ; attempt++ {
		body, err := l.src.Fetch(ctx, path, bust)
		if err == nil {
			return body, nil
		}
		if attempt >= attempts || !retryable(err) || ctx.Err() != nil {
			l.logger.Error("fetching site document",
				zap.String("path", path), zap.Int("attempt", attempt), zap.Error(err))
			return nil, err
		}

		wait := l.retry.delay(attempt)
		l.logger.Warn("fetch failed, retrying",
			zap.String("path", path), zap.Int("attempt", attempt),
			zap.Duration("backoff", wait), zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &FetchError{Path: path, Kind: ErrNetwork, Err: ctx.Err()}
		case <-timer.C:
		}
	}
}
