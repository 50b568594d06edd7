// Package langctl holds the per-session language and search state and drives
// re-rendering when either changes.
package langctl

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/render"
)

// ErrStale is returned by Apply and Toggle when a newer language change
// started while this one was loading; its results were discarded.
var ErrStale = errors.New("superseded by a newer language change")

// DataLoader is the subset of loader.Loader the controller needs.
type DataLoader interface {
	LoadConfig(ctx context.Context) (content.SiteConfig, error)
	LoadPosts(ctx context.Context) ([]content.Post, error)
	LoadTools(ctx context.Context) ([]content.Tool, error)
}

// Controller is a two-state language machine (ar, en) bound to one Document.
// Every language application reloads the site config and content list.
type Controller struct {
	loader  DataLoader
	variant content.Variant
	doc     Document
	logger  *zap.Logger

	linkBase string

	mu sync.Mutex

	// requested is the language of the newest Apply or Toggle and drives the
	// next Toggle. applied is what the document currently shows; lists are
	// always rendered in it.
	requested content.Language
	applied   content.Language
	query     string
	gen       uint64
	posts     []content.Post
	tools     []content.Tool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithQuery seeds the search query before the first render.
func WithQuery(q string) Option {
	return func(c *Controller) { c.query = q }
}

// WithLinkBase prefixes relative item links with base, the path from the
// rendered page back to the site root.
func WithLinkBase(base string) Option {
	return func(c *Controller) { c.linkBase = base }
}

// New creates a Controller for the given variant.
func New(loader DataLoader, variant content.Variant, doc Document, opts ...Option) *Controller {
	c := &Controller{
		loader:  loader,
		variant: variant,
		doc:     doc,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init loads the site config and applies its default language.
func (c *Controller) Init(ctx context.Context) error {
	cfg, err := c.loader.LoadConfig(ctx)
	if err != nil {
		c.showLoadError(content.Arabic)
		return fmt.Errorf("loading site config: %w", err)
	}
	return c.Apply(ctx, cfg.DefaultLanguage())
}

// Apply switches to lang, reloads data and repaints the document.
func (c *Controller) Apply(ctx context.Context, lang content.Language) error {
	c.mu.Lock()
	gen := c.begin(lang)
	c.mu.Unlock()
	return c.finish(ctx, gen)
}

// Toggle switches ar to en or en to ar and applies the result.
func (c *Controller) Toggle(ctx context.Context) error {
	c.mu.Lock()
	gen := c.begin(c.requested.Toggle())
	c.mu.Unlock()
	return c.finish(ctx, gen)
}

// Search stores q and re-renders the last loaded list with it. The query is
// kept across language changes.
func (c *Controller) Search(q string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
	if c.gen == 0 {
		return nil
	}
	c.doc.SetSearch(q)
	return c.renderLocked()
}

// ClearSearch resets the query and re-renders the full list.
func (c *Controller) ClearSearch() error {
	return c.Search("")
}

// Language returns the language the document currently shows.
func (c *Controller) Language() content.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

// Query returns the current search query.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Variant returns the content variant the controller renders.
func (c *Controller) Variant() content.Variant { return c.variant }

// begin records lang as the requested language and opens a new generation.
// Callers hold c.mu.
func (c *Controller) begin(lang content.Language) uint64 {
	c.requested = lang
	c.gen++
	return c.gen
}

func (c *Controller) finish(ctx context.Context, gen uint64) error {
	cfg, err := c.loader.LoadConfig(ctx)
	var (
		posts []content.Post
		tools []content.Tool
	)
	if err == nil {
		if c.variant == content.VariantTools {
			tools, err = c.loader.LoadTools(ctx)
		} else {
			posts, err = c.loader.LoadPosts(ctx)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.logger.Debug("discarding stale language change",
			zap.Uint64("generation", gen), zap.Uint64("current", c.gen))
		return ErrStale
	}

	lang := c.requested
	c.applied = lang
	c.doc.SetLocale(lang, lang.Dir())
	c.doc.SetToggleLabel(lang.ToggleLabel())
	if err != nil {
		c.doc.SetError(render.T(lang, render.MsgLoadError))
		return fmt.Errorf("applying language %s: %w", lang, err)
	}

	c.posts, c.tools = posts, tools
	c.doc.SetHeader(cfg.Name(lang), cfg.Description(lang))
	if c.variant.Searchable() {
		c.doc.SetSearch(c.query)
	}
	return c.renderLocked()
}

func (c *Controller) renderLocked() error {
	var (
		list template.HTML
		err  error
	)
	if c.variant == content.VariantTools {
		list, err = render.RenderToolResults(c.tools, c.applied, c.query, c.linkBase)
	} else {
		list, err = render.RenderPosts(c.posts, c.applied, c.linkBase)
	}
	if err != nil {
		c.doc.SetError(render.T(c.applied, render.MsgLoadError))
		return err
	}
	c.doc.SetError("")
	c.doc.SetList(list)
	return nil
}

func (c *Controller) showLoadError(lang content.Language) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.requested == "" {
		c.requested = lang
	}
	if c.applied == "" {
		c.applied = lang
	}
	c.doc.SetLocale(lang, lang.Dir())
	c.doc.SetToggleLabel(lang.ToggleLabel())
	c.doc.SetError(render.T(lang, render.MsgLoadError))
}
