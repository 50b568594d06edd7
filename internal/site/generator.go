// Package site renders bilingual pages to disk and holds the page template
// shared with the live server.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/langctl"
	"github.com/ziadkadry99/bilingo/internal/progress"
)

// Static file names written at the site root.
const (
	StyleFile  = "style.css"
	ScriptFile = "site.js"
	assetsDir  = "assets"
)

// StaticAsset returns the built-in stylesheet or script by file name.
func StaticAsset(name string) (string, bool) {
	switch name {
	case StyleFile:
		return cssContent, true
	case ScriptFile:
		return jsContent, true
	}
	return "", false
}

// Generator renders every enabled variant in both languages into a static site.
type Generator struct {
	Loader    langctl.DataLoader
	OutputDir string
	Variants  []content.Variant
	Assets    AssetOptions
	Reporter  progress.Reporter
	Logger    *zap.Logger

	now func() time.Time
}

// BuildResult summarizes a finished build.
type BuildResult struct {
	Pages     int
	Assets    int
	Documents int
	Sitemap   bool
}

// NewGenerator creates a Generator with a silent reporter and logger.
func NewGenerator(loader langctl.DataLoader, outputDir string, variants []content.Variant) *Generator {
	return &Generator{
		Loader:    loader,
		OutputDir: outputDir,
		Variants:  variants,
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
		now:       time.Now,
	}
}

// Build writes <out>/<lang>/index.html for posts, <out>/<lang>/tools/index.html
// for tools, <out>/index.html in the site's default language, the shared
// stylesheet and script, and the selected static assets. Site-local documents
// the items link to are copied alongside, and sitemap.xml is written when the
// site config names a site_url.
func (g *Generator) Build(ctx context.Context) (BuildResult, error) {
	var res BuildResult
	if len(g.Variants) == 0 {
		return res, errors.New("no content variants to build")
	}

	cfg, err := g.Loader.LoadConfig(ctx)
	if err != nil {
		return res, fmt.Errorf("loading site config: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, StyleFile), []byte(cssContent), 0o644); err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, ScriptFile), []byte(jsContent), 0o644); err != nil {
		return res, err
	}

	g.Reporter.Start(len(g.Variants)*len(content.Languages) + 1)
	defer g.Reporter.Finish()

	generated := map[string]bool{"index.html": true, StyleFile: true, ScriptFile: true, SitemapFile: true}
	var pages []string
	for _, variant := range g.Variants {
		for _, lang := range content.Languages {
			rel := PagePath(lang, variant)
			base := relativeBase(variant)
			state, err := renderState(g.Loader, variant, g.Logger, func(c *langctl.Controller) error {
				return c.Apply(ctx, lang)
			}, langctl.WithLinkBase(base))
			if err != nil {
				return res, fmt.Errorf("rendering %s: %w", rel, err)
			}

			data := NewPageData(state, variant, StaticLinks(base, lang, variant), base)
			if err := writePage(filepath.Join(g.OutputDir, filepath.FromSlash(rel)), data); err != nil {
				return res, err
			}
			generated[rel] = true
			pages = append(pages, rel)
			res.Pages++
			g.Reporter.Update(res.Pages, rel)
		}
	}

	// The root page mirrors the first variant in the default language, with
	// item links resolved from the site root.
	variant, lang := g.Variants[0], cfg.DefaultLanguage()
	state, err := renderState(g.Loader, variant, g.Logger, func(c *langctl.Controller) error {
		return c.Apply(ctx, lang)
	})
	if err != nil {
		return res, fmt.Errorf("rendering index.html: %w", err)
	}
	root := NewPageData(state, variant, StaticLinks("", lang, variant), "")
	if err := writePage(filepath.Join(g.OutputDir, "index.html"), root); err != nil {
		return res, err
	}
	res.Pages++
	g.Reporter.Update(res.Pages, "index.html")

	items, err := g.loadItems(ctx)
	if err != nil {
		return res, fmt.Errorf("loading items: %w", err)
	}
	if res.Documents, err = g.copyDocuments(ctx, items, generated); err != nil {
		return res, fmt.Errorf("copying documents: %w", err)
	}

	if cfg.SiteURL != "" {
		var posts []string
		for _, p := range items.posts {
			if rel, ok := DocumentPath(p.Path); ok {
				posts = append(posts, rel)
			}
		}
		if err := g.writeSitemap(cfg.SiteURL, pages, posts); err != nil {
			return res, err
		}
		res.Sitemap = true
	}

	n, err := CopyAssets(g.Assets, filepath.Join(g.OutputDir, assetsDir))
	if err != nil {
		return res, fmt.Errorf("copying assets: %w", err)
	}
	res.Assets = n

	g.Logger.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", res.Pages),
		zap.Int("assets", res.Assets),
		zap.Int("documents", res.Documents))
	return res, nil
}

func (g *Generator) writeSitemap(siteURL string, pages, posts []string) error {
	var buf bytes.Buffer
	now := time.Now
	if g.now != nil {
		now = g.now
	}
	if err := WriteSitemap(&buf, siteURL, pages, posts, now()); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, SitemapFile), buf.Bytes(), 0o644)
}

// RenderOptions selects what RenderPage produces.
type RenderOptions struct {
	Variant content.Variant
	// Lang is the page language; empty means the site's default.
	Lang  string
	Query string
	// Fragment writes only the rendered list instead of a full page.
	Fragment bool
	Logger   *zap.Logger
}

// RenderPage runs the pipeline once and writes the resulting page to w.
// Links are relative to a page at the site root.
func RenderPage(ctx context.Context, loader langctl.DataLoader, w io.Writer, opts RenderOptions) error {
	variant := opts.Variant
	if variant == "" {
		variant = content.VariantPosts
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	state, err := renderState(loader, variant, logger, func(c *langctl.Controller) error {
		if opts.Lang == "" {
			return c.Init(ctx)
		}
		lang, ok := content.ParseLanguage(opts.Lang)
		if !ok {
			return fmt.Errorf("unsupported language %q", opts.Lang)
		}
		return c.Apply(ctx, lang)
	}, langctl.WithQuery(opts.Query))
	if err != nil {
		return err
	}

	if opts.Fragment {
		_, err := io.WriteString(w, string(state.List))
		return err
	}
	return WritePage(w, NewPageData(state, variant, StaticLinks("", state.Lang, variant), ""))
}

// renderState runs start on a fresh controller and returns the page it painted.
func renderState(loader langctl.DataLoader, variant content.Variant, logger *zap.Logger,
	start func(*langctl.Controller) error, opts ...langctl.Option) (langctl.PageState, error) {
	page := &langctl.Page{}
	opts = append([]langctl.Option{langctl.WithLogger(logger)}, opts...)
	ctl := langctl.New(loader, variant, page, opts...)
	if err := start(ctl); err != nil {
		return page.State(), err
	}
	return page.State(), nil
}

func writePage(path string, data PageData) error {
	var buf bytes.Buffer
	if err := WritePage(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
