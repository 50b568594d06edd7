package site

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// DocumentLoader fetches raw site documents, such as the post pages item
// links point at. *loader.Loader implements it.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, path string) ([]byte, error)
}

// DocumentPath maps an item link onto a path under the site root. Links with
// a scheme or host, bare fragments and empty links report false.
func DocumentPath(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" || strings.HasPrefix(link, "#") {
		return "", false
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	p := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	if p == "" {
		return "", false
	}
	return p, true
}

// siteItems are the lists of the enabled variants, loaded once for the
// documents and sitemap steps of a build.
type siteItems struct {
	posts []content.Post
	tools []content.Tool
}

func (g *Generator) loadItems(ctx context.Context) (siteItems, error) {
	var items siteItems
	var err error
	for _, v := range g.Variants {
		switch v {
		case content.VariantPosts:
			items.posts, err = g.Loader.LoadPosts(ctx)
		case content.VariantTools:
			items.tools, err = g.Loader.LoadTools(ctx)
		}
		if err != nil {
			return items, err
		}
	}
	return items, nil
}

// documentPaths lists the distinct site-local documents the items link to.
func (items siteItems) documentPaths() []string {
	seen := make(map[string]bool)
	var paths []string
	add := func(link string) {
		if p, ok := DocumentPath(link); ok && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, p := range items.posts {
		add(p.Path)
	}
	for _, t := range items.tools {
		add(t.Path)
	}
	return paths
}

// copyDocuments writes every linked document the loader can fetch into the
// output directory. Paths the build generates itself are never overwritten;
// documents the source does not have are logged and skipped.
func (g *Generator) copyDocuments(ctx context.Context, items siteItems, generated map[string]bool) (int, error) {
	docs, ok := g.Loader.(DocumentLoader)
	if !ok {
		return 0, nil
	}
	copied := 0
	for _, p := range items.documentPaths() {
		if generated[p] {
			continue
		}
		data, err := docs.LoadDocument(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return copied, ctx.Err()
			}
			g.Logger.Warn("skipping linked document", zap.String("path", p), zap.Error(err))
			continue
		}
		dst := filepath.Join(g.OutputDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return copied, err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}
