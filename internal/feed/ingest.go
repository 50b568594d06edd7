package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/progress"
)

// DefaultPerFeed is how many items are taken from each feed.
const DefaultPerFeed = 3

const (
	summarySentences = 3
	maxFeedSize      = 8 << 20
	postsDir         = "posts"
)

// Ingester writes summarized feed items as post pages under Root/posts and
// prepends them to Root/posts/index.json.
type Ingester struct {
	Root     string
	Client   *http.Client
	PerFeed  int
	Reporter progress.Reporter
	Logger   *zap.Logger

	now func() time.Time
}

// NewIngester creates an Ingester for the site checkout at root.
func NewIngester(root string) *Ingester {
	return &Ingester{
		Root:     root,
		Client:   &http.Client{Timeout: 20 * time.Second},
		PerFeed:  DefaultPerFeed,
		Reporter: progress.Nop{},
		Logger:   zap.NewNop(),
		now:      time.Now,
	}
}

// Result summarizes an ingest run.
type Result struct {
	Posts  int
	Failed int
}

// Run fetches every source, writes a page per usable item and merges the new
// entries into the index. A failing feed is logged and skipped.
func (in *Ingester) Run(ctx context.Context, sources []Source) (Result, error) {
	var res Result
	dir := filepath.Join(in.Root, postsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, err
	}

	in.Reporter.Start(len(sources))
	defer in.Reporter.Finish()

	var fresh []content.Post
	for i, src := range sources {
		entries, err := in.ingest(ctx, src)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			in.Logger.Warn("skipping feed", zap.String("feed", src.Name), zap.String("url", src.URL), zap.Error(err))
			res.Failed++
		}
		fresh = append(fresh, entries...)
		in.Reporter.Update(i+1, src.Name)
	}

	res.Posts = len(fresh)
	if len(fresh) == 0 {
		return res, nil
	}
	indexPath := filepath.Join(dir, "index.json")
	current, err := readIndex(indexPath)
	if err != nil {
		return res, fmt.Errorf("reading posts index: %w", err)
	}
	if err := writeIndex(indexPath, MergeIndex(current, fresh, MaxIndexEntries)); err != nil {
		return res, fmt.Errorf("writing posts index: %w", err)
	}
	in.Logger.Info("feeds ingested", zap.Int("posts", res.Posts), zap.Int("failed_feeds", res.Failed))
	return res, nil
}

// ingest turns one feed into post pages and returns their index entries.
func (in *Ingester) ingest(ctx context.Context, src Source) ([]content.Post, error) {
	data, err := in.fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}
	perFeed := in.PerFeed
	if perFeed <= 0 {
		perFeed = DefaultPerFeed
	}
	items, err := ParseRSS(data, perFeed)
	if err != nil {
		return nil, err
	}

	lang := src.Language()
	date := in.now().UTC().Format("2006-01-02")
	var entries []content.Post
	for _, item := range items {
		summary := Summarize(item.Description, lang, summarySentences)
		if summary == "" {
			continue
		}
		name := Slugify(item.Title) + ".html"
		var buf bytes.Buffer
		if err := WritePost(&buf, item, summary, date, lang); err != nil {
			return entries, err
		}
		if err := os.WriteFile(filepath.Join(in.Root, postsDir, name), buf.Bytes(), 0o644); err != nil {
			return entries, err
		}
		entries = append(entries, content.Post{
			Title:   item.Title,
			Summary: truncate(summary, maxIndexSummary),
			Date:    date,
			Path:    path.Join(postsDir, name),
			Lang:    strings.ToUpper(string(lang)),
		})
	}
	return entries, nil
}

func (in *Ingester) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; bilingo)")
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")
	resp, err := in.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
}
