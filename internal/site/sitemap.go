package site

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// SitemapFile is written at the site root when the site config has a site_url.
const SitemapFile = "sitemap.xml"

const (
	sitemapNS       = "http://www.sitemaps.org/schemas/sitemap/0.9"
	maxSitemapPosts = 500
)

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
}

// WriteSitemap writes a sitemap listing the site root and pages (daily) and
// the first posts (weekly). pages and posts are paths relative to siteURL.
func WriteSitemap(w io.Writer, siteURL string, pages, posts []string, lastmod time.Time) error {
	base := strings.TrimRight(siteURL, "/") + "/"
	mod := lastmod.UTC().Format("2006-01-02T15:04:05Z")

	set := urlset{Xmlns: sitemapNS}
	set.URLs = append(set.URLs, sitemapURL{Loc: base, LastMod: mod, ChangeFreq: "daily"})
	for _, p := range pages {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p, LastMod: mod, ChangeFreq: "daily"})
	}
	if len(posts) > maxSitemapPosts {
		posts = posts[:maxSitemapPosts]
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p, LastMod: mod, ChangeFreq: "weekly"})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

