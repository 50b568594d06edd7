// Package feed turns RSS feeds into summarized post pages and keeps the
// posts index in step with them.
package feed

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// Source is one entry of feeds.json.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Lang string `json:"lang,omitempty"`
}

// Language is the source's language, English unless it is set to Arabic.
func (s Source) Language() content.Language {
	if lang, ok := content.ParseLanguage(s.Lang); ok {
		return lang
	}
	return content.English
}

// LoadSources reads a feeds.json file.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sources, nil
}

// Item is one usable feed entry.
type Item struct {
	Title       string
	Link        string
	Description string
	PubDate     string
}

type rssDocument struct {
	Channel *struct {
		Items []struct {
			Title       string `xml:"title"`
			Link        string `xml:"link"`
			Description string `xml:"description"`
			PubDate     string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

// ParseRSS returns up to limit items that have both a title and a link.
// A document without a channel yields no items.
func ParseRSS(data []byte, limit int) ([]Item, error) {
	var doc rssDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	if doc.Channel == nil {
		return nil, nil
	}
	var items []Item
	for _, it := range doc.Channel.Items {
		item := Item{
			Title:       strings.TrimSpace(it.Title),
			Link:        strings.TrimSpace(it.Link),
			Description: strings.TrimSpace(it.Description),
			PubDate:     strings.TrimSpace(it.PubDate),
		}
		if item.Title == "" || item.Link == "" {
			continue
		}
		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}
