// Package render projects bilingual content items into display cards and
// renders them to escaped HTML.
package render

import (
	"strings"
	"time"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// Action labels. The tool label is Arabic in both languages; see ProjectTool.
const (
	postActionAR    = "قراءة"
	postActionEN    = "Read"
	toolActionLabel = "فتح الأداة"
)

// Projection holds the language-specific display text of one item.
type Projection struct {
	Title       string
	Description string
	ActionLabel string
}

// firstNonEmpty returns the first value that is not blank, trimmed.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ProjectPost selects the post's title, summary and action label for lang.
// Titles fall back to the other language and then to the untranslated title;
// summaries fall back to the other language and then to the generic summary.
func ProjectPost(p content.Post, lang content.Language) Projection {
	if lang == content.English {
		return Projection{
			Title:       firstNonEmpty(p.TitleEN, p.TitleAR, p.Title),
			Description: firstNonEmpty(p.SummaryEN, p.SummaryAR, p.Summary),
			ActionLabel: postActionEN,
		}
	}
	return Projection{
		Title:       firstNonEmpty(p.TitleAR, p.TitleEN, p.Title),
		Description: firstNonEmpty(p.SummaryAR, p.SummaryEN, p.Summary),
		ActionLabel: postActionAR,
	}
}

// ProjectTool selects the tool's title and description for lang.
// The action label is the same Arabic literal for both languages, matching
// the published tools page.
func ProjectTool(t content.Tool, lang content.Language) Projection {
	if lang == content.English {
		return Projection{
			Title:       firstNonEmpty(t.TitleEN, t.TitleAR),
			Description: firstNonEmpty(t.DescEN, t.DescAR),
			ActionLabel: toolActionLabel,
		}
	}
	return Projection{
		Title:       firstNonEmpty(t.TitleAR, t.TitleEN),
		Description: firstNonEmpty(t.DescAR, t.DescEN),
		ActionLabel: toolActionLabel,
	}
}

// Card is everything the card template needs for one item.
type Card struct {
	Projection
	Meta string // post date or tool tag summary
	Link string
	Note string // post language note, e.g. "EN"
	// Search is the lowercased tool haystack that built pages filter on.
	Search string
}

// tagSeparator joins a tool's tags in its meta line.
const tagSeparator = " · "

// PostCard builds the card for a post.
func PostCard(p content.Post, lang content.Language) Card {
	return Card{
		Projection: ProjectPost(p, lang),
		Meta:       formatDate(p.Date),
		Link:       p.Path,
		Note:       p.Lang,
	}
}

// ToolCard builds the card for a tool.
func ToolCard(t content.Tool, lang content.Language) Card {
	return Card{
		Projection: ProjectTool(t, lang),
		Meta:       strings.Join(t.Tags, tagSeparator),
		Link:       t.Path,
		Search:     SearchText(t),
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// formatDate renders parseable dates as YYYY-MM-DD and passes anything else through.
func formatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return s
}
