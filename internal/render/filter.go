package render

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// haystackSeparator keeps adjacent fields from forming matches across their boundary.
const haystackSeparator = " | "

// NormalizeQuery trims and case-folds a search query.
func NormalizeQuery(q string) string {
	return cases.Fold().String(strings.TrimSpace(q))
}

// Haystack is the case-folded searchable text of a tool: both titles, both
// descriptions and every tag.
func Haystack(t content.Tool) string {
	return cases.Fold().String(strings.Join(haystackParts(t), haystackSeparator))
}

// SearchText is the haystack lowercased rather than case-folded, matching the
// in-page filter of built sites, which can only lowercase.
func SearchText(t content.Tool) string {
	return strings.ToLower(strings.Join(haystackParts(t), haystackSeparator))
}

func haystackParts(t content.Tool) []string {
	parts := make([]string, 0, 4+len(t.Tags))
	parts = append(parts, t.TitleAR, t.TitleEN, t.DescAR, t.DescEN)
	return append(parts, t.Tags...)
}

// FilterTools keeps the tools whose haystack contains the normalized query,
// in their original order. A blank query returns tools unchanged.
func FilterTools(tools []content.Tool, query string) []content.Tool {
	q := NormalizeQuery(query)
	if q == "" {
		return tools
	}
	matched := make([]content.Tool, 0, len(tools))
	for _, t := range tools {
		if strings.Contains(Haystack(t), q) {
			matched = append(matched, t)
		}
	}
	return matched
}
