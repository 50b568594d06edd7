package feed

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ziadkadry99/bilingo/internal/content"
)

const (
	maxSummaryRunes = 600
	maxIndexSummary = 180
	maxSlugRunes    = 60
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Summarize strips markup from text and keeps its first maxSentences
// sentences, capped at 600 characters. Arabic text also ends sentences
// on the Arabic question mark.
func Summarize(text string, lang content.Language, maxSentences int) string {
	text = strings.Join(strings.Fields(tagPattern.ReplaceAllString(text, " ")), " ")
	if text == "" {
		return ""
	}
	ends := ".!?"
	if lang == content.Arabic {
		ends = ".!؟"
	}

	var sentences []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if i+1 < len(runes) && strings.ContainsRune(ends, r) && runes[i+1] == ' ' {
			sentences = append(sentences, string(runes[start:i+1]))
			start = i + 2
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	return truncate(strings.Join(sentences, " "), maxSummaryRunes)
}

// Slugify turns a title into a file name stem: word characters and hyphens
// only, whitespace runs as single hyphens, lower case, at most 60 characters.
// Titles with no usable characters get a stable hash instead.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' || r == '-' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	slug = strings.ToLower(truncate(slug, maxSlugRunes))
	if slug == "" {
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(title))
		slug = strings.ReplaceAll(id.String(), "-", "")[:10]
	}
	return slug
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
