package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// cardsTemplate renders a card list. All values go through html/template
// escaping; unsafe link schemes are replaced by the template engine.
const cardsTemplate = `{{define "card"}}
  <article class="card"{{with .Search}} data-search="{{.}}"{{end}}>
    {{- with .Meta}}
    <div class="meta">{{.}}</div>
    {{- end}}
    <h3>{{.Title}}</h3>
    <p>{{.Description}}</p>
    <div class="card-actions">
      <a href="{{.Link}}" class="badge">{{.ActionLabel}}</a>
      {{- with .Note}}
      <span class="lang-note">{{.}}</span>
      {{- end}}
    </div>
  </article>{{end}}
{{define "list"}}
  {{- if .Cards}}{{range .Cards}}{{template "card" .}}{{end}}
  {{- else}}
  <p class="empty-state">{{.Empty}}</p>
  {{- end}}
{{- end}}`

var cardTemplates = template.Must(template.New("cards").Parse(cardsTemplate))

type listData struct {
	Cards []Card
	Empty string
}

// RenderCards renders cards in order. An empty list renders the message for emptyKey.
func RenderCards(cards []Card, lang content.Language, emptyKey string) (template.HTML, error) {
	var buf bytes.Buffer
	data := listData{Cards: cards, Empty: T(lang, emptyKey)}
	if err := cardTemplates.ExecuteTemplate(&buf, "list", data); err != nil {
		return "", fmt.Errorf("rendering cards: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPosts renders one card per post, preserving order. Relative post
// paths are resolved against linkBase.
func RenderPosts(posts []content.Post, lang content.Language, linkBase string) (template.HTML, error) {
	return RenderCards(cardsFor(posts, lang, linkBase, PostCard), lang, MsgEmpty)
}

// RenderTools renders one card per tool, preserving order.
func RenderTools(tools []content.Tool, lang content.Language, linkBase string) (template.HTML, error) {
	return RenderCards(cardsFor(tools, lang, linkBase, ToolCard), lang, MsgEmpty)
}

// RenderToolResults filters tools by query and renders the result. When the
// query matches nothing the no-results message is shown instead of the empty one.
func RenderToolResults(tools []content.Tool, lang content.Language, query, linkBase string) (template.HTML, error) {
	matched := FilterTools(tools, query)
	emptyKey := MsgEmpty
	if NormalizeQuery(query) != "" {
		emptyKey = MsgNoResults
	}
	return RenderCards(cardsFor(matched, lang, linkBase, ToolCard), lang, emptyKey)
}

func cardsFor[T any](items []T, lang content.Language, linkBase string, card func(T, content.Language) Card) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		c := card(item, lang)
		c.Link = ResolveLink(linkBase, c.Link)
		cards = append(cards, c)
	}
	return cards
}

// ResolveLink prefixes a site-relative link such as "posts/x.html" with base.
// Root-absolute paths, fragments and links with a scheme are returned as is.
func ResolveLink(base, link string) string {
	link = strings.TrimSpace(link)
	if base == "" || link == "" || strings.HasPrefix(link, "/") || strings.HasPrefix(link, "#") {
		return link
	}
	if u, err := url.Parse(link); err == nil && u.Scheme != "" {
		return link
	}
	return base + link
}
