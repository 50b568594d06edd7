package site

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/langctl"
	"github.com/ziadkadry99/bilingo/internal/render"
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Links are the navigation targets of a page.
type Links struct {
	Posts  string
	Tools  string
	Toggle string
	Clear  string
	Search string
}

// Labels are the localized fixed strings of the page chrome.
type Labels struct {
	Posts             string
	Tools             string
	SearchPlaceholder string
	Clear             string
}

// PageData is everything the page template needs.
type PageData struct {
	langctl.PageState
	Variant    content.Variant
	Searchable bool
	Links      Links
	Labels     Labels
	// StaticBase prefixes style.css and site.js.
	StaticBase string
	// LiveURL is the websocket endpoint; empty on static builds.
	LiveURL string
}

// NewPageData combines a controller snapshot with its navigation links.
func NewPageData(state langctl.PageState, variant content.Variant, links Links, staticBase string) PageData {
	lang := content.LanguageOrDefault(string(state.Lang))
	return PageData{
		PageState:  state,
		Variant:    variant,
		Searchable: variant.Searchable(),
		Links:      links,
		StaticBase: staticBase,
		Labels: Labels{
			Posts:             render.T(lang, render.MsgPosts),
			Tools:             render.T(lang, render.MsgTools),
			SearchPlaceholder: render.T(lang, render.MsgSearchPlaceholder),
			Clear:             render.T(lang, render.MsgClearSearch),
		},
	}
}

// WritePage renders a full HTML page to w.
func WritePage(w io.Writer, data PageData) error {
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// PagePath is the output path of a page relative to the site root.
func PagePath(lang content.Language, variant content.Variant) string {
	if variant == content.VariantTools {
		return path.Join(string(lang), "tools", "index.html")
	}
	return path.Join(string(lang), "index.html")
}

// StaticLinks builds relative links for a page written at PagePath(lang, variant)
// under a site root reached through base ("" for the root, "../" one level down).
func StaticLinks(base string, lang content.Language, variant content.Variant) Links {
	self := base + PagePath(lang, variant)
	return Links{
		Posts:  base + PagePath(lang, content.VariantPosts),
		Tools:  base + PagePath(lang, content.VariantTools),
		Toggle: base + PagePath(lang.Toggle(), variant),
		Clear:  self,
		Search: self,
	}
}

// relativeBase returns the prefix leading from a page back to the site root.
func relativeBase(variant content.Variant) string {
	if variant == content.VariantTools {
		return "../../"
	}
	return "../"
}

// ServerLinks builds the links used by pages served from the live server.
func ServerLinks(lang content.Language, variant content.Variant, query string) Links {
	with := func(p string, l content.Language, q string) string {
		v := url.Values{}
		v.Set("lang", string(l))
		if q != "" {
			v.Set("q", q)
		}
		return p + "?" + v.Encode()
	}
	self := RoutePath(variant)
	return Links{
		Posts:  with(RoutePath(content.VariantPosts), lang, ""),
		Tools:  with(RoutePath(content.VariantTools), lang, ""),
		Toggle: with(self, lang.Toggle(), query),
		Clear:  with(self, lang, ""),
		Search: self,
	}
}

// RoutePath is the server route of a variant.
func RoutePath(variant content.Variant) string {
	if variant == content.VariantTools {
		return "/tools"
	}
	return "/"
}
