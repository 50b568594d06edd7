package langctl

import (
	"html/template"
	"sync"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// Document is the surface a Controller paints on.
type Document interface {
	SetLocale(lang content.Language, dir string)
	SetHeader(title, description string)
	SetToggleLabel(label string)
	SetSearch(query string)
	SetList(list template.HTML)
	SetError(message string)
}

// PageState is a snapshot of everything a rendered page shows.
type PageState struct {
	Lang        content.Language `json:"lang"`
	Dir         string           `json:"dir"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ToggleLabel string           `json:"toggle_label"`
	Query       string           `json:"query"`
	List        template.HTML    `json:"html"`
	Error       string           `json:"error,omitempty"`
}

// Page is an in-memory Document. It is safe for concurrent use.
type Page struct {
	mu    sync.Mutex
	state PageState
}

func (p *Page) SetLocale(lang content.Language, dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Lang, p.state.Dir = lang, dir
}

func (p *Page) SetHeader(title, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Title, p.state.Description = title, description
}

func (p *Page) SetToggleLabel(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.ToggleLabel = label
}

func (p *Page) SetSearch(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Query = query
}

func (p *Page) SetList(list template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.List = list
}

func (p *Page) SetError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Error = message
}

// State returns a copy of the current page contents.
func (p *Page) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}
