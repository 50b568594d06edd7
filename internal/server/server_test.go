package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/loader"
	"github.com/ziadkadry99/bilingo/internal/render"
	"github.com/ziadkadry99/bilingo/internal/site"
)

// memLoader serves fixed content, or err for every load when set.
type memLoader struct {
	cfg   content.SiteConfig
	posts []content.Post
	tools []content.Tool
	docs  map[string]string
	err   error
}

func (m *memLoader) LoadConfig(context.Context) (content.SiteConfig, error) { return m.cfg, m.err }
func (m *memLoader) LoadPosts(context.Context) ([]content.Post, error)      { return m.posts, m.err }
func (m *memLoader) LoadTools(context.Context) ([]content.Tool, error)      { return m.tools, m.err }

func (m *memLoader) LoadDocument(_ context.Context, path string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	body, ok := m.docs[path]
	if !ok {
		return nil, &loader.FetchError{Path: path, Kind: loader.ErrNetwork, Status: http.StatusNotFound}
	}
	return []byte(body), nil
}

func newMemLoader() *memLoader {
	return &memLoader{
		cfg: content.SiteConfig{
			SiteNameAR:        "موقعي",
			SiteNameEN:        "My Site",
			SiteDescriptionAR: "وصف",
			SiteDescriptionEN: "About",
			LanguageDefault:   "en",
		},
		posts: []content.Post{{Title: "X", Date: "2024-01-01", Path: "/x"}},
		tools: []content.Tool{
			{TitleAR: "أداة", TitleEN: "Tool A", Path: "/a", Tags: []string{"json"}},
			{TitleAR: "محول", TitleEN: "Converter", Path: "/b", Tags: []string{"csv"}},
		},
	}
}

func get(t *testing.T, srv *Server, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, newMemLoader(), nil)

	w := get(t, srv, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, newMemLoader(), nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPageLanguageNegotiation(t *testing.T) {
	srv := New(Config{}, newMemLoader(), nil)

	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"site default", "/", "", `<html lang="en" dir="ltr">`},
		{"query", "/?lang=ar", "", `<html lang="ar" dir="rtl">`},
		{"accept-language", "/", "ar-EG,ar;q=0.9", `<html lang="ar" dir="rtl">`},
		{"query beats header", "/?lang=en", "ar", `<html lang="en" dir="ltr">`},
		{"unknown query falls through", "/?lang=fr", "ar", `<html lang="ar" dir="rtl">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.accept != "" {
				header["Accept-Language"] = tt.accept
			}
			w := get(t, srv, tt.target, header)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestPostsPage(t *testing.T) {
	srv := New(Config{}, newMemLoader(), nil)
	w := get(t, srv, "/?lang=en", nil)
	body := w.Body.String()

	for _, want := range []string{
		"<title>My Site</title>",
		"<h3>X</h3>",
		`data-live="/ws/live?`,
		`href="/static/style.css"`,
		`href="/?lang=ar" id="lang-toggle"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if got := w.Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := w.Header().Get("Content-Language"); got != "en" {
		t.Errorf("Content-Language = %q", got)
	}
}

func TestToolsPageFiltersByQuery(t *testing.T) {
	srv := New(Config{}, newMemLoader(), nil)
	w := get(t, srv, "/tools?lang=en&q=JSON", nil)
	body := w.Body.String()

	if !strings.Contains(body, "<h3>Tool A</h3>") {
		t.Error("expected matching tool")
	}
	if strings.Contains(body, "<h3>Converter</h3>") {
		t.Error("non-matching tool should be filtered out")
	}
	if !strings.Contains(body, `value="JSON"`) {
		t.Error("search box should keep the query")
	}
}

func TestPageLoadError(t *testing.T) {
	l := newMemLoader()
	l.err = errors.New("boom")
	srv := New(Config{}, l, nil)

	w := get(t, srv, "/tools", nil)
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, render.T(content.Arabic, render.MsgLoadError)) {
		t.Error("expected the localized load error")
	}
	if strings.Contains(body, "error-banner is-hidden") {
		t.Error("error banner should be visible")
	}
}

func TestToolsOnlyRedirectsRoot(t *testing.T) {
	srv := New(Config{Variants: []content.Variant{content.VariantTools}}, newMemLoader(), nil)
	w := get(t, srv, "/", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/tools" {
		t.Errorf("Location = %q", loc)
	}
}

func TestStaticFiles(t *testing.T) {
	srv := New(Config{}, newMemLoader(), nil)

	w := get(t, srv, "/static/"+site.StyleFile, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q", ct)
	}

	if w := get(t, srv, "/static/missing.js", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing static file status = %d", w.Code)
	}
}

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"main.css": "body{}", "secret.txt": "x"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	srv := New(Config{Assets: site.AssetOptions{Dir: dir, Include: []string{"**/*.css"}}}, newMemLoader(), nil)

	w := get(t, srv, "/assets/main.css", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Pragma"); got != "no-cache" {
		t.Errorf("Pragma = %q", got)
	}
	if w := get(t, srv, "/assets/secret.txt", nil); w.Code != http.StatusNotFound {
		t.Errorf("excluded asset status = %d", w.Code)
	}
}

func TestRelativeItemLinksAreRooted(t *testing.T) {
	l := newMemLoader()
	l.posts = []content.Post{{Title: "X", Path: "posts/x.html"}}
	l.tools = []content.Tool{{TitleEN: "Tool A", Path: "tools/a.html"}}
	srv := New(Config{}, l, nil)

	if body := get(t, srv, "/?lang=en", nil).Body.String(); !strings.Contains(body, `href="/posts/x.html"`) {
		t.Error("post link should be rooted at /")
	}
	if body := get(t, srv, "/tools?lang=en", nil).Body.String(); !strings.Contains(body, `href="/tools/a.html"`) {
		t.Error("tool link should be rooted at /")
	}
}

func TestDocuments(t *testing.T) {
	l := newMemLoader()
	l.docs = map[string]string{
		"posts/x.html": "<html>post</html>",
		"posts/x.json": "{}",
	}
	srv := New(Config{}, l, nil)

	w := get(t, srv, "/posts/x.html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != "<html>post</html>" {
		t.Errorf("body = %q", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	tests := []struct {
		target string
		want   int
	}{
		{"/posts/missing.html", http.StatusNotFound},
		{"/posts/x.json", http.StatusNotFound},
		{"/site.config.json", http.StatusNotFound},
	}
	for _, tt := range tests {
		if w := get(t, srv, tt.target, nil); w.Code != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.target, w.Code, tt.want)
		}
	}
}

func TestDocumentLoadError(t *testing.T) {
	l := newMemLoader()
	l.err = errors.New("boom")
	srv := New(Config{}, l, nil)

	if w := get(t, srv, "/posts/x.html", nil); w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}
