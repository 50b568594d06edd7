package server

import (
	"bytes"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/langctl"
	"github.com/ziadkadry99/bilingo/internal/loader"
	"github.com/ziadkadry99/bilingo/internal/site"
)

const (
	staticBase = "/static/"
	// linkBase roots relative item links such as posts/x.html.
	linkBase = "/"
)

// handlePage renders a variant in the requested language. The language comes
// from ?lang, then Accept-Language, then the site's default; ?q seeds the
// tools search.
func (s *Server) handlePage(variant content.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := q.Get("q")
		logger := s.logger.With(zap.String("variant", string(variant)))

		page := &langctl.Page{}
		ctl := langctl.New(s.loader, variant, page,
			langctl.WithLogger(logger),
			langctl.WithQuery(query),
			langctl.WithLinkBase(linkBase))

		var err error
		if lang := content.Negotiate(q.Get("lang"), r.Header.Get("Accept-Language"), ""); lang != "" {
			err = ctl.Apply(r.Context(), lang)
		} else {
			err = ctl.Init(r.Context())
		}

		status := http.StatusOK
		if err != nil {
			logger.Warn("rendering page with load error", zap.Error(err))
			status = http.StatusBadGateway
		}

		state := page.State()
		lang := ctl.Language()
		data := site.NewPageData(state, variant, site.ServerLinks(lang, variant, ctl.Query()), staticBase)
		data.LiveURL = liveURL(variant, lang, ctl.Query())

		var buf bytes.Buffer
		if err := site.WritePage(&buf, data); err != nil {
			logger.Error("writing page", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Language", string(lang))
		w.Header().Set("Vary", "Accept-Language")
		w.WriteHeader(status)
		w.Write(buf.Bytes())
	}
}

// liveURL is the websocket endpoint a served page connects back to.
func liveURL(variant content.Variant, lang content.Language, query string) string {
	v := url.Values{}
	v.Set("variant", string(variant))
	v.Set("lang", string(lang))
	if query != "" {
		v.Set("q", query)
	}
	return "/ws/live?" + v.Encode()
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	body, ok := site.StaticAsset(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", mime.TypeByExtension(path.Ext(name)))
	w.Write([]byte(body))
}

// assetHandler serves the assets directory, limited to files the build
// would copy.
func (s *Server) assetHandler() http.Handler {
	if s.cfg.Assets.Dir == "" {
		return http.NotFoundHandler()
	}
	files := http.FileServer(http.Dir(s.cfg.Assets.Dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := filepath.FromSlash(path.Clean("/" + r.URL.Path))[1:]
		if rel == "" || !site.MatchesInclude(rel, s.cfg.Assets.Include) || site.MatchesExclude(rel, s.cfg.Assets.Exclude) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// handleDocument serves the HTML documents item links point at, such as
// posts/x.html, straight from the content source.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	docs, ok := s.loader.(site.DocumentLoader)
	if !ok {
		http.NotFound(w, r)
		return
	}
	rel, ok := site.DocumentPath(chi.URLParam(r, "*"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch path.Ext(rel) {
	case ".html", ".htm":
	default:
		http.NotFound(w, r)
		return
	}

	body, err := docs.LoadDocument(r.Context(), rel)
	if err != nil {
		var fe *loader.FetchError
		if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
			http.NotFound(w, r)
			return
		}
		s.logger.Warn("loading document", zap.String("path", rel), zap.Error(err))
		http.Error(w, "upstream error", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
