// Package server serves the rendered pages and the live language/search
// session over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/langctl"
	"github.com/ziadkadry99/bilingo/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS and websocket origins (dev mode)
	Variants []content.Variant
	Assets   site.AssetOptions
	// RequestTimeout bounds page requests. Live sessions are not subject to it.
	RequestTimeout time.Duration
}

// Server renders pages on request and hosts live sessions.
type Server struct {
	cfg        Config
	loader     langctl.DataLoader
	logger     *zap.Logger
	upgrader   websocket.Upgrader
	router     chi.Router
	httpServer *http.Server
}

// New creates a server reading content through loader.
func New(cfg Config, loader langctl.DataLoader, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = content.Variants
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	s := &Server{
		cfg:    cfg,
		loader: loader,
		logger: logger,
	}
	if cfg.AllowAll {
		s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Live sessions outlive any request timeout.
	r.Get("/ws/live", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
		r.Use(NoStore)

		for _, v := range s.cfg.Variants {
			r.Get(site.RoutePath(v), s.handlePage(v))
		}
		if !s.enabled(content.VariantPosts) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, site.RoutePath(s.cfg.Variants[0]), http.StatusFound)
			})
		}
		r.Get("/static/{name}", s.handleStatic)
		r.Handle("/assets/*", http.StripPrefix("/assets/", s.assetHandler()))
		r.Get("/*", s.handleDocument)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("bilingo server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) enabled(v content.Variant) bool {
	for _, e := range s.cfg.Variants {
		if e == v {
			return true
		}
	}
	return false
}
