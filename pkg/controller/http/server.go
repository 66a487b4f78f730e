package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr    string
	vendor  string
	name    string
	maxBody int64
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithPackage sets the package whose latest release is served
func WithPackage(vendor, name string) Option {
	return func(c *config) {
		c.vendor = vendor
		c.name = name
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	releaseUC interfaces.ReleaseUseCase,
	readmeUC interfaces.ReadmeUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:    "localhost:8080",
		vendor:  "laravel",
		name:    "laravel",
		maxBody: 1 << 20,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	api := &apiHandler{
		releaseUC: releaseUC,
		readmeUC:  readmeUC,
		vendor:    cfg.vendor,
		name:      cfg.name,
		maxBody:   cfg.maxBody,
	}
	router.Route("/api", func(r chi.Router) {
		r.Get("/releases/latest", api.handleLatestRelease)
		r.Post("/readme", api.handleReadme)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
