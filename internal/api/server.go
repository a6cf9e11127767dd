// Package api serves the recommendation engine over HTTP.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/coursefit/internal/advice"
	"github.com/abhisek/coursefit/internal/catalog"
)

// Advisor produces counselor advice for a ranked run.
type Advisor interface {
	Advise(ctx context.Context, in advice.Input) (*advice.Advice, error)
}

// Options configure the middleware stack.
type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	Compress       bool
}

// Server holds the dependencies shared by the handlers.
type Server struct {
	catalog *catalog.Catalog
	advisor Advisor
	opts    Options
}

// New creates a server over cat. A nil advisor disables the advice
// endpoint, which then answers 503.
func New(cat *catalog.Catalog, advisor Advisor, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 15 * time.Second
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	return &Server{catalog: cat, advisor: advisor, opts: opts}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))
	if s.opts.Compress {
		r.Use(compressor().Handler)
	}

	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/subjects", s.listSubjects)
		r.Get("/interests", s.listInterests)
		r.Post("/aps", s.computeAPS)

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", s.listCourses)
			r.Get("/{courseID}", s.getCourse)
			r.Post("/{courseID}/check", s.checkCourse)
		})

		r.Post("/recommendations", s.recommend)
		r.Post("/recommendations/advice", s.advise)
	})
	return r
}

// compressor negotiates brotli ahead of gzip and deflate.
func compressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, "application/json", "text/plain", "text/csv")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}
