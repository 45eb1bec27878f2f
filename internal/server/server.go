// Package server exposes question generation and sentence analysis over
// HTTP for the terminal client and any browser front end.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 64 << 10

// FallbackHeader is set to "true" when a response came from the local
// fallback instead of the model.
const FallbackHeader = "X-Quiz-Fallback"

// SentenceAnalyzer scores learner sentences. Analyze never fails.
type SentenceAnalyzer interface {
	Analyze(ctx context.Context, req sentence.Request) *sentence.Analysis
}

// Options configures the HTTP layer.
type Options struct {
	// AllowedOrigins for CORS. Empty or "*" allows any origin.
	AllowedOrigins []string
}

// Server holds the handlers' dependencies. Handlers keep no per-request
// state between calls.
type Server struct {
	generator questiongen.Generator
	analyzer  SentenceAnalyzer
	opts      Options
}

// New creates a Server.
func New(gen questiongen.Generator, analyzer SentenceAnalyzer, opts Options) *Server {
	return &Server{generator: gen, analyzer: analyzer, opts: opts}
}

// Routes builds the chi router with middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.corsHandler())

	r.Get("/healthz", s.healthz)
	r.Get("/categories", s.listCategories)
	r.Post("/generate-questions", s.generateQuestions)
	r.Post("/analyze-sentence", s.analyzeSentence)
	return r
}

func (s *Server) corsHandler() func(http.Handler) http.Handler {
	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{FallbackHeader},
		MaxAge:         300,
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		config.Logger().WithField("addr", addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		config.Logger().Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
