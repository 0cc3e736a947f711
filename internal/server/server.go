package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"paperdesk/internal/db"
	"paperdesk/internal/draft"
	"paperdesk/internal/llm"
	"paperdesk/internal/search"
	"paperdesk/internal/state"
	"paperdesk/internal/web"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the paperdesk web and API server.
type Server struct {
	cfg        Config
	db         *db.DB
	generator  *draft.Generator
	drafts     *draft.Store
	workspace  *state.Store
	searcher   *search.Service
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies and registers every route.
func New(cfg Config, database *db.DB, provider llm.Provider, model string, searcher *search.Service) *Server {
	s := &Server{
		cfg:       cfg,
		db:        database,
		generator: draft.NewGenerator(provider, model),
		drafts:    draft.NewStore(database),
		workspace: state.NewStore(database),
		searcher:  searcher,
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
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	state.RegisterRoutes(r, s.workspace)
	draft.RegisterRoutes(r, s.generator, s.drafts)
	search.RegisterRoutes(r, s.searcher)
	web.RegisterRoutes(r, s.workspace, s.searcher, s.generator)

	r.Get("/ws/draft", draft.StreamHandler(s.generator))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("paperdesk server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
