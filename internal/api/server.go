package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/awarelabs/aware/internal/analysis"
	"github.com/awarelabs/aware/internal/auth"
)

// ServerConfig wires the server's dependencies. Auth may be nil, which
// leaves every endpoint open; intended for local development only.
type ServerConfig struct {
	Analyzer *analysis.Analyzer
	Auth     *auth.Service
}

type Server struct {
	router      *chi.Mux
	analyzer    *analysis.Analyzer
	authService *auth.Service
}

func NewServer(cfg ServerConfig) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{router: r, analyzer: cfg.Analyzer, authService: cfg.Auth}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		if s.authService != nil {
			r.Post("/auth/token", s.handleToken)
		}

		r.Group(func(r chi.Router) {
			if s.authService != nil {
				r.Use(auth.Middleware(s.authService))
			}

			r.Post("/analyze", s.handleAnalyze)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
