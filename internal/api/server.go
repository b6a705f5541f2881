package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/libra/internal/analyze"
)

// Publisher is the slice of the hermes client the API needs. Nil means
// events are simply not emitted.
type Publisher interface {
	Publish(subject string, data any) error
}

type Server struct {
	router  *chi.Mux
	port    int
	tagline analyze.TaglineGenerator
	events  Publisher
	logger  *slog.Logger
}

func NewServer(port int, apiToken string, tagline analyze.TaglineGenerator, events Publisher, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:  router,
		port:    port,
		tagline: tagline,
		events:  events,
		logger:  logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/libra/status", s.status)

	router.Route("/api/v1/analyze", func(r chi.Router) {
		if apiToken != "" {
			r.Use(bearerAuthMiddleware(apiToken))
		}
		r.Post("/", s.analyzeOneOnOne)
		r.Post("/group", s.analyzeGroup)
		r.Post("/compare", s.analyzeCompare)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"agent":  "libra",
		"status": "ready",
	})
}

// bearerAuthMiddleware guards the analyze routes with a static token.
func bearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
				writeError(w, http.StatusUnauthorized, "invalid or missing bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
