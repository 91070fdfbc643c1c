package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reskiapp/reski/internal/store"
)

// Server is the local development server implementing the Reski career
// service surface: goals, tracks and the assistant chat endpoint.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	hub        *Hub
	apiKey     string
}

// Config holds server configuration.
type Config struct {
	Port   int
	APIKey string
}

// New creates a new Server.
func New(cfg Config, s *store.Store) *Server {
	srv := &Server{
		store:  s,
		hub:    NewHub(),
		apiKey: cfg.APIKey,
	}
	go srv.hub.Run()

	mux := http.NewServeMux()
	srv.registerRoutes(mux)

	// Build middleware chain: recovery -> request id -> logging -> auth -> routes
	var handler http.Handler = mux
	handler = AuthMiddleware(cfg.APIKey)(handler)
	handler = LoggingMiddleware(handler)
	handler = RequestIDMiddleware(handler)
	handler = RecoveryMiddleware(handler)

	srv.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return srv
}

// registerRoutes sets up the HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check (exempt from auth in AuthMiddleware)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Assistant
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /monitor", s.handleMonitor)

	// Goals
	mux.HandleFunc("GET /objetivos", s.handleListGoals)
	mux.HandleFunc("POST /objetivos", s.handleCreateGoal)
	mux.HandleFunc("PUT /objetivos/{id}", s.handleUpdateGoal)
	mux.HandleFunc("DELETE /objetivos/{id}", s.handleDeleteGoal)

	// Tracks
	mux.HandleFunc("GET /trilhas", s.handleListTracks)
	mux.HandleFunc("POST /trilhas", s.handleCreateTrack)
	mux.HandleFunc("PUT /trilhas/{id}", s.handleUpdateTrack)
	mux.HandleFunc("DELETE /trilhas/{id}", s.handleDeleteTrack)
}

// handleHealth responds to health checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Handler returns the server's handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	// Channel for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Channel for server errors
	serverErr := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("received signal %v, shutting down", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	log.Printf("server stopped gracefully")
	return nil
}
