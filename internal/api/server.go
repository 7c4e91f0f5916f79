// Package api exposes registered areas and their border laps over HTTP,
// with a websocket endpoint that streams a lap cell by cell.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/borderwalk/internal/config"
	"github.com/vovakirdan/borderwalk/internal/storage"
)

// Server is the HTTP API server.
type Server struct {
	server *http.Server
	router *mux.Router
	config config.HTTPConfig
	store  *storage.Store
	logger *log.Logger
}

// NewServer creates an API server. The store may be nil, in which case the
// saved-lap routes answer 503.
func NewServer(cfg config.HTTPConfig, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "borderwalk-api",
		})
	}

	router := mux.NewRouter()
	s := &Server{
		router: router,
		config: cfg,
		store:  store,
		logger: logger,
		server: &http.Server{
			Addr:           cfg.Address,
			Handler:        router,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			MaxHeaderBytes: 1 << 16,
		},
	}

	router.HandleFunc("/areas/", s.handleAreas).Methods("GET")
	router.HandleFunc("/areas/{id}", s.handleArea).Methods("GET")
	router.HandleFunc("/areas/{id}/border", s.handleBorder).Methods("GET")
	router.HandleFunc("/areas/{id}/traces", s.handleSaveTrace).Methods("POST")
	router.HandleFunc("/traces/", s.handleTraces).Methods("GET")
	router.HandleFunc("/traces/{id:[0-9]+}", s.handleTrace).Methods("GET")
	router.HandleFunc("/ws/trace/{id}", s.makeWSHandler(s.streamTrace))
	router.PathPrefix("/").Handler(http.NotFoundHandler())

	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "address", "http://"+s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	e := json.NewEncoder(w)
	if err := e.Encode(data); err != nil {
		s.logger.Warn("cannot encode response", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.jsonResponse(w, r, status, map[string]string{"error": err.Error()})
}
