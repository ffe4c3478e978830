// Package api serves the web UI and the JSON API: country browsing backed by
// the remote lookup gateway, autocomplete over the in-memory catalog, and
// the feedback persistence endpoint.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/log"
	"github.com/rferrer/mundi/pkg/render"
	"github.com/rferrer/mundi/pkg/source"
	"github.com/rferrer/mundi/pkg/storage"
)

// Server holds the handlers' dependencies. The catalog is loaded once at
// startup and read-only afterwards; pageSize may change on config reload.
type Server struct {
	client   *source.Client
	catalog  *countries.Catalog
	store    *storage.Store
	renderer *render.Renderer

	mu       sync.RWMutex
	pageSize int
}

// NewServer wires the handlers. store may be nil when serving without a
// feedback database (feedback endpoints then report unavailability).
func NewServer(client *source.Client, catalog *countries.Catalog, store *storage.Store, pageSize int) (*Server, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = 9
	}
	return &Server{
		client:   client,
		catalog:  catalog,
		store:    store,
		renderer: renderer,
		pageSize: pageSize,
	}, nil
}

// SetPageSize updates the page size, used by the config hot-reload.
func (s *Server) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.pageSize = n
	s.mu.Unlock()
}

// PageSize returns the current page size.
func (s *Server) PageSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageSize
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.ForComponent("api").Errorf("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}
	s.writeJSON(w, status, response)
}

// CorsMiddleware allows browser clients on other origins to use the API.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
