package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Web UI
	mux.HandleFunc("GET /{$}", s.HandleBrowse)
	mux.HandleFunc("GET /country/{code}", s.HandleCountry)

	// JSON API with method-specific routing
	mux.HandleFunc("GET /api/search", s.HandleSearch)
	mux.HandleFunc("GET /api/suggest", s.HandleSuggest)
	mux.HandleFunc("GET /fragment/suggest", s.HandleSuggestFragment)
	mux.HandleFunc("GET /ws/suggest", s.HandleSuggestWS)
	mux.HandleFunc("POST /api/feedback", s.HandleSubmitFeedback)
	mux.HandleFunc("GET /api/feedback", s.HandleListFeedback)
	mux.HandleFunc("GET /health", s.HandleHealth)
}
