package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rferrer/mundi/pkg/browse"
	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/log"
	"github.com/rferrer/mundi/pkg/render"
	"github.com/rferrer/mundi/pkg/source"
	"github.com/rferrer/mundi/pkg/version"
)

// regions is the enumerated region filter set offered by the UI.
var regions = []string{"Africa", "Americas", "Antarctic", "Asia", "Europe", "Oceania"}

func parseFilters(q url.Values) browse.Filters {
	return browse.Filters{
		Name:    q.Get("name"),
		Code:    q.Get("code"),
		Capital: q.Get("capital"),
		Region:  q.Get("region"),
	}
}

func parsePage(q url.Values) int {
	if pageStr := q.Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 1
}

// HandleBrowse renders the web browse page: filter form, card grid for the
// requested page, pagination controls and the result count.
func (s *Server) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := parseFilters(q)
	page := parsePage(q)

	kind, key := browse.ChooseLookup(filters)
	result, err := s.client.Lookup(r.Context(), kind, key)

	data := render.BrowseData{
		Filters: filters,
		Regions: regions,
	}
	switch {
	case err != nil && errors.Is(err, source.ErrInvalidCode):
		data.Empty = true
		data.Notice = "invalid code"
	case err != nil:
		data.Empty = true
	case len(result) == 0:
		data.Empty = true
	default:
		countries.SortByName(result)
		view := browse.Paginate(result, page, s.PageSize())
		data.View = view
		if view.HasPrevious {
			data.PrevURL = pageURL(filters, view.Page-1)
		}
		if view.HasNext {
			data.NextURL = pageURL(filters, view.Page+1)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.BrowsePage(w, data); err != nil {
		log.ForComponent("api").Errorf("rendering browse page: %v", err)
	}
}

func pageURL(f browse.Filters, page int) string {
	q := url.Values{}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Code != "" {
		q.Set("code", f.Code)
	}
	if f.Capital != "" {
		q.Set("capital", f.Capital)
	}
	if f.Region != "" {
		q.Set("region", f.Region)
	}
	q.Set("page", strconv.Itoa(page))
	return "/?" + q.Encode()
}

// HandleCountry renders the detail view for one country code.
func (s *Server) HandleCountry(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	result, err := s.client.Lookup(r.Context(), source.ByCode, code)
	if err != nil || len(result) == 0 {
		http.Error(w, fmt.Sprintf("no country with code %q", code), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.DetailPage(w, render.DetailData{Country: result[0]}); err != nil {
		log.ForComponent("api").Errorf("rendering detail page: %v", err)
	}
}

// HandleSearch is the JSON counterpart of the browse page. It applies the
// same filter precedence and pagination.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := parseFilters(q)
	page := parsePage(q)

	kind, key := browse.ChooseLookup(filters)
	result, err := s.client.Lookup(r.Context(), kind, key)
	if err != nil {
		if errors.Is(err, source.ErrInvalidCode) {
			s.writeError(w, http.StatusNotFound, "invalid code", fmt.Sprintf("no country with code %q", filters.Code))
			return
		}
		result = nil
	}

	countries.SortByName(result)
	view := browse.Paginate(result, page, s.PageSize())
	slice := make([]CountryResponse, len(view.Countries))
	for i, c := range view.Countries {
		slice[i] = toCountryResponse(c)
	}

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Countries:   slice,
		TotalCount:  view.TotalCount,
		Page:        view.Page,
		TotalPages:  view.TotalPages,
		HasPrevious: view.HasPrevious,
		HasNext:     view.HasNext,
	})
}

// HandleSuggest returns autocomplete candidates for the name filter.
func (s *Server) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	suggestions := s.catalog.Suggest(query)
	out := make([]SuggestionResponse, len(suggestions))
	for i, sg := range suggestions {
		out[i] = SuggestionResponse{
			Country:    toCountryResponse(sg.Country),
			MatchStart: sg.MatchStart,
			MatchLen:   sg.MatchLen,
		}
	}

	s.writeJSON(w, http.StatusOK, SuggestResponse{
		Query:       query,
		Suggestions: out,
		Count:       len(out),
	})
}

// HandleSuggestFragment renders the suggestion panel as an HTML fragment for
// the browse page's inline autocomplete.
func (s *Server) HandleSuggestFragment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions := s.catalog.Suggest(query)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.SuggestFragment(w, suggestions); err != nil {
		log.ForComponent("api").Errorf("rendering suggest fragment: %v", err)
	}
}

// HandleSubmitFeedback validates and persists one rating/comment pair.
func (s *Server) HandleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "feedback unavailable", "no feedback store configured")
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid body", err.Error())
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		s.writeError(w, http.StatusBadRequest, "invalid rating", "rating must be between 1 and 5")
		return
	}
	if strings.TrimSpace(req.Comment) == "" {
		s.writeError(w, http.StatusBadRequest, "missing comment", "comment must not be empty")
		return
	}

	fb, err := s.store.Save(req.Rating, req.Comment)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "storing feedback failed", err.Error())
		return
	}
	log.ForComponent("api").Infof("stored feedback %s (%d stars)", fb.ID, fb.Rating)

	s.writeJSON(w, http.StatusCreated, FeedbackAckResponse{ID: fb.ID, Status: "stored"})
}

// HandleListFeedback lists stored feedback, newest first.
func (s *Server) HandleListFeedback(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "feedback unavailable", "no feedback store configured")
		return
	}

	records, err := s.store.List(100)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "listing feedback failed", err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, ListFeedbackResponse{Feedback: records, Count: len(records)})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.APIVersion(),
	})
}
