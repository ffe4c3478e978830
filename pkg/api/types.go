package api

import (
	"time"

	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/storage"
)

type CountryResponse struct {
	CommonName   string   `json:"common_name"`
	OfficialName string   `json:"official_name"`
	Code         string   `json:"code"`
	Capital      string   `json:"capital,omitempty"`
	Region       string   `json:"region"`
	Subregion    string   `json:"subregion,omitempty"`
	Population   int64    `json:"population"`
	Area         float64  `json:"area"`
	Timezones    []string `json:"timezones"`
	DialCode     string   `json:"dial_code,omitempty"`
	Flag         string   `json:"flag"`
	CoatOfArms   string   `json:"coat_of_arms,omitempty"`
	Map          string   `json:"map,omitempty"`
}

func toCountryResponse(c countries.Country) CountryResponse {
	return CountryResponse{
		CommonName:   c.CommonName,
		OfficialName: c.OfficialName,
		Code:         c.Code,
		Capital:      c.Capital,
		Region:       c.Region,
		Subregion:    c.Subregion,
		Population:   c.Population,
		Area:         c.Area,
		Timezones:    c.Timezones,
		DialCode:     c.DialCode(),
		Flag:         c.FlagURL,
		CoatOfArms:   c.Crest(),
		Map:          c.MapURL,
	}
}

type SearchResponse struct {
	Countries   []CountryResponse `json:"countries"`
	TotalCount  int               `json:"total_count"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"total_pages"`
	HasPrevious bool              `json:"has_previous"`
	HasNext     bool              `json:"has_next"`
}

type SuggestionResponse struct {
	Country    CountryResponse `json:"country"`
	MatchStart int             `json:"match_start"`
	MatchLen   int             `json:"match_len"`
}

type SuggestResponse struct {
	Query       string               `json:"query"`
	Suggestions []SuggestionResponse `json:"suggestions"`
	Count       int                  `json:"count"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type FeedbackAckResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ListFeedbackResponse struct {
	Feedback []storage.Feedback `json:"feedback"`
	Count    int                `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
