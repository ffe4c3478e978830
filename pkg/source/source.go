// Package source implements the remote lookup gateway for the public country
// data API. Five lookup kinds share one parametrized operation; each kind
// carries its own endpoint path and failure mapping, so callers get a uniform
// country list back regardless of which filter triggered the request.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/log"
)

// Kind selects which remote lookup to issue.
type Kind int

const (
	All Kind = iota
	ByName
	ByCode
	ByCapital
	ByRegion
)

func (k Kind) String() string {
	switch k {
	case All:
		return "all"
	case ByName:
		return "name"
	case ByCode:
		return "code"
	case ByCapital:
		return "capital"
	case ByRegion:
		return "region"
	default:
		return "unknown"
	}
}

// Lookup failure taxonomy. Name and all lookups degrade to an empty list
// instead; code, capital and region failures are distinguishable so callers
// can decide what to surface.
var (
	ErrInvalidCode     = errors.New("invalid country code")
	ErrCapitalNotFound = errors.New("capital not found")
	ErrRegionNotFound  = errors.New("region not found")
)

// allFields trims /all responses to the record shape we consume; the
// upstream rejects unscoped /all requests.
const allFields = "name,cca2,capital,region,subregion,population,area,timezones,idd,flags,coatOfArms,maps"

// kindSpec holds the per-kind endpoint path and error mapping. A nil failure
// means transport or upstream errors collapse into an empty result list.
type kindSpec struct {
	path    string
	query   string
	failure error
}

var kindSpecs = map[Kind]kindSpec{
	All:       {path: "/all", query: "fields=" + allFields},
	ByName:    {path: "/name/"},
	ByCode:    {path: "/alpha/", failure: ErrInvalidCode},
	ByCapital: {path: "/capital/", failure: ErrCapitalNotFound},
	ByRegion:  {path: "/region/", failure: ErrRegionNotFound},
}

// Client issues lookups against the country data source.
type Client struct {
	baseURL string
	client  *http.Client
	busy    func(bool)
}

// NewClient creates a lookup client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SetBusyFunc registers a hook invoked with true when a lookup starts and
// false when it completes or fails. There is no shared busy flag; each caller
// decides how to display in-flight state.
func (c *Client) SetBusyFunc(fn func(bool)) {
	c.busy = fn
}

// Lookup issues exactly one remote lookup of the given kind.
//
// Failure semantics per kind:
//   - All, ByName: empty list and nil error on any transport, status or
//     decode failure ("no results" is indistinguishable from failure).
//   - ByCode: ErrInvalidCode wrapped around the cause.
//   - ByCapital, ByRegion: ErrCapitalNotFound / ErrRegionNotFound likewise.
func (c *Client) Lookup(ctx context.Context, kind Kind, key string) ([]countries.Country, error) {
	l := log.ForComponent("source")
	spec, ok := kindSpecs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown lookup kind %d", int(kind))
	}

	if c.busy != nil {
		c.busy(true)
		defer c.busy(false)
	}

	reqURL := c.baseURL + spec.path
	if kind != All {
		reqURL += url.PathEscape(key)
	}
	if spec.query != "" {
		reqURL += "?" + spec.query
	}
	l.Debugf("lookup %s %q: %s", kind, key, reqURL)

	list, err := c.fetch(ctx, reqURL)
	if err != nil {
		if spec.failure != nil {
			return nil, fmt.Errorf("%w: %v", spec.failure, err)
		}
		l.Debugf("lookup %s %q failed, returning empty list: %v", kind, key, err)
		return []countries.Country{}, nil
	}

	if kind == All {
		countries.SortByName(list)
	}
	return list, nil
}

// AllCountries fetches every record, sorted by common name. Used to seed the
// autocomplete catalog and as the default view.
func (c *Client) AllCountries(ctx context.Context) ([]countries.Country, error) {
	return c.Lookup(ctx, All, "")
}

func (c *Client) fetch(ctx context.Context, reqURL string) ([]countries.Country, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country API returned status %d", resp.StatusCode)
	}

	var records []countryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding country list: %w", err)
	}

	list := make([]countries.Country, 0, len(records))
	for _, r := range records {
		list = append(list, r.normalize())
	}
	return list, nil
}

// countryRecord mirrors the upstream JSON entity shape.
type countryRecord struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA2       string   `json:"cca2"`
	Capital    []string `json:"capital"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Timezones  []string `json:"timezones"`
	IDD        struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
	CoatOfArms struct {
		PNG string `json:"png"`
	} `json:"coatOfArms"`
	Maps struct {
		GoogleMaps string `json:"googleMaps"`
	} `json:"maps"`
}

func (r countryRecord) normalize() countries.Country {
	capital := ""
	if len(r.Capital) > 0 {
		capital = r.Capital[0]
	}
	return countries.Country{
		CommonName:    r.Name.Common,
		OfficialName:  r.Name.Official,
		Code:          r.CCA2,
		Capital:       capital,
		Region:        r.Region,
		Subregion:     r.Subregion,
		Population:    r.Population,
		Area:          r.Area,
		Timezones:     r.Timezones,
		DialRoot:      r.IDD.Root,
		DialSuffixes:  r.IDD.Suffixes,
		FlagURL:       r.Flags.PNG,
		CoatOfArmsURL: r.CoatOfArms.PNG,
		MapURL:        r.Maps.GoogleMaps,
	}
}
