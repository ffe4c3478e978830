package countries

import "strings"

// MaxSuggestions caps the autocomplete panel size.
const MaxSuggestions = 5

// Suggestion is one autocomplete candidate. MatchStart and MatchLen locate
// the matched substring inside CommonName so renderers can highlight it.
type Suggestion struct {
	Country    Country
	MatchStart int
	MatchLen   int
}

// Catalog is the full country set, sorted by common name, loaded once per
// session and read-only afterwards. It backs autocomplete and is never
// rendered directly.
type Catalog struct {
	countries []Country
}

// NewCatalog copies and sorts the given countries into a catalog.
func NewCatalog(list []Country) *Catalog {
	cs := make([]Country, len(list))
	copy(cs, list)
	SortByName(cs)
	return &Catalog{countries: cs}
}

// Len returns the number of countries in the catalog.
func (c *Catalog) Len() int {
	return len(c.countries)
}

// Countries returns the sorted catalog contents.
func (c *Catalog) Countries() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Suggest returns up to MaxSuggestions countries whose common name contains
// query case-insensitively, in catalog order. An empty or whitespace-only
// query yields nil, which callers treat as "hide the suggestion panel".
func (c *Catalog) Suggest(query string) []Suggestion {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	lower := strings.ToLower(q)

	var out []Suggestion
	for _, country := range c.countries {
		idx := strings.Index(strings.ToLower(country.CommonName), lower)
		if idx < 0 {
			continue
		}
		out = append(out, Suggestion{
			Country:    country,
			MatchStart: idx,
			MatchLen:   len(lower),
		})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
