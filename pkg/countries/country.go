package countries

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Country is one country record as returned by the data source. Records are
// never mutated after retrieval; a fresh lookup replaces them wholesale.
type Country struct {
	CommonName    string
	OfficialName  string
	Code          string // ISO alpha-2, unique identifier
	Capital       string // empty when the source reports none
	Region        string
	Subregion     string
	Population    int64
	Area          float64
	Timezones     []string
	DialRoot      string
	DialSuffixes  []string
	FlagURL       string
	CoatOfArmsURL string
	MapURL        string
}

// Crest returns the coat of arms image, falling back to the flag when the
// source has none.
func (c Country) Crest() string {
	if c.CoatOfArmsURL != "" {
		return c.CoatOfArmsURL
	}
	return c.FlagURL
}

// DialCode joins the dial root with the first suffix ("+3" + "4" -> "+34").
// Countries with many suffixes (e.g. +1 area codes) report the root alone.
func (c Country) DialCode() string {
	if c.DialRoot == "" {
		return ""
	}
	if len(c.DialSuffixes) == 1 {
		return c.DialRoot + c.DialSuffixes[0]
	}
	return c.DialRoot
}

// SortByName orders countries by common name in place using a locale-aware
// collation. Every result list shown to the user goes through this ordering.
func SortByName(list []Country) {
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		return coll.CompareString(list[i].CommonName, list[j].CommonName) < 0
	})
}
