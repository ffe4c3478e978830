package render

import (
	"strings"
	"testing"

	"github.com/rferrer/mundi/pkg/browse"
	"github.com/rferrer/mundi/pkg/countries"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("parsing templates: %v", err)
	}
	return r
}

func TestBrowsePageOutput(t *testing.T) {
	r := newRenderer(t)

	data := BrowseData{
		View: browse.PageView{
			Countries: []countries.Country{
				{CommonName: "Spain", Code: "ES", Capital: "Madrid", Region: "Europe", Population: 47351567, FlagURL: "es.png"},
			},
			Page:       1,
			TotalPages: 2,
			TotalCount: 10,
			HasNext:    true,
		},
		Filters: browse.Filters{Region: "Europe"},
		Regions: []string{"Africa", "Europe"},
		NextURL: "/?page=2&region=Europe",
	}

	var out strings.Builder
	if err := r.BrowsePage(&out, data); err != nil {
		t.Fatalf("rendering: %v", err)
	}
	html := out.String()

	for _, want := range []string{
		"Spain",
		"/country/ES",
		"47,351,567",
		"10 countries",
		"Page 1 of 2",
		`<option value="Europe" selected>`,
		`href="/?page=2&amp;region=Europe"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("browse page missing %q", want)
		}
	}

	// Page 1 of 2: previous disabled, next active.
	if !strings.Contains(html, `<span class="btn disabled">Previous</span>`) {
		t.Errorf("expected a disabled previous control")
	}
	if strings.Contains(html, `<span class="btn disabled">Next</span>`) {
		t.Errorf("next must be active on page 1 of 2")
	}
}

func TestBrowsePageEmptyAndNotice(t *testing.T) {
	r := newRenderer(t)

	var out strings.Builder
	err := r.BrowsePage(&out, BrowseData{Empty: true, Notice: "invalid code"})
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	html := out.String()

	if !strings.Contains(html, "No countries found.") {
		t.Errorf("expected the empty state")
	}
	if !strings.Contains(html, "invalid code") {
		t.Errorf("expected the notice")
	}
}

func TestDetailPageOutput(t *testing.T) {
	r := newRenderer(t)

	country := countries.Country{
		CommonName:   "Spain",
		OfficialName: "Kingdom of Spain",
		Code:         "ES",
		Capital:      "Madrid",
		Region:       "Europe",
		Subregion:    "Southern Europe",
		Population:   47351567,
		Area:         505992,
		Timezones:    []string{"UTC", "UTC+01:00"},
		DialRoot:     "+3",
		DialSuffixes: []string{"4"},
		FlagURL:      "es.png",
		MapURL:       "https://maps.example.test/es",
	}

	var out strings.Builder
	if err := r.DetailPage(&out, DetailData{Country: country}); err != nil {
		t.Fatalf("rendering: %v", err)
	}
	html := out.String()

	for _, want := range []string{
		"Kingdom of Spain",
		"Madrid",
		"Europe / Southern Europe",
		"505992 km²",
		"UTC, UTC+01:00",
		"+34",
		"https://maps.example.test/es",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
}

func TestSuggestFragment(t *testing.T) {
	r := newRenderer(t)

	suggestions := []countries.Suggestion{
		{Country: countries.Country{CommonName: "Chile", Code: "CL"}, MatchStart: 1, MatchLen: 3},
	}

	var out strings.Builder
	if err := r.SuggestFragment(&out, suggestions); err != nil {
		t.Fatalf("rendering: %v", err)
	}
	html := out.String()

	// The matched span bolds at its actual offset inside the name.
	if !strings.Contains(html, "C<strong>hil</strong>e") {
		t.Errorf("expected the bolded match span, got %q", html)
	}
	if !strings.Contains(html, "/country/CL") {
		t.Errorf("expected a detail link, got %q", html)
	}

	out.Reset()
	if err := r.SuggestFragment(&out, nil); err != nil {
		t.Fatalf("rendering empty fragment: %v", err)
	}
	if strings.TrimSpace(out.String()) != "" {
		t.Errorf("empty suggestion list must render nothing, got %q", out.String())
	}
}

func TestGroupInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := groupInt(tt.in); got != tt.want {
			t.Errorf("groupInt(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestHighlightMatchEscapes(t *testing.T) {
	sg := countries.Suggestion{
		Country:    countries.Country{CommonName: "A<b>land"},
		MatchStart: 0,
		MatchLen:   1,
	}
	got := string(highlightMatch(sg))
	if strings.Contains(got, "<b>") {
		t.Errorf("name must be escaped, got %q", got)
	}
	if !strings.HasPrefix(got, "<strong>A</strong>") {
		t.Errorf("expected the first rune bolded, got %q", got)
	}
}

func TestHighlightMatchOutOfBounds(t *testing.T) {
	sg := countries.Suggestion{
		Country:    countries.Country{CommonName: "Chad"},
		MatchStart: 2,
		MatchLen:   10,
	}
	if got := string(highlightMatch(sg)); got != "Chad" {
		t.Errorf("out of bounds span must render plain, got %q", got)
	}
}
