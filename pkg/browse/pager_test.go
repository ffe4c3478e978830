package browse

import (
	"fmt"
	"testing"

	"github.com/rferrer/mundi/pkg/countries"
)

type fakeSurface struct {
	pages   []PageView
	empties int
	notices []string
}

func (s *fakeSurface) ShowPage(view PageView) { s.pages = append(s.pages, view) }
func (s *fakeSurface) ShowEmpty()             { s.empties++ }
func (s *fakeSurface) ShowNotice(msg string)  { s.notices = append(s.notices, msg) }

func (s *fakeSurface) lastPage(t *testing.T) PageView {
	t.Helper()
	if len(s.pages) == 0 {
		t.Fatalf("no page rendered")
	}
	return s.pages[len(s.pages)-1]
}

func makeCountries(n int) []countries.Country {
	out := make([]countries.Country, n)
	for i := range out {
		out[i] = countries.Country{CommonName: fmt.Sprintf("Country %02d", i+1)}
	}
	return out
}

func TestReplaceResetsToPageOne(t *testing.T) {
	surface := &fakeSurface{}
	pager := NewPager(9, surface)

	pager.Replace(makeCountries(20))
	pager.GoNext()
	if pager.Page() != 2 {
		t.Fatalf("expected page 2 after GoNext, got %d", pager.Page())
	}

	pager.Replace(makeCountries(20))
	if pager.Page() != 1 {
		t.Fatalf("expected page 1 after Replace, got %d", pager.Page())
	}
}

func TestReplaceSortsByName(t *testing.T) {
	surface := &fakeSurface{}
	pager := NewPager(9, surface)

	pager.Replace([]countries.Country{
		{CommonName: "Chile"},
		{CommonName: "Albania"},
		{CommonName: "Brazil"},
	})

	view := surface.lastPage(t)
	want := []string{"Albania", "Brazil", "Chile"}
	for i, name := range want {
		if view.Countries[i].CommonName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, view.Countries[i].CommonName)
		}
	}
}

func TestTenEntitiesTwoPages(t *testing.T) {
	surface := &fakeSurface{}
	pager := NewPager(9, surface)

	pager.Replace(makeCountries(10))

	view := surface.lastPage(t)
	if view.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", view.TotalPages)
	}
	if len(view.Countries) != 9 {
		t.Fatalf("expected 9 countries on page 1, got %d", len(view.Countries))
	}
	if view.TotalCount != 10 {
		t.Errorf("count indicator must show full set size, got %d", view.TotalCount)
	}
	if view.HasPrevious {
		t.Errorf("previous must be disabled on page 1")
	}

	pager.GoNext()
	view = surface.lastPage(t)
	if view.Page != 2 || len(view.Countries) != 1 {
		t.Fatalf("expected 1 country on page 2, got page %d with %d", view.Page, len(view.Countries))
	}
	if view.Countries[0].CommonName != "Country 10" {
		t.Errorf("expected Country 10 on page 2, got %s", view.Countries[0].CommonName)
	}
	if view.HasNext {
		t.Errorf("next must be disabled on the last page")
	}
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	surface := &fakeSurface{}
	pager := NewPager(9, surface)
	pager.Replace(makeCountries(10))

	pager.GoPrevious()
	if pager.Page() != 1 {
		t.Fatalf("GoPrevious at page 1 must be ignored, got page %d", pager.Page())
	}

	pager.GoNext()
	pager.GoNext()
	if pager.Page() != 2 {
		t.Fatalf("GoNext at last page must be ignored, got page %d", pager.Page())
	}
}

func TestEmptyResultSet(t *testing.T) {
	surface := &fakeSurface{}
	pager := NewPager(9, surface)

	if pager.Loaded() {
		t.Fatalf("pager must start in the not-yet-loaded state")
	}

	pager.Replace(nil)
	if !pager.Loaded() {
		t.Fatalf("empty result set is a valid loaded state")
	}
	if surface.empties != 1 {
		t.Fatalf("expected one empty render, got %d", surface.empties)
	}
	if _, ok := pager.View(); ok {
		t.Fatalf("View must report no visible page for an empty set")
	}
}

func TestPaginateClampsPage(t *testing.T) {
	list := makeCountries(10)

	view := Paginate(list, 99, 9)
	if view.Page != 2 {
		t.Fatalf("expected clamp to page 2, got %d", view.Page)
	}
	view = Paginate(list, 0, 9)
	if view.Page != 1 {
		t.Fatalf("expected clamp to page 1, got %d", view.Page)
	}
	view = Paginate(nil, 1, 9)
	if view.TotalPages != 1 || len(view.Countries) != 0 {
		t.Fatalf("empty list must paginate to one empty page, got %+v", view)
	}
}
