package browse

import (
	"sync"

	"github.com/rferrer/mundi/pkg/countries"
)

// Pager owns the result set and its pagination cursor. The result set is
// replaced wholesale by every successful lookup; nothing mutates it in place.
type Pager struct {
	mu       sync.Mutex
	results  []countries.Country
	page     int
	pageSize int
	loaded   bool
	surface  Surface
}

// NewPager creates a pager rendering to the given surface. pageSize is fixed
// for the pager's lifetime.
func NewPager(pageSize int, surface Surface) *Pager {
	if pageSize <= 0 {
		pageSize = 9
	}
	return &Pager{pageSize: pageSize, page: 1, surface: surface}
}

// Replace installs a new result set, sorted by common name, resets the
// cursor to page 1 and re-renders. Empty input is a valid result set and
// renders the empty view.
func (p *Pager) Replace(list []countries.Country) {
	p.mu.Lock()
	results := make([]countries.Country, len(list))
	copy(results, list)
	countries.SortByName(results)
	p.results = results
	p.page = 1
	p.loaded = true
	view, empty := p.viewLocked()
	p.mu.Unlock()

	p.render(view, empty)
}

// Render re-emits the current page without changing state.
func (p *Pager) Render() {
	p.mu.Lock()
	view, empty := p.viewLocked()
	p.mu.Unlock()
	p.render(view, empty)
}

// GoNext advances one page. At the last page the request is silently ignored.
func (p *Pager) GoNext() {
	p.move(1)
}

// GoPrevious goes back one page. At page 1 the request is silently ignored.
func (p *Pager) GoPrevious() {
	p.move(-1)
}

func (p *Pager) move(delta int) {
	p.mu.Lock()
	next := p.page + delta
	if next < 1 || next > p.totalPagesLocked() {
		p.mu.Unlock()
		return
	}
	p.page = next
	view, empty := p.viewLocked()
	p.mu.Unlock()
	p.render(view, empty)
}

// Page returns the current page number.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Len returns the result set size.
func (p *Pager) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.results)
}

// Loaded reports whether a result set has been installed at all; an empty
// set is distinct from "not yet loaded".
func (p *Pager) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// View returns the current page view. ok is false while the result set is
// empty or not yet loaded.
func (p *Pager) View() (PageView, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	view, empty := p.viewLocked()
	return view, !empty
}

func (p *Pager) totalPagesLocked() int {
	n := (len(p.results) + p.pageSize - 1) / p.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

func (p *Pager) viewLocked() (PageView, bool) {
	if len(p.results) == 0 {
		return PageView{}, true
	}
	total := p.totalPagesLocked()
	start := (p.page - 1) * p.pageSize
	end := start + p.pageSize
	if end > len(p.results) {
		end = len(p.results)
	}
	slice := make([]countries.Country, end-start)
	copy(slice, p.results[start:end])
	return PageView{
		Countries:   slice,
		Page:        p.page,
		TotalPages:  total,
		TotalCount:  len(p.results),
		HasPrevious: p.page > 1,
		HasNext:     p.page < total,
	}, false
}

func (p *Pager) render(view PageView, empty bool) {
	if p.surface == nil {
		return
	}
	if empty {
		p.surface.ShowEmpty()
		return
	}
	p.surface.ShowPage(view)
}

// Paginate slices a result list into a page view without pager state. The
// web handlers use it since each request carries its own cursor; the page
// number is clamped into [1, totalPages].
func Paginate(list []countries.Country, page, pageSize int) PageView {
	if pageSize <= 0 {
		pageSize = 9
	}
	total := (len(list) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(list) {
		start = len(list)
	}
	if end > len(list) {
		end = len(list)
	}
	return PageView{
		Countries:   list[start:end],
		Page:        page,
		TotalPages:  total,
		TotalCount:  len(list),
		HasPrevious: page > 1,
		HasNext:     page < total,
	}
}
