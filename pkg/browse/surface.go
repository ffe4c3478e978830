// Package browse holds the client-side browsing state: the current result
// set, its pagination cursor, and the dispatcher that turns raw filter input
// into exactly one remote lookup. Rendering is delegated to a Surface so the
// same state machine drives both the terminal and the web UI.
package browse

import "github.com/rferrer/mundi/pkg/countries"

// PageView is the render instruction for one visible result page.
type PageView struct {
	// Countries is the slice for the current page, not the whole result set.
	Countries []countries.Country
	// Page and TotalPages describe the pagination controls.
	Page       int
	TotalPages int
	// TotalCount is the full result set size, shown in the count indicator.
	TotalCount  int
	HasPrevious bool
	HasNext     bool
}

// Surface receives render instructions from the pager and dispatcher.
type Surface interface {
	// ShowPage renders the current page slice and pagination controls.
	ShowPage(view PageView)
	// ShowEmpty renders the "no results" view with controls suppressed.
	ShowEmpty()
	// ShowNotice surfaces a blocking user notice such as "invalid code".
	ShowNotice(msg string)
}
