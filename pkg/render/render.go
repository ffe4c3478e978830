// Package render produces the web UI's HTML: the browse page with country
// cards and pagination controls, the single-country detail view, and the
// autocomplete suggestion fragment. Templates keep their styling
// self-contained so pages work without external assets.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/rferrer/mundi/pkg/browse"
	"github.com/rferrer/mundi/pkg/countries"
)

// BrowseData feeds the browse page template. PrevURL/NextURL are empty when
// the corresponding control is disabled.
type BrowseData struct {
	View    browse.PageView
	Filters browse.Filters
	Regions []string
	Empty   bool
	Notice  string
	PrevURL string
	NextURL string
}

// DetailData feeds the country detail template.
type DetailData struct {
	Country countries.Country
}

// Renderer holds the parsed templates.
type Renderer struct {
	browse  *template.Template
	detail  *template.Template
	suggest *template.Template
}

// New parses all templates.
func New() (*Renderer, error) {
	funcs := templateFuncs()

	browseTmpl, err := template.New("browse").Funcs(funcs).Parse(browseTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing browse template: %w", err)
	}
	detailTmpl, err := template.New("detail").Funcs(funcs).Parse(detailTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing detail template: %w", err)
	}
	suggestTmpl, err := template.New("suggest").Funcs(funcs).Parse(suggestTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing suggest template: %w", err)
	}

	return &Renderer{browse: browseTmpl, detail: detailTmpl, suggest: suggestTmpl}, nil
}

// BrowsePage renders the filter form, card grid and pagination controls.
func (r *Renderer) BrowsePage(w io.Writer, data BrowseData) error {
	return r.browse.Execute(w, data)
}

// DetailPage renders the full field set for one country.
func (r *Renderer) DetailPage(w io.Writer, data DetailData) error {
	return r.detail.Execute(w, data)
}

// SuggestFragment renders the suggestion panel contents; an empty suggestion
// list renders nothing, which the page script treats as "hide panel".
func (r *Renderer) SuggestFragment(w io.Writer, suggestions []countries.Suggestion) error {
	return r.suggest.Execute(w, suggestions)
}

var browseTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>mundi</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f1f5f9; color: #0f172a; }
header { background: #0f172a; color: #f8fafc; padding: 1rem 2rem; }
header h1 { margin: 0; font-size: 1.3rem; }
main { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
form.filters { display: flex; gap: .75rem; flex-wrap: wrap; margin-bottom: 1rem; }
form.filters input, form.filters select { padding: .45rem .6rem; border: 1px solid #cbd5e1; border-radius: 6px; }
form.filters button { padding: .45rem 1rem; border: 0; border-radius: 6px; background: #0ea5e9; color: white; cursor: pointer; }
.notice { background: #fef2f2; border: 1px solid #fecaca; color: #b91c1c; padding: .6rem 1rem; border-radius: 6px; margin-bottom: 1rem; }
.count { color: #475569; font-size: .9rem; margin-bottom: 1rem; }
.grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.card { background: white; border: 1px solid #e2e8f0; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 2px rgba(0,0,0,.04); }
.card img { width: 100%; height: 130px; object-fit: cover; }
.card .body { padding: .75rem 1rem; }
.card h2 { margin: 0 0 .4rem; font-size: 1.05rem; }
.card p { margin: .15rem 0; font-size: .85rem; color: #475569; }
.empty { padding: 3rem; text-align: center; color: #64748b; }
nav.pager { display: flex; gap: 1rem; align-items: center; justify-content: center; margin: 1.5rem 0; }
nav.pager a, nav.pager span.btn { padding: .4rem 1rem; border-radius: 6px; background: #0ea5e9; color: white; text-decoration: none; }
nav.pager span.btn.disabled { background: #cbd5e1; color: #64748b; }
</style>
</head>
<body>
<header><h1>mundi — country browser</h1></header>
<main>
<form class="filters" method="get" action="/">
  <input type="text" name="name" placeholder="Search by name" value="{{.Filters.Name}}" autocomplete="off">
  <input type="text" name="code" placeholder="Code" size="4" value="{{.Filters.Code}}">
  <input type="text" name="capital" placeholder="Capital" value="{{.Filters.Capital}}">
  <select name="region">
    <option value="">All regions</option>
    {{$selected := .Filters.Region}}
    {{range .Regions}}<option value="{{.}}"{{if eq . $selected}} selected{{end}}>{{.}}</option>{{end}}
  </select>
  <button type="submit">Search</button>
</form>

{{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}

{{if .Empty}}
  <div class="empty">No countries found.</div>
{{else}}
  <div class="count">{{.View.TotalCount}} countries</div>
  <div class="grid">
  {{range .View.Countries}}
    <div class="card">
      <img src="{{.FlagURL}}" alt="Flag of {{.CommonName}}">
      <div class="body">
        <h2><a href="/country/{{.Code}}">{{.CommonName}}</a></h2>
        <p>Capital: {{if .Capital}}{{.Capital}}{{else}}—{{end}}</p>
        <p>Region: {{.Region}}</p>
        <p>Population: {{groupInt .Population}}</p>
      </div>
    </div>
  {{end}}
  </div>
  <nav class="pager">
    {{if .View.HasPrevious}}<a href="{{.PrevURL}}">Previous</a>{{else}}<span class="btn disabled">Previous</span>{{end}}
    <span>Page {{.View.Page}} of {{.View.TotalPages}}</span>
    {{if .View.HasNext}}<a href="{{.NextURL}}">Next</a>{{else}}<span class="btn disabled">Next</span>{{end}}
  </nav>
{{end}}
</main>
</body>
</html>
`

var detailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Country.CommonName}} — mundi</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f1f5f9; color: #0f172a; }
main { max-width: 760px; margin: 2rem auto; background: white; border: 1px solid #e2e8f0; border-radius: 8px; padding: 2rem; }
img.flag { max-width: 280px; border: 1px solid #e2e8f0; }
img.crest { max-height: 120px; }
dl { display: grid; grid-template-columns: 160px 1fr; gap: .4rem 1rem; }
dt { color: #64748b; }
a.back { display: inline-block; margin-bottom: 1rem; color: #0ea5e9; }
</style>
</head>
<body>
<main>
<a class="back" href="/">&larr; back</a>
<h1>{{.Country.CommonName}}</h1>
<p><em>{{.Country.OfficialName}}</em></p>
<img class="flag" src="{{.Country.FlagURL}}" alt="Flag of {{.Country.CommonName}}">
<dl>
  <dt>Code</dt><dd>{{.Country.Code}}</dd>
  <dt>Capital</dt><dd>{{if .Country.Capital}}{{.Country.Capital}}{{else}}—{{end}}</dd>
  <dt>Region</dt><dd>{{.Country.Region}}{{if .Country.Subregion}} / {{.Country.Subregion}}{{end}}</dd>
  <dt>Population</dt><dd>{{groupInt .Country.Population}}</dd>
  <dt>Area</dt><dd>{{area .Country.Area}}</dd>
  <dt>Timezones</dt><dd>{{range $i, $tz := .Country.Timezones}}{{if $i}}, {{end}}{{$tz}}{{end}}</dd>
  {{if .Country.DialCode}}<dt>Dial code</dt><dd>{{.Country.DialCode}}</dd>{{end}}
  {{if .Country.MapURL}}<dt>Map</dt><dd><a href="{{.Country.MapURL}}" target="_blank" rel="noopener noreferrer">open map</a></dd>{{end}}
</dl>
{{if .Country.Crest}}<h2>Coat of arms</h2><img class="crest" src="{{.Country.Crest}}" alt="Coat of arms of {{.Country.CommonName}}">{{end}}
</main>
</body>
</html>
`

var suggestTemplate = `{{if .}}<ul class="suggestions">
{{range .}}<li><a href="/country/{{.Country.Code}}">{{highlight .}}</a></li>
{{end}}</ul>{{end}}`
