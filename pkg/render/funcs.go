package render

import (
	"fmt"
	"html"
	"html/template"
	"strconv"

	"github.com/rferrer/mundi/pkg/countries"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"groupInt":  groupInt,
		"area":      formatArea,
		"highlight": highlightMatch,
	}
}

// groupInt renders 1234567 as "1,234,567".
func groupInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

func formatArea(a float64) string {
	return fmt.Sprintf("%.0f km²", a)
}

// highlightMatch renders a suggestion's common name with the matched span
// bolded at its actual position.
func highlightMatch(s countries.Suggestion) template.HTML {
	name := s.Country.CommonName
	start, length := s.MatchStart, s.MatchLen
	if start < 0 || start+length > len(name) {
		return template.HTML(html.EscapeString(name))
	}
	return template.HTML(
		html.EscapeString(name[:start]) +
			"<strong>" + html.EscapeString(name[start:start+length]) + "</strong>" +
			html.EscapeString(name[start+length:]))
}
