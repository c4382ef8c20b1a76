package render

import (
	"strings"

	"github.com/alexivanou/citynews/internal/search"
)

// View renders the full search view from the current state. Redrawing from
// the results header on every transition is the terminal equivalent of
// scrolling back to the top of the results region.
func (r *Renderer) View(st search.State) string {
	var b strings.Builder

	if st.Loading {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if st.ErrMsg != "" {
		b.WriteString(st.ErrMsg)
		b.WriteString("\n")
	}

	if len(st.Options) > 0 {
		b.WriteString("Suggestions:\n")
		for _, option := range st.Options {
			b.WriteString("  ")
			b.WriteString(option)
			b.WriteString("\n")
		}
	}

	switch {
	case len(st.Articles) > 0:
		b.WriteString("--- Results ---\n")
		for _, a := range PageSlice(st.Articles, st.Page) {
			b.WriteString(r.FormatArticle(a))
			b.WriteString("\n")
		}
		if paginator := FormatPaginator(st.Page, st.TotalPages()); paginator != "" {
			b.WriteString(paginator)
			b.WriteString("\n")
		}
	case st.CityInfo != nil:
		b.WriteString(r.FormatCitySummary(st.CityInfo))
	}

	return b.String()
}
