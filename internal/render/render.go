// Package render turns search state into paginated terminal output.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexivanou/citynews/internal/model"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	descriptionLimit = 120
	publishedLayout  = "January 2, 2006 at 3:04 PM"
	defaultWidth     = 80
)

// Renderer formats articles and city summaries for a terminal of a given
// display width.
type Renderer struct {
	width   int
	printer *message.Printer
}

// New creates a renderer. A non-positive width falls back to 80 columns.
func New(width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{
		width:   width,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// PageSlice returns the articles visible on a page: the half-open range
// [(page-1)*PageSize, page*PageSize) clamped to the list bounds.
func PageSlice(articles []model.Article, page int) []model.Article {
	start := (page - 1) * model.PageSize
	if start < 0 || start >= len(articles) {
		return nil
	}
	end := start + model.PageSize
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end]
}

// TruncateDescription cuts a description to its first 120 characters,
// appending an ellipsis only when the original is longer.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= descriptionLimit {
		return s
	}
	return string(runes[:descriptionLimit]) + "…"
}

// FormatPublished renders a timestamp as a long human-readable date.
// Unparseable values render as empty text instead of failing.
func FormatPublished(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return t.Format(publishedLayout)
}

// FormatPopulation renders a population count with thousands separators,
// or "Data not available" when the value is absent.
func (r *Renderer) FormatPopulation(population *int) string {
	if population == nil {
		return "Data not available"
	}
	return r.printer.Sprintf("%d", *population)
}

// FormatArticle renders one article block
func (r *Renderer) FormatArticle(a model.Article) string {
	var b strings.Builder

	b.WriteString(a.Title)
	b.WriteString("\n")

	byline := FormatPublished(a.PublishedAt)
	if a.Author != nil && *a.Author != "" {
		byline = fmt.Sprintf("By %s • %s", *a.Author, byline)
	}
	if byline != "" {
		b.WriteString(byline)
		b.WriteString("\n")
	}

	if desc := TruncateDescription(a.Description); desc != "" {
		for _, line := range r.wrap(desc) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if a.URLToImage != "" {
		b.WriteString(fmt.Sprintf("[%s] %s\n", a.SourceName(), a.URLToImage))
	}

	b.WriteString("Read full article: ")
	b.WriteString(a.URL)
	b.WriteString("\n")

	return b.String()
}

// FormatCitySummary renders the fallback card shown when a search returned
// city metadata but no articles.
func (r *Renderer) FormatCitySummary(info *model.CityInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "No news found for %s, %s.\n", info.City, info.StateName)
	if info.CountyName != nil && *info.CountyName != "" {
		fmt.Fprintf(&b, "County: %s\n", *info.CountyName)
	}
	fmt.Fprintf(&b, "Population: %s\n", r.FormatPopulation(info.Population))
	fmt.Fprintf(&b, "Coordinates: %s, %s\n", info.Lat, info.Lng)
	fmt.Fprintf(&b, "Timezone: %s\n", info.Timezone)

	return b.String()
}

// FormatPaginator renders the page control line, or an empty string when
// there is a single page or less.
func FormatPaginator(page, totalPages int) string {
	if totalPages <= 1 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Page %d of %d:", page, totalPages)
	for p := 1; p <= totalPages; p++ {
		if p == page {
			fmt.Fprintf(&b, " [%d]", p)
		} else {
			fmt.Fprintf(&b, " %d", p)
		}
	}
	return b.String()
}

// wrap greedily wraps text to the renderer width using display widths, so
// wide runes count as two columns.
func (r *Renderer) wrap(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	currentWidth := runewidth.StringWidth(current)

	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if currentWidth+1+w > r.width {
			lines = append(lines, current)
			current = word
			currentWidth = w
			continue
		}
		current += " " + word
		currentWidth += 1 + w
	}
	lines = append(lines, current)

	return lines
}
