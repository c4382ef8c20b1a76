package fixtures

import (
	"fmt"

	"github.com/alexivanou/citynews/internal/model"
)

// SampleCities returns built-in city fixtures used when no cities file is
// configured.
func SampleCities() []model.CityInfo {
	miamiDade := "Miami-Dade"
	orange := "Orange"
	miamiPop := 442241
	orlandoPop := 307573

	return []model.CityInfo{
		{
			ID:         1,
			City:       "Miami",
			StateName:  "Florida",
			CountyName: &miamiDade,
			Lat:        "25.7617",
			Lng:        "-80.1918",
			Population: &miamiPop,
			Timezone:   "America/New_York",
		},
		{
			ID:         2,
			City:       "Orlando",
			StateName:  "Florida",
			CountyName: &orange,
			Lat:        "28.5384",
			Lng:        "-81.3789",
			Population: &orlandoPop,
			Timezone:   "America/New_York",
		},
		{
			ID:        3,
			City:      "Smallville",
			StateName: "Kansas",
			Lat:       "39.0119",
			Lng:       "-98.4842",
			Timezone:  "America/Chicago",
		},
	}
}

// SampleArticles returns built-in article fixtures. Miami gets enough
// articles to paginate; Smallville stays empty so the summary-card path is
// reachable in development.
func SampleArticles() *ArticleSet {
	author := "Sam Writer"

	miami := make([]model.Article, 25)
	for i := range miami {
		miami[i] = model.Article{
			Source:      model.Source{Name: "Miami Herald"},
			Author:      &author,
			Title:       fmt.Sprintf("Miami story %d", i+1),
			Description: fmt.Sprintf("Local coverage of story number %d in the Miami area.", i+1),
			URL:         fmt.Sprintf("https://example.com/miami/%d", i+1),
			URLToImage:  fmt.Sprintf("https://example.com/miami/%d.jpg", i+1),
			PublishedAt: "2024-03-15T12:00:00Z",
		}
	}

	global := []model.Article{
		{
			Source:      model.Source{Name: "World Wire"},
			Title:       "Global headline",
			Description: "Something happened somewhere.",
			URL:         "https://example.com/global/1",
			PublishedAt: "2024-03-16T08:00:00Z",
		},
		{
			Source: model.Source{Name: "World Wire"},
			Title:  "Second global headline",
			URL:    "https://example.com/global/2",
			// Some upstream paths serialize the timestamp under this field
			PublishedAtString: "2024-03-16T09:30:00Z",
		},
	}

	return &ArticleSet{
		Global: global,
		Cities: map[string][]model.Article{
			"Miami, Florida": miami,
		},
	}
}
