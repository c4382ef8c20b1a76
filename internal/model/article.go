package model

// Source identifies the outlet an article came from
type Source struct {
	Name string `json:"name"`
}

// Article represents a single news item as returned by the news endpoints
type Article struct {
	Source            Source  `json:"source"`
	Author            *string `json:"author"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	URL               string  `json:"url"`
	URLToImage        string  `json:"urlToImage"`
	PublishedAt       string  `json:"publishedAt"`
	PublishedAtString string  `json:"publishedAtString,omitempty"`
	Content           *string `json:"content"`
}

// NormalizePublishedAt collapses the two upstream timestamp fields into
// PublishedAt. The backend serializes the value under publishedAtString on
// some code paths and publishedAt on others; when both are present the
// string variant wins.
func (a *Article) NormalizePublishedAt() {
	if a.PublishedAtString != "" {
		a.PublishedAt = a.PublishedAtString
	}
}

// SourceName returns the outlet name, falling back to the literal "source"
// when the upstream left it empty.
func (a *Article) SourceName() string {
	if a.Source.Name == "" {
		return "source"
	}
	return a.Source.Name
}
