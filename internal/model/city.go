package model

// CityInfo mirrors the payload of GET /api/cities/{city}/{state}.
// Lat and Lng are kept as text because the upstream serializes them that way.
type CityInfo struct {
	ID         int     `json:"id"`
	City       string  `json:"city"`
	StateName  string  `json:"stateName"`
	CountyName *string `json:"countyName,omitempty"`
	Lat        string  `json:"lat"`
	Lng        string  `json:"lng"`
	Population *int    `json:"population"`
	Timezone   string  `json:"timezone"`
}
