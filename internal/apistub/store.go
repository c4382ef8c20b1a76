// Package apistub implements an in-memory development server for the city
// and news API consumed by the client.
package apistub

import (
	"fmt"
	"strings"

	"github.com/alexivanou/citynews/internal/model"
)

const suggestLimit = 10

// Store holds the fixture data served by the stub
type Store struct {
	cities     []model.CityInfo
	byLocation map[string][]model.Article
	global     []model.Article
}

// NewStore builds a store from fixture data. Article lists are keyed by
// their "City, State" label; lookups are case-insensitive.
func NewStore(cities []model.CityInfo, byLocation map[string][]model.Article, global []model.Article) *Store {
	normalized := make(map[string][]model.Article, len(byLocation))
	for label, articles := range byLocation {
		normalized[strings.ToLower(label)] = articles
	}
	return &Store{
		cities:     cities,
		byLocation: normalized,
		global:     global,
	}
}

// Suggestions returns "City, State" labels containing the query,
// case-insensitively, capped at ten results.
func (s *Store) Suggestions(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	options := []string{}
	if query == "" {
		return options
	}

	for _, city := range s.cities {
		label := locationLabel(city.City, city.StateName)
		if strings.Contains(strings.ToLower(label), query) {
			options = append(options, label)
			if len(options) == suggestLimit {
				break
			}
		}
	}
	return options
}

// CityInfo looks up a city by name and state, case-insensitively
func (s *Store) CityInfo(city, state string) (*model.CityInfo, bool) {
	for i := range s.cities {
		if strings.EqualFold(s.cities[i].City, city) && strings.EqualFold(s.cities[i].StateName, state) {
			info := s.cities[i]
			return &info, true
		}
	}
	return nil, false
}

// News returns the articles for a city, and whether the city is known.
// A known city with no articles returns an empty list.
func (s *Store) News(city, state string) ([]model.Article, bool) {
	if _, ok := s.CityInfo(city, state); !ok {
		return nil, false
	}
	articles := s.byLocation[strings.ToLower(locationLabel(city, state))]
	if articles == nil {
		articles = []model.Article{}
	}
	return articles, true
}

// GlobalNews returns the location-independent article list
func (s *Store) GlobalNews() []model.Article {
	if s.global == nil {
		return []model.Article{}
	}
	return s.global
}

func locationLabel(city, state string) string {
	return fmt.Sprintf("%s, %s", city, state)
}
