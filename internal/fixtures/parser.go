// Package fixtures loads the data files backing the stub API server.
package fixtures

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexivanou/citynews/internal/model"
)

// cities file columns, tab-separated
const cityFieldCount = 8

// ArticleSet is the on-disk shape of the articles fixture file
type ArticleSet struct {
	Global []model.Article            `json:"global"`
	Cities map[string][]model.Article `json:"cities"`
}

// ParseCities reads a tab-separated cities file. Columns:
// id, city, stateName, countyName, lat, lng, population, timezone.
// Empty countyName and population columns become absent values.
// Lines starting with # are skipped.
func ParseCities(path string) ([]model.CityInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cities file: %w", err)
	}
	defer file.Close()

	var cities []model.CityInfo
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Skip comments and blank lines
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != cityFieldCount {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", lineNo, cityFieldCount, len(fields))
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid id %q", lineNo, fields[0])
		}

		city := model.CityInfo{
			ID:        id,
			City:      fields[1],
			StateName: fields[2],
			Lat:       fields[4],
			Lng:       fields[5],
			Timezone:  fields[7],
		}

		if county := strings.TrimSpace(fields[3]); county != "" {
			city.CountyName = &county
		}

		if popField := strings.TrimSpace(fields[6]); popField != "" {
			population, err := strconv.Atoi(popField)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid population %q", lineNo, popField)
			}
			city.Population = &population
		}

		cities = append(cities, city)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cities file: %w", err)
	}

	return cities, nil
}

// ParseArticles reads the JSON articles fixture file
func ParseArticles(path string) (*ArticleSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open articles file: %w", err)
	}
	defer file.Close()

	var set ArticleSet
	if err := json.NewDecoder(file).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode articles file: %w", err)
	}

	if set.Cities == nil {
		set.Cities = make(map[string][]model.Article)
	}

	return &set, nil
}
