// Package client implements the HTTP client for the city and news API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/alexivanou/citynews/internal/model"
	"github.com/alexivanou/citynews/internal/stats"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// Endpoint names used for stats accounting
const (
	endpointSuggest    = "cities_suggest"
	endpointCityInfo   = "cities_info"
	endpointNewsCity   = "news_city"
	endpointNewsGlobal = "news_global"
)

// Client talks to the backend API. The session cookie handed out by the
// backend is stored in the cookie jar and attached to every subsequent call.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	stats   *stats.Collector
}

// New creates an API client. A zero timeout disables the client-side
// timeout entirely; an unresponsive server will stall the caller.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, collector *stats.Collector) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		logger: logger,
		stats:  collector,
	}, nil
}

// SuggestCities fetches autocomplete suggestions for a partial query.
// Results are plain "City, State" strings.
func (c *Client) SuggestCities(ctx context.Context, query string) ([]string, error) {
	u := fmt.Sprintf("%s/api/cities?query=%s", c.baseURL, url.QueryEscape(query))

	var options []string
	if err := c.getJSON(ctx, endpointSuggest, u, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// GetCityInfo fetches location metadata for a city and state
func (c *Client) GetCityInfo(ctx context.Context, city, state string) (*model.CityInfo, error) {
	u := fmt.Sprintf("%s/api/cities/%s/%s", c.baseURL, url.PathEscape(city), url.PathEscape(state))

	var info model.CityInfo
	if err := c.getJSON(ctx, endpointCityInfo, u, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetNews fetches news articles scoped to a city and state
func (c *Client) GetNews(ctx context.Context, city, state string) ([]model.Article, error) {
	u := fmt.Sprintf("%s/api/news/%s/%s", c.baseURL, url.PathEscape(city), url.PathEscape(state))

	var articles []model.Article
	if err := c.getJSON(ctx, endpointNewsCity, u, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetGlobalNews fetches news articles that are not location-scoped
func (c *Client) GetGlobalNews(ctx context.Context) ([]model.Article, error) {
	u := c.baseURL + "/api/news/global"

	var articles []model.Article
	if err := c.getJSON(ctx, endpointNewsGlobal, u, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// getJSON performs a GET and decodes a 2xx JSON body into out.
// Non-2xx responses become a *StatusError; transport failures are returned
// wrapped. Requests are never retried.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure(endpoint)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.recordFailure(endpoint)
		c.logger.Debug("unexpected status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return &StatusError{
			Code: resp.StatusCode,
			Text: http.StatusText(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.recordFailure(endpoint)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.recordSuccess(endpoint)
	return nil
}

func (c *Client) recordSuccess(endpoint string) {
	if c.stats != nil {
		c.stats.RecordSuccess(endpoint)
	}
}

func (c *Client) recordFailure(endpoint string) {
	if c.stats != nil {
		c.stats.RecordFailure(endpoint)
	}
}
