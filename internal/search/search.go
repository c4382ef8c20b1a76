// Package search holds the client-side search state and the transitions
// driven by user actions.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexivanou/citynews/internal/client"
	"github.com/alexivanou/citynews/internal/model"
	"go.uber.org/zap"
)

// API is the slice of the backend client the orchestrator needs
type API interface {
	GetCityInfo(ctx context.Context, city, state string) (*model.CityInfo, error)
	GetNews(ctx context.Context, city, state string) ([]model.Article, error)
	GetGlobalNews(ctx context.Context) ([]model.Article, error)
}

// User-facing messages
const (
	msgEmptyQuery    = "Please enter a city and state."
	msgCommaFormat   = "Please enter city and state separated by a comma (e.g., Miami, Florida)."
	msgInvalidName   = "Invalid city or state name. Please check your input."
	msgUnauthorized  = "Unauthorized: please enter your login and password."
	msgNewsNetwork   = "Error getting news. Please try again."
	msgGlobalNetwork = "Network error"
)

// State is everything the renderer needs to draw the view
type State struct {
	Query    string
	Options  []string
	CityInfo *model.CityInfo
	Articles []model.Article
	Page     int
	Loading  bool
	ErrMsg   string
}

// TotalPages returns the page count for the current article list
func (s State) TotalPages() int {
	return model.TotalPages(len(s.Articles))
}

// Orchestrator applies user actions to the search state. It is not safe
// for concurrent use; callers serialize actions the way a UI event loop
// would.
type Orchestrator struct {
	api    API
	logger *zap.Logger
	state  State
}

// New creates an orchestrator with a clean initial state
func New(api API, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		api:    api,
		logger: logger,
		state:  State{Page: 1},
	}
}

// State returns a copy of the current state
func (o *Orchestrator) State() State {
	return o.state
}

// InputChanged updates the query text. The caller separately feeds the
// text to the suggestion debouncer.
func (o *Orchestrator) InputChanged(text string) {
	o.state.Query = text
}

// OptionsArrived replaces the suggestion option list
func (o *Orchestrator) OptionsArrived(options []string) {
	o.state.Options = options
}

// SelectOption replaces the query with a chosen suggestion verbatim
func (o *Orchestrator) SelectOption(option string) {
	o.state.Query = option
}

// SubmitSearch runs the city search flow: validate the query, fetch city
// metadata, then fetch news. The city-info fetch completes before the news
// fetch begins; its failure is not fatal to the search.
func (o *Orchestrator) SubmitSearch(ctx context.Context) {
	if strings.TrimSpace(o.state.Query) == "" {
		o.state.ErrMsg = msgEmptyQuery
		return
	}

	city, stateName, err := model.ParseLocation(o.canonicalLocation())
	if err != nil {
		if errors.Is(err, model.ErrEmptyPart) {
			o.state.ErrMsg = msgInvalidName
		} else {
			o.state.ErrMsg = msgCommaFormat
		}
		return
	}

	o.beginLoad()
	defer o.endLoad()

	info, err := o.api.GetCityInfo(ctx, city, stateName)
	if err != nil {
		// Best-effort: the news search proceeds without metadata
		o.logger.Warn("city info lookup failed",
			zap.String("city", city),
			zap.String("state", stateName),
			zap.Error(err),
		)
	} else {
		o.state.CityInfo = info
	}

	articles, err := o.api.GetNews(ctx, city, stateName)
	if err != nil {
		o.state.ErrMsg = newsErrorMessage(err)
		return
	}

	o.storeArticles(articles)
}

// SubmitGlobal runs the global news flow. No validation and no city-info
// fetch; CityInfo is never populated on this path.
func (o *Orchestrator) SubmitGlobal(ctx context.Context) {
	o.beginLoad()
	defer o.endLoad()

	articles, err := o.api.GetGlobalNews(ctx)
	if err != nil {
		o.state.ErrMsg = globalErrorMessage(err)
		return
	}

	o.storeArticles(articles)
}

// SetPage moves to the requested page, clamped to the valid range
func (o *Orchestrator) SetPage(page int) {
	o.state.Page = model.ClampPage(page, o.state.TotalPages())
}

// canonicalLocation recovers the canonical "City, State" string: if the
// query case-insensitively matches a current suggestion option, that option
// is used. With several matching options the first one wins.
func (o *Orchestrator) canonicalLocation() string {
	for _, option := range o.state.Options {
		if strings.EqualFold(option, o.state.Query) {
			return option
		}
	}
	return o.state.Query
}

// beginLoad resets the result state for a fresh request chain
func (o *Orchestrator) beginLoad() {
	o.state.ErrMsg = ""
	o.state.Loading = true
	o.state.Articles = nil
	o.state.CityInfo = nil
	o.state.Page = 1
}

func (o *Orchestrator) endLoad() {
	o.state.Loading = false
}

func (o *Orchestrator) storeArticles(articles []model.Article) {
	for i := range articles {
		articles[i].NormalizePublishedAt()
	}
	o.state.Articles = articles
}

func newsErrorMessage(err error) string {
	if errors.Is(err, client.ErrUnauthorized) {
		return msgUnauthorized
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("Error getting news: %d %s", se.Code, se.Text)
	}
	return msgNewsNetwork
}

func globalErrorMessage(err error) string {
	if errors.Is(err, client.ErrUnauthorized) {
		return msgUnauthorized
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("Error: %d %s", se.Code, se.Text)
	}
	return msgGlobalNetwork
}
