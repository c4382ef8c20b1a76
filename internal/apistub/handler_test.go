package apistub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexivanou/citynews/internal/fixtures"
	"github.com/alexivanou/citynews/internal/model"
	"github.com/alexivanou/citynews/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleStore() *Store {
	set := fixtures.SampleArticles()
	return NewStore(fixtures.SampleCities(), set.Cities, set.Global)
}

func doRequest(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_SuggestCities(t *testing.T) {
	router := NewRouter(sampleStore(), stats.NewCollector(), false, zap.NewNop())

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		rec := doRequest(t, router, "/api/cities?query=mia")
		require.Equal(t, http.StatusOK, rec.Code)

		var options []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
		assert.Equal(t, []string{"Miami, Florida"}, options)
	})

	t.Run("state part matches too", func(t *testing.T) {
		rec := doRequest(t, router, "/api/cities?query=florida")
		var options []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
		assert.Equal(t, []string{"Miami, Florida", "Orlando, Florida"}, options)
	})

	t.Run("empty query yields empty list", func(t *testing.T) {
		rec := doRequest(t, router, "/api/cities?query=")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestHandler_GetCityInfo(t *testing.T) {
	router := NewRouter(sampleStore(), stats.NewCollector(), false, zap.NewNop())

	t.Run("known city", func(t *testing.T) {
		rec := doRequest(t, router, "/api/cities/Miami/Florida")
		require.Equal(t, http.StatusOK, rec.Code)

		var info model.CityInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "Miami", info.City)
		require.NotNil(t, info.Population)
	})

	t.Run("unknown city", func(t *testing.T) {
		rec := doRequest(t, router, "/api/cities/Atlantis/Ocean")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_GetCityNews(t *testing.T) {
	router := NewRouter(sampleStore(), stats.NewCollector(), false, zap.NewNop())

	t.Run("city with articles", func(t *testing.T) {
		rec := doRequest(t, router, "/api/news/Miami/Florida")
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []model.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
		assert.Len(t, articles, 25)
	})

	t.Run("known city without articles returns empty list", func(t *testing.T) {
		rec := doRequest(t, router, "/api/news/Smallville/Kansas")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("unknown city", func(t *testing.T) {
		rec := doRequest(t, router, "/api/news/Atlantis/Ocean")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("global route takes precedence over the city route", func(t *testing.T) {
		rec := doRequest(t, router, "/api/news/global")
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []model.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
		assert.Equal(t, "Global headline", articles[0].Title)
	})
}

func TestHandler_Stats(t *testing.T) {
	collector := stats.NewCollector()
	router := NewRouter(sampleStore(), collector, false, zap.NewNop())

	doRequest(t, router, "/api/news/global")
	doRequest(t, router, "/api/cities/Atlantis/Ocean")

	rec := doRequest(t, router, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot stats.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, int64(1), snapshot.Requests.Success)
	assert.Equal(t, int64(1), snapshot.Requests.Failed)
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("cookie issued on first contact", func(t *testing.T) {
		router := NewRouter(sampleStore(), stats.NewCollector(), false, zap.NewNop())

		rec := doRequest(t, router, "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
	})

	t.Run("auth required rejects the first request then accepts", func(t *testing.T) {
		router := NewRouter(sampleStore(), stats.NewCollector(), true, zap.NewNop())

		rec := doRequest(t, router, "/api/news/global")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)

		req := httptest.NewRequest(http.MethodGet, "/api/news/global", nil)
		req.AddCookie(cookies[0])
		rec2 := httptest.NewRecorder()
		router.ServeHTTP(rec2, req)
		assert.Equal(t, http.StatusOK, rec2.Code)
	})
}
