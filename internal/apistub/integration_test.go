package apistub

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/alexivanou/citynews/internal/client"
	"github.com/alexivanou/citynews/internal/render"
	"github.com/alexivanou/citynews/internal/search"
	"github.com/alexivanou/citynews/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupIntegrationStack(t *testing.T, requireAuth bool) (*search.Orchestrator, *client.Client) {
	t.Helper()

	srv := httptest.NewServer(NewRouter(sampleStore(), stats.NewCollector(), requireAuth, zap.NewNop()))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, 0, zap.NewNop(), stats.NewCollector())
	require.NoError(t, err)

	return search.New(c, zap.NewNop()), c
}

func TestIntegration_CitySearchFlow(t *testing.T) {
	o, c := setupIntegrationStack(t, false)
	ctx := context.Background()

	options, err := c.SuggestCities(ctx, "mia")
	require.NoError(t, err)
	require.Equal(t, []string{"Miami, Florida"}, options)

	o.InputChanged("miami, florida")
	o.OptionsArrived(options)
	o.SubmitSearch(ctx)

	st := o.State()
	require.Empty(t, st.ErrMsg)
	require.NotNil(t, st.CityInfo)
	assert.Equal(t, "Miami", st.CityInfo.City)
	assert.Len(t, st.Articles, 25)
	assert.Equal(t, 3, st.TotalPages())

	// Articles arrive with normalized timestamps
	for _, a := range st.Articles {
		assert.NotEmpty(t, a.PublishedAt)
	}

	o.SetPage(3)
	visible := render.PageSlice(o.State().Articles, o.State().Page)
	require.Len(t, visible, 5)
	assert.Equal(t, "Miami story 21", visible[0].Title)
	assert.Equal(t, "Miami story 25", visible[4].Title)
}

func TestIntegration_NoNewsFallback(t *testing.T) {
	o, _ := setupIntegrationStack(t, false)

	o.InputChanged("Smallville, Kansas")
	o.SubmitSearch(context.Background())

	st := o.State()
	require.Empty(t, st.ErrMsg)
	assert.Empty(t, st.Articles)
	require.NotNil(t, st.CityInfo)

	out := render.New(80).View(st)
	assert.Contains(t, out, "No news found for Smallville, Kansas.")
	assert.Contains(t, out, "Population: Data not available")
}

func TestIntegration_UnknownCity(t *testing.T) {
	o, _ := setupIntegrationStack(t, false)

	o.InputChanged("Atlantis, Ocean")
	o.SubmitSearch(context.Background())

	st := o.State()
	assert.Equal(t, "Error getting news: 404 Not Found", st.ErrMsg)
	assert.Nil(t, st.CityInfo)
	assert.False(t, st.Loading)
}

func TestIntegration_AuthRequired(t *testing.T) {
	o, _ := setupIntegrationStack(t, true)
	ctx := context.Background()

	// First contact has no session cookie yet
	o.SubmitGlobal(ctx)
	assert.Equal(t, "Unauthorized: please enter your login and password.", o.State().ErrMsg)

	// The cookie issued alongside the 401 makes the retry succeed
	o.SubmitGlobal(ctx)
	st := o.State()
	assert.Empty(t, st.ErrMsg)
	assert.Len(t, st.Articles, 2)
	assert.Nil(t, st.CityInfo)
}
