package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCities(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "cities.tsv")

	testData := "#id	city	stateName	countyName	lat	lng	population	timezone\n" +
		"1	Miami	Florida	Miami-Dade	25.7617	-80.1918	442241	America/New_York\n" +
		"2	Smallville	Kansas		39.0119	-98.4842		America/Chicago\n"

	err := os.WriteFile(testFile, []byte(testData), 0644)
	require.NoError(t, err)

	cities, err := ParseCities(testFile)
	require.NoError(t, err)
	require.Len(t, cities, 2)

	assert.Equal(t, 1, cities[0].ID)
	assert.Equal(t, "Miami", cities[0].City)
	assert.Equal(t, "Florida", cities[0].StateName)
	require.NotNil(t, cities[0].CountyName)
	assert.Equal(t, "Miami-Dade", *cities[0].CountyName)
	require.NotNil(t, cities[0].Population)
	assert.Equal(t, 442241, *cities[0].Population)

	assert.Nil(t, cities[1].CountyName)
	assert.Nil(t, cities[1].Population)
	assert.Equal(t, "America/Chicago", cities[1].Timezone)
}

func TestParseCities_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseCities(filepath.Join(tmpDir, "nope.tsv"))
		assert.Error(t, err)
	})

	t.Run("wrong field count", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "short.tsv")
		require.NoError(t, os.WriteFile(testFile, []byte("1	Miami	Florida\n"), 0644))

		_, err := ParseCities(testFile)
		assert.ErrorContains(t, err, "expected 8 fields")
	})

	t.Run("bad population", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "badpop.tsv")
		line := "1	Miami	Florida	Miami-Dade	25.8	-80.2	lots	America/New_York\n"
		require.NoError(t, os.WriteFile(testFile, []byte(line), 0644))

		_, err := ParseCities(testFile)
		assert.ErrorContains(t, err, "invalid population")
	})
}

func TestParseArticles(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "articles.json")

	testData := `{
		"global": [{"source":{"name":"Wire"},"title":"g1","url":"u"}],
		"cities": {
			"Miami, Florida": [
				{"source":{"name":"Herald"},"title":"m1","url":"u","publishedAtString":"2024-01-01T00:00:00Z"}
			]
		}
	}`
	require.NoError(t, os.WriteFile(testFile, []byte(testData), 0644))

	set, err := ParseArticles(testFile)
	require.NoError(t, err)

	require.Len(t, set.Global, 1)
	assert.Equal(t, "g1", set.Global[0].Title)

	miami := set.Cities["Miami, Florida"]
	require.Len(t, miami, 1)
	assert.Equal(t, "2024-01-01T00:00:00Z", miami[0].PublishedAtString)
}

func TestSampleFixtures(t *testing.T) {
	cities := SampleCities()
	require.NotEmpty(t, cities)

	set := SampleArticles()
	assert.NotEmpty(t, set.Global)
	assert.Len(t, set.Cities["Miami, Florida"], 25)
}
