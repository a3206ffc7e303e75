package article

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julienpequegnot/tagdesk/internal/database"
	"github.com/julienpequegnot/tagdesk/internal/source"
)

func setupTestDB(t *testing.T) (*database.DB, *source.Source) {
	tmpDir := t.TempDir()
	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	src, err := source.NewRepository(db).Add("https://news.test", "Test News", "https://news.test/rss")
	if err != nil {
		t.Fatalf("failed to add source: %v", err)
	}
	return db, src
}

func TestCloneDoesNotShareMaps(t *testing.T) {
	now := time.Now()
	a := Article{Title: "t", LegacyScores: map[string]float64{"politics": 4}, PublishedAt: &now}
	c := a.Clone()
	c.LegacyScores["politics"] = 9
	*c.PublishedAt = now.Add(time.Hour)

	assert.Equal(t, 4.0, a.LegacyScores["politics"])
	assert.True(t, a.PublishedAt.Equal(now))
}

func TestAddAndGet(t *testing.T) {
	db, src := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	stored, err := repo.Add(Article{
		SourceID:     src.ID,
		URL:          "https://news.test/a",
		Headline:     "Elections, Today!",
		Title:        "elections today",
		Body:         "voters went to the polls",
		Language:     "en",
		PublishedAt:  &published,
		LegacyScores: map[string]float64{"politics": 7.5},
	})
	require.NoError(t, err)
	require.NotZero(t, stored.ID)

	got, err := repo.Get(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test News", got.SourceName)
	assert.Equal(t, "elections today", got.Title)
	assert.Equal(t, "Elections, Today!", got.DisplayTitle())
	assert.Equal(t, 7.5, got.LegacyScores["politics"])
	require.NotNil(t, got.PublishedAt)
	assert.True(t, got.PublishedAt.Equal(published))

	_, err = repo.Get(stored.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExistsAndList(t *testing.T) {
	db, src := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	_, err := repo.Add(Article{SourceID: src.ID, URL: "https://news.test/1", Title: "one"})
	require.NoError(t, err)
	_, err = repo.Add(Article{URL: "article:2", Title: "two"})
	require.NoError(t, err)

	ok, err := repo.Exists("https://news.test/1")
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "", all[1].SourceName)

	unscored, err := repo.ListUnscored(10)
	require.NoError(t, err)
	assert.Len(t, unscored, 2)

	byID, err := repo.ListByIDs([]int64{all[1].ID})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "two", byID[0].Title)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLoadJSON(t *testing.T) {
	raw := `[{
		"id": "a1",
		"std": {"title": "Vote Today", "publication_datetime": "2024-03-01T10:00:00Z", "lang_code": "fr-FR", "url": ""},
		"non_std": {"publisher_name": "Le Monde", "source_name": "lemonde"},
		"out": {
			"infer_language": "",
			"process_sections": {"title": "vote today", "body": "les électeurs votent"},
			"classify_categories": {"relevance_scores": {"politics": 6.2}}
		}
	}]`

	articles, err := LoadJSON(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "a1", a.ExternalID)
	assert.Equal(t, "article:a1", a.URL)
	assert.Equal(t, "fr", a.Language)
	assert.Equal(t, "vote today", a.Title)
	assert.Equal(t, "Vote Today", a.Headline)
	assert.Equal(t, "Le Monde", a.Publisher)
	assert.Equal(t, 6.2, a.LegacyScores["politics"])
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, 2024, a.PublishedAt.Year())
}

func TestLoadJSONRejectsGarbage(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}
