package category

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julienpequegnot/tagdesk/internal/database"
	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

func setupTestDB(t *testing.T) *database.DB {
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func politics() taxonomy.Category {
	return taxonomy.Category{
		Key:       "politics",
		Name:      "Politics",
		LegacyKey: "POL",
		Weights:   taxonomy.SectionWeights{Title: 2},
		Rules: []taxonomy.KeywordRule{
			taxonomy.KeywordRule{Hook: "election|vote", Weight: 2}.
				WithOverride(taxonomy.SectionBody, taxonomy.RuleOverride{Inactive: true}),
			{Hook: "sport", Boost: -3},
		},
		QuickKeywords: []string{"Brexit"},
	}
}

func TestReplaceAllAndList(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.ReplaceAll([]taxonomy.Category{
		politics(),
		{Key: "sport", Rules: []taxonomy.KeywordRule{{Hook: "football"}}},
	}))

	cats, err := repo.List()
	require.NoError(t, err)
	require.Len(t, cats, 2)

	p := cats[0]
	assert.Equal(t, "politics", p.Key)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "POL", p.LegacyKey)
	assert.Equal(t, 2.0, p.Weights.Title)
	assert.Equal(t, []string{"Brexit"}, p.QuickKeywords)
	require.Len(t, p.Rules, 2)
	assert.False(t, p.Rules[0].ActiveIn(taxonomy.SectionBody))
	assert.Equal(t, 2.0, p.Rules[0].WeightIn(taxonomy.SectionTitle))
	assert.Equal(t, -3.0, p.Rules[1].BoostIn(taxonomy.SectionTitle))

	assert.Equal(t, "sport", cats[1].Name)

	require.NoError(t, repo.ReplaceAll([]taxonomy.Category{{Key: "weather"}}))
	cats, err = repo.List()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "weather", cats[0].Key)
}

func TestUpsertGetDelete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.Upsert(politics()))
	updated := politics()
	updated.Name = "Public affairs"
	require.NoError(t, repo.Upsert(updated))

	got, err := repo.Get("politics")
	require.NoError(t, err)
	assert.Equal(t, "Public affairs", got.Name)

	require.NoError(t, repo.Delete("politics"))
	_, err = repo.Get("politics")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete("politics"), ErrNotFound)
}

func TestUpsertRequiresKey(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	assert.Error(t, repo.Upsert(taxonomy.Category{Name: "nameless"}))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "taxonomy.yaml", `
categories:
  - key: politics
    legacy_key: POL
    sections_weights:
      title: 2
    rules:
      - hook: election|vote
        weight: 2
        body:
          inactive: true
      - hook: sport
        boost: -3
`)
	cats, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "POL", cats[0].LegacyKey)
	assert.False(t, cats[0].Rules[0].ActiveIn(taxonomy.SectionBody))
	assert.Equal(t, -3.0, cats[0].Rules[1].Boost)
}

func TestLoadYAMLList(t *testing.T) {
	path := writeFile(t, "taxonomy.yml", `
- key: sport
  rules:
    - hook: football
`)
	cats, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "football", cats[0].Rules[0].Hook)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "taxonomy.toml", `
[[categories]]
key = "politics"
quick_keywords = ["Brexit"]

[categories.sections_weights]
title = 4.0

[[categories.rules]]
hook = "election|vote"
weight = 2.0

[categories.rules.title]
boost = 1.5
`)
	cats, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 4.0, cats[0].Weights.Title)
	assert.Equal(t, 1.5, cats[0].Rules[0].BoostIn(taxonomy.SectionTitle))
	assert.Equal(t, []string{"Brexit"}, cats[0].QuickKeywords)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "taxonomy.json", `[{"key": "politics", "parentId": "root", "rules": [{"hook": "vote"}]}]`)
	cats, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "root", cats[0].ParentID)
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := LoadFile(writeFile(t, "taxonomy.txt", "key: x"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "dup.json", `[{"key": "a", "rules": []}, {"key": "a", "rules": []}]`))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "nokey.json", `{"categories": [{"name": "x", "rules": []}]}`))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
