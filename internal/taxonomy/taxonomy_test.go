package taxonomy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks(t *testing.T) {
	r := KeywordRule{Hook: "election|elections|vote"}
	assert.Equal(t, []string{"election", "elections", "vote"}, r.Hooks())

	empty := KeywordRule{}
	assert.Equal(t, []string{""}, empty.Hooks())
}

func TestActiveIn(t *testing.T) {
	r := KeywordRule{Hook: "vote"}.WithOverride(SectionBody, RuleOverride{Inactive: true})

	assert.True(t, r.ActiveIn(SectionTitle))
	assert.False(t, r.ActiveIn(SectionBody))
}

func TestWeightAndBoostResolution(t *testing.T) {
	r := KeywordRule{Hook: "vote", Boost: 2}
	assert.Equal(t, 1.0, r.WeightIn(SectionTitle))
	assert.Equal(t, 2.0, r.BoostIn(SectionTitle))

	r = r.WithOverride(SectionTitle, RuleOverride{Weight: Float(4), Boost: Float(-1)})
	assert.Equal(t, 4.0, r.WeightIn(SectionTitle))
	assert.Equal(t, -1.0, r.BoostIn(SectionTitle))
	assert.Equal(t, 1.0, r.WeightIn(SectionBody))
	assert.Equal(t, 2.0, r.BoostIn(SectionBody))
}

func TestWithOverrideDoesNotShareMap(t *testing.T) {
	base := KeywordRule{Hook: "vote"}.WithOverride(SectionTitle, RuleOverride{Inactive: true})
	changed := base.WithOverride(SectionBody, RuleOverride{Inactive: true})

	_, ok := base.Override(SectionBody)
	assert.False(t, ok)
	assert.False(t, changed.ActiveIn(SectionBody))
}

func TestSectionWeight(t *testing.T) {
	c := Category{Key: "politics"}
	assert.Equal(t, 3.0, c.SectionWeight(SectionTitle, SectionWeights{}))
	assert.Equal(t, 1.0, c.SectionWeight(SectionBody, SectionWeights{}))
	assert.Equal(t, 5.0, c.SectionWeight(SectionTitle, SectionWeights{Title: 5}))

	c.Weights = SectionWeights{Title: 2}
	assert.Equal(t, 2.0, c.SectionWeight(SectionTitle, SectionWeights{Title: 5}))
	assert.Equal(t, 1.0, c.SectionWeight(SectionBody, SectionWeights{}))
}

func TestCategoryDocFromJSON(t *testing.T) {
	raw := `{
		"key": "politics",
		"parentId": "root",
		"sections_weights": {"title": 2},
		"rules": [
			{"hook": "election|vote", "weight": 2, "boost": 1, "body": {"inactive": true}},
			{"hook": "sport", "boost": -3, "title": {"weight": 0.5}}
		]
	}`

	var doc CategoryDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	c := doc.Category()

	assert.Equal(t, "politics", c.Name)
	assert.Equal(t, "root", c.ParentID)
	assert.Equal(t, 2.0, c.Weights.Title)
	require.Len(t, c.Rules, 2)
	assert.False(t, c.Rules[0].ActiveIn(SectionBody))
	assert.True(t, c.Rules[0].ActiveIn(SectionTitle))
	assert.Equal(t, 0.5, c.Rules[1].WeightIn(SectionTitle))
	assert.Equal(t, -3.0, c.Rules[1].BoostIn(SectionBody))

	back := CategoryToDoc(c)
	require.NotNil(t, back.Rules[0].Body)
	assert.True(t, back.Rules[0].Body.Inactive)
	assert.Nil(t, back.Rules[0].Title)
}
