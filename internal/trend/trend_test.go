package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentCategoryLeads(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a := NewAnalyzer(now)

	a.Add(1, []string{"politics", "economy"}, now)
	a.Add(2, []string{"politics"}, now.AddDate(0, 0, -1))
	a.Add(3, []string{"politics"}, now.AddDate(0, 0, -2))
	a.Add(4, []string{"sport", "economy"}, now.AddDate(0, -1, 0))
	a.Add(5, []string{"sport"}, now.AddDate(0, -1, 0))

	trends := a.Trends(7, 5)

	require.Len(t, trends, 3)
	assert.Equal(t, "politics", trends[0].CategoryKey)
	assert.Equal(t, 3, trends[0].Count)
	assert.Equal(t, []int64{1, 2, 3}, trends[0].RecentArticles)
	assert.Empty(t, trends[2].RecentArticles)
	assert.Equal(t, "sport", trends[2].CategoryKey)
}

func TestOldCategoryHasNoBoost(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a := NewAnalyzer(now)
	a.Add(1, []string{"old"}, now.AddDate(0, -2, 0))

	trends := a.Trends(7, 0)

	require.Len(t, trends, 1)
	assert.Equal(t, 1.0, trends[0].Score)
}

func TestLimitAndEmptyCategories(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a := NewAnalyzer(now)
	a.Add(1, nil, now)
	a.Add(2, []string{"a"}, now)
	a.Add(3, []string{"b"}, now)

	assert.Len(t, a.Trends(7, 1), 1)
	assert.Len(t, a.Trends(7, 0), 2)
}
