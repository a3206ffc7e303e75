// cmd/trends.go
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/category"
	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/score"
	"github.com/julienpequegnot/tagdesk/internal/scorer"
	"github.com/julienpequegnot/tagdesk/internal/trend"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show trending categories",
	Long:  `Ranks categories by how many recent articles pass their threshold.`,
	RunE:  runTrends,
}

var (
	trendsDays  int
	trendsLimit int
)

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().IntVar(&trendsDays, "days", 7, "Time window in days")
	trendsCmd.Flags().IntVarP(&trendsLimit, "limit", "l", 10, "Maximum categories to show")
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	articles, err := article.NewRepository(db).ListAll()
	if err != nil {
		return err
	}
	categories, err := category.NewRepository(db).List()
	if err != nil {
		return err
	}
	stored, err := score.NewRepository(db).All()
	if err != nil {
		return err
	}

	analyzer := trend.NewAnalyzer(time.Now())
	for _, a := range articles {
		a.Classification = stored[a.ID]
		var keys []string
		for _, c := range categories {
			if v, ok := scorer.ComputedScore(a, c); ok && scorer.PassesThreshold(v, cfg.Threshold(string(scorer.SourceComputed), c.Key)) {
				keys = append(keys, c.Key)
			}
		}
		publishedAt := a.FetchedAt
		if a.PublishedAt != nil {
			publishedAt = *a.PublishedAt
		}
		analyzer.Add(a.ID, keys, publishedAt)
	}

	trends := analyzer.Trends(trendsDays, trendsLimit)
	if len(trends) == 0 {
		fmt.Println("No trending categories found. Run 'tagdesk score' first.")
		return nil
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	fmt.Printf("\n%s (last %d days)\n\n", headerStyle.Render("TRENDING CATEGORIES"), trendsDays)

	maxScore := trends[0].Score
	for i, t := range trends {
		bar := strings.Repeat("█", int(t.Score/maxScore*20))
		fmt.Printf("%2d. %-20s %s %.1f (%d articles, %d recent)\n",
			i+1, truncate(t.CategoryKey, 20), barStyle.Render(bar), t.Score, t.Count, len(t.RecentArticles))
	}
	fmt.Println()
	return nil
}
