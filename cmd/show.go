// cmd/show.go
package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/category"
	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/pipeline"
	"github.com/julienpequegnot/tagdesk/internal/score"
	"github.com/julienpequegnot/tagdesk/internal/scorer"
)

var showCmd = &cobra.Command{
	Use:   "show <article-id>",
	Short: "Show details of an article",
	Long: `Display an article with its stored and legacy scores. With --explain, each
category is rescored live and the per-section breakdown is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showExplain bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVarP(&showExplain, "explain", "e", false, "Print the live per-section score breakdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid article ID: %s", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := article.NewRepository(db).Get(id)
	if errors.Is(err, article.ErrNotFound) {
		return fmt.Errorf("article not found: %d", id)
	}
	if err != nil {
		return err
	}
	if a.Classification, err = score.NewRepository(db).ForArticle(id); err != nil {
		return err
	}

	categories, err := category.NewRepository(db).List()
	if err != nil {
		return err
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	rule := labelStyle.Render(divider(70))

	fmt.Println(rule)
	fmt.Println(titleStyle.Render(a.DisplayTitle()))
	fmt.Println(rule)

	if a.SourceName != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Source:"), valueStyle.Render(a.SourceName))
	}
	if a.Publisher != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Publisher:"), valueStyle.Render(a.Publisher))
	}
	if a.Language != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Language:"), valueStyle.Render(a.Language))
	}
	if a.PublishedAt != nil {
		fmt.Printf("%s %s\n", labelStyle.Render("Published:"), valueStyle.Render(a.PublishedAt.Format("2006-01-02 15:04")))
	}
	fmt.Printf("%s %s\n", labelStyle.Render("URL:"), urlStyle.Render(a.URL))

	if len(categories) > 0 {
		fmt.Printf("\n%s\n", labelStyle.Render("SCORES:"))
		fmt.Printf("  %-20s %8s %8s %8s\n", "CATEGORY", "COMPUTED", "LEGACY", "DELTA")
		for _, c := range categories {
			computed, cok := scorer.ComputedScore(*a, c)
			legacy, lok := scorer.LegacyScore(*a, c)
			delta, dok := scorer.DisplayScore(*a, c, scorer.SourceDelta)
			fmt.Printf("  %-20s %8s %8s %8s\n", truncate(c.Key, 20),
				formatScore(computed, cok), formatScore(legacy, lok), formatScore(delta, dok))
		}
	}

	if showExplain && len(categories) > 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		engine, err := pipeline.NewEngine(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n", labelStyle.Render("BREAKDOWN:"))
		for _, c := range categories {
			b := engine.Scorer.Explain(*a, c)
			fmt.Printf("  %s %s (raw %.3f)\n", c.Key, scoreStyle.Render(formatScore(b.Final, true)), b.Raw)
			printSection("title", b.TitleWeight, b.Title)
			printSection("body", b.BodyWeight, b.Body)
		}
	}

	fmt.Println()
	if a.Body != "" {
		fmt.Println(labelStyle.Render("PREVIEW:"))
		fmt.Println(valueStyle.Render(truncate(a.Body, 500)))
	}
	return nil
}

func printSection(name string, weight float64, r scorer.SectionResult) {
	fmt.Printf("    %-5s w=%.1f rules=%d/%d hits=%d wf=%.2f/%.2f agg=%s boost=%.1f\n",
		name, weight, r.ScoredRuleCount, r.ActiveRuleCount, r.UniqueHitCount,
		r.WeightedFrequencyTotal, r.WeightTotal, formatScore(r.AggregateScore, true), r.BoostTotal)
}
