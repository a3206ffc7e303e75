// cmd/list.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/category"
	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/score"
	"github.com/julienpequegnot/tagdesk/internal/scorer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List classified articles",
	Long: `Without --category, lists the latest articles with their best category.
With --category, lists the articles above the category threshold, best first.`,
	RunE: runList,
}

var (
	listTop      int
	listCategory string
	listSource   string
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listTop, "top", "n", 20, "Number of articles to show")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list articles in this category")
	listCmd.Flags().StringVarP(&listSource, "source", "s", "auto", "Score to display: auto, legacy, computed or delta")
}

func runList(cmd *cobra.Command, args []string) error {
	src, err := scorer.ParseDisplaySource(listSource)
	if err != nil {
		return err
	}

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
	if len(articles) == 0 {
		fmt.Println("No articles found. Run 'tagdesk fetch' or 'tagdesk import' first.")
		return nil
	}

	stored, err := score.NewRepository(db).All()
	if err != nil {
		return err
	}
	for i := range articles {
		articles[i].Classification = stored[articles[i].ID]
	}

	catRepo := category.NewRepository(db)
	if listCategory != "" {
		c, err := catRepo.Get(listCategory)
		if err != nil {
			return fmt.Errorf("category %q: %w", listCategory, err)
		}

		ranked := scorer.RankByCategory(articles, *c, src, cfg.Threshold(string(src), c.Key))
		if len(ranked) == 0 {
			fmt.Printf("No articles above the %s threshold.\n", c.Key)
			return nil
		}

		quick := scorer.NewQuickKeywords(*c)
		fmt.Println(headerStyle.Render(fmt.Sprintf(" %-5s  %-5s  %-4s  %-10s  %-20s  %s", "#", "SCORE", "KW", "DATE", "SOURCE", "TITLE")))
		fmt.Println(divider(100))
		for i, r := range ranked {
			if i >= listTop {
				break
			}
			kw := "-"
			if n, ok := quick.Count(r.Article); ok {
				kw = fmt.Sprintf("%d", n)
			}
			printListRow(r.Article, fmt.Sprintf("%-5s  %-4s", formatScore(r.Score, true), kw))
		}
		return nil
	}

	categories, err := catRepo.List()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-5s  %-16s  %-10s  %-20s  %s", "#", "CATEGORY", "DATE", "SOURCE", "TITLE")))
	fmt.Println(divider(100))
	for i, a := range articles {
		if i >= listTop {
			break
		}
		label := "-"
		if key, v, ok := scorer.TopCategory(a, categories, src); ok {
			label = truncate(fmt.Sprintf("%s %s", key, formatScore(v, true)), 16)
		}
		printListRow(a, fmt.Sprintf("%-16s", label))
	}
	return nil
}

func printListRow(a article.Article, scoreCol string) {
	date := "-"
	if a.PublishedAt != nil {
		date = a.PublishedAt.Format("2006-01-02")
	}
	name := a.SourceName
	if name == "" {
		name = a.Publisher
	}

	fmt.Printf(" %s  %s  %s  %s  %s\n",
		idStyle.Render(fmt.Sprintf("%-5d", a.ID)),
		scoreStyle.Render(scoreCol),
		dateStyle.Render(fmt.Sprintf("%-10s", date)),
		sourceStyle.Render(fmt.Sprintf("%-20s", truncate(name, 20))),
		truncate(a.DisplayTitle(), 50),
	)
}
