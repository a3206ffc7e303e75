// cmd/search.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search articles by content",
	Long:  `Full-text search across article titles and bodies, optionally ranked within a category.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var (
	searchLimit    int
	searchCategory string
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 20, "Maximum results to show")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Rank by relevance combined with this category's score")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	searchRepo := search.NewRepository(db)

	var results []search.SearchResult
	if searchCategory != "" {
		results, err = searchRepo.SearchInCategory(query, searchCategory, searchLimit)
	} else {
		results, err = searchRepo.Search(query, searchLimit)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'\n", query)
		return nil
	}

	snippetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	fmt.Printf("\n%s '%s' (%d results)\n\n", headerStyle.Render("SEARCH:"), query, len(results))

	for _, r := range results {
		fmt.Printf("%s %s\n", idStyle.Render(fmt.Sprintf("[%d]", r.ArticleID)), r.Title)
		fmt.Printf("    %s", sourceStyle.Render(r.SourceName))
		if r.PublishedAt != nil {
			fmt.Printf(" • %s", dateStyle.Render(r.PublishedAt.Format("2006-01-02")))
		}
		if searchCategory != "" && r.Score > 0 {
			fmt.Printf(" • %s %s", searchCategory, scoreStyle.Render(fmt.Sprintf("%.1f", r.Score)))
		}
		fmt.Println()

		if r.Snippet != "" {
			snippet := strings.ReplaceAll(r.Snippet, "<b>", "")
			snippet = strings.ReplaceAll(snippet, "</b>", "")
			fmt.Printf("    %s\n", snippetStyle.Render(snippet))
		}
		fmt.Println()
	}

	return nil
}
