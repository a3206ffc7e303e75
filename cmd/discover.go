// cmd/discover.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/feed"
	"github.com/julienpequegnot/tagdesk/internal/source"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find feeds for sources that have none",
	Long:  `Fetches the home page of every source without a feed URL and looks for an RSS or Atom link.`,
	RunE:  runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := source.NewRepository(db)
	sources, err := repo.List()
	if err != nil {
		return err
	}

	found, checked := 0, 0
	for _, s := range sources {
		if s.FeedURL != "" || !strings.HasPrefix(s.URL, "http") {
			continue
		}
		checked++

		feedURL, err := feed.DiscoverFeed(cmd.Context(), s.URL)
		if err != nil {
			fmt.Printf("  %s %s: %v\n", idStyle.Render("✗"), s.Name, err)
			continue
		}
		if err := repo.SetFeedURL(s.ID, feedURL); err != nil {
			return err
		}
		found++
		fmt.Printf("  %s %s → %s\n", scoreStyle.Render("✓"), sourceStyle.Render(s.Name), feedURL)
	}

	if checked == 0 {
		fmt.Println("Every source already has a feed.")
		return nil
	}
	fmt.Printf("\nFound %d of %d feeds\n", found, checked)
	return nil
}
