// cmd/add.go
package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/julienpequegnot/tagdesk/internal/feed"
	"github.com/julienpequegnot/tagdesk/internal/source"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a news site or RSS feed",
	Long:  `Add a site URL to the monitored sources, discovering its RSS or Atom feed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addName string
	addFeed string
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Custom name for the source")
	addCmd.Flags().StringVar(&addFeed, "feed", "", "Feed URL, skips discovery")
}

func runAdd(cmd *cobra.Command, args []string) error {
	siteURL := args[0]

	if !strings.HasPrefix(siteURL, "http") {
		siteURL = "https://" + siteURL
	}

	parsed, err := url.Parse(siteURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	name := addName
	if name == "" {
		name = parsed.Host
	}

	feedURL := addFeed
	if feedURL == "" {
		fmt.Printf("Discovering feed for %s...\n", siteURL)
		feedURL, err = feed.DiscoverFeed(cmd.Context(), siteURL)
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
			fmt.Println("Adding without feed URL - use --feed to set it")
		} else {
			fmt.Printf("Found feed: %s\n", feedURL)
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := source.NewRepository(db)
	src, err := repo.Add(siteURL, name, feedURL)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("source already exists: %s", siteURL)
		}
		return err
	}

	fmt.Printf("\nAdded: %s (ID: %d)\n", src.Name, src.ID)
	fmt.Println("\nRun 'tagdesk fetch' to download articles")

	return nil
}
