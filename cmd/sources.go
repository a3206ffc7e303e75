// cmd/sources.go
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/julienpequegnot/tagdesk/internal/source"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List monitored sources",
	Long:  `Display all news feeds being monitored.`,
	RunE:  runSources,
}

var sourcesRemove int64

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.Flags().Int64Var(&sourcesRemove, "remove", 0, "Deactivate the source with this ID")
}

func runSources(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := source.NewRepository(db)

	if sourcesRemove != 0 {
		if err := repo.Deactivate(sourcesRemove); err != nil {
			return fmt.Errorf("failed to remove source %d: %w", sourcesRemove, err)
		}
		fmt.Printf("Removed source %d\n", sourcesRemove)
		return nil
	}

	sources, err := repo.List()
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		fmt.Println("No sources configured. Add some with 'tagdesk add <url>'")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-25s  %-14s  %s", "ID", "NAME", "FETCHED", "FEED")))
	fmt.Println(divider(80))

	for _, s := range sources {
		fetched := "never"
		if s.LastFetched != nil {
			fetched = humanize.Time(*s.LastFetched)
		}
		feedURL := s.FeedURL
		if feedURL == "" {
			feedURL = "(none)"
		}

		fmt.Printf(" %s  %s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", s.ID)),
			scoreStyle.Render(fmt.Sprintf("%-25s", truncate(s.Name, 25))),
			dateStyle.Render(fmt.Sprintf("%-14s", fetched)),
			sourceStyle.Render(feedURL),
		)
	}

	return nil
}
