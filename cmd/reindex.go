// cmd/reindex.go
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/search"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild search index",
	Long: `Rebuilds the full-text search index over the processed title and body of
every stored article. Needed after editing the database by hand.`,
	RunE: runReindex,
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := article.NewRepository(db).Count()
	if err != nil {
		return err
	}
	fmt.Printf("Indexing %s articles...\n", humanize.Comma(int64(n)))

	if err := search.NewRepository(db).RebuildIndex(); err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}

	fmt.Println("Search index rebuilt. Try 'tagdesk search <query> --category <key>'.")
	return nil
}
