package cmd

import (
	"fmt"

	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/pipeline"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch new articles from all sources",
	Long:  `Downloads new articles from the RSS feeds of all active sources.`,
	RunE:  runFetch,
}

var (
	fetchConcurrency int
	fetchFull        bool
	fetchScore       bool
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().IntVarP(&fetchConcurrency, "concurrency", "c", 0, "Number of concurrent fetches (0 = use config)")
	fetchCmd.Flags().BoolVar(&fetchFull, "full", false, "Download the full page text of every item")
	fetchCmd.Flags().BoolVar(&fetchScore, "score", false, "Score new articles after fetching")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if fetchConcurrency > 0 {
		cfg.Fetch.Concurrency = fetchConcurrency
	}
	if fetchFull {
		cfg.Fetch.FullContent = true
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := pipeline.NewEngine(cfg)
	if err != nil {
		return err
	}
	p := pipeline.New(db, cfg, engine)

	fmt.Println("Fetching sources...")
	stats, err := p.Fetch(cmd.Context())
	if err != nil {
		return err
	}
	if stats.Sources == 0 {
		fmt.Println("No sources with a feed. Add some with 'tagdesk add <url>'")
		return nil
	}
	fmt.Printf("\nTotal: %d new articles from %d sources (%d failed)\n", stats.Articles, stats.Sources, stats.Failed)

	if fetchScore && stats.Articles > 0 {
		s, err := p.Score(cmd.Context(), false, 0)
		if err != nil {
			return err
		}
		fmt.Printf("Scored %d articles against %d categories\n", s.Articles, s.Categories)
	}
	return nil
}
