package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/pipeline"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Classify articles against the taxonomy",
	Long: `Computes a 0-10 score per category for every unscored article. With --all,
every stored article is rescored, which is needed after the taxonomy changed.`,
	RunE: runScore,
}

var (
	scoreAll     bool
	scoreWorkers int
	scoreStrict  bool
)

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().BoolVarP(&scoreAll, "all", "a", false, "Rescore every article")
	scoreCmd.Flags().IntVarP(&scoreWorkers, "workers", "w", 0, "Concurrent scoring workers (0 = use config)")
	scoreCmd.Flags().BoolVar(&scoreStrict, "strict", false, "Store 0 instead of NaN for undefined scores")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if scoreStrict {
		cfg.Scoring.Strict = true
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
	if n := engine.Translations.Len(); n > 0 {
		fmt.Printf("Loaded %d translations (%v)\n", n, engine.Translations.Languages())
	}

	stats, err := pipeline.New(db, cfg, engine).Score(cmd.Context(), scoreAll, scoreWorkers)
	if err != nil {
		return err
	}
	if stats.Articles == 0 {
		fmt.Println("No articles to score.")
		return nil
	}

	fmt.Printf("Scored %s articles against %d categories in %s\n",
		humanize.Comma(int64(stats.Articles)), stats.Categories, stats.Elapsed.Round(time.Millisecond))
	if stats.Undefined > 0 {
		fmt.Printf("%d scores are undefined (NaN); use --strict to store them as 0\n", stats.Undefined)
	}
	return nil
}
