// cmd/words.go
package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/wordfreq"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the most frequent words across articles",
	Long:  `Counts words over every stored article title and body, to help pick new rule hooks.`,
	RunE:  runWords,
}

var (
	wordsMinLen    int
	wordsTop       int
	wordsStopWords bool
	wordsGroup     bool
)

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().IntVar(&wordsMinLen, "min-len", 3, "Ignore words shorter than this")
	wordsCmd.Flags().IntVarP(&wordsTop, "top", "n", 30, "Number of words to show")
	wordsCmd.Flags().BoolVar(&wordsStopWords, "stop-words", true, "Skip common stop words")
	wordsCmd.Flags().BoolVarP(&wordsGroup, "group", "g", false, "Group inflected forms sharing a stem")
}

func runWords(cmd *cobra.Command, args []string) error {
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
		fmt.Println("No articles found.")
		return nil
	}

	freqs := wordfreq.Count(articles, wordfreq.Options{
		MinLength:     wordsMinLen,
		SkipStopWords: wordsStopWords,
		GroupStems:    wordsGroup,
	})

	fmt.Printf("%s %s distinct words in %s articles\n\n",
		headerStyle.Render("WORDS:"), humanize.Comma(int64(len(freqs))), humanize.Comma(int64(len(articles))))
	for i, f := range wordfreq.Top(freqs, wordsTop) {
		fmt.Printf(" %s  %-24s %s\n",
			idStyle.Render(fmt.Sprintf("%3d", i+1)), f.Word, scoreStyle.Render(humanize.Comma(int64(f.Count))))
	}
	return nil
}
