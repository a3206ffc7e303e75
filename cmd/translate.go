// cmd/translate.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/lang"
	"github.com/julienpequegnot/tagdesk/internal/pipeline"
)

var translateCmd = &cobra.Command{
	Use:   "translate <term> <lang>",
	Short: "Show how a hook is matched in a language",
	Long:  `Looks up a term in the translation table and lists the candidates the matcher searches for.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	engine, err := pipeline.NewEngine(cfg)
	if err != nil {
		return err
	}

	term, code := args[0], lang.Normalize(args[1])

	if tr, ok := engine.Translations.Lookup(term, code); ok {
		fmt.Printf("%s %s\n", labelStyle.Render("Translation:"), valueStyle.Render(tr))
	} else {
		fmt.Printf("%s %s\n", labelStyle.Render("Translation:"), valueStyle.Render("(none, term is used as is)"))
	}

	candidates := engine.Matcher.Expand(term, code)
	fmt.Printf("%s %s\n", labelStyle.Render("Candidates:"), valueStyle.Render(strings.Join(candidates, ", ")))
	return nil
}
