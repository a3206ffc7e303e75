package cmd

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/julienpequegnot/tagdesk/internal/article"
	"github.com/julienpequegnot/tagdesk/internal/source"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <articles.json>",
	Short: "Import an article dump",
	Long: `Imports a JSON array of processed articles. Each record carries the processed
title and body sections, the inferred language and, optionally, the relevance
scores of the upstream classifier, kept as legacy scores.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	articles, err := article.LoadJSONFile(args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	srcRepo := source.NewRepository(db)
	articleRepo := article.NewRepository(db)
	sourceIDs := make(map[string]int64)

	added, skipped := 0, 0
	for _, a := range articles {
		exists, err := articleRepo.Exists(a.URL)
		if err != nil {
			return err
		}
		if exists {
			skipped++
			continue
		}

		if a.SourceName != "" {
			id, ok := sourceIDs[a.SourceName]
			if !ok {
				src, err := srcRepo.FindOrCreate("dump:"+a.SourceName, a.SourceName)
				if err != nil {
					return err
				}
				id = src.ID
				sourceIDs[a.SourceName] = id
			}
			a.SourceID = id
		}

		if _, err := articleRepo.Add(a); err != nil {
			slog.Warn("failed to import article", "id", a.ExternalID, "error", err)
			skipped++
			continue
		}
		added++
	}

	fmt.Printf("Imported %s articles (%s skipped)\n", humanize.Comma(int64(added)), humanize.Comma(int64(skipped)))
	fmt.Println("\nRun 'tagdesk score' to classify them")
	return nil
}
