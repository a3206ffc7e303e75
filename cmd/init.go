package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/tagdesk/internal/config"
	"github.com/julienpequegnot/tagdesk/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tagdesk configuration and database",
	Long:  `Creates the ~/.tagdesk directory with config.yaml and SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s\n", config.DBPath())

	fmt.Println("\nTagdesk initialized! Next steps:")
	fmt.Println("  tagdesk categories import <taxonomy.yaml>   Load the category taxonomy (.yaml, .toml or .json)")
	fmt.Println("  tagdesk add <site-url>                      Add a news feed")
	fmt.Println("  tagdesk import <articles.json>              Import an article dump")
	fmt.Printf("  Place a translation table at %s to match hooks in other languages\n", cfg.TranslationsPath())

	fmt.Println("\nA taxonomy file lists categories with their keyword rules:")
	fmt.Println(valueStyle.Render(taxonomyExample))
	fmt.Println("The translation table is a CSV with a header row: word,fr,de,...")

	return nil
}

const taxonomyExample = `  categories:
    - key: politics
      legacy_key: POL
      sections_weights: {title: 3, body: 1}
      rules:
        - hook: election|vote|parliament
          weight: 2
        - hook: football
          boost: -2
          body: {inactive: true}`
