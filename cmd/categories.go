package cmd

import (
	"fmt"

	"github.com/julienpequegnot/tagdesk/internal/category"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Manage the category taxonomy",
}

var categoriesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load categories from a YAML, TOML or JSON file",
	Long: `Loads a taxonomy file. By default the stored taxonomy is replaced; with
--merge, categories are added or updated by key.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoriesImport,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoriesList,
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesDelete,
}

var categoriesMerge bool

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesImportCmd, categoriesListCmd, categoriesDeleteCmd)
	categoriesImportCmd.Flags().BoolVar(&categoriesMerge, "merge", false, "Merge into the stored taxonomy instead of replacing it")
}

func runCategoriesImport(cmd *cobra.Command, args []string) error {
	categories, err := category.LoadFile(args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := category.NewRepository(db)
	if categoriesMerge {
		for _, c := range categories {
			if err := repo.Upsert(c); err != nil {
				return err
			}
		}
	} else if err := repo.ReplaceAll(categories); err != nil {
		return err
	}

	rules := 0
	for _, c := range categories {
		rules += len(c.Rules)
	}
	fmt.Printf("Loaded %d categories with %d rules\n", len(categories), rules)
	fmt.Println("\nRun 'tagdesk score --all' to rescore existing articles")
	return nil
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	categories, err := category.NewRepository(db).List()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories. Load some with 'tagdesk categories import <file>'")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-20s  %-25s  %-5s  %-9s  %s", "KEY", "NAME", "RULES", "WEIGHTS", "LEGACY")))
	fmt.Println(divider(80))

	for _, c := range categories {
		weights := "default"
		if c.Weights.Title != 0 || c.Weights.Body != 0 {
			weights = fmt.Sprintf("%g/%g", c.Weights.Title, c.Weights.Body)
		}
		fmt.Printf(" %s  %-25s  %s  %-9s  %s\n",
			sourceStyle.Render(fmt.Sprintf("%-20s", truncate(c.Key, 20))),
			truncate(c.Name, 25),
			scoreStyle.Render(fmt.Sprintf("%-5d", len(c.Rules))),
			weights,
			idStyle.Render(c.LegacyKey),
		)
	}
	return nil
}

func runCategoriesDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := category.NewRepository(db).Delete(args[0]); err != nil {
		return fmt.Errorf("failed to delete %s: %w", args[0], err)
	}
	fmt.Printf("Deleted category %s\n", args[0])
	return nil
}
