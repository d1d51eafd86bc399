package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NSteinhoff/meal-planner/internal/db"
	"github.com/NSteinhoff/meal-planner/internal/loader"
	"github.com/NSteinhoff/meal-planner/internal/service"
)

var importDBPath string

var importCmd = &cobra.Command{
	Use:   "import CSVFILE",
	Short: "Import recipes from a CSV file into a recipe database",
	Long: `Import recipes from a CSV file into a SQLite recipe database.
Existing recipes are matched by name and updated. The resulting
database can be passed to mealplan in place of a CSV file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return fmt.Errorf("unknown file %q", path)
		}
		records, err := loader.Load(path)
		if err != nil {
			return err
		}
		recipes, err := service.NormalizeRecords(records)
		if err != nil {
			return err
		}
		err = withDB(importDBPath, func(sqldb *sql.DB) error {
			return db.SaveRecipes(sqldb, recipes)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d recipes into %s\n", len(recipes), importDBPath)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to the recipe database to create or update")
	_ = importCmd.MarkFlagRequired("db")
	rootCmd.AddCommand(importCmd)
}
