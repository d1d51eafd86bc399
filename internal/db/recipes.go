package db

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/NSteinhoff/meal-planner/internal/loader"
	"github.com/NSteinhoff/meal-planner/internal/model"
)

// SaveRecipes upserts recipes by name, keeping first-import order for
// new rows.
func SaveRecipes(db *sql.DB, recipes []model.Recipe) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	for _, r := range recipes {
		if _, err := tx.Exec(`
INSERT INTO recipes(name, protein, carbs, fat, count)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  protein=excluded.protein,
  carbs=excluded.carbs,
  fat=excluded.fat,
  count=excluded.count
`, r.Name, r.ProteinG, r.CarbG, r.FatG, r.Count); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save recipe %q: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

// LoadRecords reads stored recipes back as raw records so they go
// through the same normalization as CSV input.
func LoadRecords(db *sql.DB) ([]loader.Record, error) {
	rows, err := db.Query(`SELECT name, protein, carbs, fat, count FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	defer rows.Close()

	records := make([]loader.Record, 0)
	for rows.Next() {
		var name string
		var protein, carbs, fat float64
		var count int
		if err := rows.Scan(&name, &protein, &carbs, &fat, &count); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		records = append(records, loader.Record{
			"name":    name,
			"protein": strconv.FormatFloat(protein, 'f', -1, 64),
			"carbs":   strconv.FormatFloat(carbs, 'f', -1, 64),
			"fat":     strconv.FormatFloat(fat, 'f', -1, 64),
			"count":   strconv.Itoa(count),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return records, nil
}
