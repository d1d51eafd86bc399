package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NSteinhoff/meal-planner/internal/loader"
	"github.com/NSteinhoff/meal-planner/internal/model"
)

// NormalizeRecords converts raw string-valued records into recipes with
// derived calories and rounded macros. Records need name, protein, carbs
// and fat; count is optional and defaults to 1.
func NormalizeRecords(records []loader.Record) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0, len(records))
	for i, r := range records {
		recipe, err := normalizeRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func normalizeRecord(r loader.Record) (model.Recipe, error) {
	name := strings.TrimSpace(r["name"])
	if name == "" {
		return model.Recipe{}, fmt.Errorf("missing name")
	}
	protein, err := requiredFloat(r, "protein")
	if err != nil {
		return model.Recipe{}, err
	}
	carbs, err := requiredFloat(r, "carbs")
	if err != nil {
		return model.Recipe{}, err
	}
	fat, err := requiredFloat(r, "fat")
	if err != nil {
		return model.Recipe{}, err
	}
	count, err := optionalCount(r)
	if err != nil {
		return model.Recipe{}, err
	}
	return model.Recipe{
		Name:     name,
		Kcal:     rnd(calories(protein, carbs, fat)),
		ProteinG: rnd(protein),
		CarbG:    rnd(carbs),
		FatG:     rnd(fat),
		Count:    count,
	}, nil
}

func requiredFloat(r loader.Record, field string) (float64, error) {
	raw, ok := r[field]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("missing %s", field)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, raw)
	}
	return v, nil
}

func optionalCount(r loader.Record) (int, error) {
	raw := strings.TrimSpace(r["count"])
	if raw == "" {
		return 1, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return 0, fmt.Errorf("invalid count %q", raw)
	}
	return count, nil
}

// ExpandCounts turns a recipe with count=k into k interchangeable copies
// so the combination generator can use the same meal multiple times.
func ExpandCounts(recipes []model.Recipe) []model.Recipe {
	expanded := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		for i := 0; i < r.Count; i++ {
			unit := r
			unit.Count = 1
			expanded = append(expanded, unit)
		}
	}
	return expanded
}
