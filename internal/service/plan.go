package service

import (
	"errors"
	"slices"

	"github.com/NSteinhoff/meal-planner/internal/model"
)

// errZeroCalories marks a combination whose macros sum to zero calories.
// Such combinations cannot be fractioned; the evaluator skips them.
var errZeroCalories = errors.New("combination has zero calories")

// PlanTotals aggregates a combination into a plan. Macros are summed
// from the already-rounded per-recipe values and rounded again; total
// calories are derived from the summed macros rather than by summing
// per-recipe calories, so the two can differ by rounding.
func PlanTotals(meals []model.Recipe) (model.Plan, error) {
	var protein, fat, carbs float64
	for _, m := range meals {
		protein += m.ProteinG
		fat += m.FatG
		carbs += m.CarbG
	}
	protein = rnd(protein)
	fat = rnd(fat)
	carbs = rnd(carbs)

	kcal := rnd(calories(protein, carbs, fat))
	if kcal == 0 {
		return model.Plan{}, errZeroCalories
	}

	names := make([]string, len(meals))
	fractions := make([]float64, len(meals))
	for i, m := range meals {
		names[i] = m.Name
		fractions[i] = rnd(m.Kcal / kcal)
	}

	return model.Plan{
		Kcal:         kcal,
		ProteinIndex: rnd(protein * 4 / kcal),
		Meals:        names,
		KcalFraction: fractions,
		ProteinG:     protein,
		FatG:         fat,
		CarbG:        carbs,
		Details:      slices.Clone(meals),
	}, nil
}
