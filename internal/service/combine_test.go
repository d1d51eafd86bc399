package service_test

import (
	"testing"

	"github.com/NSteinhoff/meal-planner/internal/model"
	"github.com/NSteinhoff/meal-planner/internal/service"
)

func testRecipes(kcals ...float64) []model.Recipe {
	recipes := make([]model.Recipe, len(kcals))
	for i, kcal := range kcals {
		// Protein-only recipes keep the derived calories exact.
		recipes[i] = model.Recipe{
			Name:     string(rune('a' + i)),
			Kcal:     kcal,
			ProteinG: kcal / 4,
			Count:    1,
		}
	}
	return recipes
}

func collect(seq func(func([]model.Recipe) bool)) [][]model.Recipe {
	var combos [][]model.Recipe
	seq(func(c []model.Recipe) bool {
		combos = append(combos, c)
		return true
	})
	return combos
}

func TestCombinationsCountAndSizes(t *testing.T) {
	t.Parallel()
	recipes := testRecipes(400, 300, 200, 100)

	// C(4,1) + C(4,2) + C(4,3) = 4 + 6 + 4
	combos := collect(service.Combinations(recipes, 1, 3))
	if len(combos) != 14 {
		t.Fatalf("expected 14 combinations, got %d", len(combos))
	}
	size := 0
	for _, c := range combos {
		if len(c) == 0 {
			t.Fatalf("emitted empty combination")
		}
		if len(c) < size {
			t.Fatalf("sizes not ascending: %d after %d", len(c), size)
		}
		size = len(c)
	}

	all := collect(service.Combinations(recipes, 1, 4))
	if len(all) != 15 {
		t.Fatalf("expected 15 combinations including the full set, got %d", len(all))
	}
}

func TestCombinationsClampsMaxToInputSize(t *testing.T) {
	t.Parallel()
	recipes := testRecipes(400, 300)
	combos := collect(service.Combinations(recipes, 1, 10))
	if len(combos) != 3 {
		t.Fatalf("expected 3 combinations, got %d", len(combos))
	}
}

func TestCombinationsInterleavesByCalories(t *testing.T) {
	t.Parallel()
	recipes := testRecipes(300, 100, 400, 200)

	combos := collect(service.Combinations(recipes, 1, 1))
	got := make([]float64, len(combos))
	for i, c := range combos {
		got[i] = c[0].Kcal
	}
	// Sorted descending: 400 300 200 100. Evens 400,200; odds reversed
	// 100,300; zipped: 400 100 200 300.
	want := []float64{400, 100, 200, 300}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected interleaved order %v, got %v", want, got)
		}
	}
}

func TestCombinationsInterleaveKeepsOddLeftover(t *testing.T) {
	t.Parallel()
	recipes := testRecipes(500, 400, 300, 200, 100)

	combos := collect(service.Combinations(recipes, 1, 1))
	if len(combos) != 5 {
		t.Fatalf("expected 5 single-recipe combinations, got %d", len(combos))
	}
	// Evens 500,300,100; odds reversed 200,400; zipped with leftover:
	// 500 200 300 400 100.
	want := []float64{500, 200, 300, 400, 100}
	for i := range want {
		if combos[i][0].Kcal != want[i] {
			t.Fatalf("combination %d: expected kcal %v, got %v", i, want[i], combos[i][0].Kcal)
		}
	}
}

func TestCombinationsStopWhenConsumerStops(t *testing.T) {
	t.Parallel()
	recipes := testRecipes(400, 300, 200, 100)

	seen := 0
	service.Combinations(recipes, 1, 4)(func(c []model.Recipe) bool {
		seen++
		return seen < 3
	})
	if seen != 3 {
		t.Fatalf("expected enumeration to stop after 3 pulls, got %d", seen)
	}
}
