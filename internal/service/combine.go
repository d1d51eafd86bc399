package service

import (
	"iter"
	"slices"

	"github.com/NSteinhoff/meal-planner/internal/model"
)

// MaxCombinationSize is the global clamp on combination sizes. Brute
// force enumeration past this point is not worth the wait.
const MaxCombinationSize = 10

// Combinations lazily produces every subset of the given recipes with a
// size in [minSize, maxSize], smallest sizes first, each size in
// lexicographic index order over the prioritized recipe ordering. The
// sequence is forward-only; consumers that stop early stop the
// enumeration.
//
// Evaluation downstream is capped by result count and wall clock, so the
// recipes are reordered first to surface diverse combinations early: see
// interleaveByKcal.
func Combinations(recipes []model.Recipe, minSize, maxSize int) iter.Seq[[]model.Recipe] {
	ordered := interleaveByKcal(recipes)
	return func(yield func([]model.Recipe) bool) {
		n := len(ordered)
		upper := maxSize
		if upper > n {
			upper = n
		}
		for size := minSize; size <= upper; size++ {
			if size < 1 {
				continue
			}
			if !yieldSize(ordered, size, yield) {
				return
			}
		}
	}
}

// interleaveByKcal alternates high- and low-calorie recipes: sort by
// descending calories, split even positions from odd positions, reverse
// the odd half, then zip the two halves back together.
func interleaveByKcal(recipes []model.Recipe) []model.Recipe {
	sorted := slices.Clone(recipes)
	slices.SortStableFunc(sorted, func(a, b model.Recipe) int {
		switch {
		case a.Kcal > b.Kcal:
			return -1
		case a.Kcal < b.Kcal:
			return 1
		default:
			return 0
		}
	})

	var desc, asc []model.Recipe
	for i, r := range sorted {
		if i%2 == 0 {
			desc = append(desc, r)
		} else {
			asc = append(asc, r)
		}
	}
	slices.Reverse(asc)

	out := make([]model.Recipe, 0, len(sorted))
	for i := range asc {
		out = append(out, desc[i], asc[i])
	}
	if len(desc) > len(asc) {
		out = append(out, desc[len(desc)-1])
	}
	return out
}

func yieldSize(ordered []model.Recipe, size int, yield func([]model.Recipe) bool) bool {
	n := len(ordered)
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]model.Recipe, size)
		for i, j := range idx {
			combo[i] = ordered[j]
		}
		if !yield(combo) {
			return false
		}

		// Advance to the next index combination.
		i := size - 1
		for i >= 0 && idx[i] == n-size+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
