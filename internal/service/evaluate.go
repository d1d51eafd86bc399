package service

import (
	"iter"
	"time"

	"github.com/NSteinhoff/meal-planner/internal/model"
)

// Default evaluation limits.
const (
	DefaultMealRange  = "3:5"
	DefaultMaxResults = 10
	DefaultTimeout    = time.Second
)

// Limits bounds an evaluation run. A zero MaxResults means no result
// cap, a zero Timeout means no wall-clock budget.
type Limits struct {
	MaxResults int
	Timeout    time.Duration
}

// Evaluate pulls combinations one at a time, aggregates each into a
// plan, and collects the plans that pass every predicate. It stops at
// the result cap or when the wall-clock budget, measured from the first
// combination pulled, runs out. The elapsed check runs after each
// candidate, so the candidate that crosses the budget is still
// considered.
//
// Each plan's Index is its 0-based position among all candidates
// considered, whether or not they matched.
func Evaluate(combos iter.Seq[[]model.Recipe], predicates []Predicate, limits Limits) []model.Plan {
	matches := make([]model.Plan, 0)
	var start time.Time
	index := 0
	for combo := range combos {
		if start.IsZero() {
			start = time.Now()
		}
		plan, err := PlanTotals(combo)
		if err == nil {
			plan.Index = index
			if matchesAll(plan, predicates) {
				matches = append(matches, plan)
				if limits.MaxResults > 0 && len(matches) >= limits.MaxResults {
					break
				}
			}
		}
		index++
		if limits.Timeout > 0 && time.Since(start) >= limits.Timeout {
			break
		}
	}
	return matches
}

func matchesAll(plan model.Plan, predicates []Predicate) bool {
	for _, match := range predicates {
		if !match(plan) {
			return false
		}
	}
	return true
}
