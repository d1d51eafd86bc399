package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NSteinhoff/meal-planner/internal/model"
)

// Criteria holds the parsed range filters for plan totals. Nil ranges
// are not checked. The combination size range is handled upstream by the
// generator, not as a plan predicate.
type Criteria struct {
	Kcal         *model.Range
	Protein      *model.Range
	Carbs        *model.Range
	Fat          *model.Range
	ProteinIndex *model.Range
}

// Predicate reports whether a plan satisfies one criterion.
type Predicate func(model.Plan) bool

// ParseRange parses a "MIN[:MAX]" range string. Either side may be left
// out: "75" and "75:" mean at-least-75, ":95" means at-most-95. Both
// bounds are inclusive.
func ParseRange(s string) (model.Range, error) {
	var r model.Range
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return r, fmt.Errorf("empty range")
	}
	start, stop, hasStop := strings.Cut(trimmed, ":")
	lower, err := parseBound(start)
	if err != nil {
		return r, fmt.Errorf("invalid range %q: %w", s, err)
	}
	r.Start = lower
	if hasStop {
		upper, err := parseBound(stop)
		if err != nil {
			return r, fmt.Errorf("invalid range %q: %w", s, err)
		}
		r.Stop = upper
	}
	if r.Start == nil && r.Stop == nil {
		return r, fmt.Errorf("invalid range %q", s)
	}
	return r, nil
}

func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return &v, nil
}

// ParseSizeRange parses the meal-count option: "MIN:MAX" bounds the
// combination size on both ends, a bare "MAX" means 1:MAX. Both bounds
// are clamped to 1..MaxCombinationSize.
func ParseSizeRange(s string) (minSize, maxSize int, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, 0, fmt.Errorf("empty meal count")
	}
	start, stop, hasStop := strings.Cut(trimmed, ":")
	if !hasStop {
		maxSize, err = parseSize(start)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid meal count %q: %w", s, err)
		}
		return 1, clampSize(maxSize), nil
	}

	minSize = 1
	maxSize = MaxCombinationSize
	if strings.TrimSpace(start) != "" {
		if minSize, err = parseSize(start); err != nil {
			return 0, 0, fmt.Errorf("invalid meal count %q: %w", s, err)
		}
	}
	if strings.TrimSpace(stop) != "" {
		if maxSize, err = parseSize(stop); err != nil {
			return 0, 0, fmt.Errorf("invalid meal count %q: %w", s, err)
		}
	}
	minSize = clampSize(minSize)
	maxSize = clampSize(maxSize)
	if minSize > maxSize {
		return 0, 0, fmt.Errorf("invalid meal count %q: min exceeds max", s)
	}
	return minSize, maxSize, nil
}

func parseSize(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", strings.TrimSpace(s))
	}
	if v < 1 {
		return 0, fmt.Errorf("must be >= 1")
	}
	return v, nil
}

func clampSize(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxCombinationSize {
		return MaxCombinationSize
	}
	return v
}

// Predicates builds the plan filters for the set criteria. All of them
// must pass for a plan to match.
func Predicates(c Criteria) []Predicate {
	checks := []struct {
		rng   *model.Range
		field func(model.Plan) float64
	}{
		{c.Kcal, func(p model.Plan) float64 { return p.Kcal }},
		{c.Protein, func(p model.Plan) float64 { return p.ProteinG }},
		{c.Carbs, func(p model.Plan) float64 { return p.CarbG }},
		{c.Fat, func(p model.Plan) float64 { return p.FatG }},
		{c.ProteinIndex, func(p model.Plan) float64 { return p.ProteinIndex }},
	}

	predicates := make([]Predicate, 0, len(checks))
	for _, check := range checks {
		if check.rng == nil {
			continue
		}
		rng, field := *check.rng, check.field
		predicates = append(predicates, func(p model.Plan) bool {
			return rng.Contains(field(p))
		})
	}
	return predicates
}
