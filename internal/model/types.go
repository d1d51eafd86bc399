package model

// Recipe is a single normalized meal. Kcal is always derived from the
// macros (4 kcal/g protein and carbs, 9 kcal/g fat), never taken from
// input directly.
type Recipe struct {
	Name     string  `json:"name"`
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbG    float64 `json:"carb_g"`
	Count    int     `json:"count"`
}

// Plan is one candidate meal combination with its aggregated totals.
// Index is the 0-based position of the plan among all candidates
// considered, in generation order, before filtering.
type Plan struct {
	Kcal         float64   `json:"kcal"`
	ProteinIndex float64   `json:"pi"`
	Meals        []string  `json:"meals"`
	KcalFraction []float64 `json:"kcal_fraction"`
	ProteinG     float64   `json:"p"`
	FatG         float64   `json:"f"`
	CarbG        float64   `json:"c"`
	Details      []Recipe  `json:"details"`
	Index        int       `json:"index"`
}

// Range is a numeric interval, inclusive on both bounds, open-ended on
// either side when the bound is nil.
type Range struct {
	Start *float64
	Stop  *float64
}

func (r Range) Contains(v float64) bool {
	if r.Start != nil && v < *r.Start {
		return false
	}
	if r.Stop != nil && v > *r.Stop {
		return false
	}
	return true
}
