package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/NSteinhoff/meal-planner/internal/loader"
)

// kcalPerKg is the estimated energy content of one kilogram of body
// weight change.
const kcalPerKg = 7700

const (
	windowDays = 7
	// minLogDays is the shortest usable log: one 7-day window, a second
	// window 7 days later for the weight delta, and one day lost to the
	// calorie lag.
	minLogDays = 2*windowDays + 1
)

// activityFactors maps the recognized activity levels to their BMR
// multipliers. "athelete" keeps the spelling the tool has always
// accepted.
var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"heavy":     1.725,
	"athelete":  1.9,
}

// ActivityLevels lists the recognized activity levels, lightest first.
func ActivityLevels() []string {
	levels := make([]string, 0, len(activityFactors))
	for level := range activityFactors {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		return activityFactors[levels[i]] < activityFactors[levels[j]]
	})
	return levels
}

// TDEEParams are the inputs for the direct estimate.
type TDEEParams struct {
	WeightKg      float64
	BodyFatPct    float64
	ActivityLevel string
}

// TDEEFromParams estimates BMR and TDEE from body composition using the
// Katch-McArdle formula scaled by the activity factor.
func TDEEFromParams(p TDEEParams) (bmr, tdee float64, err error) {
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		return 0, 0, fmt.Errorf("invalid activity-level %q (expected %s)",
			p.ActivityLevel, strings.Join(ActivityLevels(), "|"))
	}
	if p.WeightKg <= 0 {
		return 0, 0, fmt.Errorf("weight must be > 0")
	}
	if p.BodyFatPct < 0 || p.BodyFatPct > 100 {
		return 0, 0, fmt.Errorf("body-fat must be between 0 and 100")
	}
	leanBodyMass := p.WeightKg * (1 - p.BodyFatPct/100)
	bmr = 370 + leanBodyMass*21.6
	return bmr, bmr * factor, nil
}

// LogEntry is one day of a weight log.
type LogEntry struct {
	Date string
	Kcal float64
	Kg   float64
}

// TDEEPoint is the estimate reported for the final day of one window.
type TDEEPoint struct {
	Date string
	TDEE float64
}

// ParseLog converts raw date/kcal/kg records into log entries, keeping
// input order.
func ParseLog(records []loader.Record) ([]LogEntry, error) {
	entries := make([]LogEntry, 0, len(records))
	for i, r := range records {
		date := strings.TrimSpace(r["date"])
		if date == "" {
			return nil, fmt.Errorf("record %d: missing date", i+1)
		}
		kcal, err := strconv.ParseFloat(strings.TrimSpace(r["kcal"]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid kcal %q", i+1, r["kcal"])
		}
		kg, err := strconv.ParseFloat(strings.TrimSpace(r["kg"]), 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid kg %q", i+1, r["kg"])
		}
		entries = append(entries, LogEntry{Date: date, Kcal: kcal, Kg: kg})
	}
	return entries, nil
}

// TDEEFromLog estimates TDEE from a daily calorie and weight log.
//
// Each day's weight is paired with the previous day's calories, since
// weight reflects prior intake. For every 7-day trailing window the
// average intake and weight are compared against the window 7 days
// earlier: the weight delta converts to a caloric surplus (kcalPerKg per
// kilogram), spread over the 7 days, and subtracting the daily surplus
// from the average intake gives the calories actually expended. The
// reported TDEE for a date is the cumulative average of expended
// calories over all windows processed so far.
func TDEEFromLog(entries []LogEntry) ([]TDEEPoint, error) {
	if len(entries) < minLogDays {
		return nil, fmt.Errorf("need at least %d days of data, got %d", minLogDays, len(entries))
	}

	lagged := make([]LogEntry, len(entries)-1)
	for i := 1; i < len(entries); i++ {
		lagged[i-1] = LogEntry{
			Date: entries[i].Date,
			Kcal: entries[i-1].Kcal,
			Kg:   entries[i].Kg,
		}
	}

	type window struct {
		end  string
		kcal float64
		kg   float64
	}
	windows := make([]window, 0, len(lagged)-windowDays+1)
	for i := 0; i+windowDays <= len(lagged); i++ {
		var kcal, kg float64
		for _, e := range lagged[i : i+windowDays] {
			kcal += e.Kcal
			kg += e.Kg
		}
		windows = append(windows, window{
			end:  lagged[i+windowDays-1].Date,
			kcal: kcal / windowDays,
			kg:   kg / windowDays,
		})
	}

	points := make([]TDEEPoint, 0, len(windows)-windowDays)
	var expendedTotal float64
	for i := windowDays; i < len(windows); i++ {
		deltaKg := windows[i].kg - windows[i-windowDays].kg
		dailySurplus := deltaKg * kcalPerKg / windowDays
		expended := windows[i].kcal - dailySurplus
		expendedTotal += expended
		points = append(points, TDEEPoint{
			Date: windows[i].end,
			TDEE: expendedTotal / float64(i-windowDays+1),
		})
	}
	return points, nil
}
