package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NSteinhoff/meal-planner/internal/model"
	"github.com/NSteinhoff/meal-planner/internal/service"
)

var (
	mealsFlag   string
	kcalFlag    string
	proteinFlag string
	carbsFlag   string
	fatFlag     string
	piFlag      string
	maxResults  int
	timeoutSecs float64
)

var rootCmd = &cobra.Command{
	Use:   "mealplan [flags] FILE",
	Short: "Create meal plans from recipes in a CSV file",
	Long: `Create meal plans from recipes in a CSV formatted file
and print a JSON array with the results to stdout.

Example recipe file contents:

    name     , protein, carbs,  fat, count
    meal-one ,    50.5,  10.6, 25.2,     2
    meal-two ,    42.3,    11, 15.3

The count column is optional and marks a recipe that can appear in a
plan that many times. A FILE ending in .db or .sqlite is read as a
recipe database instead (see "mealplan import").

Range options take a minimum and an optional maximum value separated
by ':'. Examples:

    -c 50:100  between 50 and 100 grams of carbs
    -f 75      minimum of 75 grams of fat
    --kcal :1800  at most 1800 calories`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		minMeals, maxMeals, err := service.ParseSizeRange(mealsFlag)
		if err != nil {
			return fmt.Errorf("invalid --meals: %w", err)
		}
		criteria, err := parseCriteria()
		if err != nil {
			return err
		}

		records, err := loadRecords(path)
		if err != nil {
			return err
		}
		recipes, err := service.NormalizeRecords(records)
		if err != nil {
			return err
		}

		stderr := cmd.ErrOrStderr()
		fmt.Fprintln(stderr, "---")
		fmt.Fprintf(stderr, "Options: meals=%s kcal=%q p=%q c=%q f=%q pi=%q max-results=%d timeout=%gs\n",
			mealsFlag, kcalFlag, proteinFlag, carbsFlag, fatFlag, piFlag, maxResults, timeoutSecs)
		fmt.Fprintf(stderr, "Data: %s (%d recipes)\n", path, len(recipes))
		fmt.Fprintln(stderr, "---")
		fmt.Fprintln(stderr, "Creating meal plans:")

		expanded := service.ExpandCounts(recipes)
		combos := service.Combinations(expanded, minMeals, maxMeals)
		plans := service.Evaluate(combos, service.Predicates(criteria), service.Limits{
			MaxResults: maxResults,
			Timeout:    time.Duration(timeoutSecs * float64(time.Second)),
		})

		if len(plans) == 0 {
			fmt.Fprintln(stderr, "No plan found. Try relaxing the criteria or increasing --timeout.")
			return nil
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(plans); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		return nil
	},
}

func parseCriteria() (service.Criteria, error) {
	var criteria service.Criteria
	for _, opt := range []struct {
		flag  string
		value string
		dest  **model.Range
	}{
		{"kcal", kcalFlag, &criteria.Kcal},
		{"protein", proteinFlag, &criteria.Protein},
		{"carbs", carbsFlag, &criteria.Carbs},
		{"fat", fatFlag, &criteria.Fat},
		{"pi", piFlag, &criteria.ProteinIndex},
	} {
		if opt.value == "" {
			continue
		}
		rng, err := service.ParseRange(opt.value)
		if err != nil {
			return service.Criteria{}, fmt.Errorf("invalid --%s: %w", opt.flag, err)
		}
		*opt.dest = &rng
	}
	return criteria, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&mealsFlag, "meals", "n", service.DefaultMealRange, "Number of meals per plan, MIN:MAX or bare MAX")
	rootCmd.Flags().StringVar(&kcalFlag, "kcal", "", "Calories (kcal) MIN[:MAX]")
	rootCmd.Flags().StringVarP(&proteinFlag, "protein", "p", "", "Protein (g) MIN[:MAX]")
	rootCmd.Flags().StringVarP(&carbsFlag, "carbs", "c", "", "Carbs (g) MIN[:MAX]")
	rootCmd.Flags().StringVarP(&fatFlag, "fat", "f", "", "Fat (g) MIN[:MAX]")
	rootCmd.Flags().StringVar(&piFlag, "pi", "", "Fraction of calories from protein MIN[:MAX]")
	rootCmd.Flags().IntVar(&maxResults, "max-results", service.DefaultMaxResults, "Maximum number of plans to produce")
	rootCmd.Flags().Float64Var(&timeoutSecs, "timeout", service.DefaultTimeout.Seconds(), "Wall-clock budget in seconds for the search")
}
