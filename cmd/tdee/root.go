package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NSteinhoff/meal-planner/internal/loader"
	"github.com/NSteinhoff/meal-planner/internal/service"
)

var (
	weight        float64
	activityLevel string
	bodyFat       float64
)

var rootCmd = &cobra.Command{
	Use:   "tdee [flags] [FILE]",
	Short: "Calculate Total Daily Energy Expenditure (TDEE)",
	Long: `Calculate Total Daily Energy Expenditure (TDEE).

With a FILE argument, estimate TDEE from a daily log of calories and
weight and print one "date,tdee" line per 7-day window. The log needs
at least 15 days of data. Example file contents:

    date       , kcal, kg
    2024-03-01 , 2200, 82.4
    2024-03-02 , 1950, 82.1

Without a FILE, estimate TDEE directly from --weight, --activity-level
and --body-fat.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return tdeeFromFile(cmd, args[0])
		}
		return tdeeFromParams(cmd)
	},
}

func tdeeFromFile(cmd *cobra.Command, path string) error {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("unknown file %q", path)
	}
	records, err := loader.Load(path)
	if err != nil {
		return err
	}
	entries, err := service.ParseLog(records)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, "---")
	fmt.Fprintf(stderr, "Data: %s (%d days)\n", path, len(entries))
	fmt.Fprintln(stderr, "---")

	points, err := service.TDEEFromLog(entries)
	if err != nil {
		return err
	}
	for _, p := range points {
		fmt.Fprintf(cmd.OutOrStdout(), "%s,%.2f\n", p.Date, p.TDEE)
	}
	last := points[len(points)-1]
	fmt.Fprintf(stderr, "\nYour TDEE as of %s is estimated to be around: %.2f\n", last.Date, last.TDEE)
	return nil
}

func tdeeFromParams(cmd *cobra.Command) error {
	var missing []string
	for _, name := range []string{"weight", "activity-level", "body-fat"} {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing options: %s", strings.Join(missing, ", "))
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, "---")
	fmt.Fprintf(stderr, "Options: weight=%g activity-level=%s body-fat=%g\n", weight, activityLevel, bodyFat)
	fmt.Fprintln(stderr, "---")

	bmr, tdee, err := service.TDEEFromParams(service.TDEEParams{
		WeightKg:      weight,
		BodyFatPct:    bodyFat,
		ActivityLevel: activityLevel,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "BMR of %.2f with %s activity.\n", bmr, activityLevel)
	fmt.Fprintln(stderr, "Your TDEE is estimated to be around:")
	fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", tdee)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms")
	rootCmd.Flags().StringVar(&activityLevel, "activity-level", "", strings.Join(service.ActivityLevels(), " | "))
	rootCmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "Body fat percentage")
}
