package cmd

import (
	"fmt"

	"github.com/bimatch/bimatch/internal/pricing"

	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans [id]",
	Short: "Print the subscription plan catalog, or a single plan by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 1 {
			plan, err := pricing.Find(args[0])
			if err != nil {
				return err
			}
			printPlan(*plan)
			return nil
		}

		for _, plan := range pricing.Catalog() {
			printPlan(plan)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
}

func printPlan(plan pricing.Plan) {
	fmt.Printf("%s (%s)\n", plan.Name, plan.ID)
	fmt.Printf("  %s\n", plan.Description)
	fmt.Printf("  %d %s per %s\n", plan.Price, plan.Currency, plan.Interval)
	for _, feature := range plan.Features {
		fmt.Printf("  - %s\n", feature)
	}
	fmt.Println()
}
