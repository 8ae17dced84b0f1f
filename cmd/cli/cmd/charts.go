// Package cmd - charts command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/config"
)

var (
	evalChart    string
	evalDistance float64
	evalPoints   int
	evalCabin    string
)

// chartsCmd inspects the award chart registry
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Inspect award charts",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// chartsListCmd lists registered charts and their bands
var chartsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered award charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		charts, err := buildCharts(config.Get())
		if err != nil {
			return err
		}

		for _, name := range charts.Names() {
			chart, _ := charts.Get(name)
			fmt.Printf("%s (%s)\n", name, chart.Name())
			for _, band := range chart.Bands() {
				economy := band.Cabins[types.CabinEconomy]
				fmt.Printf("  %6.0f-%6.0f mi  economy %d-%d pts\n",
					band.MinMiles, band.MaxMiles, economy.Min, economy.Max)
			}
		}
		return nil
	},
}

// chartsEvaluateCmd classifies a redemption against a chart
var chartsEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a redemption against a chart",
	Long: `Classify an award price against a chart's expected range.

Examples:
  planedeals charts evaluate --distance 6740 --points 45000
  planedeals charts evaluate --chart ana --distance 6740 --points 60000 --cabin business`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charts, err := buildCharts(config.Get())
		if err != nil {
			return err
		}

		cabin := types.ParseCabinClass(evalCabin)
		quality, explanation, expected := charts.Evaluate(evalChart, evalDistance, evalPoints, cabin)

		fmt.Printf("Distance: %.0f miles, %s, %d points\n", evalDistance, cabin, evalPoints)
		if expected != nil {
			fmt.Printf("Expected: %d-%d points\n", expected.Min, expected.Max)
		}
		fmt.Printf("Rating: %s\n", strings.ToUpper(quality.String()))
		fmt.Println(explanation)
		return nil
	},
}

func init() {
	chartsEvaluateCmd.Flags().StringVar(&evalChart, "chart", "standard", "award chart name")
	chartsEvaluateCmd.Flags().Float64Var(&evalDistance, "distance", 0, "flight distance in miles")
	chartsEvaluateCmd.Flags().IntVar(&evalPoints, "points", 0, "award price in points")
	chartsEvaluateCmd.Flags().StringVar(&evalCabin, "cabin", "economy", "cabin class")
	chartsEvaluateCmd.MarkFlagRequired("distance")
	chartsEvaluateCmd.MarkFlagRequired("points")

	chartsCmd.AddCommand(chartsListCmd)
	chartsCmd.AddCommand(chartsEvaluateCmd)
}
