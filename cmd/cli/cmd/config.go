// Package cmd - config command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzhaolt/plane-ticket-query/internal/config"
)

// configCmd prints the effective configuration after defaults, file, and
// environment overrides are applied
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		fmt.Println("search:")
		fmt.Printf("  departure_airports:  %s\n", joinOrNone(cfg.Search.DepartureAirports))
		fmt.Printf("  arrival_airports:    %s\n", joinOrNone(cfg.Search.ArrivalAirports))
		fmt.Printf("  departure_countries: %s\n", joinOrNone(cfg.Search.DepartureCountries))
		fmt.Printf("  arrival_countries:   %s\n", joinOrNone(cfg.Search.ArrivalCountries))
		for _, r := range cfg.Search.DateRanges {
			fmt.Printf("  date_range:          %s to %s\n", r.Start, r.End)
		}
		fmt.Printf("  adults:              %d\n", cfg.Search.Adults)
		fmt.Printf("  cabin_class:         %s\n", cfg.Search.CabinClass)

		fmt.Println("deals:")
		fmt.Printf("  max_cash_price:      %.2f\n", cfg.Deals.MaxCashPrice)
		fmt.Printf("  max_points:          %d\n", cfg.Deals.MaxPoints)
		fmt.Printf("  min_cpp:             %.2f\n", cfg.Deals.MinCPP)
		fmt.Printf("  min_miles_per_point: %.3f\n", cfg.Deals.MinMilesPerPoint)
		fmt.Printf("  use_award_chart:     %t\n", cfg.Deals.UseAwardChart)
		fmt.Printf("  award_chart:         %s (min quality %s)\n",
			cfg.Deals.AwardChart, cfg.Deals.AwardChartMinQuality)

		fmt.Println("searcher:")
		fmt.Printf("  type:                %s\n", cfg.Searcher.Type)
		if cfg.Searcher.Type == "hybrid" {
			fmt.Printf("  use_deep:            %t\n", cfg.Searcher.Hybrid.UseDeep)
			fmt.Printf("  cache_dir:           %s\n", cfg.Searcher.Hybrid.CacheDir)
			fmt.Printf("  cache_ttl_hours:     %d\n", cfg.Searcher.Hybrid.CacheTTLHours)
			fmt.Printf("  horizon_days:        %d\n", cfg.Searcher.Hybrid.HorizonDays)
			fmt.Printf("  promising_price:     %.2f\n", cfg.Searcher.Hybrid.PromisingPrice)
		}

		fmt.Println("charts:")
		fmt.Printf("  paths:               %s\n", joinOrNone(cfg.Charts.Paths))

		fmt.Println("alerts:")
		fmt.Printf("  check_interval:      %d minutes\n", cfg.Alerts.CheckIntervalMinutes)

		fmt.Println("logging:")
		fmt.Printf("  level=%s format=%s output=%s\n",
			cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	},
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
