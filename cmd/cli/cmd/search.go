// Package cmd - search command
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzhaolt/plane-ticket-query/core/monitor"
	"github.com/jackzhaolt/plane-ticket-query/internal/config"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
	"github.com/jackzhaolt/plane-ticket-query/notify"
)

var (
	startDate string
	endDate   string
)

// searchCmd runs a single deal check and exits
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single deal check",
	Long: `Search the configured routes and dates once, print any deals found,
and exit.

Examples:
  planedeals search
  planedeals search --start-date 2026-10-01 --end-date 2026-10-31`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&startDate, "start-date", "", "override search window start (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&endDate, "end-date", "", "override search window end (YYYY-MM-DD)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	cfg := config.Get()
	applyDateOverride(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	charts, err := buildCharts(cfg)
	if err != nil {
		return err
	}

	m := monitor.New(cfg,
		buildSearcher(cfg),
		buildDetector(cfg, charts),
		notify.NewWriterNotifier(os.Stdout))
	defer m.Close()

	return m.CheckOnce(context.Background())
}

// applyDateOverride replaces the configured date ranges when both
// override flags are present
func applyDateOverride(cfg *config.Config) {
	if startDate != "" && endDate != "" {
		cfg.Search.DateRanges = []config.DateRange{{Start: startDate, End: endDate}}
	}
}
