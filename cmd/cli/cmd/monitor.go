// Package cmd - monitor command
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jackzhaolt/plane-ticket-query/core/monitor"
	"github.com/jackzhaolt/plane-ticket-query/internal/config"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
	"github.com/jackzhaolt/plane-ticket-query/notify"
)

// monitorCmd runs continuous checks at the configured interval
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Monitor for deals continuously",
	Long: `Check for deals at the configured interval until interrupted.

The first check runs immediately; subsequent checks follow
alerts.check_interval_minutes.`,
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	cfg := config.Get()
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
