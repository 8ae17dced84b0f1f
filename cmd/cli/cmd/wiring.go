// Package cmd - shared component wiring for search and monitor
package cmd

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jackzhaolt/plane-ticket-query/adapters/amadeus"
	"github.com/jackzhaolt/plane-ticket-query/adapters/cache"
	"github.com/jackzhaolt/plane-ticket-query/core/award"
	"github.com/jackzhaolt/plane-ticket-query/core/deal"
	"github.com/jackzhaolt/plane-ticket-query/core/search"
	"github.com/jackzhaolt/plane-ticket-query/internal/config"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

// deepFactory is the deep backend hook.
// The deep backend drives a live browser session and ships separately;
// builds without one run fast-only and the orchestrator reports the
// missing backend once.
var deepFactory search.DeepFactory

// buildCharts loads the chart registry including user chart files
func buildCharts(cfg *config.Config) (*award.Registry, error) {
	charts := award.NewRegistry()
	if err := charts.LoadChartFiles(cfg.Charts.Paths); err != nil {
		return nil, err
	}
	return charts, nil
}

// buildDetector assembles the deal detector from configuration
func buildDetector(cfg *config.Config, charts *award.Registry) *deal.Detector {
	return deal.NewDetector(deal.Config{
		MaxCashPrice:     decimal.NewFromFloat(cfg.Deals.MaxCashPrice),
		MaxPoints:        cfg.Deals.MaxPoints,
		MinCentsPerPoint: cfg.Deals.MinCPP,
		MinMilesPerPoint: cfg.Deals.MinMilesPerPoint,
		UseAwardChart:    cfg.Deals.UseAwardChart,
		ChartName:        cfg.Deals.AwardChart,
		MinQuality:       award.ParseQuality(cfg.Deals.AwardChartMinQuality),
	}, charts)
}

// buildSearcher assembles the configured backend composition.
// Missing Amadeus credentials degrade to running without a fast backend
// rather than failing: the orchestrator treats an absent fast backend
// as an empty result set.
func buildSearcher(cfg *config.Config) search.Searcher {
	var fast search.Searcher
	client, err := amadeus.New(amadeus.Config{
		APIKey:    os.Getenv("AMADEUS_API_KEY"),
		APISecret: os.Getenv("AMADEUS_API_SECRET"),
	})
	if err != nil {
		logging.Warn("fast backend unavailable", zap.Error(err))
	} else {
		fast = client
	}

	if cfg.Searcher.Type == "api" {
		return search.NewHybrid(fast, nil, nil, search.Options{UseDeep: false})
	}

	var store cache.Store
	fileStore, err := cache.NewFileStore(cfg.Searcher.Hybrid.CacheDir)
	if err != nil {
		logging.Warn("cache directory unavailable, caching in memory", zap.Error(err))
		store = cache.NewMemoryStore()
	} else {
		store = fileStore
	}

	return search.NewHybrid(fast, deepFactory, store, search.Options{
		UseDeep:        cfg.Searcher.Hybrid.UseDeep,
		CacheTTL:       time.Duration(cfg.Searcher.Hybrid.CacheTTLHours) * time.Hour,
		HorizonDays:    cfg.Searcher.Hybrid.HorizonDays,
		PromisingPrice: decimal.NewFromFloat(cfg.Searcher.Hybrid.PromisingPrice),
	})
}
