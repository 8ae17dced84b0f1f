// Package config provides configuration management.
// Settings load from a YAML file with environment overrides
// (PLANEDEALS_* variables), applied over built-in defaults.
package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Search describes which routes and dates to monitor
	Search SearchConfig `mapstructure:"search"`

	// Deals contains deal acceptance thresholds
	Deals DealsConfig `mapstructure:"deals"`

	// Searcher selects and tunes the backend composition
	Searcher SearcherConfig `mapstructure:"searcher"`

	// Charts points at extra award chart definition files
	Charts ChartsConfig `mapstructure:"charts"`

	// Alerts controls the monitoring loop and notifications
	Alerts AlertsConfig `mapstructure:"alerts"`

	// Logging contains logging configuration
	Logging logging.Config `mapstructure:"logging"`
}

// SearchConfig describes the route and date space to search
type SearchConfig struct {
	// DepartureAirports lists explicit origin codes
	DepartureAirports []string `mapstructure:"departure_airports"`

	// ArrivalAirports lists explicit destination codes
	ArrivalAirports []string `mapstructure:"arrival_airports"`

	// DepartureCountries expands to that country's major airports
	DepartureCountries []string `mapstructure:"departure_countries"`

	// ArrivalCountries expands to that country's major airports
	ArrivalCountries []string `mapstructure:"arrival_countries"`

	// DateRanges are inclusive date windows searched at weekly steps
	DateRanges []DateRange `mapstructure:"date_ranges"`

	// Adults is the passenger count
	Adults int `mapstructure:"adults"`

	// CabinClass is the requested cabin (economy, premium_economy,
	// business, first)
	CabinClass string `mapstructure:"cabin_class"`
}

// DateRange is an inclusive date window in YYYY-MM-DD form
type DateRange struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// DealsConfig contains deal detection thresholds
type DealsConfig struct {
	// MaxCashPrice accepts any flight at or below this cash price
	MaxCashPrice float64 `mapstructure:"max_cash_price"`

	// MaxPoints caps the award price considered by the fallback check
	MaxPoints int `mapstructure:"max_points"`

	// MinCPP is the cents-per-point floor for the fallback check
	MinCPP float64 `mapstructure:"min_cpp"`

	// MinMilesPerPoint is the distance-efficiency floor
	MinMilesPerPoint float64 `mapstructure:"min_miles_per_point"`

	// UseAwardChart enables chart-based classification
	UseAwardChart bool `mapstructure:"use_award_chart"`

	// AwardChart names the reference chart
	AwardChart string `mapstructure:"award_chart"`

	// AwardChartMinQuality is the acceptance tier name
	AwardChartMinQuality string `mapstructure:"award_chart_min_quality"`
}

// SearcherConfig selects the backend composition
type SearcherConfig struct {
	// Type is "api" for fast-only or "hybrid" for fast plus deep
	Type string `mapstructure:"type"`

	// Hybrid tunes the hybrid orchestrator
	Hybrid HybridConfig `mapstructure:"hybrid"`
}

// HybridConfig tunes the hybrid search policy
type HybridConfig struct {
	// UseDeep enables the deep backend
	UseDeep bool `mapstructure:"use_deep"`

	// CacheDir is where deep results are cached
	CacheDir string `mapstructure:"cache_dir"`

	// CacheTTLHours is how long cached deep results stay valid
	CacheTTLHours int `mapstructure:"cache_ttl_hours"`

	// HorizonDays bounds how far ahead deep search is worth running
	HorizonDays int `mapstructure:"horizon_days"`

	// PromisingPrice is the cash price that marks a fast result as
	// worth verifying
	PromisingPrice float64 `mapstructure:"promising_price"`
}

// ChartsConfig points at user chart definitions
type ChartsConfig struct {
	// Paths lists HCL chart files loaded at startup
	Paths []string `mapstructure:"paths"`
}

// AlertsConfig controls the monitor loop and notification sinks
type AlertsConfig struct {
	// CheckIntervalMinutes is the pause between monitor passes
	CheckIntervalMinutes int `mapstructure:"check_interval_minutes"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Adults:     1,
			CabinClass: "economy",
		},
		Deals: DealsConfig{
			MaxCashPrice:         1000,
			MaxPoints:            100000,
			MinCPP:               1.0,
			MinMilesPerPoint:     0.05,
			UseAwardChart:        true,
			AwardChart:           "standard",
			AwardChartMinQuality: "good",
		},
		Searcher: SearcherConfig{
			Type: "hybrid",
			Hybrid: HybridConfig{
				UseDeep:        true,
				CacheDir:       "/tmp/flight_cache",
				CacheTTLHours:  6,
				HorizonDays:    180,
				PromisingPrice: 1000,
			},
		},
		Alerts: AlertsConfig{
			CheckIntervalMinutes: 360,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a YAML file, applying defaults and
// PLANEDEALS_* environment overrides. Validation is the caller's
// concern: commands that do not search do not need routes configured.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PLANEDEALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "read config file", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "unmarshal config", err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with
func Validate(cfg *Config) error {
	if cfg.Search.Adults <= 0 {
		return errors.Config("search.adults must be positive")
	}
	hasDepartures := len(cfg.Search.DepartureAirports) > 0 || len(cfg.Search.DepartureCountries) > 0
	hasArrivals := len(cfg.Search.ArrivalAirports) > 0 || len(cfg.Search.ArrivalCountries) > 0
	if !hasDepartures || !hasArrivals {
		return errors.Config("search requires departure and arrival airports or countries")
	}
	switch cfg.Searcher.Type {
	case "api", "hybrid":
	default:
		return errors.Config("searcher.type must be api or hybrid")
	}
	if cfg.Deals.MaxCashPrice < 0 {
		return errors.Config("deals.max_cash_price must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("search.adults", def.Search.Adults)
	v.SetDefault("search.cabin_class", def.Search.CabinClass)
	v.SetDefault("deals.max_cash_price", def.Deals.MaxCashPrice)
	v.SetDefault("deals.max_points", def.Deals.MaxPoints)
	v.SetDefault("deals.min_cpp", def.Deals.MinCPP)
	v.SetDefault("deals.min_miles_per_point", def.Deals.MinMilesPerPoint)
	v.SetDefault("deals.use_award_chart", def.Deals.UseAwardChart)
	v.SetDefault("deals.award_chart", def.Deals.AwardChart)
	v.SetDefault("deals.award_chart_min_quality", def.Deals.AwardChartMinQuality)
	v.SetDefault("searcher.type", def.Searcher.Type)
	v.SetDefault("searcher.hybrid.use_deep", def.Searcher.Hybrid.UseDeep)
	v.SetDefault("searcher.hybrid.cache_dir", def.Searcher.Hybrid.CacheDir)
	v.SetDefault("searcher.hybrid.cache_ttl_hours", def.Searcher.Hybrid.CacheTTLHours)
	v.SetDefault("searcher.hybrid.horizon_days", def.Searcher.Hybrid.HorizonDays)
	v.SetDefault("searcher.hybrid.promising_price", def.Searcher.Hybrid.PromisingPrice)
	v.SetDefault("alerts.check_interval_minutes", def.Alerts.CheckIntervalMinutes)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
}

var (
	mu     sync.RWMutex
	global = Default()
)

// Get returns the process-wide configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Set replaces the process-wide configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	global = cfg
}
