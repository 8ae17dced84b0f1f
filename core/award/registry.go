package award

import (
	"sort"
	"strings"
	"sync"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
)

// Registry holds named award charts.
// The built-in charts are registered at construction; user charts can be
// added on top (loaded from HCL files at startup). Lookups are
// case-insensitive.
type Registry struct {
	mu     sync.RWMutex
	charts map[string]*Chart
}

// NewRegistry creates a registry pre-loaded with the built-in charts
func NewRegistry() *Registry {
	r := &Registry{charts: make(map[string]*Chart)}
	r.Register("standard", StandardChart)
	r.Register("ana", ANAChart)
	r.Register("delta", DeltaChart)
	return r
}

// Register adds a chart under a lookup name, replacing any previous
// chart with the same name
func (r *Registry) Register(name string, chart *Chart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.charts[strings.ToLower(name)] = chart
}

// Get returns a chart by name
func (r *Registry) Get(name string) (*Chart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chart, ok := r.charts[strings.ToLower(name)]
	return chart, ok
}

// Names lists registered chart names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.charts))
	for name := range r.charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate classifies a redemption against a named chart and also
// returns the expected range when one exists. An unknown chart name
// degrades to a neutral fair tier.
func (r *Registry) Evaluate(chartName string, distance float64, points int, cabin types.CabinClass) (Quality, string, *PointRange) {
	chart, ok := r.Get(chartName)
	if !ok {
		return QualityFair, "Unknown award chart", nil
	}

	quality, explanation := chart.Classify(distance, points, cabin)
	if expected, ok := chart.ExpectedRange(distance, cabin); ok {
		return quality, explanation, &expected
	}
	return quality, explanation, nil
}

// MustGet returns a chart by name or an error suitable for startup
// validation
func (r *Registry) MustGet(name string) (*Chart, error) {
	chart, ok := r.Get(name)
	if !ok {
		return nil, errors.NotFound("award chart not found: " + name)
	}
	return chart, nil
}
