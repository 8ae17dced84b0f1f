package award

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"go.uber.org/zap"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
	"github.com/jackzhaolt/plane-ticket-query/internal/logging"
)

// Chart definition files let users add airline-specific charts without
// rebuilding. Format:
//
//	chart "aeroplan" {
//	  band {
//	    min_miles = 0
//	    max_miles = 4000
//	    economy  { min = 35000  max = 45000 }
//	    business { min = 60000  max = 85000 }
//	  }
//	}

type chartFile struct {
	Charts []chartBlock `hcl:"chart,block"`
}

type chartBlock struct {
	Name  string      `hcl:"name,label"`
	Bands []bandBlock `hcl:"band,block"`
}

type bandBlock struct {
	MinMiles       float64     `hcl:"min_miles"`
	MaxMiles       float64     `hcl:"max_miles"`
	Economy        *rangeBlock `hcl:"economy,block"`
	PremiumEconomy *rangeBlock `hcl:"premium_economy,block"`
	Business       *rangeBlock `hcl:"business,block"`
	First          *rangeBlock `hcl:"first,block"`
}

type rangeBlock struct {
	Min int `hcl:"min"`
	Max int `hcl:"max"`
}

// LoadChartFile parses award charts from an HCL definition file
func LoadChartFile(path string) ([]*Chart, error) {
	var file chartFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Wrapf(errors.TypeChart, err, "parse chart file %s", path)
	}

	charts := make([]*Chart, 0, len(file.Charts))
	for _, block := range file.Charts {
		bands := make([]DistanceBand, 0, len(block.Bands))
		for _, b := range block.Bands {
			cabins := make(map[types.CabinClass]PointRange)
			if b.Economy != nil {
				cabins[types.CabinEconomy] = PointRange{Min: b.Economy.Min, Max: b.Economy.Max}
			}
			if b.PremiumEconomy != nil {
				cabins[types.CabinPremiumEconomy] = PointRange{Min: b.PremiumEconomy.Min, Max: b.PremiumEconomy.Max}
			}
			if b.Business != nil {
				cabins[types.CabinBusiness] = PointRange{Min: b.Business.Min, Max: b.Business.Max}
			}
			if b.First != nil {
				cabins[types.CabinFirst] = PointRange{Min: b.First.Min, Max: b.First.Max}
			}
			bands = append(bands, DistanceBand{
				MinMiles: b.MinMiles,
				MaxMiles: b.MaxMiles,
				Cabins:   cabins,
			})
		}

		chart, err := NewChart(block.Name, bands)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)
	}

	return charts, nil
}

// LoadChartFiles registers charts from user-provided definition files.
// Each chart registers under its declared name.
func (r *Registry) LoadChartFiles(paths []string) error {
	for _, path := range paths {
		charts, err := LoadChartFile(path)
		if err != nil {
			return err
		}
		for _, chart := range charts {
			r.Register(chart.Name(), chart)
			logging.Debug("registered award chart",
				zap.String("chart", chart.Name()),
				zap.String("file", path))
		}
	}
	return nil
}
