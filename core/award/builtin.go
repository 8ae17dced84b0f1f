package award

import "github.com/jackzhaolt/plane-ticket-query/core/types"

// StandardChart reflects common partner award charts and is the default
// reference model
var StandardChart = MustChart("Standard", []DistanceBand{
	{
		MinMiles: 0, MaxMiles: 5000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:        {Min: 55000, Max: 69000},
			types.CabinPremiumEconomy: {Min: 75000, Max: 95000},
			types.CabinBusiness:       {Min: 110000, Max: 140000},
			types.CabinFirst:          {Min: 165000, Max: 210000},
		},
	},
	{
		MinMiles: 5001, MaxMiles: 7500,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:        {Min: 75000, Max: 90000},
			types.CabinPremiumEconomy: {Min: 100000, Max: 120000},
			types.CabinBusiness:       {Min: 150000, Max: 180000},
			types.CabinFirst:          {Min: 225000, Max: 270000},
		},
	},
	{
		MinMiles: 7501, MaxMiles: 11000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:        {Min: 87500, Max: 103500},
			types.CabinPremiumEconomy: {Min: 120000, Max: 145000},
			types.CabinBusiness:       {Min: 175000, Max: 210000},
			types.CabinFirst:          {Min: 262500, Max: 315000},
		},
	},
	{
		MinMiles: 11001, MaxMiles: 15000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:        {Min: 110000, Max: 132000},
			types.CabinPremiumEconomy: {Min: 150000, Max: 180000},
			types.CabinBusiness:       {Min: 220000, Max: 264000},
			types.CabinFirst:          {Min: 330000, Max: 396000},
		},
	},
})

// ANAChart covers ANA Mileage Club zone pricing.
// ANA publishes economy and business only; other cabins fall back to
// economy during lookup.
var ANAChart = MustChart("ANA Mileage Club", []DistanceBand{
	{
		MinMiles: 0, MaxMiles: 2000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:  {Min: 12000, Max: 15000},
			types.CabinBusiness: {Min: 25000, Max: 30000},
		},
	},
	{
		MinMiles: 2001, MaxMiles: 4000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:  {Min: 20000, Max: 25000},
			types.CabinBusiness: {Min: 40000, Max: 50000},
		},
	},
	{
		MinMiles: 4001, MaxMiles: 6500,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:  {Min: 35000, Max: 43000},
			types.CabinBusiness: {Min: 60000, Max: 75000},
		},
	},
	{
		MinMiles: 6501, MaxMiles: 9500,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:  {Min: 50000, Max: 60000},
			types.CabinBusiness: {Min: 85000, Max: 105000},
		},
	},
})

// DeltaChart approximates Delta SkyMiles dynamic pricing with typical
// observed ranges
var DeltaChart = MustChart("Delta SkyMiles (Typical)", []DistanceBand{
	{
		MinMiles: 0, MaxMiles: 5000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:  {Min: 45000, Max: 80000},
			types.CabinBusiness: {Min: 100000, Max: 180000},
		},
	},
	{
		MinMiles: 5001, MaxMiles: 10000,
		Cabins: map[types.CabinClass]PointRange{
			types.CabinEconomy:  {Min: 70000, Max: 120000},
			types.CabinBusiness: {Min: 140000, Max: 250000},
		},
	},
})
