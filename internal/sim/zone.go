package sim

import (
	"math"
	"time"
)

// RiskLevel buckets a zone's fill percentage for dashboard display.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Simulation tunables. The risk bands and staleness horizon are calibration
// parameters, not a contract; only monotonicity is guaranteed.
const (
	riskMediumPct   = 40.0
	riskHighPct     = 70.0
	riskCriticalPct = 90.0

	// OverflowAllowance permits transient over-capacity readings before
	// collection; fill is clamped at capacity * allowance.
	OverflowAllowance = 1.2

	// stalenessHorizonMin scales the time-since-collection term of the
	// hotspot score (24h).
	stalenessHorizonMin = 1440.0

	// maxOverflowMinutes stands in for "effectively never" when a zone's
	// generation rate is ~0. Kept finite so snapshots stay JSON-encodable.
	maxOverflowMinutes = 1e9
)

// Zone is a simulated collection point. Fill state is owned by the Registry
// and mutated only through Tick and Collect.
type Zone struct {
	ID                  string
	Name                string
	Lat                 float64
	Lng                 float64
	BinCapacityKg       float64
	GenerationRateKgMin float64

	currentFillKg  float64
	lastCollection time.Time
	lastUpdate     time.Time
}

// ZoneSnapshot is a read-only projection of a zone with all derived fields
// recomputed at snapshot time. Derived values are never stored on the zone,
// so they cannot drift from the fill state.
type ZoneSnapshot struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	Lat                      float64   `json:"lat"`
	Lng                      float64   `json:"lng"`
	BinCapacityKg            float64   `json:"bin_capacity_kg"`
	CurrentFillKg            float64   `json:"current_fill_kg"`
	GenerationRateKgMin      float64   `json:"generation_rate_kg_min"`
	FillPercentage           float64   `json:"fill_percentage"`
	PredictedOverflowMinutes float64   `json:"predicted_overflow_minutes"`
	RiskLevel                RiskLevel `json:"risk_level"`
	HotspotScore             float64   `json:"hotspot_score"`
	LastCollection           time.Time `json:"last_collection"`
}

func (z *Zone) snapshot(now time.Time) ZoneSnapshot {
	fillPct := z.fillPercentage()
	return ZoneSnapshot{
		ID:                       z.ID,
		Name:                     z.Name,
		Lat:                      z.Lat,
		Lng:                      z.Lng,
		BinCapacityKg:            z.BinCapacityKg,
		CurrentFillKg:            z.currentFillKg,
		GenerationRateKgMin:      z.GenerationRateKgMin,
		FillPercentage:           fillPct,
		PredictedOverflowMinutes: z.predictedOverflowMinutes(),
		RiskLevel:                riskFor(fillPct),
		HotspotScore:             z.hotspotScore(now),
		LastCollection:           z.lastCollection,
	}
}

func (z *Zone) fillPercentage() float64 {
	if z.BinCapacityKg <= 0 {
		return 0
	}
	pct := z.currentFillKg / z.BinCapacityKg * 100
	return math.Max(0, pct)
}

func (z *Zone) predictedOverflowMinutes() float64 {
	headroom := math.Max(0, z.BinCapacityKg-z.currentFillKg)
	if z.GenerationRateKgMin <= 0 {
		return maxOverflowMinutes
	}
	return math.Min(headroom/z.GenerationRateKgMin, maxOverflowMinutes)
}

// hotspotScore is the unbounded dashboard ranking score: monotonically
// increasing in both fill percentage and minutes since the last collection,
// and back at fill-only baseline right after a collection.
func (z *Zone) hotspotScore(now time.Time) float64 {
	staleMin := math.Max(0, now.Sub(z.lastCollection).Minutes())
	return z.fillPercentage() * (1 + staleMin/stalenessHorizonMin)
}

func riskFor(fillPct float64) RiskLevel {
	switch {
	case fillPct < riskMediumPct:
		return RiskLow
	case fillPct < riskHighPct:
		return RiskMedium
	case fillPct < riskCriticalPct:
		return RiskHigh
	default:
		return RiskCritical
	}
}
