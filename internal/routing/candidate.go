package routing

import (
	"math"

	"taka_track/internal/geo"
	"taka_track/internal/sim"
)

// Kind tags the two candidate variants the optimizer handles.
type Kind string

const (
	KindZone   Kind = "zone"
	KindSignal Kind = "signal"
)

// Urgency weights and bounds.
const (
	fillWeight     = 0.7
	overflowWeight = 0.3

	// overflowHorizonMin caps the time-to-overflow term at 24h so very
	// slow-filling zones are not scored as perpetually safe.
	overflowHorizonMin = 1440.0

	// SignalUrgency exceeds the maximum ordinary urgency (1.0), so signal
	// candidates outrank every zone in any sort without a special branch.
	SignalUrgency = 2.0
)

// Candidate is a transient routing stop: either a simulated zone or an
// external ready-for-pickup signal. Candidates are built fresh per route
// request and never outlive the response.
type Candidate struct {
	ID                       string        `json:"id"`
	Kind                     Kind          `json:"kind"`
	Name                     string        `json:"name"`
	Lat                      float64       `json:"lat"`
	Lng                      float64       `json:"lng"`
	FillPercentage           float64       `json:"fill_percentage"`
	PredictedOverflowMinutes float64       `json:"predicted_overflow_minutes"`
	RiskLevel                sim.RiskLevel `json:"risk_level"`
	Ward                     string        `json:"ward,omitempty"`
	Category                 string        `json:"category,omitempty"`
}

// ZoneCandidate projects a zone snapshot into a routing candidate.
func ZoneCandidate(z sim.ZoneSnapshot) Candidate {
	return Candidate{
		ID:                       z.ID,
		Kind:                     KindZone,
		Name:                     z.Name,
		Lat:                      z.Lat,
		Lng:                      z.Lng,
		FillPercentage:           z.FillPercentage,
		PredictedOverflowMinutes: z.PredictedOverflowMinutes,
		RiskLevel:                z.RiskLevel,
	}
}

// SignalCandidate builds the synthetic maximum-urgency candidate for an
// external ready-for-pickup record.
func SignalCandidate(id, name string, at geo.LatLng, ward, category string) Candidate {
	return Candidate{
		ID:             id,
		Kind:           KindSignal,
		Name:           name,
		Lat:            at.Lat,
		Lng:            at.Lng,
		FillPercentage: 100,
		RiskLevel:      sim.RiskCritical,
		Ward:           ward,
		Category:       category,
	}
}

// Point returns the candidate's coordinate.
func (c Candidate) Point() geo.LatLng {
	return geo.LatLng{Lat: c.Lat, Lng: c.Lng}
}

// Urgency is the routing score in [0,1] for zones, weighting fill level above
// time-to-overflow. Signals are pinned at SignalUrgency so "someone asked for
// pickup" always beats "a bin is statistically likely to be full".
func (c Candidate) Urgency() float64 {
	if c.Kind == KindSignal {
		return SignalUrgency
	}
	fill := math.Min(c.FillPercentage, 100) / 100
	horizon := math.Min(c.PredictedOverflowMinutes, overflowHorizonMin) / overflowHorizonMin
	return fill*fillWeight + (1-horizon)*overflowWeight
}
