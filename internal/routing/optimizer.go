package routing

import (
	"math"

	"taka_track/internal/geo"
)

// Selection weights and the fixed pace heuristic (24 km/h average, so 2.5
// minutes per kilometer — not a live traffic estimate).
const (
	urgencyWeight   = 0.6
	proximityWeight = 0.4
	minutesPerKm    = 2.5
)

// Leg is one stop of an optimized route with travel estimates from the
// previous position.
type Leg struct {
	Candidate
	DistanceFromPrevKm float64 `json:"distance_from_prev_km"`
	EstimatedMinutes   int     `json:"estimated_minutes"`
}

// Plan is the ordered visitation route plus aggregate travel estimates.
type Plan struct {
	Stops                 []Leg   `json:"stops"`
	TotalDistanceKm       float64 `json:"total_distance_km"`
	EstimatedTotalMinutes int     `json:"estimated_total_minutes"`
}

// Optimize orders candidates by a greedy weighted nearest-neighbor heuristic.
//
// At each step every remaining candidate is scored as
// urgency*0.6 + (1/(1+distance))*0.4 against the current position; the best
// score wins, ties go to the nearer candidate, then to the smaller id. The
// result is fully deterministic for a given input snapshot. No attempt is
// made at globally optimal (TSP) ordering.
func Optimize(start geo.LatLng, candidates []Candidate) Plan {
	plan := Plan{Stops: []Leg{}}
	if len(candidates) == 0 {
		return plan
	}

	remaining := make([]Candidate, len(candidates))
	copy(remaining, candidates)
	pos := start

	for len(remaining) > 0 {
		best := -1
		bestScore := math.Inf(-1)
		bestDist := math.Inf(1)

		for i, c := range remaining {
			dist := geo.HaversineKm(pos, c.Point())
			score := c.Urgency()*urgencyWeight + proximityWeight/(1+dist)

			better := score > bestScore ||
				(score == bestScore && dist < bestDist) ||
				(score == bestScore && dist == bestDist && best >= 0 && c.ID < remaining[best].ID)
			if better {
				best = i
				bestScore = score
				bestDist = dist
			}
		}

		chosen := remaining[best]
		plan.Stops = append(plan.Stops, Leg{
			Candidate:          chosen,
			DistanceFromPrevKm: bestDist,
			EstimatedMinutes:   int(math.Round(bestDist * minutesPerKm)),
		})
		plan.TotalDistanceKm += bestDist
		remaining = append(remaining[:best], remaining[best+1:]...)
		pos = chosen.Point()
	}

	for _, leg := range plan.Stops {
		plan.EstimatedTotalMinutes += leg.EstimatedMinutes
	}
	return plan
}
