package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taka_track/internal/geo"
	"taka_track/internal/routing"
	"taka_track/internal/signals"
	"taka_track/internal/sim"
)

// RouteController computes priority-aware visitation routes for field
// workers from the live zone simulation plus ready pickup signals.
type RouteController struct {
	registry *sim.Registry
	store    signals.Store
}

func NewRouteController(registry *sim.Registry, store signals.Store) *RouteController {
	return &RouteController{registry: registry, store: store}
}

// OptimizeRoute orders the candidate stops for a worker starting position.
// An optional zone_ids list restricts optimization to a subset of zones.
func (rc *RouteController) OptimizeRoute(c *gin.Context) {
	var input struct {
		Lat     float64  `json:"lat" binding:"required"`
		Lng     float64  `json:"lng" binding:"required"`
		ZoneIDs []string `json:"zone_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("OptimizeRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	now := time.Now()
	rc.registry.Tick(now)

	var wanted map[string]bool
	if len(input.ZoneIDs) > 0 {
		wanted = make(map[string]bool, len(input.ZoneIDs))
		for _, id := range input.ZoneIDs {
			wanted[id] = true
		}
	}

	candidates := []routing.Candidate{}
	for _, snap := range rc.registry.Snapshot(now) {
		if wanted != nil && !wanted[snap.ID] {
			continue
		}
		candidates = append(candidates, routing.ZoneCandidate(snap))
	}

	// A failed signal fetch degrades to a zones-only route, never a
	// route-computation error.
	sigs, err := signals.ReadyCandidates(c.Request.Context(), rc.store)
	if err != nil {
		logrus.WithError(err).Warn("OptimizeRoute: signal fetch failed, routing zones only")
	} else {
		candidates = append(candidates, sigs...)
	}

	start := geo.LatLng{Lat: input.Lat, Lng: input.Lng}
	plan := routing.Optimize(start, candidates)

	c.JSON(http.StatusOK, gin.H{
		"start":        start,
		"generated_at": now,
		"route":        plan,
	})
}
