package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taka_track/internal/sim"
)

const defaultHotspotLimit = 5

// ZoneController serves the simulated zone state: snapshots, hotspot
// rankings and collection events. The registry is injected, not global.
type ZoneController struct {
	registry *sim.Registry
}

func NewZoneController(registry *sim.Registry) *ZoneController {
	return &ZoneController{registry: registry}
}

// ListZones returns all zones with derived fields recomputed at call time.
func (zc *ZoneController) ListZones(c *gin.Context) {
	now := time.Now()
	zc.registry.Tick(now)
	c.JSON(http.StatusOK, gin.H{"zones": zc.registry.Snapshot(now)})
}

// ListHotspots returns the top-n zones by hotspot score for the dashboard.
func (zc *ZoneController) ListHotspots(c *gin.Context) {
	limit := defaultHotspotLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit: must be a positive integer"})
			return
		}
		limit = n
	}

	now := time.Now()
	zc.registry.Tick(now)
	c.JSON(http.StatusOK, gin.H{"hotspots": zc.registry.Hotspots(limit, now)})
}

// CollectZone records a collection event against a zone and returns the
// post-collection snapshot.
func (zc *ZoneController) CollectZone(c *gin.Context) {
	var input struct {
		AmountKg float64 `json:"amount_kg" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection input: " + err.Error()})
		return
	}

	now := time.Now()
	zc.registry.Tick(now)

	snap, err := zc.registry.Collect(c.Param("id"), input.AmountKg, now)
	if err != nil {
		if errors.Is(err, sim.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
			return
		}
		logrus.WithError(err).Error("CollectZone: collection failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"zone": snap})
}
