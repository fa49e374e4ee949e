package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taka_track/internal/geo"
	"taka_track/internal/signals"
)

// PickupController is the ingestion surface for external "ready for pickup"
// requests. Signals are not zones: acknowledging one is pure bookkeeping in
// the pickup store and never touches the zone registry.
type PickupController struct {
	store signals.Store
}

func NewPickupController(store signals.Store) *PickupController {
	return &PickupController{store: store}
}

// CreatePickup registers a ready-for-pickup request. The location may arrive
// as WKT text, hex EWKB, or a structured point document; it is stored raw but
// must decode, since an undecodable record would only ever be dropped later.
func (pc *PickupController) CreatePickup(c *gin.Context) {
	var input struct {
		LocationID string          `json:"location_id" binding:"required"`
		Location   json.RawMessage `json:"location" binding:"required"`
		Ward       string          `json:"ward"`
		Category   string          `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup input: " + err.Error()})
		return
	}

	if _, ok := geo.DecodeLocation(input.Location); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location does not decode to a point"})
		return
	}

	pickup := signals.PickupRequest{
		LocationID: input.LocationID,
		Location:   string(input.Location),
		Ward:       input.Ward,
		Category:   input.Category,
		Status:     signals.StatusReady,
	}
	if err := pc.store.CreatePickup(c.Request.Context(), &pickup); err != nil {
		if errors.Is(err, signals.ErrDuplicateLocation) {
			c.JSON(http.StatusConflict, gin.H{"error": "Pickup already requested for this location"})
			return
		}
		logrus.WithError(err).Error("CreatePickup: store write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pickup: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pickup": pickup})
}

// ListReadyPickups returns the current ready records.
func (pc *PickupController) ListReadyPickups(c *gin.Context) {
	pickups, err := pc.store.ReadyPickups(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListReadyPickups: store read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching pickups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": pickups})
}

// AcknowledgePickup marks a collected signal. This bypasses the zone
// registry entirely; signals have no collect state machine.
func (pc *PickupController) AcknowledgePickup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup ID"})
		return
	}

	if err := pc.store.MarkCollected(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, signals.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pickup not found"})
			return
		}
		logrus.WithError(err).Error("AcknowledgePickup: store update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pickup acknowledged"})
}
