package routes

import (
	"github.com/gin-gonic/gin"

	"taka_track/internal/controllers"
)

func PickupRoutes(r *gin.Engine, pc *controllers.PickupController) {
	pickups := r.Group("/pickups")
	{
		pickups.POST("/", pc.CreatePickup)
		pickups.GET("/ready", pc.ListReadyPickups)
		pickups.POST("/:id/ack", pc.AcknowledgePickup)
	}
}
