package routes

import (
	"github.com/gin-gonic/gin"

	"taka_track/internal/controllers"
)

func ZoneRoutes(r *gin.Engine, zc *controllers.ZoneController) {
	zones := r.Group("/zones")
	{
		zones.GET("/", zc.ListZones)
		zones.GET("/hotspots", zc.ListHotspots)
		zones.POST("/:id/collect", zc.CollectZone)
	}
}
