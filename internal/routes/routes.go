package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"taka_track/internal/controllers"
)

// SetupRouter wires every route group onto a fresh engine. Controllers carry
// their own dependencies, so the router has no hidden state.
func SetupRouter(zc *controllers.ZoneController, rc *controllers.RouteController, pc *controllers.PickupController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	ZoneRoutes(r, zc)
	WorkerRoutes(r, rc)
	PickupRoutes(r, pc)

	return r
}
