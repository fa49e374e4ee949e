package routes

import (
	"github.com/gin-gonic/gin"

	"taka_track/internal/controllers"
)

func WorkerRoutes(r *gin.Engine, rc *controllers.RouteController) {
	worker := r.Group("/worker")
	{
		worker.POST("/route", rc.OptimizeRoute)
	}
}
