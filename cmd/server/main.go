package main

import (
	"log"
	"net/http"
	"time"

	"taka_track/internal/config"
	"taka_track/internal/controllers"
	"taka_track/internal/logger"
	"taka_track/internal/middleware"
	"taka_track/internal/routes"
	"taka_track/internal/signals"
	"taka_track/internal/sim"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Pickup-request store lives in Postgres; zone state is in-memory only.
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	store := signals.NewGormStore(db)

	// Seed the zone registry once at process start.
	registry := sim.NewRegistry(sim.DefaultZones(), time.Now())

	r := routes.SetupRouter(
		controllers.NewZoneController(registry),
		controllers.NewRouteController(registry, store),
		controllers.NewPickupController(store),
	)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
