package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taka_track/internal/signals"
	"taka_track/internal/sim"
)

type stubStore struct {
	records   []signals.PickupRequest
	createErr error
	fetchErr  error
	ackErr    error
}

func (s *stubStore) CreatePickup(ctx context.Context, p *signals.PickupRequest) error {
	return s.createErr
}

func (s *stubStore) ReadyPickups(ctx context.Context) ([]signals.PickupRequest, error) {
	return s.records, s.fetchErr
}

func (s *stubStore) MarkCollected(ctx context.Context, id uint) error {
	return s.ackErr
}

func testRouter(store signals.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := sim.NewRegistry([]sim.ZoneSeed{
		{ID: "zone-ngara", Name: "Ngara Market", Lat: -1.2747, Lng: 36.8236, BinCapacityKg: 1000, GenerationRateKgMin: 2, InitialFillKg: 400},
		{ID: "zone-kibera", Name: "Kibera Drive", Lat: -1.3133, Lng: 36.7820, BinCapacityKg: 1500, GenerationRateKgMin: 3, InitialFillKg: 1200},
	}, time.Now())

	r := gin.New()
	zc := NewZoneController(registry)
	rc := NewRouteController(registry, store)
	pc := NewPickupController(store)
	r.GET("/zones/", zc.ListZones)
	r.GET("/zones/hotspots", zc.ListHotspots)
	r.POST("/zones/:id/collect", zc.CollectZone)
	r.POST("/worker/route", rc.OptimizeRoute)
	r.POST("/pickups/", pc.CreatePickup)
	r.POST("/pickups/:id/ack", pc.AcknowledgePickup)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestListZones(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodGet, "/zones/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list zones: got %d", rr.Code)
	}

	var resp struct {
		Zones []sim.ZoneSnapshot `json:"zones"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(resp.Zones))
	}
	if resp.Zones[0].RiskLevel == "" {
		t.Fatalf("derived fields missing from snapshot: %+v", resp.Zones[0])
	}
}

func TestListHotspotsLimit(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodGet, "/zones/hotspots?limit=1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("hotspots: got %d", rr.Code)
	}

	var resp struct {
		Hotspots []sim.ZoneSnapshot `json:"hotspots"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Hotspots) != 1 {
		t.Fatalf("got %d hotspots, want 1", len(resp.Hotspots))
	}
	// zone-kibera sits at 80% fill against zone-ngara's 40%.
	if resp.Hotspots[0].ID != "zone-kibera" {
		t.Fatalf("top hotspot = %s, want zone-kibera", resp.Hotspots[0].ID)
	}

	if rr := doJSON(t, r, http.MethodGet, "/zones/hotspots?limit=nope", nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad limit: got %d, want 400", rr.Code)
	}
}

func TestCollectZone(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodPost, "/zones/zone-ngara/collect", gin.H{"amount_kg": 10000})
	if rr.Code != http.StatusOK {
		t.Fatalf("collect: got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Zone sim.ZoneSnapshot `json:"zone"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Zone.FillPercentage != 0 || resp.Zone.RiskLevel != sim.RiskLow {
		t.Fatalf("post-collection snapshot = %+v, want empty LOW", resp.Zone)
	}
}

func TestCollectZoneNotFound(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodPost, "/zones/zone-ghost/collect", gin.H{"amount_kg": 5})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("collect unknown zone: got %d, want 404", rr.Code)
	}
}

func TestOptimizeRouteSignalFirst(t *testing.T) {
	store := &stubStore{records: []signals.PickupRequest{
		// Kasarani side of town, far from the worker start.
		{Model: gorm.Model{ID: 9}, LocationID: "house-9", Location: "POINT(36.8986 -1.2227)", Ward: "Kasarani"},
	}}
	r := testRouter(store)

	rr := doJSON(t, r, http.MethodPost, "/worker/route", gin.H{"lat": -1.2921, "lng": 36.8219})
	if rr.Code != http.StatusOK {
		t.Fatalf("route: got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Route struct {
			Stops []struct {
				ID                 string  `json:"id"`
				Kind               string  `json:"kind"`
				DistanceFromPrevKm float64 `json:"distance_from_prev_km"`
				EstimatedMinutes   int     `json:"estimated_minutes"`
			} `json:"stops"`
			TotalDistanceKm       float64 `json:"total_distance_km"`
			EstimatedTotalMinutes int     `json:"estimated_total_minutes"`
		} `json:"route"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Route.Stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(resp.Route.Stops))
	}
	if resp.Route.Stops[0].Kind != "signal" || resp.Route.Stops[0].ID != "signal-9" {
		t.Fatalf("first stop = %+v, want the pickup signal", resp.Route.Stops[0])
	}
	if resp.Route.TotalDistanceKm <= 0 || resp.Route.EstimatedTotalMinutes <= 0 {
		t.Fatalf("missing travel totals: %+v", resp.Route)
	}
}

func TestOptimizeRouteZoneSubset(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodPost, "/worker/route", gin.H{
		"lat": -1.2921, "lng": 36.8219, "zone_ids": []string{"zone-ngara"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("route: got %d", rr.Code)
	}

	var resp struct {
		Route struct {
			Stops []struct {
				ID string `json:"id"`
			} `json:"stops"`
		} `json:"route"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Route.Stops) != 1 || resp.Route.Stops[0].ID != "zone-ngara" {
		t.Fatalf("subset route = %+v, want only zone-ngara", resp.Route.Stops)
	}
}

func TestOptimizeRouteDegradesWithoutSignals(t *testing.T) {
	store := &stubStore{fetchErr: errors.New("store down")}
	r := testRouter(store)

	rr := doJSON(t, r, http.MethodPost, "/worker/route", gin.H{"lat": -1.2921, "lng": 36.8219})
	if rr.Code != http.StatusOK {
		t.Fatalf("route must degrade to zones-only, got %d", rr.Code)
	}

	var resp struct {
		Route struct {
			Stops []struct {
				Kind string `json:"kind"`
			} `json:"stops"`
		} `json:"route"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Route.Stops) != 2 {
		t.Fatalf("got %d stops, want the 2 zones", len(resp.Route.Stops))
	}
	for _, stop := range resp.Route.Stops {
		if stop.Kind != "zone" {
			t.Fatalf("unexpected %s stop in degraded route", stop.Kind)
		}
	}
}

func TestCreatePickupRejectsBadLocation(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodPost, "/pickups/", gin.H{
		"location_id": "house-1",
		"location":    "not a point",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad location: got %d, want 400", rr.Code)
	}
}

func TestCreatePickupDuplicate(t *testing.T) {
	r := testRouter(&stubStore{createErr: signals.ErrDuplicateLocation})
	rr := doJSON(t, r, http.MethodPost, "/pickups/", gin.H{
		"location_id": "house-1",
		"location":    "POINT(36.8219 -1.2921)",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("duplicate pickup: got %d, want 409", rr.Code)
	}
}

func TestCreatePickupAccepted(t *testing.T) {
	r := testRouter(&stubStore{})
	rr := doJSON(t, r, http.MethodPost, "/pickups/", gin.H{
		"location_id": "house-1",
		"location":    gin.H{"coordinates": []float64{36.8219, -1.2921}},
		"ward":        "Ngara",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create pickup: got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAcknowledgePickupNotFound(t *testing.T) {
	r := testRouter(&stubStore{ackErr: signals.ErrNotFound})
	rr := doJSON(t, r, http.MethodPost, "/pickups/42/ack", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("ack unknown pickup: got %d, want 404", rr.Code)
	}
}
