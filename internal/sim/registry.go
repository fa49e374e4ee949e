package sim

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrZoneNotFound is returned by Collect for an unknown zone id. The registry
// state is unchanged; callers report it as a non-fatal not-found condition.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneSeed is the immutable creation-time description of a zone.
type ZoneSeed struct {
	ID                  string
	Name                string
	Lat                 float64
	Lng                 float64
	BinCapacityKg       float64
	GenerationRateKgMin float64
	InitialFillKg       float64
}

// Registry is the single authoritative in-memory set of zones. It is
// constructed once at process start and injected into handlers; all mutation
// goes through Tick and Collect under one lock. A single global lock is fine
// at the expected cardinality of tens of zones.
type Registry struct {
	mu    sync.Mutex
	zones map[string]*Zone
	ids   []string
}

// NewRegistry builds a registry from seed data. Zones live for the process
// lifetime; there is no teardown beyond process exit.
func NewRegistry(seeds []ZoneSeed, now time.Time) *Registry {
	r := &Registry{zones: make(map[string]*Zone, len(seeds))}
	for _, s := range seeds {
		z := &Zone{
			ID:                  s.ID,
			Name:                s.Name,
			Lat:                 s.Lat,
			Lng:                 s.Lng,
			BinCapacityKg:       s.BinCapacityKg,
			GenerationRateKgMin: s.GenerationRateKgMin,
			currentFillKg:       s.InitialFillKg,
			lastCollection:      now,
			lastUpdate:          now,
		}
		z.clampFill()
		r.zones[z.ID] = z
		r.ids = append(r.ids, z.ID)
	}
	sort.Strings(r.ids)
	return r
}

// Tick advances every zone's fill state to now. Ticking twice with the same
// timestamp is idempotent (elapsed time is zero), which every request path
// relies on: handlers tick defensively before reading state.
func (r *Registry) Tick(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.ids {
		z := r.zones[id]
		elapsed := now.Sub(z.lastUpdate).Minutes()
		if elapsed <= 0 {
			continue
		}
		z.currentFillKg += z.GenerationRateKgMin * elapsed
		z.clampFill()
		z.lastUpdate = now
	}
}

// Collect reduces a zone's fill by amountKg, floored at zero. An amount
// covering the whole fill is a full collection: it also stamps the collection
// time, resetting predicted overflow and hotspot score to baseline. Returns
// the post-collection snapshot.
func (r *Registry) Collect(id string, amountKg float64, now time.Time) (ZoneSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	z, ok := r.zones[id]
	if !ok {
		return ZoneSnapshot{}, ErrZoneNotFound
	}
	if amountKg >= z.currentFillKg {
		z.currentFillKg = 0
		z.lastCollection = now
	} else {
		z.currentFillKg -= amountKg
	}
	return z.snapshot(now), nil
}

// Snapshot returns a read-only view of all zones ordered by id, with derived
// fields computed at call time.
func (r *Registry) Snapshot(now time.Time) []ZoneSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ZoneSnapshot, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.zones[id].snapshot(now))
	}
	return out
}

// Hotspots returns the top-n zones by hotspot score, descending. Ties break
// toward the smaller zone id so the ranking is deterministic.
func (r *Registry) Hotspots(n int, now time.Time) []ZoneSnapshot {
	snaps := r.Snapshot(now)
	sort.SliceStable(snaps, func(i, j int) bool {
		if snaps[i].HotspotScore != snaps[j].HotspotScore {
			return snaps[i].HotspotScore > snaps[j].HotspotScore
		}
		return snaps[i].ID < snaps[j].ID
	})
	if n > 0 && n < len(snaps) {
		snaps = snaps[:n]
	}
	return snaps
}

func (z *Zone) clampFill() {
	maxFill := z.BinCapacityKg * OverflowAllowance
	if z.currentFillKg > maxFill {
		z.currentFillKg = maxFill
	}
	if z.currentFillKg < 0 {
		z.currentFillKg = 0
	}
}
