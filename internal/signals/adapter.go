package signals

import (
	"context"
	"fmt"

	"taka_track/internal/geo"
	"taka_track/internal/routing"
)

// ReadyCandidates fetches the current ready pickup records and converts each
// into a maximum-urgency routing candidate. Records whose location fails to
// decode, or decodes to the (0,0) "never set" sentinel, are dropped silently:
// that is deliberate best-effort filtering, not an error condition.
func ReadyCandidates(ctx context.Context, store Store) ([]routing.Candidate, error) {
	records, err := store.ReadyPickups(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch ready pickups: %w", err)
	}

	candidates := make([]routing.Candidate, 0, len(records))
	for _, rec := range records {
		at, ok := geo.DecodeLocation(rec.Location)
		if !ok || at.IsOrigin() {
			continue
		}
		name := rec.LocationID
		if rec.Ward != "" {
			name = fmt.Sprintf("%s (%s)", rec.LocationID, rec.Ward)
		}
		id := fmt.Sprintf("signal-%d", rec.ID)
		candidates = append(candidates, routing.SignalCandidate(id, name, at, rec.Ward, rec.Category))
	}
	return candidates, nil
}
