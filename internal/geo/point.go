package geo

import (
	"encoding/json"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// LatLng is the canonical decoded coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsOrigin reports whether the coordinate is the (0,0) "never set" sentinel.
func (p LatLng) IsOrigin() bool {
	return p.Lat == 0 && p.Lng == 0
}

// DecodeLocation converts a location value in any of the supported point
// encodings into a LatLng. Supported forms, tried in order:
//
//  1. WKT text: "POINT(lng lat)"
//  2. Hex EWKB: byte order + geometry type + SRID + little-endian X/Y doubles
//  3. Structured value with a "coordinates" [lng, lat] array or "x"/"y" fields
//
// Returns ok=false on anything unrecognized or malformed. Decode failure is an
// expected outcome on best-effort ingestion paths, so this never errors.
func DecodeLocation(v any) (LatLng, bool) {
	switch val := v.(type) {
	case string:
		return decodeString(val)
	case []byte:
		return decodeString(string(val))
	case json.RawMessage:
		return decodeString(string(val))
	case map[string]any:
		return decodeStructured(val)
	case LatLng:
		return val, true
	}
	return LatLng{}, false
}

func decodeString(s string) (LatLng, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LatLng{}, false
	}

	if g, err := wkt.Unmarshal(s); err == nil {
		return pointOf(g)
	}

	if g, err := ewkbhex.Decode(s); err == nil {
		return pointOf(g)
	}

	// A JSON document carrying a structured value or a quoted encoding.
	// Unwrapping a quoted string strips its quotes, so recursion terminates.
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "\"") {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			switch val := inner.(type) {
			case string:
				return decodeString(val)
			case map[string]any:
				return decodeStructured(val)
			}
		}
	}

	return LatLng{}, false
}

func decodeStructured(m map[string]any) (LatLng, bool) {
	if coords, ok := m["coordinates"].([]any); ok && len(coords) >= 2 {
		lng, okX := toFloat(coords[0])
		lat, okY := toFloat(coords[1])
		if okX && okY {
			return LatLng{Lat: lat, Lng: lng}, true
		}
		return LatLng{}, false
	}

	lng, okX := toFloat(m["x"])
	lat, okY := toFloat(m["y"])
	if okX && okY {
		return LatLng{Lat: lat, Lng: lng}, true
	}

	return LatLng{}, false
}

func pointOf(g geom.T) (LatLng, bool) {
	p, ok := g.(*geom.Point)
	if !ok || p.Empty() {
		return LatLng{}, false
	}
	// X is longitude, Y is latitude.
	return LatLng{Lat: p.Y(), Lng: p.X()}, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
