// Package routing implements RoutingSolver for Capacitated
// Vehicle Routing with Time Windows.
package routing

import (
	"math"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

const earthRadiusM = 6371000.0

// matrix resolves distance and travel time between any two known
// locations, preferring an explicit DistanceEntry override, falling back
// to the haversine great-circle distance when both locations carry GPS
// coordinates.
type matrix struct {
	distance map[string]map[string]float64
	travel   map[string]map[string]float64
	byID     map[string]domain.Location
}

func buildMatrix(req *domain.RoutingRequest) (*matrix, error) {
	m := &matrix{
		distance: make(map[string]map[string]float64),
		travel:   make(map[string]map[string]float64),
		byID:     make(map[string]domain.Location, len(req.Locations)),
	}
	for _, l := range req.Locations {
		m.byID[l.LocationID] = l
	}
	for _, e := range req.DistanceMatrix {
		m.set(e.FromID, e.ToID, e.Distance, e.TravelTime)
	}
	for _, a := range req.Locations {
		for _, b := range req.Locations {
			if a.LocationID == b.LocationID {
				m.set(a.LocationID, b.LocationID, 0, floatPtr(0))
				continue
			}
			if m.has(a.LocationID, b.LocationID) {
				continue
			}
			if a.GPS == nil || b.GPS == nil {
				m.set(a.LocationID, b.LocationID, 0, floatPtr(0))
				continue
			}
			d := haversine(*a.GPS, *b.GPS)
			m.set(a.LocationID, b.LocationID, d, nil)
		}
	}
	return m, nil
}

func (m *matrix) has(from, to string) bool {
	row, ok := m.distance[from]
	if !ok {
		return false
	}
	_, ok = row[to]
	return ok
}

func (m *matrix) set(from, to string, dist float64, travelTime *float64) {
	if m.distance[from] == nil {
		m.distance[from] = make(map[string]float64)
	}
	m.distance[from][to] = dist
	if m.travel[from] == nil {
		m.travel[from] = make(map[string]float64)
	}
	if travelTime != nil {
		m.travel[from][to] = *travelTime
	} else {
		m.travel[from][to] = dist
	}
}

func (m *matrix) Distance(from, to string) float64 { return m.distance[from][to] }
func (m *matrix) Travel(from, to string) float64   { return m.travel[from][to] }

func haversine(a, b domain.GPS) float64 {
	lat1, lon1 := toRadians(a.Lat), toRadians(a.Lon)
	lat2, lon2 := toRadians(b.Lat), toRadians(b.Lon)
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusM * c
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func floatPtr(v float64) *float64 { return &v }
