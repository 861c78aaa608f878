package routing

import "github.com/opsintel/opsintel-mcp/internal/domain"

func computeMetrics(routes []domain.VehicleRoute, dropped []string) *domain.RoutingMetrics {
	var totalDistance, totalTime float64
	for _, r := range routes {
		totalDistance += r.TotalDistance
		totalTime += r.TotalTime
	}
	return &domain.RoutingMetrics{
		TotalDistance: round2(totalDistance),
		TotalTime:     round2(totalTime),
		VehiclesUsed:  len(routes),
		DroppedVisits: len(dropped),
	}
}
