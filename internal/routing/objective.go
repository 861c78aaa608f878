package routing

import "github.com/opsintel/opsintel-mcp/internal/domain"

// objectiveValue scores one completed construction per the requested
// objective. Lower is better internally.
//
// RouteMinTotalTime is parameterized on the travel-time matrix rather
// than reusing the distance matrix as an arc-cost proxy, so it genuinely
// minimizes cumulative travel time when travel_time differs from distance.
func objectiveValue(req *domain.RoutingRequest, routes []domain.VehicleRoute, dropped []string, objective domain.RoutingObjective) float64 {
	penalty := float64(len(dropped)) * req.DropPenalty

	switch objective {
	case domain.RouteMinTotalTime:
		var total float64
		for _, r := range routes {
			total += r.TotalTime
		}
		return total + penalty
	case domain.RouteMinVehicles:
		return float64(len(routes))*1000 + penalty
	case domain.RouteBalanceRoutes:
		if len(routes) == 0 {
			return penalty
		}
		var loads []float64
		for _, r := range routes {
			loads = append(loads, r.TotalLoad)
		}
		return spread(loads) + penalty
	default: // RouteMinTotalDistance
		var total float64
		for _, r := range routes {
			total += r.TotalDistance
		}
		return total + penalty
	}
}

func spread(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	min, max := vs[0], vs[0]
	for _, v := range vs {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max - min
}
