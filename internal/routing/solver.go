package routing

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

const numWorkers = 4
const maxRestartsPerWorker = 300

// Solve builds and solves a CVRPTW model with a randomized-restart greedy
// construction heuristic (each vehicle repeatedly takes the cheapest
// feasible next stop) run across parallel workers.
func Solve(ctx context.Context, req *domain.RoutingRequest) *domain.RoutingResponse {
	t0 := time.Now()

	if err := req.Validate(); err != nil {
		return &domain.RoutingResponse{Status: domain.StatusError, Message: err.Error()}
	}
	mat, err := buildMatrix(req)
	if err != nil {
		return &domain.RoutingResponse{Status: domain.StatusError, Message: err.Error()}
	}

	solveCtx, cancel := context.WithTimeout(ctx, time.Duration(req.MaxSolveTimeSeconds)*time.Second)
	defer cancel()

	type attempt struct {
		routes    []domain.VehicleRoute
		dropped   []string
		objective float64
	}
	results := make(chan attempt, numWorkers)
	g, gctx := errgroup.WithContext(solveCtx)
	for w := 0; w < numWorkers; w++ {
		seed := int64(w*2654435761 + 7)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			var best *attempt
			for i := 0; i < maxRestartsPerWorker; i++ {
				select {
				case <-gctx.Done():
					if best != nil {
						results <- *best
					}
					return nil
				default:
				}
				routes, dropped, ok := construct(req, mat, rng, req.Objective)
				if !ok {
					continue
				}
				obj := objectiveValue(req, routes, dropped, req.Objective)
				if best == nil || obj < best.objective {
					best = &attempt{routes: routes, dropped: dropped, objective: obj}
				}
			}
			if best != nil {
				results <- *best
			}
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	var best *attempt
	for r := range results {
		r := r
		if best == nil || r.objective < best.objective {
			best = &r
		}
	}
	solveTime := time.Since(t0).Seconds()

	if best == nil {
		if solveCtx.Err() == context.DeadlineExceeded {
			return &domain.RoutingResponse{Status: domain.StatusTimeout, Message: "no solution found within the time limit"}
		}
		return &domain.RoutingResponse{Status: domain.StatusInfeasible, Message: "no feasible route set satisfies capacity, time window, and travel limit constraints"}
	}

	metrics := computeMetrics(best.routes, best.dropped)
	metrics.SolveTimeSeconds = round2(solveTime)

	sort.Slice(best.routes, func(i, j int) bool { return best.routes[i].VehicleID < best.routes[j].VehicleID })
	sort.Strings(best.dropped)

	return &domain.RoutingResponse{
		Status:       domain.StatusFeasible,
		Message:      fmt.Sprintf("routed %d vehicles covering %d stops (%d dropped)", metrics.VehiclesUsed, len(req.Locations)-1-len(best.dropped), len(best.dropped)),
		Routes:       best.routes,
		DroppedStops: best.dropped,
		Metrics:      metrics,
	}
}

func construct(req *domain.RoutingRequest, mat *matrix, rng *rand.Rand, objective domain.RoutingObjective) ([]domain.VehicleRoute, []string, bool) {
	unassigned := make(map[string]domain.Location)
	for _, l := range req.Locations {
		if l.LocationID == req.DepotID {
			continue
		}
		unassigned[l.LocationID] = l
	}

	vehicleOrder := append([]domain.Vehicle(nil), req.Vehicles...)
	rng.Shuffle(len(vehicleOrder), func(i, j int) { vehicleOrder[i], vehicleOrder[j] = vehicleOrder[j], vehicleOrder[i] })

	costFn := arcCost(objective, mat)

	var routes []domain.VehicleRoute
	for _, v := range vehicleOrder {
		if len(unassigned) == 0 {
			break
		}
		route, ok := buildRoute(req, mat, v, unassigned, costFn, rng)
		if !ok {
			continue
		}
		if len(route.Stops) == 0 {
			continue
		}
		for _, s := range route.Stops {
			delete(unassigned, s.LocationID)
		}
		routes = append(routes, route)
	}

	if len(unassigned) > 0 {
		if !req.AllowDropVisits {
			return nil, nil, false
		}
		var dropped []string
		for id := range unassigned {
			dropped = append(dropped, id)
		}
		return routes, dropped, true
	}
	return routes, nil, true
}

func arcCost(objective domain.RoutingObjective, mat *matrix) func(from, to string) float64 {
	if objective == domain.RouteMinTotalTime {
		return mat.Travel
	}
	return mat.Distance
}

func buildRoute(req *domain.RoutingRequest, mat *matrix, v domain.Vehicle, unassigned map[string]domain.Location, cost func(string, string) float64, rng *rand.Rand) (domain.VehicleRoute, bool) {
	current := req.DepotID
	currentTime := 0.0
	load := 0.0
	var stops []domain.RouteStop
	var totalDistance, totalTime float64

	for {
		var candidates []string
		for id := range unassigned {
			candidates = append(candidates, id)
		}
		sort.Strings(candidates)
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

		bestID := ""
		bestCost := 0.0
		bestArrival := 0.0
		for _, id := range candidates {
			loc := unassigned[id]
			if load+loc.Demand > v.Capacity {
				continue
			}
			travel := mat.Travel(current, id)
			dist := mat.Distance(current, id)
			arrival := currentTime + travel
			if arrival < loc.TimeWindowStart {
				arrival = loc.TimeWindowStart
			}
			if loc.TimeWindowEnd != nil && arrival > *loc.TimeWindowEnd {
				continue
			}
			prospectiveDistance := totalDistance + dist
			prospectiveTime := totalTime + travel
			if v.MaxTravelDistance != nil && prospectiveDistance > *v.MaxTravelDistance {
				continue
			}
			if v.MaxTravelTime != nil && prospectiveTime > *v.MaxTravelTime {
				continue
			}
			c := cost(current, id)
			if bestID == "" || c < bestCost {
				bestID, bestCost, bestArrival = id, c, arrival
			}
		}
		if bestID == "" {
			break
		}
		loc := unassigned[bestID]
		dist := mat.Distance(current, bestID)
		travel := mat.Travel(current, bestID)
		wait := bestArrival - (currentTime + travel)
		if wait < 0 {
			wait = 0
		}
		departure := bestArrival + loc.ServiceTime
		load += loc.Demand
		stops = append(stops, domain.RouteStop{
			LocationID:    bestID,
			ArrivalTime:   bestArrival,
			DepartureTime: departure,
			LoadAfter:     load,
			WaitTime:      wait,
		})
		totalDistance += dist
		totalTime += travel
		currentTime = departure
		current = bestID
		delete(unassigned, bestID)
	}

	if len(stops) == 0 {
		return domain.VehicleRoute{}, false
	}

	returnDist := mat.Distance(current, req.DepotID)
	returnTravel := mat.Travel(current, req.DepotID)
	totalDistance += returnDist
	totalTime += returnTravel

	return domain.VehicleRoute{
		VehicleID:     v.VehicleID,
		Stops:         stops,
		TotalDistance: round2(totalDistance),
		TotalTime:     round2(totalTime),
		TotalLoad:     round2(load),
	}, true
}

func round2(v float64) float64 { return float64(int64(v*100+0.5)) / 100 }
