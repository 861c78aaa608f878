package routing

import (
	"context"
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

func simpleRoutingRequest(objective domain.RoutingObjective) *domain.RoutingRequest {
	return &domain.RoutingRequest{
		DepotID: "depot",
		Locations: []domain.Location{
			{LocationID: "depot", GPS: &domain.GPS{Lat: 0, Lon: 0}},
			{LocationID: "A", GPS: &domain.GPS{Lat: 0, Lon: 0.01}, Demand: 3, TimeWindowStart: 0},
			{LocationID: "B", GPS: &domain.GPS{Lat: 0, Lon: 0.02}, Demand: 4, TimeWindowStart: 0},
			{LocationID: "C", GPS: &domain.GPS{Lat: 0.01, Lon: 0.02}, Demand: 2, TimeWindowStart: 0},
		},
		Vehicles: []domain.Vehicle{
			{VehicleID: "V1", Capacity: 10},
			{VehicleID: "V2", Capacity: 10},
		},
		Objective:           objective,
		MaxSolveTimeSeconds: 2,
	}
}

func TestSolveRoutingFeasible(t *testing.T) {
	resp := Solve(context.Background(), simpleRoutingRequest(domain.RouteMinTotalDistance))
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	covered := 0
	for _, r := range resp.Routes {
		covered += len(r.Stops)
	}
	if covered != 3 {
		t.Fatalf("expected 3 stops covered, got %d", covered)
	}
}

func TestSolveRoutingCapacityRespected(t *testing.T) {
	req := simpleRoutingRequest(domain.RouteMinTotalDistance)
	for i := range req.Vehicles {
		req.Vehicles[i].Capacity = 5
	}
	resp := Solve(context.Background(), req)
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible, got %s", resp.Status)
	}
	for _, r := range resp.Routes {
		if r.TotalLoad > 5 {
			t.Errorf("vehicle %s load %.2f exceeds capacity 5", r.VehicleID, r.TotalLoad)
		}
	}
}

func TestSolveRoutingDropsWhenOverCapacity(t *testing.T) {
	req := simpleRoutingRequest(domain.RouteMinTotalDistance)
	req.Vehicles = []domain.Vehicle{{VehicleID: "V1", Capacity: 3}}
	req.AllowDropVisits = true
	req.DropPenalty = 50
	resp := Solve(context.Background(), req)
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible with drops, got %s: %s", resp.Status, resp.Message)
	}
	if len(resp.DroppedStops) == 0 {
		t.Error("expected at least one dropped stop")
	}
}

func TestSolveRoutingInfeasibleWithoutDrops(t *testing.T) {
	req := simpleRoutingRequest(domain.RouteMinTotalDistance)
	req.Vehicles = []domain.Vehicle{{VehicleID: "V1", Capacity: 3}}
	req.AllowDropVisits = false
	resp := Solve(context.Background(), req)
	if resp.Status != domain.StatusInfeasible {
		t.Fatalf("expected infeasible, got %s", resp.Status)
	}
}

func TestSolveRoutingMissingDistanceDataDefaultsToZero(t *testing.T) {
	req := simpleRoutingRequest(domain.RouteMinTotalDistance)
	req.Locations[1].GPS = nil
	resp := Solve(context.Background(), req)
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible with zero distance for the location without GPS, got %s: %s", resp.Status, resp.Message)
	}
}
