package packing

import (
	"context"
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

func simplePackingRequest(objective domain.PackingObjective) *domain.PackingRequest {
	return &domain.PackingRequest{
		Items: []domain.Item{
			{ItemID: "box1", Weight: 5, Volume: 2, Value: 10, Quantity: 3},
			{ItemID: "box2", Weight: 8, Volume: 3, Value: 20, Quantity: 2},
		},
		Bins: []domain.Bin{
			{BinID: "truck", WeightCapacity: 20, VolumeCapacity: 10, Quantity: 3},
		},
		Objective:           objective,
		MaxSolveTimeSeconds: 2,
	}
}

func TestSolvePackingFeasible(t *testing.T) {
	resp := Solve(context.Background(), simplePackingRequest(domain.PackMinBins))
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	if resp.Metrics.ItemsPacked+resp.Metrics.ItemsUnpacked != 5 {
		t.Errorf("expected 5 total item instances accounted for, got %d+%d", resp.Metrics.ItemsPacked, resp.Metrics.ItemsUnpacked)
	}
}

func TestSolvePackingRespectsCapacity(t *testing.T) {
	resp := Solve(context.Background(), simplePackingRequest(domain.PackMinBins))
	for _, b := range resp.Bins {
		if b.TotalWeight > 20 {
			t.Errorf("bin %s weight %.2f exceeds capacity 20", b.BinInstanceID, b.TotalWeight)
		}
	}
}

func TestSolvePackingInfeasibleWithoutPartial(t *testing.T) {
	req := simplePackingRequest(domain.PackMinBins)
	req.Bins = []domain.Bin{{BinID: "tiny", WeightCapacity: 5, VolumeCapacity: 1, Quantity: 1}}
	req.AllowPartial = false
	resp := Solve(context.Background(), req)
	if resp.Status != domain.StatusInfeasible {
		t.Fatalf("expected infeasible, got %s", resp.Status)
	}
}

func TestSolvePackingAllowsPartial(t *testing.T) {
	req := simplePackingRequest(domain.PackMaxValue)
	req.Bins = []domain.Bin{{BinID: "tiny", WeightCapacity: 5, VolumeCapacity: 5, Quantity: 1}}
	req.AllowPartial = true
	resp := Solve(context.Background(), req)
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible, got %s", resp.Status)
	}
	if resp.Metrics.ItemsUnpacked == 0 {
		t.Error("expected some items unpacked given the tiny bin capacity")
	}
}

func TestSolvePackingKeepsGroupsTogether(t *testing.T) {
	req := &domain.PackingRequest{
		Items: []domain.Item{
			{ItemID: "a", Weight: 4, Volume: 1, Quantity: 1, Group: "pair"},
			{ItemID: "b", Weight: 4, Volume: 1, Quantity: 1, Group: "pair"},
		},
		Bins: []domain.Bin{
			{BinID: "small", WeightCapacity: 5, VolumeCapacity: 5, Quantity: 2},
			{BinID: "big", WeightCapacity: 10, VolumeCapacity: 10, Quantity: 1},
		},
		Objective:           domain.PackMinBins,
		KeepGroupsTogether:  true,
		MaxSolveTimeSeconds: 2,
	}
	resp := Solve(context.Background(), req)
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	binOf := make(map[string]string)
	for _, a := range resp.Assignments {
		if a.Packed {
			binOf[a.OriginalID] = a.BinInstanceID
		}
	}
	if binOf["a"] != binOf["b"] {
		t.Errorf("expected grouped items in the same bin, got a=%s b=%s", binOf["a"], binOf["b"])
	}
}
