package robust

import (
	"context"
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/pathresolver"
)

func TestOptimizeWorstCaseAtLeastNominal(t *testing.T) {
	due := 100.0
	schedReq := &domain.ScheduleRequest{
		Jobs: []domain.Job{
			{JobID: "J1", Priority: 1, DueDate: &due, Tasks: []domain.Task{
				{TaskID: "a", Duration: 5, EligibleMachines: []string{"M1"}},
			}},
		},
		Machines:            []domain.Machine{{MachineID: "M1"}},
		Objective:            domain.ObjMinMakespan,
		MaxSolveTimeSeconds: 2,
	}
	doc, err := pathresolver.ToDocument(schedReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := &domain.RobustRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: doc,
		UncertainParameters: []domain.UncertainParameter{
			{Path: "jobs[J1].tasks[a].duration", Min: 3, Max: 10},
		},
		Mode:                domain.RobustWorstCase,
		NumScenarios:        6,
		MaxSolveTimeSeconds: 2,
	}
	resp := Optimize(context.Background(), req)
	if resp.Status != domain.StatusFeasible {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	if resp.PriceOfRobustness < 0 {
		t.Errorf("expected non-negative price of robustness for worst case, got %v", resp.PriceOfRobustness)
	}
	if resp.Percentile90 > resp.Percentile95 {
		t.Errorf("expected p90 <= p95, got %v > %v", resp.Percentile90, resp.Percentile95)
	}
}
