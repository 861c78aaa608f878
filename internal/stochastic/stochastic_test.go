package stochastic

import (
	"context"
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/pathresolver"
)

func scheduleDoc(t *testing.T) map[string]any {
	t.Helper()
	due := 50.0
	req := &domain.ScheduleRequest{
		Jobs: []domain.Job{
			{JobID: "J1", Priority: 1, DueDate: &due, Tasks: []domain.Task{
				{TaskID: "a", Duration: 4, EligibleMachines: []string{"M1"}},
				{TaskID: "b", Duration: 6, EligibleMachines: []string{"M1", "M2"}},
			}},
		},
		Machines:            []domain.Machine{{MachineID: "M1"}, {MachineID: "M2"}},
		Objective:            domain.ObjMinMakespan,
		MaxSolveTimeSeconds: 2,
	}
	doc, err := pathresolver.ToDocument(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return doc
}

func TestOptimizeExpectedValue(t *testing.T) {
	req := &domain.StochasticRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: scheduleDoc(t),
		StochasticParameters: []domain.StochasticParameter{
			{Path: "jobs[J1].tasks[b].duration", Distribution: domain.DistNormal, Mean: 6, Std: 1.5},
		},
		OptimizeFor:         domain.RiskExpectedValue,
		NumScenarios:        20,
		Seed:                7,
		MaxSolveTimeSeconds: 2,
	}
	resp := Optimize(context.Background(), req)
	if resp.Status != domain.StatusFeasible {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	if resp.BestCase > resp.WorstCase {
		t.Errorf("expected best_case <= worst_case, got %v > %v", resp.BestCase, resp.WorstCase)
	}
	if resp.CVaR95 < resp.VaR95 {
		t.Errorf("expected CVaR_95 >= VaR_95, got %v < %v", resp.CVaR95, resp.VaR95)
	}
	if resp.RecommendedScenario == nil {
		t.Error("expected a recommended scenario")
	}
}

func TestOptimizeWorstCaseTargetsMax(t *testing.T) {
	req := &domain.StochasticRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: scheduleDoc(t),
		StochasticParameters: []domain.StochasticParameter{
			{Path: "jobs[J1].tasks[b].duration", Distribution: domain.DistUniform, Min: 4, Max: 10},
		},
		OptimizeFor:         domain.RiskWorstCase,
		NumScenarios:        15,
		Seed:                3,
		MaxSolveTimeSeconds: 2,
	}
	resp := Optimize(context.Background(), req)
	if resp.Status != domain.StatusFeasible {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	if resp.RecommendedObjective < resp.ExpectedValue {
		t.Errorf("expected worst-case recommendation >= expected value, got %v < %v", resp.RecommendedObjective, resp.ExpectedValue)
	}
}

func TestValidateRejectsUnknownRiskMetric(t *testing.T) {
	req := &domain.StochasticRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: map[string]any{"x": 1},
		StochasticParameters: []domain.StochasticParameter{
			{Path: "a", Distribution: domain.DistNormal, Mean: 1, Std: 1},
		},
		OptimizeFor:         "bogus",
		NumScenarios:        5,
		MaxSolveTimeSeconds: 1,
	}
	if err := req.Validate(); err == nil {
		t.Error("expected validation error for unknown optimize_for")
	}
}
