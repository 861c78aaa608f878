package prescriptive

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

func risingSeries() []domain.ObservedPoint {
	return []domain.ObservedPoint{
		{Period: "1", Value: 4}, {Period: "2", Value: 4.5}, {Period: "3", Value: 5},
		{Period: "4", Value: 5.5}, {Period: "5", Value: 6}, {Period: "6", Value: 6.5},
	}
}

func TestAdviseProducesThreeScenarios(t *testing.T) {
	req := &domain.PrescriptiveRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: scheduleDoc(t),
		ForecastParameters: []domain.ForecastParameterSpec{
			{Path: "jobs[J1].tasks[b].duration", Series: risingSeries(), Method: domain.ForecastLinearTrend, Horizon: 1, Confidence: 0.9},
		},
		RiskAppetite:        domain.RiskAppetiteModerate,
		MaxSolveTimeSeconds: 2,
	}
	resp := Advise(context.Background(), req)
	if resp.Status != domain.StatusFeasible {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	if len(resp.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(resp.Scenarios))
	}
	if resp.CriticalParameter == "" {
		t.Error("expected a critical parameter")
	}
	switch resp.FeasibilityRisk {
	case "low", "medium", "high":
	default:
		t.Errorf("unexpected feasibility_risk %q", resp.FeasibilityRisk)
	}
}

func TestAdviseIncreasingTrendProducesPlanAction(t *testing.T) {
	req := &domain.PrescriptiveRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: scheduleDoc(t),
		ForecastParameters: []domain.ForecastParameterSpec{
			{Path: "jobs[J1].tasks[b].duration", Series: risingSeries(), Method: domain.ForecastLinearTrend, Horizon: 1, Confidence: 0.9},
		},
		RiskAppetite:        domain.RiskAppetiteModerate,
		MaxSolveTimeSeconds: 2,
	}
	resp := Advise(context.Background(), req)
	if resp.Status != domain.StatusFeasible {
		t.Fatalf("expected feasible, got %s: %s", resp.Status, resp.Message)
	}
	if len(resp.Actions) == 0 {
		t.Fatal("expected at least one action for an increasing trend")
	}
	found := false
	for _, a := range resp.Actions {
		if a.Description == "plan for rising jobs[J1].tasks[b].duration" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a plan-for-rising action, got %+v", resp.Actions)
	}
}

func TestValidateRejectsUnresolvableParameterLater(t *testing.T) {
	req := &domain.PrescriptiveRequest{
		SolverType:    domain.SolverScheduling,
		SolverRequest: scheduleDoc(t),
		ForecastParameters: []domain.ForecastParameterSpec{
			{Path: "jobs[J1].tasks[zzz].duration", Series: risingSeries(), Method: domain.ForecastLinearTrend, Horizon: 1, Confidence: 0.9},
		},
		RiskAppetite:        domain.RiskAppetiteModerate,
		MaxSolveTimeSeconds: 2,
	}
	resp := Advise(context.Background(), req)
	if resp.Status != domain.StatusError {
		t.Fatalf("expected error status for an unresolvable path, got %s", resp.Status)
	}
}
