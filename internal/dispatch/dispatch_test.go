package dispatch

import (
	"context"
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/pathresolver"
)

func TestSolveSchedulingUsesCanonicalObjectiveName(t *testing.T) {
	due := 50.0
	req := &domain.ScheduleRequest{
		Jobs: []domain.Job{
			{JobID: "J1", Priority: 1, DueDate: &due, Tasks: []domain.Task{
				{TaskID: "a", Duration: 4, EligibleMachines: []string{"M1"}},
			}},
		},
		Machines:            []domain.Machine{{MachineID: "M1"}},
		Objective:            domain.ObjBalanceLoad,
		MaxSolveTimeSeconds: 2,
	}
	doc, err := pathresolver.ToDocument(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Solve(context.Background(), SolverScheduling, doc, 2)
	if out.ObjectiveName != "makespan" {
		t.Errorf("expected canonical objective name makespan, got %s", out.ObjectiveName)
	}
	if !out.Feasible() {
		t.Errorf("expected feasible outcome, got %s: %s", out.Status, out.Message)
	}
}

func TestSolveUnknownSolverType(t *testing.T) {
	out := Solve(context.Background(), SolverType("bogus"), map[string]any{}, 2)
	if out.Status != domain.StatusError {
		t.Errorf("expected error status, got %s", out.Status)
	}
}
