package scheduling

import (
	"context"
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

func simpleRequest(objective domain.ObjectiveType) *domain.ScheduleRequest {
	due := 100.0
	return &domain.ScheduleRequest{
		Jobs: []domain.Job{
			{
				JobID:    "J1",
				Priority: 5,
				DueDate:  &due,
				Tasks: []domain.Task{
					{TaskID: "cut", Duration: 4, EligibleMachines: []string{"M1", "M2"}},
					{TaskID: "weld", Duration: 3, EligibleMachines: []string{"M2"}},
				},
			},
			{
				JobID:    "J2",
				Priority: 3,
				DueDate:  &due,
				Tasks: []domain.Task{
					{TaskID: "cut", Duration: 2, EligibleMachines: []string{"M1", "M2"}},
				},
			},
		},
		Machines: []domain.Machine{
			{MachineID: "M1", AvailabilityStart: 0},
			{MachineID: "M2", AvailabilityStart: 0},
		},
		Objective:           objective,
		MaxSolveTimeSeconds: 2,
	}
}

func TestSolveFeasibleMinMakespan(t *testing.T) {
	resp := Solve(context.Background(), simpleRequest(domain.ObjMinMakespan))
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible status, got %s: %s", resp.Status, resp.Message)
	}
	if len(resp.Schedule) != 3 {
		t.Fatalf("expected 3 scheduled tasks, got %d", len(resp.Schedule))
	}
	for _, st := range resp.Schedule {
		if st.Start+st.Duration != st.End {
			t.Errorf("invariant violated for %s/%s: start+duration != end", st.JobID, st.TaskID)
		}
	}
}

func TestSolvePrecedenceRespected(t *testing.T) {
	resp := Solve(context.Background(), simpleRequest(domain.ObjMinMakespan))
	var cutEnd, weldStart float64
	for _, st := range resp.Schedule {
		if st.JobID == "J1" && st.TaskID == "cut" {
			cutEnd = st.End
		}
		if st.JobID == "J1" && st.TaskID == "weld" {
			weldStart = st.Start
		}
	}
	if weldStart < cutEnd {
		t.Errorf("weld started (%.2f) before cut ended (%.2f)", weldStart, cutEnd)
	}
}

func TestSolveNoOverlapPerMachine(t *testing.T) {
	resp := Solve(context.Background(), simpleRequest(domain.ObjMinMakespan))
	byMachine := make(map[string][]domain.ScheduledTask)
	for _, st := range resp.Schedule {
		byMachine[st.MachineID] = append(byMachine[st.MachineID], st)
	}
	for mid, tasks := range byMachine {
		for i := 0; i < len(tasks); i++ {
			for j := i + 1; j < len(tasks); j++ {
				a, b := tasks[i], tasks[j]
				if a.Start < b.End && b.Start < a.End {
					t.Errorf("overlap on machine %s between %s/%s and %s/%s", mid, a.JobID, a.TaskID, b.JobID, b.TaskID)
				}
			}
		}
	}
}

func TestSolveUnknownMachineIsError(t *testing.T) {
	req := simpleRequest(domain.ObjMinMakespan)
	req.Jobs[0].Tasks[0].EligibleMachines = []string{"M404"}
	resp := Solve(context.Background(), req)
	if resp.Status != domain.StatusError {
		t.Fatalf("expected error status, got %s", resp.Status)
	}
}

func TestSolveInfeasibleTimeWindow(t *testing.T) {
	req := simpleRequest(domain.ObjMinMakespan)
	tiny := 1.0
	req.Jobs[0].TimeWindow = &domain.TimeWindow{EarliestStart: 0, LatestEnd: &tiny}
	resp := Solve(context.Background(), req)
	if resp.Status != domain.StatusInfeasible {
		t.Fatalf("expected infeasible status, got %s: %s", resp.Status, resp.Message)
	}
}

func TestSolveBalanceLoadSpreadsWork(t *testing.T) {
	req := simpleRequest(domain.ObjBalanceLoad)
	req.Jobs[0].Tasks[1].EligibleMachines = []string{"M1", "M2"}
	resp := Solve(context.Background(), req)
	if !resp.Status.Feasible() {
		t.Fatalf("expected feasible status, got %s", resp.Status)
	}
	var loads []float64
	for _, mu := range resp.MachineUtil {
		loads = append(loads, mu.BusyTime)
	}
	if len(loads) != 2 {
		t.Fatalf("expected 2 machines reported, got %d", len(loads))
	}
	for _, l := range loads {
		if l == 0 {
			t.Errorf("expected work spread across both machines, got busy times %v", loads)
		}
	}
}

func TestValidateDetectsOverlap(t *testing.T) {
	req := &domain.ValidateRequest{
		Jobs: []domain.Job{
			{JobID: "J1", Priority: 1, Tasks: []domain.Task{
				{TaskID: "a", Duration: 5, EligibleMachines: []string{"M1"}},
			}},
		},
		Machines: []domain.Machine{{MachineID: "M1"}},
		Schedule: []domain.ScheduledTask{
			{JobID: "J1", TaskID: "a", MachineID: "M1", Start: 0, End: 5, Duration: 5},
			{JobID: "J1", TaskID: "b", MachineID: "M1", Start: 2, End: 7, Duration: 5},
		},
	}
	resp := Validate(req)
	if resp.IsValid {
		t.Fatal("expected invalid schedule")
	}
	found := false
	for _, v := range resp.Violations {
		if v.Type == "overlap" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an overlap violation on machine M1, got %+v", resp.Violations)
	}
}

func TestValidateCleanScheduleHasMetricsAndNoErrors(t *testing.T) {
	req := &domain.ValidateRequest{
		Jobs: []domain.Job{
			{JobID: "J1", Priority: 1, Tasks: []domain.Task{
				{TaskID: "a", Duration: 5, EligibleMachines: []string{"M1"}},
			}},
		},
		Machines: []domain.Machine{{MachineID: "M1"}},
		Schedule: []domain.ScheduledTask{
			{JobID: "J1", TaskID: "a", MachineID: "M1", Start: 0, End: 5, Duration: 5},
		},
	}
	resp := Validate(req)
	if !resp.IsValid {
		t.Fatalf("expected valid schedule, got violations: %+v", resp.Violations)
	}
	if resp.Metrics == nil {
		t.Fatal("expected metrics on a valid schedule")
	}
}
