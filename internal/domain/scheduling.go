// Package domain holds the request/response shapes shared by every solver
// and meta-engine: FJSP, CVRPTW, bin packing, and the status/objective
// enumerations that tie them together.
package domain

import "fmt"

// ObjectiveType is the closed set of FJSP objectives.
type ObjectiveType string

const (
	ObjMinMakespan             ObjectiveType = "minimize_makespan"
	ObjMinTotalTardiness       ObjectiveType = "minimize_total_tardiness"
	ObjMinMaxTardiness         ObjectiveType = "minimize_max_tardiness"
	ObjBalanceLoad             ObjectiveType = "balance_load"
	ObjMinTotalCompletionTime  ObjectiveType = "minimize_total_completion_time" // Pareto-only, never a direct request objective
)

// SolverStatus is the closed set of outcomes any Layer-1 solver can report.
type SolverStatus string

const (
	StatusOptimal    SolverStatus = "optimal"
	StatusFeasible   SolverStatus = "feasible"
	StatusInfeasible SolverStatus = "infeasible"
	StatusNoSolution SolverStatus = "no_solution"
	StatusTimeout    SolverStatus = "timeout"
	StatusError      SolverStatus = "error"
)

// Feasible reports whether status counts as a usable solution.
func (s SolverStatus) Feasible() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// TimeWindow bounds when a job may run.
type TimeWindow struct {
	EarliestStart float64  `json:"earliest_start"`
	LatestEnd     *float64 `json:"latest_end,omitempty"`
}

// Task is one operation within a Job.
type Task struct {
	TaskID            string   `json:"task_id"`
	Duration          float64  `json:"duration"`
	EligibleMachines  []string `json:"eligible_machines"`
	SetupTime         float64  `json:"setup_time"`
}

// Job is an ordered sequence of Tasks.
type Job struct {
	JobID      string      `json:"job_id"`
	Name       string      `json:"name,omitempty"`
	Tasks      []Task      `json:"tasks"`
	Priority   int         `json:"priority"`
	DueDate    *float64    `json:"due_date,omitempty"`
	TimeWindow *TimeWindow `json:"time_window,omitempty"`
}

// Machine is a resource that executes Tasks.
type Machine struct {
	MachineID         string   `json:"machine_id"`
	AvailabilityStart float64  `json:"availability_start"`
	AvailabilityEnd   *float64 `json:"availability_end,omitempty"`
}

// ScheduledTask is one placed operation in a solution.
type ScheduledTask struct {
	JobID     string  `json:"job_id"`
	TaskID    string  `json:"task_id"`
	MachineID string  `json:"machine_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Duration  float64 `json:"duration"`
}

// ScheduleRequest is the input to ScheduleSolver.
type ScheduleRequest struct {
	Jobs                []Job         `json:"jobs"`
	Machines            []Machine     `json:"machines"`
	Objective           ObjectiveType `json:"objective"`
	MaxSolveTimeSeconds int           `json:"max_solve_time_seconds"`
}

// Validate checks structural invariants that are cheap to verify before a
// solve is attempted.
func (r *ScheduleRequest) Validate() error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("jobs must not be empty")
	}
	seenJobs := make(map[string]bool, len(r.Jobs))
	for _, j := range r.Jobs {
		if j.JobID == "" {
			return fmt.Errorf("job_id must not be empty")
		}
		if seenJobs[j.JobID] {
			return fmt.Errorf("duplicate job_id %q", j.JobID)
		}
		seenJobs[j.JobID] = true
		if len(j.Tasks) == 0 {
			return fmt.Errorf("job %q has no tasks", j.JobID)
		}
		if j.Priority < 1 || j.Priority > 10 {
			return fmt.Errorf("job %q priority must be in [1,10]", j.JobID)
		}
		if j.DueDate != nil && *j.DueDate < 0 {
			return fmt.Errorf("job %q due_date must be >= 0", j.JobID)
		}
		seenTasks := make(map[string]bool, len(j.Tasks))
		for _, t := range j.Tasks {
			if t.TaskID == "" {
				return fmt.Errorf("task_id must not be empty in job %q", j.JobID)
			}
			if seenTasks[t.TaskID] {
				return fmt.Errorf("duplicate task_id %q in job %q", t.TaskID, j.JobID)
			}
			seenTasks[t.TaskID] = true
			if t.Duration <= 0 {
				return fmt.Errorf("task %q/%q duration must be > 0", j.JobID, t.TaskID)
			}
			if len(t.EligibleMachines) == 0 {
				return fmt.Errorf("task %q/%q has no eligible machines", j.JobID, t.TaskID)
			}
			if t.SetupTime < 0 {
				return fmt.Errorf("task %q/%q setup_time must be >= 0", j.JobID, t.TaskID)
			}
		}
	}
	seenMachines := make(map[string]bool, len(r.Machines))
	for _, m := range r.Machines {
		if m.MachineID == "" {
			return fmt.Errorf("machine_id must not be empty")
		}
		if seenMachines[m.MachineID] {
			return fmt.Errorf("duplicate machine_id %q", m.MachineID)
		}
		seenMachines[m.MachineID] = true
	}
	switch r.Objective {
	case ObjMinMakespan, ObjMinTotalTardiness, ObjMinMaxTardiness, ObjBalanceLoad:
	default:
		return fmt.Errorf("unknown objective %q", r.Objective)
	}
	if r.MaxSolveTimeSeconds < 1 || r.MaxSolveTimeSeconds > 300 {
		return fmt.Errorf("max_solve_time_seconds must be in [1,300]")
	}
	return nil
}

// JobSummary aggregates metrics for one job's placed tasks.
type JobSummary struct {
	JobID      string  `json:"job_id"`
	Completion float64 `json:"completion"`
	Tardiness  float64 `json:"tardiness"`
}

// MachineUtilization reports how busy one machine ended up.
type MachineUtilization struct {
	MachineID     string  `json:"machine_id"`
	BusyTime      float64 `json:"busy_time"`
	UtilizationPc float64 `json:"utilization_pct"`
}

// ScheduleMetrics aggregates solution-wide numbers.
type ScheduleMetrics struct {
	Makespan           float64 `json:"makespan"`
	TotalTardiness      float64 `json:"total_tardiness"`
	MaxTardiness        float64 `json:"max_tardiness"`
	TotalCompletionTime float64 `json:"total_completion_time"`
	SolveTimeSeconds    float64 `json:"solve_time_seconds"`
}

// GanttEntry is one Gantt-ready row.
type GanttEntry struct {
	JobID     string  `json:"job_id"`
	TaskID    string  `json:"task_id"`
	MachineID string  `json:"machine_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

// ScheduleResponse is the output of ScheduleSolver.
type ScheduleResponse struct {
	Status         SolverStatus         `json:"status"`
	Message        string               `json:"message"`
	Schedule       []ScheduledTask      `json:"schedule,omitempty"`
	JobSummaries   []JobSummary         `json:"job_summaries,omitempty"`
	MachineUtil    []MachineUtilization `json:"machine_utilization,omitempty"`
	Metrics        *ScheduleMetrics     `json:"metrics,omitempty"`
	Gantt          []GanttEntry         `json:"gantt,omitempty"`
}
