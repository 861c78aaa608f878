package scheduling

import (
	"fmt"
	"sort"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

// Validate runs ScheduleValidator: eight independent checks
// against a caller-supplied schedule, followed by advisory suggestions
// when no error-severity violation was found.
func Validate(req *domain.ValidateRequest) *domain.ValidateResponse {
	jobByID := make(map[string]domain.Job, len(req.Jobs))
	for _, j := range req.Jobs {
		jobByID[j.JobID] = j
	}
	machineByID := make(map[string]domain.Machine, len(req.Machines))
	for _, m := range req.Machines {
		machineByID[m.MachineID] = m
	}
	taskByID := make(map[string]map[string]domain.Task)
	for _, j := range req.Jobs {
		taskByID[j.JobID] = make(map[string]domain.Task, len(j.Tasks))
		for _, t := range j.Tasks {
			taskByID[j.JobID][t.TaskID] = t
		}
	}

	var violations []domain.ValidationViolation
	add := func(typ string, sev domain.ViolationSeverity, desc, jobID, taskID, machineID string) {
		violations = append(violations, domain.ValidationViolation{
			Type: typ, Severity: sev, Description: desc, JobID: jobID, TaskID: taskID, MachineID: machineID,
		})
	}

	// 1. consistency: start + duration == end
	for _, st := range req.Schedule {
		if st.Start+st.Duration != st.End {
			add("consistency", domain.SeverityError,
				fmt.Sprintf("start (%.2f) + duration (%.2f) != end (%.2f)", st.Start, st.Duration, st.End),
				st.JobID, st.TaskID, st.MachineID)
		}
	}

	// 2. unknown job/task/machine references
	for _, st := range req.Schedule {
		job, jobOK := jobByID[st.JobID]
		if !jobOK {
			add("unknown_job", domain.SeverityError, fmt.Sprintf("schedule references unknown job %q", st.JobID), st.JobID, st.TaskID, st.MachineID)
			continue
		}
		if _, ok := taskByID[st.JobID][st.TaskID]; !ok {
			add("unknown_task", domain.SeverityError, fmt.Sprintf("schedule references unknown task %q in job %q", st.TaskID, st.JobID), st.JobID, st.TaskID, st.MachineID)
		}
		if _, ok := machineByID[st.MachineID]; !ok {
			add("unknown_machine", domain.SeverityError, fmt.Sprintf("schedule references unknown machine %q", st.MachineID), st.JobID, st.TaskID, st.MachineID)
		}
		_ = job
	}

	// 3. eligibility
	for _, st := range req.Schedule {
		task, ok := taskByID[st.JobID][st.TaskID]
		if !ok {
			continue
		}
		eligible := false
		for _, mid := range task.EligibleMachines {
			if mid == st.MachineID {
				eligible = true
				break
			}
		}
		if !eligible {
			add("eligibility", domain.SeverityError,
				fmt.Sprintf("task %q/%q scheduled on ineligible machine %q", st.JobID, st.TaskID, st.MachineID),
				st.JobID, st.TaskID, st.MachineID)
		}
	}

	// 4. no-overlap per machine
	byMachine := make(map[string][]domain.ScheduledTask)
	for _, st := range req.Schedule {
		byMachine[st.MachineID] = append(byMachine[st.MachineID], st)
	}
	for mid, tasks := range byMachine {
		sorted := append([]domain.ScheduledTask(nil), tasks...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
		for i := 1; i < len(sorted); i++ {
			if sorted[i].Start < sorted[i-1].End {
				add("overlap", domain.SeverityError,
					fmt.Sprintf("tasks %q/%q and %q/%q overlap on machine %q",
						sorted[i-1].JobID, sorted[i-1].TaskID, sorted[i].JobID, sorted[i].TaskID, mid),
					sorted[i].JobID, sorted[i].TaskID, mid)
			}
		}
	}

	// 5. precedence within job (task order as declared)
	scheduledByJobTask := make(map[string]map[string]domain.ScheduledTask)
	for _, st := range req.Schedule {
		if scheduledByJobTask[st.JobID] == nil {
			scheduledByJobTask[st.JobID] = make(map[string]domain.ScheduledTask)
		}
		scheduledByJobTask[st.JobID][st.TaskID] = st
	}
	for _, j := range req.Jobs {
		var prevEnd float64
		havePrev := false
		for _, t := range j.Tasks {
			st, ok := scheduledByJobTask[j.JobID][t.TaskID]
			if !ok {
				continue
			}
			if havePrev && st.Start < prevEnd {
				add("precedence", domain.SeverityError,
					fmt.Sprintf("task %q/%q starts (%.2f) before its predecessor ends (%.2f)", j.JobID, t.TaskID, st.Start, prevEnd),
					j.JobID, t.TaskID, st.MachineID)
			}
			prevEnd = st.End
			havePrev = true
		}
	}

	// 6. time windows
	for _, j := range req.Jobs {
		if j.TimeWindow == nil || len(j.Tasks) == 0 {
			continue
		}
		first, firstOK := scheduledByJobTask[j.JobID][j.Tasks[0].TaskID]
		if firstOK && first.Start < j.TimeWindow.EarliestStart {
			add("time_window", domain.SeverityError,
				fmt.Sprintf("job %q starts (%.2f) before its earliest_start (%.2f)", j.JobID, first.Start, j.TimeWindow.EarliestStart),
				j.JobID, first.TaskID, first.MachineID)
		}
		last, lastOK := scheduledByJobTask[j.JobID][j.Tasks[len(j.Tasks)-1].TaskID]
		if lastOK && j.TimeWindow.LatestEnd != nil && last.End > *j.TimeWindow.LatestEnd {
			add("time_window", domain.SeverityError,
				fmt.Sprintf("job %q ends (%.2f) after its latest_end (%.2f)", j.JobID, last.End, *j.TimeWindow.LatestEnd),
				j.JobID, last.TaskID, last.MachineID)
		}
	}

	// 7. machine availability
	for _, st := range req.Schedule {
		m, ok := machineByID[st.MachineID]
		if !ok {
			continue
		}
		if st.Start < m.AvailabilityStart {
			add("availability", domain.SeverityError,
				fmt.Sprintf("task %q/%q starts (%.2f) before machine %q is available (%.2f)", st.JobID, st.TaskID, st.Start, m.MachineID, m.AvailabilityStart),
				st.JobID, st.TaskID, st.MachineID)
		}
		if m.AvailabilityEnd != nil && st.End > *m.AvailabilityEnd {
			add("availability", domain.SeverityError,
				fmt.Sprintf("task %q/%q ends (%.2f) after machine %q becomes unavailable (%.2f)", st.JobID, st.TaskID, st.End, m.MachineID, *m.AvailabilityEnd),
				st.JobID, st.TaskID, st.MachineID)
		}
	}

	// 8. missing tasks (warning)
	for _, j := range req.Jobs {
		for _, t := range j.Tasks {
			if _, ok := scheduledByJobTask[j.JobID][t.TaskID]; !ok {
				add("missing_task", domain.SeverityWarning,
					fmt.Sprintf("job %q task %q has no entry in the schedule", j.JobID, t.TaskID),
					j.JobID, t.TaskID, "")
			}
		}
	}

	hasError := false
	for _, v := range violations {
		if v.Severity == domain.SeverityError {
			hasError = true
			break
		}
	}

	resp := &domain.ValidateResponse{
		IsValid:    !hasError,
		Violations: violations,
	}

	if hasError {
		resp.Message = fmt.Sprintf("schedule is invalid: %d violation(s) found", countErrors(violations))
		return resp
	}

	_, _, metrics := summarize(&domain.ScheduleRequest{Jobs: req.Jobs, Machines: req.Machines}, req.Schedule)
	resp.Metrics = metrics
	resp.Suggestions = suggestions(req, metrics)
	resp.Message = "schedule is valid"
	return resp
}

func countErrors(vs []domain.ValidationViolation) int {
	n := 0
	for _, v := range vs {
		if v.Severity == domain.SeverityError {
			n++
		}
	}
	return n
}

// suggestions produces advisory text for an already-valid schedule:
// idle-gap compaction opportunities, machine load imbalance, and late
// jobs.
func suggestions(req *domain.ValidateRequest, metrics *domain.ScheduleMetrics) []string {
	var out []string

	byMachine := make(map[string][]domain.ScheduledTask)
	for _, st := range req.Schedule {
		byMachine[st.MachineID] = append(byMachine[st.MachineID], st)
	}
	for _, m := range req.Machines {
		tasks := byMachine[m.MachineID]
		if len(tasks) < 2 {
			continue
		}
		sorted := append([]domain.ScheduledTask(nil), tasks...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
		var idle float64
		for i := 1; i < len(sorted); i++ {
			idle += sorted[i].Start - sorted[i-1].End
		}
		if idle > 0 {
			out = append(out, fmt.Sprintf("machine %q has %.2f units of idle time between tasks that compaction could reclaim", m.MachineID, idle))
		}
	}

	if len(req.Machines) > 1 {
		var minPct, maxPct float64
		first := true
		busy := busyTotals(req.Schedule)
		ms := metrics.Makespan
		for _, m := range req.Machines {
			var pct float64
			if ms > 0 {
				pct = busy[m.MachineID] / ms * 100
			}
			if first || pct < minPct {
				minPct = pct
			}
			if first || pct > maxPct {
				maxPct = pct
			}
			first = false
		}
		if maxPct-minPct > 30 {
			out = append(out, fmt.Sprintf("machine utilization spans %.1f%% to %.1f%%; rebalancing eligible tasks would even out load", minPct, maxPct))
		}
	}

	scheduledByJobTask := make(map[string]map[string]domain.ScheduledTask)
	for _, st := range req.Schedule {
		if scheduledByJobTask[st.JobID] == nil {
			scheduledByJobTask[st.JobID] = make(map[string]domain.ScheduledTask)
		}
		scheduledByJobTask[st.JobID][st.TaskID] = st
	}
	completion := completionByJob(req.Schedule)
	for _, j := range req.Jobs {
		if j.DueDate == nil {
			continue
		}
		c := completion[j.JobID]
		if c > *j.DueDate {
			out = append(out, fmt.Sprintf("job %q completes at %.2f, %.2f past its due date", j.JobID, c, c-*j.DueDate))
		}
	}

	return out
}
