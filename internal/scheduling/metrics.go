package scheduling

import (
	"sort"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

// summarize derives JobSummary, MachineUtilization and ScheduleMetrics
// from a completed placement.
func summarize(req *domain.ScheduleRequest, schedule []domain.ScheduledTask) ([]domain.JobSummary, []domain.MachineUtilization, *domain.ScheduleMetrics) {
	completion := completionByJob(schedule)
	busy := busyTotals(schedule)

	jobSummaries := make([]domain.JobSummary, 0, len(req.Jobs))
	var totalTardiness, maxTardiness, totalCompletion float64
	for _, j := range req.Jobs {
		c := completion[j.JobID]
		var t float64
		if j.DueDate != nil {
			t = tardiness(c, *j.DueDate)
		}
		jobSummaries = append(jobSummaries, domain.JobSummary{JobID: j.JobID, Completion: roundTo(c, 2), Tardiness: roundTo(t, 2)})
		totalTardiness += t
		totalCompletion += c
		if t > maxTardiness {
			maxTardiness = t
		}
	}
	sort.Slice(jobSummaries, func(i, j int) bool { return jobSummaries[i].JobID < jobSummaries[j].JobID })

	ms := makespan(schedule)
	machineUtil := make([]domain.MachineUtilization, 0, len(req.Machines))
	for _, m := range req.Machines {
		var pct float64
		if ms > 0 {
			pct = busy[m.MachineID] / ms * 100
		}
		machineUtil = append(machineUtil, domain.MachineUtilization{
			MachineID:     m.MachineID,
			BusyTime:      roundTo(busy[m.MachineID], 2),
			UtilizationPc: roundTo(pct, 2),
		})
	}
	sort.Slice(machineUtil, func(i, j int) bool { return machineUtil[i].MachineID < machineUtil[j].MachineID })

	metrics := &domain.ScheduleMetrics{
		Makespan:            roundTo(ms, 2),
		TotalTardiness:      roundTo(totalTardiness, 2),
		MaxTardiness:        roundTo(maxTardiness, 2),
		TotalCompletionTime: roundTo(totalCompletion, 2),
	}
	return jobSummaries, machineUtil, metrics
}
