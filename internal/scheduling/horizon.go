package scheduling

import "github.com/opsintel/opsintel-mcp/internal/domain"

// computeHorizon bounds the scheduling horizon: sum of all task durations and
// setup times, raised to cover any machine availability_end, any job
// latest_end, and 2x any due_date — the doubling reserves room for
// tardiness.
func computeHorizon(req *domain.ScheduleRequest) float64 {
	var horizon float64
	for _, j := range req.Jobs {
		for _, t := range j.Tasks {
			horizon += t.Duration + t.SetupTime
		}
	}
	for _, m := range req.Machines {
		if m.AvailabilityEnd != nil && *m.AvailabilityEnd > horizon {
			horizon = *m.AvailabilityEnd
		}
	}
	for _, j := range req.Jobs {
		if j.TimeWindow != nil && j.TimeWindow.LatestEnd != nil && *j.TimeWindow.LatestEnd > horizon {
			horizon = *j.TimeWindow.LatestEnd
		}
		if j.DueDate != nil && *j.DueDate*2 > horizon {
			horizon = *j.DueDate * 2
		}
	}
	if horizon <= 0 {
		horizon = 1
	}
	return horizon
}
