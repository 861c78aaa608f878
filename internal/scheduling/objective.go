package scheduling

import "github.com/opsintel/opsintel-mcp/internal/domain"

// objectiveValue scores one completed construction per the requested
// objective. Lower is always better internally;
// the response metrics expose the natural-unit values regardless.
func objectiveValue(req *domain.ScheduleRequest, schedule []domain.ScheduledTask, objective domain.ObjectiveType) float64 {
	completion := completionByJob(schedule)
	switch objective {
	case domain.ObjMinMakespan:
		return makespan(schedule)
	case domain.ObjMinTotalTardiness:
		var total float64
		for _, j := range req.Jobs {
			if j.DueDate == nil {
				continue
			}
			total += tardiness(completion[j.JobID], *j.DueDate)
		}
		return total
	case domain.ObjMinMaxTardiness:
		var maxT float64
		for _, j := range req.Jobs {
			if j.DueDate == nil {
				continue
			}
			t := tardiness(completion[j.JobID], *j.DueDate)
			if t > maxT {
				maxT = t
			}
		}
		return maxT
	case domain.ObjBalanceLoad:
		loads := busyTotals(schedule)
		var maxLoad float64
		for _, v := range loads {
			if v > maxLoad {
				maxLoad = v
			}
		}
		return maxLoad
	case domain.ObjMinTotalCompletionTime:
		var total float64
		for _, c := range completion {
			total += c
		}
		return total
	default:
		return makespan(schedule)
	}
}

// lowerBound gives a weak, fast-to-compute lower bound used only to
// decide whether a found solution can be reported Optimal rather than
// merely Feasible. It is intentionally conservative: it never exceeds
// the true optimum.
func lowerBound(req *domain.ScheduleRequest, objective domain.ObjectiveType) float64 {
	switch objective {
	case domain.ObjMinTotalTardiness, domain.ObjMinMaxTardiness, domain.ObjBalanceLoad:
		return 0
	case domain.ObjMinTotalCompletionTime:
		var total float64
		for _, j := range req.Jobs {
			var dur float64
			for _, t := range j.Tasks {
				dur += t.Duration + t.SetupTime
			}
			total += dur
		}
		return total
	default: // MinMakespan: bounded below by the busiest machine's minimum
		// possible load if every task it's eligible for landed on it alone,
		// approximated here by the single longest job's own total duration.
		var maxJobDur float64
		for _, j := range req.Jobs {
			var dur float64
			for _, t := range j.Tasks {
				dur += t.Duration + t.SetupTime
			}
			if dur > maxJobDur {
				maxJobDur = dur
			}
		}
		return maxJobDur
	}
}

func completionByJob(schedule []domain.ScheduledTask) map[string]float64 {
	out := make(map[string]float64)
	for _, st := range schedule {
		if st.End > out[st.JobID] {
			out[st.JobID] = st.End
		}
	}
	return out
}

func busyTotals(schedule []domain.ScheduledTask) map[string]float64 {
	out := make(map[string]float64)
	for _, st := range schedule {
		out[st.MachineID] += st.Duration
	}
	return out
}

func makespan(schedule []domain.ScheduledTask) float64 {
	var m float64
	for _, st := range schedule {
		if st.End > m {
			m = st.End
		}
	}
	return m
}

func tardiness(completion, dueDate float64) float64 {
	if completion <= dueDate {
		return 0
	}
	return completion - dueDate
}

func roundTo(v float64, places int) float64 {
	switch places {
	case 3:
		return float64(int64(v*1000+0.5)) / 1000
	default:
		return float64(int64(v*100+0.5)) / 100
	}
}
