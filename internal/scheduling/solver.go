// Package scheduling implements ScheduleSolver and
// ScheduleValidator for Flexible Job-Shop Scheduling.
//
// The underlying search is a randomized-restart list-scheduling heuristic
// run across parallel workers; this package owns model construction
// (variables, precedence, eligibility, objective translation) and the
// documented status/metric contract, not a from-scratch CP-SAT solver.
package scheduling

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

const numWorkers = 4
const maxRestartsPerWorker = 500

// Solve builds and solves an FJSP model
func Solve(ctx context.Context, req *domain.ScheduleRequest) *domain.ScheduleResponse {
	t0 := time.Now()

	if err := req.Validate(); err != nil {
		return &domain.ScheduleResponse{Status: domain.StatusError, Message: err.Error()}
	}

	machineByID := make(map[string]domain.Machine, len(req.Machines))
	for _, m := range req.Machines {
		machineByID[m.MachineID] = m
	}
	for _, j := range req.Jobs {
		for _, t := range j.Tasks {
			for _, mid := range t.EligibleMachines {
				if _, ok := machineByID[mid]; !ok {
					return &domain.ScheduleResponse{
						Status:  domain.StatusError,
						Message: fmt.Sprintf("task %s/%s references unknown machine %q", j.JobID, t.TaskID, mid),
					}
				}
			}
		}
	}

	horizon := computeHorizon(req)
	solveCtx, cancel := context.WithTimeout(ctx, time.Duration(req.MaxSolveTimeSeconds)*time.Second)
	defer cancel()

	type attemptResult struct {
		tasks     []domain.ScheduledTask
		objective float64
	}

	results := make(chan attemptResult, numWorkers)
	g, gctx := errgroup.WithContext(solveCtx)
	for w := 0; w < numWorkers; w++ {
		seed := int64(w*2654435761 + 1)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			var best *attemptResult
			for i := 0; i < maxRestartsPerWorker; i++ {
				select {
				case <-gctx.Done():
					if best != nil {
						results <- *best
					}
					return nil
				default:
				}
				tasks, ok := construct(req, machineByID, horizon, rng, req.Objective)
				if !ok {
					continue
				}
				obj := objectiveValue(req, tasks, req.Objective)
				if best == nil || obj < best.objective {
					best = &attemptResult{tasks: tasks, objective: obj}
				}
			}
			if best != nil {
				results <- *best
			}
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	var best *attemptResult
	for r := range results {
		r := r
		if best == nil || r.objective < best.objective {
			best = &r
		}
	}

	solveTime := time.Since(t0).Seconds()

	if best == nil {
		if solveCtx.Err() == context.DeadlineExceeded {
			return &domain.ScheduleResponse{
				Status:  domain.StatusTimeout,
				Message: "no solution found within the time limit; consider increasing max_solve_time_seconds or reducing problem size",
			}
		}
		return &domain.ScheduleResponse{
			Status:  domain.StatusInfeasible,
			Message: "no feasible schedule satisfies the given time windows and machine availability",
		}
	}

	schedule := best.tasks
	jobSummaries, machineUtil, metrics := summarize(req, schedule)
	metrics.SolveTimeSeconds = roundTo(solveTime, 3)

	status := domain.StatusFeasible
	if math.Abs(best.objective-lowerBound(req, req.Objective)) < 1e-6 {
		status = domain.StatusOptimal
	}

	gantt := make([]domain.GanttEntry, 0, len(schedule))
	for _, st := range schedule {
		gantt = append(gantt, domain.GanttEntry{
			JobID: st.JobID, TaskID: st.TaskID, MachineID: st.MachineID, Start: st.Start, End: st.End,
		})
	}
	sort.Slice(gantt, func(i, j int) bool {
		if gantt[i].MachineID != gantt[j].MachineID {
			return gantt[i].MachineID < gantt[j].MachineID
		}
		return gantt[i].Start < gantt[j].Start
	})

	return &domain.ScheduleResponse{
		Status:       status,
		Message:      fmt.Sprintf("solved %d jobs across %d machines with makespan %.2f (%s)", len(req.Jobs), len(req.Machines), metrics.Makespan, status),
		Schedule:     schedule,
		JobSummaries: jobSummaries,
		MachineUtil:  machineUtil,
		Metrics:      metrics,
		Gantt:        gantt,
	}
}

// construct runs one randomized list-scheduling pass. It returns ok=false
// if no feasible placement exists for some task given the current
// machine/job ordering choice (e.g. a time window or availability window
// cannot be met).
func construct(req *domain.ScheduleRequest, machineByID map[string]domain.Machine, horizon float64, rng *rand.Rand, objective domain.ObjectiveType) ([]domain.ScheduledTask, bool) {
	type jobState struct {
		job    *domain.Job
		cursor int
		ready  float64
	}
	states := make([]*jobState, len(req.Jobs))
	for i := range req.Jobs {
		ready := 0.0
		if req.Jobs[i].TimeWindow != nil {
			ready = req.Jobs[i].TimeWindow.EarliestStart
		}
		states[i] = &jobState{job: &req.Jobs[i], ready: ready}
	}

	timelines := make(map[string]*machineTimeline, len(req.Machines))
	for _, m := range req.Machines {
		timelines[m.MachineID] = &machineTimeline{}
	}
	busyTotal := make(map[string]float64, len(req.Machines))

	result := make([]domain.ScheduledTask, 0)
	remaining := 0
	for _, j := range req.Jobs {
		remaining += len(j.Tasks)
	}

	for remaining > 0 {
		// pick among jobs with remaining tasks: smallest ready time,
		// tie-broken by priority desc, then a random jitter for restart
		// diversity.
		var candidates []*jobState
		for _, s := range states {
			if s.cursor < len(s.job.Tasks) {
				candidates = append(candidates, s)
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].ready != candidates[j].ready {
				return candidates[i].ready < candidates[j].ready
			}
			return candidates[i].job.Priority > candidates[j].job.Priority
		})
		// jitter: with small probability swap within the front slice to
		// diversify restarts without destroying the ready-time ordering.
		if len(candidates) > 1 && rng.Float64() < 0.3 {
			k := rng.Intn(min(3, len(candidates)))
			candidates[0], candidates[k] = candidates[k], candidates[0]
		}
		chosen := candidates[0]

		task := chosen.job.Tasks[chosen.cursor]
		blockLen := task.Duration + task.SetupTime
		isLast := chosen.cursor == len(chosen.job.Tasks)-1

		type choice struct {
			machineID string
			start     float64
		}
		var feasible []choice
		for _, mid := range task.EligibleMachines {
			m := machineByID[mid]
			start, ok := timelines[mid].earliestSlot(chosen.ready, m.AvailabilityStart, blockLen, m.AvailabilityEnd)
			if !ok {
				continue
			}
			if isLast && chosen.job.TimeWindow != nil && chosen.job.TimeWindow.LatestEnd != nil {
				if start+blockLen > *chosen.job.TimeWindow.LatestEnd {
					continue
				}
			}
			feasible = append(feasible, choice{machineID: mid, start: start})
		}
		if len(feasible) == 0 {
			return nil, false
		}

		sort.Slice(feasible, func(i, j int) bool {
			if objective == domain.ObjBalanceLoad {
				li := busyTotal[feasible[i].machineID] + blockLen
				lj := busyTotal[feasible[j].machineID] + blockLen
				if li != lj {
					return li < lj
				}
			}
			endI := feasible[i].start + blockLen
			endJ := feasible[j].start + blockLen
			if endI != endJ {
				return endI < endJ
			}
			return feasible[i].machineID < feasible[j].machineID
		})
		pick := feasible[0]

		timelines[pick.machineID].place(pick.start, blockLen)
		busyTotal[pick.machineID] += blockLen

		result = append(result, domain.ScheduledTask{
			JobID:     chosen.job.JobID,
			TaskID:    task.TaskID,
			MachineID: pick.machineID,
			Start:     pick.start,
			End:       pick.start + blockLen,
			Duration:  blockLen,
		})
		chosen.ready = pick.start + blockLen
		chosen.cursor++
		remaining--

		if pick.start+blockLen > horizon*2 {
			// runaway construction (pathological ordering); abandon this
			// attempt rather than spin.
			return nil, false
		}
	}
	return result, true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
