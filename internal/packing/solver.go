package packing

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

const numWorkers = 4
const maxRestartsPerWorker = 300

type unit struct {
	items  []itemInstance
	weight float64
	volume float64
}

// Solve builds and solves a bin-packing model with a randomized-restart
// best-fit-decreasing heuristic run across parallel workers.
func Solve(ctx context.Context, req *domain.PackingRequest) *domain.PackingResponse {
	t0 := time.Now()
	if err := req.Validate(); err != nil {
		return &domain.PackingResponse{Status: domain.StatusError, Message: err.Error()}
	}

	units := buildUnits(req)
	for _, u := range units {
		if !anyBinCanEverFit(req.Bins, u) {
			if !req.AllowPartial {
				return &domain.PackingResponse{
					Status:  domain.StatusInfeasible,
					Message: fmt.Sprintf("no bin type can ever hold item(s) %v even alone", unitIDs(u)),
				}
			}
		}
	}

	solveCtx, cancel := context.WithTimeout(ctx, time.Duration(req.MaxSolveTimeSeconds)*time.Second)
	defer cancel()

	type attempt struct {
		bins      []*binInstance
		unpacked  []itemInstance
		objective float64
	}
	results := make(chan attempt, numWorkers)
	g, gctx := errgroup.WithContext(solveCtx)
	for w := 0; w < numWorkers; w++ {
		seed := int64(w*2654435761 + 13)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			var best *attempt
			for i := 0; i < maxRestartsPerWorker; i++ {
				select {
				case <-gctx.Done():
					if best != nil {
						results <- *best
					}
					return nil
				default:
				}
				bins, unpacked, ok := construct(req, units, rng)
				if !ok {
					continue
				}
				obj := objectiveValue(bins, unpacked, req.Objective)
				if best == nil || obj < best.objective {
					best = &attempt{bins: bins, unpacked: unpacked, objective: obj}
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

	var best *attempt
	for r := range results {
		r := r
		if best == nil || r.objective < best.objective {
			best = &r
		}
	}
	solveTime := time.Since(t0).Seconds()

	if best == nil {
		if solveCtx.Err() == context.DeadlineExceeded {
			return &domain.PackingResponse{Status: domain.StatusTimeout, Message: "no solution found within the time limit"}
		}
		return &domain.PackingResponse{Status: domain.StatusInfeasible, Message: "no packing satisfies capacity constraints without allow_partial"}
	}

	assignments, binSummaries := project(best.bins, best.unpacked)
	metrics := computeMetrics(best.bins, best.unpacked)
	metrics.SolveTimeSeconds = round2(solveTime)

	unpackedIDs := make([]string, 0, len(best.unpacked))
	for _, u := range best.unpacked {
		unpackedIDs = append(unpackedIDs, u.instanceID)
	}
	sort.Strings(unpackedIDs)

	return &domain.PackingResponse{
		Status:      domain.StatusFeasible,
		Message:     fmt.Sprintf("packed %d item instance(s) into %d bin(s), %d unpacked", metrics.ItemsPacked, metrics.BinsUsed, metrics.ItemsUnpacked),
		Assignments: assignments,
		Bins:        binSummaries,
		Unpacked:    unpackedIDs,
		Metrics:     metrics,
	}
}

func buildUnits(req *domain.PackingRequest) []unit {
	instances := expandItems(req.Items)
	if !req.KeepGroupsTogether {
		units := make([]unit, 0, len(instances))
		for _, it := range instances {
			units = append(units, unit{items: []itemInstance{it}, weight: it.weight, volume: it.volume})
		}
		return units
	}
	byGroup := make(map[string][]itemInstance)
	var ungrouped []itemInstance
	for _, it := range instances {
		if it.group == "" {
			ungrouped = append(ungrouped, it)
			continue
		}
		byGroup[it.group] = append(byGroup[it.group], it)
	}
	var units []unit
	var groups []string
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		items := byGroup[g]
		var w, v float64
		for _, it := range items {
			w += it.weight
			v += it.volume
		}
		units = append(units, unit{items: items, weight: w, volume: v})
	}
	for _, it := range ungrouped {
		units = append(units, unit{items: []itemInstance{it}, weight: it.weight, volume: it.volume})
	}
	return units
}

func anyBinCanEverFit(bins []domain.Bin, u unit) bool {
	for _, b := range bins {
		if u.weight <= b.WeightCapacity && u.volume <= b.VolumeCapacity {
			if b.MaxItems == nil || len(u.items) <= *b.MaxItems {
				return true
			}
		}
	}
	return false
}

func unitIDs(u unit) []string {
	var out []string
	for _, it := range u.items {
		out = append(out, it.instanceID)
	}
	return out
}

// construct runs one randomized best-fit-decreasing pass.
func construct(req *domain.PackingRequest, units []unit, rng *rand.Rand) ([]*binInstance, []itemInstance, bool) {
	bins := expandBins(req.Bins)

	order := append([]unit(nil), units...)
	sort.Slice(order, func(i, j int) bool { return order[i].weight > order[j].weight })
	if len(order) > 1 && rng.Float64() < 0.5 {
		i := rng.Intn(len(order))
		j := rng.Intn(len(order))
		order[i], order[j] = order[j], order[i]
	}

	var unpacked []itemInstance
	for _, u := range order {
		var chosen *binInstance
		var chosenSlack float64
		for _, b := range bins {
			if b.usedWeight+u.weight > b.weightCapacity {
				continue
			}
			if b.usedVolume+u.volume > b.volumeCapacity {
				continue
			}
			if b.maxItems != nil && len(b.packed)+len(u.items) > *b.maxItems {
				continue
			}
			slack := (b.weightCapacity - b.usedWeight - u.weight)
			if chosen == nil || slack < chosenSlack {
				chosen = b
				chosenSlack = slack
			}
		}
		if chosen == nil {
			if !req.AllowPartial {
				return nil, nil, false
			}
			unpacked = append(unpacked, u.items...)
			continue
		}
		for _, it := range u.items {
			chosen.add(it)
		}
	}
	return bins, unpacked, true
}
